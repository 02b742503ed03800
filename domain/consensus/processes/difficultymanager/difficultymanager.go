package difficultymanager

import (
	"github.com/jbcoin/jbcd/domain/consensus/model"
	"github.com/jbcoin/jbcd/domain/consensus/model/externalapi"
	"github.com/jbcoin/jbcd/domain/dagconfig"
)

// burstPenaltyMinHeight is the height above which blocks arriving too
// quickly after their parent have their difficulty doubled.
const burstPenaltyMinHeight = 10000

// stallSpacings is the number of target spacings without a block after which
// the difficulty resets to the proof of work limit.
const stallSpacings = 5

// difficultyManager resolves the difficulty value of a block. It holds no
// state besides the params it was created with, so it's safe for
// concurrent use.
type difficultyManager struct {
	params *dagconfig.Params
}

// New instantiates a new DifficultyManager
func New(params *dagconfig.Params) model.DifficultyManager {
	return &difficultyManager{
		params: params,
	}
}

// RequiredDifficulty returns the compact target a block produced under mode
// on top of prior at candidateTimestamp must satisfy. A nil prior means the
// block is the first one in the chain.
func (dm *difficultyManager) RequiredDifficulty(view model.BlockIndexView, prior *externalapi.BlockIndexNode,
	candidateTimestamp int64, mode externalapi.ProductionMode) uint32 {

	powLimitBits := dm.params.PowLimitBits

	if prior == nil {
		return powLimitBits
	}

	lastOfMode, ok := view.LastBlockOfMode(prior, mode)
	if !ok || !lastOfMode.HasParent() {
		return powLimitBits
	}

	spacing := dm.params.TargetTimePerBlockSeconds()
	if candidateTimestamp > prior.Timestamp+stallSpacings*spacing {
		log.Debugf("No block for %d seconds after height %d, resetting difficulty to %08x (was %08x)",
			candidateTimestamp-prior.Timestamp, prior.Height, powLimitBits, prior.Bits)
		return powLimitBits
	}

	if candidateTimestamp < prior.Timestamp+spacing/3 && prior.Height > burstPenaltyMinHeight {
		penalized := prior.Bits / 2
		log.Debugf("Block after height %d came too fast, difficulty bits %08x", prior.Height, penalized)
		return penalized
	}

	adjustmentInterval := dm.params.DifficultyAdjustmentInterval()
	blocksToGoBack := adjustmentInterval - 1
	if int64(prior.Height)+1 == adjustmentInterval {
		blocksToGoBack = adjustmentInterval
	}
	first := view.Ancestor(prior, blocksToGoBack)

	return dm.CalculateNextWorkRequired(prior, first.Timestamp, mode)
}
