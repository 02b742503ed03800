package difficultymanager

import (
	"math/big"

	"github.com/jbcoin/jbcd/domain/consensus/model/externalapi"
	"github.com/jbcoin/jbcd/domain/consensus/utils/math"
)

// CalculateNextWorkRequired scales the target of prior by the time it took
// to produce the blocks since firstBlockTimestamp, relative to the target
// timespan. The change is bounded to a factor of four in either direction
// and the result never exceeds the limit of mode.
func (dm *difficultyManager) CalculateNextWorkRequired(prior *externalapi.BlockIndexNode,
	firstBlockTimestamp int64, mode externalapi.ProductionMode) uint32 {

	if dm.params.PowNoRetargeting {
		log.Tracef("Retargeting is disabled, keeping bits %08x", prior.Bits)
		return prior.Bits
	}

	targetTimespan := dm.params.TargetTimespanSeconds()
	actualTimespan := prior.Timestamp - firstBlockTimestamp
	if actualTimespan < targetTimespan/4 {
		actualTimespan = targetTimespan / 4
	}
	if actualTimespan > targetTimespan*4 {
		actualTimespan = targetTimespan * 4
	}

	// Only the 256-bit magnitude counts here, the sign and overflow flags
	// are not consulted.
	newTarget, _, _ := math.CompactToTarget(prior.Bits)
	limit := TargetLimit(prior.Timestamp, mode, dm.params)

	// Multiply before dividing. The product may need more than 256 bits.
	newTarget.Mul(newTarget, big.NewInt(actualTimespan))
	newTarget.Div(newTarget, big.NewInt(targetTimespan))

	if newTarget.Sign() <= 0 || newTarget.Cmp(limit) > 0 {
		newTarget = limit
	}
	return math.BigToCompact(newTarget)
}
