package difficultymanager

import (
	"math/big"

	"github.com/jbcoin/jbcd/domain/consensus/model/externalapi"
	"github.com/jbcoin/jbcd/domain/dagconfig"
)

// TargetLimit returns the easiest target allowed for blocks produced under
// mode. The returned value is a copy and may be modified by the caller.
//
// The timestamp is accepted so that a future upgrade can change the limits
// at a given time. It's currently ignored.
func TargetLimit(timestamp int64, mode externalapi.ProductionMode, params *dagconfig.Params) *big.Int {
	if mode.IsProofOfStake() {
		return new(big.Int).Set(params.PosLimit)
	}
	return new(big.Int).Set(params.PowLimit)
}
