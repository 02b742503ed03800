package difficultymanager

import (
	"math/big"

	"github.com/jbcoin/jbcd/domain/consensus/utils/math"
)

// Difficulty returns how many times harder the target encoded by bits is
// than limit. Invalid or zero targets have a difficulty of zero.
func Difficulty(bits uint32, limit *big.Int) float64 {
	target, isNegative, isOverflow := math.CompactToTarget(bits)
	if isNegative || isOverflow || target.Sign() == 0 {
		return 0
	}
	ratio, _ := new(big.Rat).SetFrac(limit, target).Float64()
	return ratio
}

// DifficultyString formats the difficulty of bits relative to limit the way
// it's shown to users, with eight decimal places.
func DifficultyString(bits uint32, limit *big.Int) string {
	target, isNegative, isOverflow := math.CompactToTarget(bits)
	if isNegative || isOverflow || target.Sign() == 0 {
		return "0.00000000"
	}
	return new(big.Rat).SetFrac(limit, target).FloatString(8)
}
