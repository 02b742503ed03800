package pow

import (
	"math/big"

	"github.com/holiman/uint256"
	"github.com/jbcoin/jbcd/domain/consensus/model/externalapi"
	"github.com/jbcoin/jbcd/domain/consensus/processes/difficultymanager"
	"github.com/jbcoin/jbcd/domain/consensus/utils/math"
	"github.com/jbcoin/jbcd/domain/dagconfig"
)

// CheckProofOfWork checks that bits encode a valid target no easier than
// the proof of work limit, and that hash doesn't exceed it.
func CheckProofOfWork(hash *externalapi.DomainHash, bits uint32, params *dagconfig.Params) bool {
	return CheckProofOfWorkWithLimit(hash, bits, params.PowLimit)
}

// CheckProofOfWorkForMode is like CheckProofOfWork, except the target must
// be within the limit of mode. This is how a proof of stake kernel hash is
// checked against the stake limit.
func CheckProofOfWorkForMode(hash *externalapi.DomainHash, bits uint32, mode externalapi.ProductionMode,
	params *dagconfig.Params) bool {

	limit := difficultymanager.TargetLimit(0, mode, params)
	return CheckProofOfWorkWithLimit(hash, bits, limit)
}

// CheckProofOfWorkWithLimit checks that bits encode a positive target no
// larger than limit, and that hash, read as a 256-bit number, is no larger
// than the target.
func CheckProofOfWorkWithLimit(hash *externalapi.DomainHash, bits uint32, limit *big.Int) bool {
	target, isNegative, isOverflow := math.CompactToTarget(bits)

	// Check range
	if isNegative || isOverflow || target.Sign() == 0 || target.Cmp(limit) > 0 {
		log.Debugf("Target %064x of bits %08x is out of range (limit %064x)", target, bits, limit)
		return false
	}

	return ToUint256(hash).Cmp(mustUint256(target)) <= 0
}

// ToUint256 reads hash as a little-endian 256-bit number.
func ToUint256(hash *externalapi.DomainHash) *uint256.Int {
	bigEndian := hash.BigEndianBytes()
	return new(uint256.Int).SetBytes32(bigEndian[:])
}

func mustUint256(n *big.Int) *uint256.Int {
	value, overflow := uint256.FromBig(n)
	if overflow {
		panic("target doesn't fit 256 bits")
	}
	return value
}
