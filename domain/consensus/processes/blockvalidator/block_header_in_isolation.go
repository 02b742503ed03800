package blockvalidator

import (
	"github.com/jbcoin/jbcd/domain/consensus/model/externalapi"
	"github.com/jbcoin/jbcd/domain/consensus/ruleerrors"
	"github.com/jbcoin/jbcd/domain/consensus/utils/math"
	"github.com/jbcoin/jbcd/domain/consensus/utils/pow"
	"github.com/jbcoin/jbcd/infrastructure/logger"
	"github.com/pkg/errors"
)

// ValidateHeaderInIsolation validates the parts of a header that don't
// depend on its ancestors
func (v *blockValidator) ValidateHeaderInIsolation(header *externalapi.BlockHeader) error {
	onEnd := logger.LogAndMeasureExecutionTime(log, "ValidateHeaderInIsolation")
	defer onEnd()

	return v.checkProofOfWork(header)
}

// checkProofOfWork ensures the header bits which indicate the target
// difficulty are in min/max range and that the proof hash is not above the
// target as claimed.
//
// Both modes are held to the proof of work limit, which is also what a proof
// of stake block is required to carry after a stall. Whether the bits are the
// right ones is checked in context.
func (v *blockValidator) checkProofOfWork(header *externalapi.BlockHeader) error {
	limit := v.params.PowLimit

	target, isNegative, isOverflow := math.CompactToTarget(header.Bits)
	if isNegative {
		return errors.Wrapf(ruleerrors.ErrTargetOutOfRange, "block bits %08x encode a negative target",
			header.Bits)
	}
	if isOverflow {
		return errors.Wrapf(ruleerrors.ErrTargetOutOfRange, "block bits %08x encode a target wider "+
			"than 256 bits", header.Bits)
	}
	if target.Sign() == 0 {
		return errors.Wrapf(ruleerrors.ErrTargetOutOfRange, "block bits %08x encode a zero target",
			header.Bits)
	}
	if target.Cmp(limit) > 0 {
		return errors.Wrapf(ruleerrors.ErrTargetOutOfRange, "block target difficulty of %064x is "+
			"higher than max of %064x", target, limit)
	}

	if header.ProofHash == nil {
		if v.skipPoW {
			return nil
		}
		return errors.Wrapf(ruleerrors.ErrMissingProofHash, "%s block at time %d has no proof hash",
			header.Mode, header.Timestamp)
	}

	if !pow.CheckProofOfWork(header.ProofHash, header.Bits, v.params) {
		return errors.Wrapf(ruleerrors.ErrInvalidPoW, "block proof hash of %s is higher than "+
			"expected max of %064x", header.ProofHash, target)
	}

	return nil
}
