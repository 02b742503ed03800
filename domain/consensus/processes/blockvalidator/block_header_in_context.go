package blockvalidator

import (
	"github.com/jbcoin/jbcd/domain/consensus/model"
	"github.com/jbcoin/jbcd/domain/consensus/model/externalapi"
	"github.com/jbcoin/jbcd/domain/consensus/ruleerrors"
	"github.com/jbcoin/jbcd/infrastructure/logger"
	"github.com/pkg/errors"
)

// ValidateHeaderInContext validates that the header's bits are the ones
// required on top of its parent in view
func (v *blockValidator) ValidateHeaderInContext(view model.BlockIndexView, header *externalapi.BlockHeader) error {
	onEnd := logger.LogAndMeasureExecutionTime(log, "ValidateHeaderInContext")
	defer onEnd()

	var parent *externalapi.BlockIndexNode
	if header.ParentID != externalapi.NoParent {
		var ok bool
		parent, ok = view.Node(header.ParentID)
		if !ok {
			return errors.Wrapf(ruleerrors.ErrMissingParent, "parent %d is not in the block index",
				header.ParentID)
		}
	}

	expectedBits := v.difficultyManager.RequiredDifficulty(view, parent, header.Timestamp, header.Mode)
	if header.Bits != expectedBits {
		log.Debugf("%s block at time %d has bits %08x, expected %08x",
			header.Mode, header.Timestamp, header.Bits, expectedBits)
		return ruleerrors.NewErrUnexpectedDifficulty(expectedBits, header.Bits)
	}
	return nil
}
