package blockvalidator

import (
	"github.com/jbcoin/jbcd/domain/consensus/model"
	"github.com/jbcoin/jbcd/domain/consensus/model/externalapi"
	"github.com/jbcoin/jbcd/domain/dagconfig"
)

// blockValidator checks headers against the difficulty rules
type blockValidator struct {
	params  *dagconfig.Params
	skipPoW bool

	difficultyManager model.DifficultyManager
}

// New instantiates a new BlockValidator. If skipPoW is set, headers without a
// proof hash only have their bits checked.
func New(params *dagconfig.Params,
	skipPoW bool,
	difficultyManager model.DifficultyManager) model.BlockValidator {

	return &blockValidator{
		params:            params,
		skipPoW:           skipPoW,
		difficultyManager: difficultyManager,
	}
}

// ValidateHeaderDifficulty checks that header carries the bits required on
// top of its parent and that its proof hash satisfies them.
func (v *blockValidator) ValidateHeaderDifficulty(view model.BlockIndexView, header *externalapi.BlockHeader) error {
	err := v.ValidateHeaderInContext(view, header)
	if err != nil {
		return err
	}
	return v.ValidateHeaderInIsolation(header)
}
