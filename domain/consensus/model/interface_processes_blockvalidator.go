package model

import (
	"github.com/jbcoin/jbcd/domain/consensus/model/externalapi"
)

// BlockValidator exposes a set of validation classes, after which
// it's possible to determine whether a block header is valid
type BlockValidator interface {
	ValidateHeaderInIsolation(header *externalapi.BlockHeader) error
	ValidateHeaderInContext(view BlockIndexView, header *externalapi.BlockHeader) error
	ValidateHeaderDifficulty(view BlockIndexView, header *externalapi.BlockHeader) error
}
