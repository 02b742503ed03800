package model

import "github.com/jbcoin/jbcd/domain/consensus/model/externalapi"

// DifficultyManager provides a method to resolve the
// difficulty value of a block
type DifficultyManager interface {
	// RequiredDifficulty returns the compact target a block produced under
	// mode at candidateTimestamp must satisfy when built on prior. A nil
	// prior denotes the genesis block. Ancestors are resolved through view,
	// which must not change for the duration of the call.
	RequiredDifficulty(view BlockIndexView, prior *externalapi.BlockIndexNode,
		candidateTimestamp int64, mode externalapi.ProductionMode) uint32

	// CalculateNextWorkRequired retargets prior's bits by the time elapsed
	// since firstBlockTimestamp.
	CalculateNextWorkRequired(prior *externalapi.BlockIndexNode, firstBlockTimestamp int64,
		mode externalapi.ProductionMode) uint32
}
