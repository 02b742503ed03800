package model

import "github.com/jbcoin/jbcd/domain/consensus/model/externalapi"

// BlockIndexView is a read-only, point-in-time view of the block index.
// Implementations must return the same answers for the lifetime of the
// view, so difficulty computations walking it are reproducible.
type BlockIndexView interface {
	// Node returns the node with the given ID.
	Node(id externalapi.BlockID) (*externalapi.BlockIndexNode, bool)

	// Parent returns the parent of node, or false for the root.
	Parent(node *externalapi.BlockIndexNode) (*externalapi.BlockIndexNode, bool)

	// Ancestor walks up to steps parents back from node. The walk stops
	// early, without error, once it reaches a node at height 1 or below.
	Ancestor(node *externalapi.BlockIndexNode, steps int64) *externalapi.BlockIndexNode

	// LastBlockOfMode returns the most recent node produced under mode,
	// starting from node itself, or false if there is none.
	LastBlockOfMode(node *externalapi.BlockIndexNode, mode externalapi.ProductionMode) (*externalapi.BlockIndexNode, bool)
}
