package externalapi

import "math"

// BlockID identifies a BlockIndexNode inside the block index store that
// owns it.
type BlockID uint64

// NoParent is the ParentID of the root node.
const NoParent BlockID = math.MaxUint64

// BlockIndexNode is the header metadata of one accepted block as linked into
// the chain. Nodes are owned by the block index store and are never mutated
// after insertion. ParentID is a plain reference into the same store.
type BlockIndexNode struct {
	ID        BlockID
	ParentID  BlockID
	Height    uint64
	Timestamp int64 // unix seconds
	Bits      uint32
	Mode      ProductionMode
}

// HasParent returns whether node links to a parent node.
func (node *BlockIndexNode) HasParent() bool {
	return node.ParentID != NoParent
}

// BlockHeader is the part of a candidate block the difficulty rules look at.
// ProofHash is the header hash for proof-of-work blocks and the stake kernel
// hash for proof-of-stake blocks; both are computed by the caller.
type BlockHeader struct {
	ParentID  BlockID
	Timestamp int64
	Bits      uint32
	Mode      ProductionMode
	ProofHash *DomainHash
}
