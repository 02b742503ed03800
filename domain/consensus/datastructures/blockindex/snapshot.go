package blockindex

import (
	"github.com/jbcoin/jbcd/domain/consensus/model"
	"github.com/jbcoin/jbcd/domain/consensus/model/externalapi"
)

// Snapshot is a point-in-time view of a BlockIndex. It's safe for
// concurrent use.
type Snapshot struct {
	nodes []*externalapi.BlockIndexNode
}

var _ model.BlockIndexView = (*Snapshot)(nil)

// Count returns the number of nodes visible in the snapshot.
func (s *Snapshot) Count() int {
	return len(s.nodes)
}

// Tip returns the most recently added node, or false if the snapshot is
// empty.
func (s *Snapshot) Tip() (*externalapi.BlockIndexNode, bool) {
	if len(s.nodes) == 0 {
		return nil, false
	}
	return s.nodes[len(s.nodes)-1], true
}

// Node returns the node with the given ID.
func (s *Snapshot) Node(id externalapi.BlockID) (*externalapi.BlockIndexNode, bool) {
	if uint64(id) >= uint64(len(s.nodes)) {
		return nil, false
	}
	return s.nodes[id], true
}

// Parent returns the parent of node, or false for the root.
func (s *Snapshot) Parent(node *externalapi.BlockIndexNode) (*externalapi.BlockIndexNode, bool) {
	if !node.HasParent() {
		return nil, false
	}
	return s.Node(node.ParentID)
}

// Ancestor walks up to steps parents back from node, stopping at the first
// node whose height is 1 or below.
func (s *Snapshot) Ancestor(node *externalapi.BlockIndexNode, steps int64) *externalapi.BlockIndexNode {
	current := node
	for i := int64(0); i < steps; i++ {
		if current.Height <= 1 {
			break
		}
		parent, ok := s.Parent(current)
		if !ok {
			break
		}
		current = parent
	}
	return current
}

// LastBlockOfMode returns the closest node produced under mode, starting
// from node itself.
func (s *Snapshot) LastBlockOfMode(node *externalapi.BlockIndexNode,
	mode externalapi.ProductionMode) (*externalapi.BlockIndexNode, bool) {

	current := node
	for current.Mode != mode {
		parent, ok := s.Parent(current)
		if !ok {
			return nil, false
		}
		current = parent
	}
	return current, true
}
