package blockindex

import (
	"sync"

	"github.com/jbcoin/jbcd/domain/consensus/model/externalapi"
	"github.com/pkg/errors"
)

var (
	// ErrUnknownParent is returned when a node is added on top of a parent
	// the index doesn't hold.
	ErrUnknownParent = errors.New("unknown parent")

	// ErrDuplicateRoot is returned when a second parentless node is added.
	ErrDuplicateRoot = errors.New("the block index already has a root")
)

// BlockIndex is the sole owner of all BlockIndexNodes. It's append-only:
// nodes are never mutated or removed once added, which is what makes the
// snapshots it hands out stable.
type BlockIndex struct {
	lock  sync.RWMutex
	nodes []*externalapi.BlockIndexNode
}

// New instantiates a new, empty BlockIndex
func New() *BlockIndex {
	return &BlockIndex{}
}

// Add links a new node on top of parentID and returns it. The first node
// added must use externalapi.NoParent and becomes the root at height 0.
func (bi *BlockIndex) Add(parentID externalapi.BlockID, timestamp int64, bits uint32,
	mode externalapi.ProductionMode) (*externalapi.BlockIndexNode, error) {

	bi.lock.Lock()
	defer bi.lock.Unlock()

	node := &externalapi.BlockIndexNode{
		ID:        externalapi.BlockID(len(bi.nodes)),
		ParentID:  parentID,
		Timestamp: timestamp,
		Bits:      bits,
		Mode:      mode,
	}
	if parentID == externalapi.NoParent {
		if len(bi.nodes) != 0 {
			return nil, errors.WithStack(ErrDuplicateRoot)
		}
		node.Height = 0
	} else {
		if uint64(parentID) >= uint64(len(bi.nodes)) {
			return nil, errors.Wrapf(ErrUnknownParent, "parent %d of a block at time %d", parentID, timestamp)
		}
		node.Height = bi.nodes[parentID].Height + 1
	}

	bi.nodes = append(bi.nodes, node)
	return node, nil
}

// Count returns the number of nodes in the index.
func (bi *BlockIndex) Count() int {
	bi.lock.RLock()
	defer bi.lock.RUnlock()

	return len(bi.nodes)
}

// Snapshot returns an immutable view of the nodes added so far. Nodes added
// afterwards are invisible to it.
func (bi *BlockIndex) Snapshot() *Snapshot {
	bi.lock.RLock()
	defer bi.lock.RUnlock()

	count := len(bi.nodes)
	return &Snapshot{nodes: bi.nodes[:count:count]}
}
