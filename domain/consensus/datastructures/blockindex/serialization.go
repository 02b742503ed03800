package blockindex

import (
	"encoding/binary"

	"github.com/jbcoin/jbcd/domain/consensus/model/externalapi"
	"github.com/jbcoin/jbcd/infrastructure/db/database"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protowire"
)

var bucket = database.MakeBucket([]byte("block-index"))

const (
	fieldParentID  protowire.Number = 1
	fieldHeight    protowire.Number = 2
	fieldTimestamp protowire.Number = 3
	fieldBits      protowire.Number = 4
	fieldMode      protowire.Number = 5
)

func nodeKey(id externalapi.BlockID) *database.Key {
	var idBytes [8]byte
	binary.BigEndian.PutUint64(idBytes[:], uint64(id))
	return bucket.Key(idBytes[:])
}

// Save writes every node in the index into dbContext. Saving the same index
// twice is harmless since nodes never change.
func (bi *BlockIndex) Save(dbContext database.DataAccessor) error {
	snapshot := bi.Snapshot()
	for _, node := range snapshot.nodes {
		err := dbContext.Put(nodeKey(node.ID), serializeNode(node))
		if err != nil {
			return err
		}
	}
	log.Debugf("Saved %d block index nodes", len(snapshot.nodes))
	return nil
}

// Load rebuilds a BlockIndex from the nodes stored in dbContext. Node IDs
// must be contiguous starting from zero and every parent must precede its
// child.
func Load(dbContext database.DataAccessor) (*BlockIndex, error) {
	cursor, err := dbContext.Cursor(bucket)
	if err != nil {
		return nil, err
	}
	defer cursor.Close()

	blockIndex := New()
	for cursor.Next() {
		key, err := cursor.Key()
		if err != nil {
			return nil, err
		}
		suffix := key.Suffix()
		if len(suffix) != 8 {
			return nil, errors.Errorf("malformed block index key %s", key)
		}
		id := externalapi.BlockID(binary.BigEndian.Uint64(suffix))

		value, err := cursor.Value()
		if err != nil {
			return nil, err
		}
		stored, err := deserializeNode(value)
		if err != nil {
			return nil, errors.Wrapf(err, "block index node %d", id)
		}

		if uint64(id) != uint64(blockIndex.Count()) {
			return nil, errors.Errorf("block index is missing node %d", blockIndex.Count())
		}
		if stored.HasParent() && stored.ParentID >= id {
			return nil, errors.Errorf("block index node %d has parent %d which "+
				"doesn't precede it", id, stored.ParentID)
		}
		node, err := blockIndex.Add(stored.ParentID, stored.Timestamp, stored.Bits, stored.Mode)
		if err != nil {
			return nil, errors.Wrapf(err, "block index node %d", id)
		}
		if node.Height != stored.Height {
			return nil, errors.Errorf("block index node %d has height %d, "+
				"expected %d", id, stored.Height, node.Height)
		}
	}

	log.Debugf("Loaded %d block index nodes", blockIndex.Count())
	return blockIndex, nil
}

func serializeNode(node *externalapi.BlockIndexNode) []byte {
	var b []byte
	b = protowire.AppendTag(b, fieldParentID, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(node.ParentID))
	b = protowire.AppendTag(b, fieldHeight, protowire.VarintType)
	b = protowire.AppendVarint(b, node.Height)
	b = protowire.AppendTag(b, fieldTimestamp, protowire.VarintType)
	b = protowire.AppendVarint(b, protowire.EncodeZigZag(node.Timestamp))
	b = protowire.AppendTag(b, fieldBits, protowire.Fixed32Type)
	b = protowire.AppendFixed32(b, node.Bits)
	b = protowire.AppendTag(b, fieldMode, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(node.Mode))
	return b
}

func deserializeNode(b []byte) (*externalapi.BlockIndexNode, error) {
	node := &externalapi.BlockIndexNode{ParentID: externalapi.NoParent}
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, errors.Wrap(protowire.ParseError(n), "malformed tag")
		}
		b = b[n:]

		switch {
		case num == fieldParentID && typ == protowire.VarintType:
			var v uint64
			v, n = protowire.ConsumeVarint(b)
			node.ParentID = externalapi.BlockID(v)
		case num == fieldHeight && typ == protowire.VarintType:
			node.Height, n = protowire.ConsumeVarint(b)
		case num == fieldTimestamp && typ == protowire.VarintType:
			var v uint64
			v, n = protowire.ConsumeVarint(b)
			node.Timestamp = protowire.DecodeZigZag(v)
		case num == fieldBits && typ == protowire.Fixed32Type:
			node.Bits, n = protowire.ConsumeFixed32(b)
		case num == fieldMode && typ == protowire.VarintType:
			var v uint64
			v, n = protowire.ConsumeVarint(b)
			if v > uint64(externalapi.ProofOfStake) {
				return nil, errors.Errorf("unknown production mode %d", v)
			}
			node.Mode = externalapi.ProductionMode(v)
		default:
			n = protowire.ConsumeFieldValue(num, typ, b)
		}
		if n < 0 {
			return nil, errors.Wrapf(protowire.ParseError(n), "malformed field %d", num)
		}
		b = b[n:]
	}
	return node, nil
}
