package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/jbcoin/jbcd/domain/consensus/datastructures/blockindex"
	"github.com/jbcoin/jbcd/domain/consensus/model"
	"github.com/jbcoin/jbcd/domain/consensus/model/externalapi"
	"github.com/jbcoin/jbcd/domain/consensus/processes/blockvalidator"
	"github.com/jbcoin/jbcd/domain/consensus/processes/difficultymanager"
	"github.com/jbcoin/jbcd/domain/consensus/ruleerrors"
	"github.com/jbcoin/jbcd/domain/dagconfig"
	"github.com/pkg/errors"
)

const (
	maxLineSize      = 1024 * 1024
	progressInterval = 10000
)

// headerRecord is one line of the replay input. Height is optional and only
// cross-checked against the position of the header in the chain.
type headerRecord struct {
	Height    *uint64 `json:"height"`
	Timestamp int64   `json:"timestamp"`
	Bits      string  `json:"bits"`
	Mode      string  `json:"mode"`
	Hash      string  `json:"hash"`
}

type replaySummary struct {
	blocks     int
	mismatches int
	tip        *externalapi.BlockIndexNode
}

type replayer struct {
	params         *dagconfig.Params
	blockIndex     *blockindex.BlockIndex
	validator      model.BlockValidator
	stopOnMismatch bool
}

func newReplayer(params *dagconfig.Params, blockIndex *blockindex.BlockIndex, stopOnMismatch bool) *replayer {
	difficultyManager := difficultymanager.New(params)
	return &replayer{
		params:         params,
		blockIndex:     blockIndex,
		validator:      blockvalidator.New(params, true, difficultyManager),
		stopOnMismatch: stopOnMismatch,
	}
}

// replay extends the block index with every header read from reader, each
// one on top of the previous. Headers violating a difficulty rule are
// counted and still added, unless stopOnMismatch is set. It stops early,
// without an error, once interrupt is closed.
func (r *replayer) replay(reader io.Reader, interrupt <-chan struct{}) (*replaySummary, error) {
	summary := &replaySummary{}
	if tip, ok := r.blockIndex.Snapshot().Tip(); ok {
		summary.tip = tip
		log.Infof("Resuming on top of height %d", tip.Height)
	}

	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		select {
		case <-interrupt:
			log.Infof("Replay interrupted at line %d", lineNumber)
			return summary, nil
		default:
		}

		header, err := r.parseHeader(line, summary.tip)
		if err != nil {
			return summary, errors.Wrapf(err, "line %d", lineNumber)
		}

		err = r.validator.ValidateHeaderDifficulty(r.blockIndex.Snapshot(), header)
		if err != nil {
			if !errors.As(err, &ruleerrors.RuleError{}) {
				return summary, errors.Wrapf(err, "line %d", lineNumber)
			}
			summary.mismatches++
			log.Warnf("Line %d: %s", lineNumber, err)
			if r.stopOnMismatch {
				return summary, errors.Wrapf(err, "line %d", lineNumber)
			}
		}

		node, err := r.blockIndex.Add(header.ParentID, header.Timestamp, header.Bits, header.Mode)
		if err != nil {
			return summary, errors.Wrapf(err, "line %d", lineNumber)
		}
		summary.tip = node
		summary.blocks++

		if summary.blocks%progressInterval == 0 {
			log.Infof("Replayed %d headers, height %d, bits %08x", summary.blocks, node.Height, node.Bits)
		}
	}
	if err := scanner.Err(); err != nil {
		return summary, errors.Wrapf(err, "failed reading line %d", lineNumber+1)
	}

	return summary, nil
}

func (r *replayer) parseHeader(line []byte, tip *externalapi.BlockIndexNode) (*externalapi.BlockHeader, error) {
	decoder := json.NewDecoder(bytes.NewReader(line))
	decoder.DisallowUnknownFields()
	record := &headerRecord{}
	err := decoder.Decode(record)
	if err != nil {
		return nil, errors.Wrap(err, "malformed header")
	}

	parentID := externalapi.NoParent
	expectedHeight := uint64(0)
	if tip != nil {
		parentID = tip.ID
		expectedHeight = tip.Height + 1
	}
	if record.Height != nil && *record.Height != expectedHeight {
		return nil, errors.Errorf("header claims height %d, but extends height %d",
			*record.Height, int64(expectedHeight)-1)
	}

	bits, err := parseBits(record.Bits)
	if err != nil {
		return nil, err
	}

	mode := externalapi.ProofOfWork
	if record.Mode != "" {
		mode, err = externalapi.ParseProductionMode(record.Mode)
		if err != nil {
			return nil, err
		}
	}

	var proofHash *externalapi.DomainHash
	if record.Hash != "" {
		proofHash, err = externalapi.NewDomainHashFromString(record.Hash)
		if err != nil {
			return nil, err
		}
	}

	return &externalapi.BlockHeader{
		ParentID:  parentID,
		Timestamp: record.Timestamp,
		Bits:      bits,
		Mode:      mode,
		ProofHash: proofHash,
	}, nil
}

// parseBits parses compact bits written as hex, with or without a 0x prefix.
func parseBits(bitsString string) (uint32, error) {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(bitsString, "0x"), "0X")
	bits, err := strconv.ParseUint(trimmed, 16, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "malformed bits %q", bitsString)
	}
	return uint32(bits), nil
}
