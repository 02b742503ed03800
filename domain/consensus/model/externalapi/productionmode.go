package externalapi

import (
	"strings"

	"github.com/pkg/errors"
)

// ProductionMode is the way a block was produced. Each mode has its own
// target limit and its own chain of same-mode ancestors.
type ProductionMode byte

const (
	// ProofOfWork marks blocks whose header hash satisfies the target.
	ProofOfWork ProductionMode = iota

	// ProofOfStake marks blocks whose stake kernel hash satisfies the
	// target.
	ProofOfStake
)

var productionModeStrings = map[ProductionMode]string{
	ProofOfWork:  "pow",
	ProofOfStake: "pos",
}

func (mode ProductionMode) String() string {
	if str, ok := productionModeStrings[mode]; ok {
		return str
	}
	return "unknown"
}

// IsProofOfStake returns whether mode is ProofOfStake.
func (mode ProductionMode) IsProofOfStake() bool {
	return mode == ProofOfStake
}

// ParseProductionMode parses the strings returned by ProductionMode.String.
func ParseProductionMode(modeString string) (ProductionMode, error) {
	switch strings.ToLower(modeString) {
	case "pow":
		return ProofOfWork, nil
	case "pos":
		return ProofOfStake, nil
	}
	return 0, errors.Errorf("unknown production mode %q", modeString)
}
