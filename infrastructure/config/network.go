package config

import (
	"encoding/json"
	"fmt"
	"math/big"
	"os"
	"time"

	"github.com/jbcoin/jbcd/domain/consensus/utils/math"
	"github.com/jbcoin/jbcd/domain/dagconfig"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

// NetworkFlags holds the network configuration, that is which network is selected.
type NetworkFlags struct {
	Testnet               bool   `long:"testnet" description:"Use the test network"`
	RegressionTest        bool   `long:"regtest" description:"Use the regression test network"`
	Simnet                bool   `long:"simnet" description:"Use the simulation test network"`
	Devnet                bool   `long:"devnet" description:"Use the development test network"`
	OverrideDAGParamsFile string `long:"override-dag-params-file" description:"Overrides DAG params (allowed only on devnet)"`

	ActiveNetParams *dagconfig.Params
}

type overrideDAGParamsConfig struct {
	PowLimit                    *string `json:"powLimit"`
	PosLimit                    *string `json:"posLimit"`
	TargetTimePerBlockInSeconds *int64  `json:"targetTimePerBlockInSeconds"`
	TargetTimespanInSeconds     *int64  `json:"targetTimespanInSeconds"`
	PowNoRetargeting            *bool   `json:"powNoRetargeting"`
}

// ResolveNetwork parses the network command line argument and sets NetParams accordingly.
// It returns error if more than one network was selected, nil otherwise.
//
// ActiveNetParams is always a private copy of the registered network, so
// overrides never leak into the package-level params.
func (networkFlags *NetworkFlags) ResolveNetwork(parser *flags.Parser) error {
	// NetParams holds the selected network parameters. Default value is main-net.
	activeNetParams := &dagconfig.MainnetParams
	// Multiple networks can't be selected simultaneously.
	numNets := 0
	// Count number of network flags passed; assign active network params
	// while we're at it
	if networkFlags.Testnet {
		numNets++
		activeNetParams = &dagconfig.TestnetParams
	}
	if networkFlags.RegressionTest {
		numNets++
		activeNetParams = &dagconfig.RegressionNetParams
	}
	if networkFlags.Simnet {
		numNets++
		activeNetParams = &dagconfig.SimnetParams
	}
	if networkFlags.Devnet {
		numNets++
		activeNetParams = &dagconfig.DevnetParams
	}
	if numNets > 1 {
		message := "Multiple networks parameters (testnet, regtest, simnet, devnet, etc.) cannot be " +
			"used together. Please choose only one network"
		err := errors.New(message)
		if parser != nil {
			fmt.Fprintln(os.Stderr, err)
			parser.WriteHelp(os.Stderr)
		}
		return err
	}
	networkFlags.ActiveNetParams = activeNetParams.Clone()

	err := networkFlags.overrideDAGParams()
	if err != nil {
		return err
	}

	return networkFlags.ActiveNetParams.Validate()
}

// NetParams returns the ActiveNetParams
func (networkFlags *NetworkFlags) NetParams() *dagconfig.Params {
	return networkFlags.ActiveNetParams
}

func parseLimit(name string, hexString string) (*big.Int, error) {
	limit, ok := new(big.Int).SetString(hexString, 16)
	if !ok {
		return nil, errors.Errorf("couldn't convert %s %s to big int", name, hexString)
	}
	return limit, nil
}

func (networkFlags *NetworkFlags) overrideDAGParams() error {

	if networkFlags.OverrideDAGParamsFile == "" {
		return nil
	}

	if !networkFlags.Devnet {
		return errors.Errorf("override-dag-params-file is allowed only when using devnet")
	}

	overrideDAGParamsFile, err := os.Open(networkFlags.OverrideDAGParamsFile)
	if err != nil {
		return errors.WithStack(err)
	}
	defer overrideDAGParamsFile.Close()

	decoder := json.NewDecoder(overrideDAGParamsFile)
	decoder.DisallowUnknownFields()
	config := &overrideDAGParamsConfig{}
	err = decoder.Decode(config)
	if err != nil {
		return errors.Wrapf(err, "couldn't parse %s", networkFlags.OverrideDAGParamsFile)
	}

	params := networkFlags.ActiveNetParams

	if config.PowLimit != nil {
		powLimit, err := parseLimit("powLimit", *config.PowLimit)
		if err != nil {
			return err
		}
		params.PowLimit = powLimit
		params.PowLimitBits = math.BigToCompact(powLimit)
	}

	if config.PosLimit != nil {
		posLimit, err := parseLimit("posLimit", *config.PosLimit)
		if err != nil {
			return err
		}
		params.PosLimit = posLimit
	}

	if config.TargetTimePerBlockInSeconds != nil {
		params.TargetTimePerBlock = time.Duration(*config.TargetTimePerBlockInSeconds) * time.Second
	}

	if config.TargetTimespanInSeconds != nil {
		params.TargetTimespan = time.Duration(*config.TargetTimespanInSeconds) * time.Second
	}

	if config.PowNoRetargeting != nil {
		params.PowNoRetargeting = *config.PowNoRetargeting
	}

	return nil
}
