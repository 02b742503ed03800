// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dagconfig

import (
	"math/big"
	"time"

	"github.com/jbcoin/jbcd/domain/consensus/utils/math"
	"github.com/pkg/errors"
)

// These variables are the proof-of-work and proof-of-stake limit parameters
// for each default network.
var (
	// bigOne is 1 represented as a big.Int. It is defined here to avoid
	// the overhead of creating it multiple times.
	bigOne = big.NewInt(1)

	// mainPowLimit is the highest proof of work value a block can have
	// for the main network. It is the value 2^236 - 1.
	mainPowLimit = limitWithLeadingZeroBits(20)

	// mainPosLimit is the highest stake kernel value a block can have
	// for the main network. It is the value 2^236 - 1.
	mainPosLimit = limitWithLeadingZeroBits(20)

	// testnetPowLimit is the value 2^236 - 1.
	testnetPowLimit = limitWithLeadingZeroBits(20)

	// testnetPosLimit is the value 2^232 - 1.
	testnetPosLimit = limitWithLeadingZeroBits(24)

	// regressionPowLimit and regressionPosLimit are the value 2^255 - 1.
	regressionPowLimit = limitWithLeadingZeroBits(1)
	regressionPosLimit = limitWithLeadingZeroBits(1)

	// simnetPowLimit and simnetPosLimit are the value 2^244 - 1.
	simnetPowLimit = limitWithLeadingZeroBits(12)
	simnetPosLimit = limitWithLeadingZeroBits(12)

	// devnetPowLimit is the value 2^236 - 1 and devnetPosLimit is the
	// value 2^232 - 1.
	devnetPowLimit = limitWithLeadingZeroBits(20)
	devnetPosLimit = limitWithLeadingZeroBits(24)
)

// limitWithLeadingZeroBits returns 2^(256-zeroBits) - 1, i.e. ~uint256(0) >> zeroBits.
func limitWithLeadingZeroBits(zeroBits uint) *big.Int {
	return new(big.Int).Sub(new(big.Int).Lsh(bigOne, 256-zeroBits), bigOne)
}

const (
	targetTimePerBlock = 1 * time.Minute
	targetTimespan     = 24 * time.Hour
)

// Net identifies a network by its magic number.
type Net uint32

// Constants used to indicate the message network.
const (
	Mainnet Net = 0x4a42434d
	Testnet Net = 0x4a424354
	Regtest Net = 0x4a424352
	Simnet  Net = 0x4a424353
	Devnet  Net = 0x4a424344
)

// Params defines a network by its consensus parameters. Params are
// resolved once on startup and must not be mutated afterwards, since every
// node has to compute the same targets from them.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Net defines the magic bytes used to identify the network.
	Net Net

	// PowLimit defines the highest allowed proof of work value for a block
	// as a uint256.
	PowLimit *big.Int

	// PowLimitBits defines the highest allowed proof of work value for a
	// block in compact form.
	PowLimitBits uint32

	// PosLimit defines the highest allowed stake kernel value for a
	// proof-of-stake block as a uint256.
	PosLimit *big.Int

	// TargetTimePerBlock is the desired amount of time to generate each
	// block (the target spacing).
	TargetTimePerBlock time.Duration

	// TargetTimespan is the desired amount of time that a full difficulty
	// adjustment interval should take.
	TargetTimespan time.Duration

	// PowNoRetargeting disables difficulty adjustment. Every block keeps
	// the bits of its predecessor.
	PowNoRetargeting bool
}

// DifficultyAdjustmentInterval is the number of blocks in one targeted
// timespan.
func (p *Params) DifficultyAdjustmentInterval() int64 {
	return int64(p.TargetTimespan / p.TargetTimePerBlock)
}

// TargetTimePerBlockSeconds returns TargetTimePerBlock in whole seconds.
func (p *Params) TargetTimePerBlockSeconds() int64 {
	return int64(p.TargetTimePerBlock / time.Second)
}

// TargetTimespanSeconds returns TargetTimespan in whole seconds.
func (p *Params) TargetTimespanSeconds() int64 {
	return int64(p.TargetTimespan / time.Second)
}

// Validate checks the params are usable by the difficulty code.
func (p *Params) Validate() error {
	if p.PowLimit == nil || p.PowLimit.Sign() <= 0 || p.PowLimit.BitLen() > 256 {
		return errors.Errorf("%s: powLimit must be a positive 256-bit number", p.Name)
	}
	if p.PosLimit == nil || p.PosLimit.Sign() <= 0 || p.PosLimit.BitLen() > 256 {
		return errors.Errorf("%s: posLimit must be a positive 256-bit number", p.Name)
	}
	if p.PowLimitBits != math.BigToCompact(p.PowLimit) {
		return errors.Errorf("%s: powLimitBits %08x don't match powLimit (expected %08x)",
			p.Name, p.PowLimitBits, math.BigToCompact(p.PowLimit))
	}
	if !p.PowNoRetargeting {
		// A retarget multiplies a target by up to four timespans. Nodes
		// doing this in 256-bit arithmetic would overflow beyond that.
		maxFactor := big.NewInt(4 * p.TargetTimespanSeconds())
		if new(big.Int).Mul(p.PowLimit, maxFactor).BitLen() > 256 {
			return errors.Errorf("%s: powLimit times four timespans exceeds 256 bits", p.Name)
		}
		if new(big.Int).Mul(p.PosLimit, maxFactor).BitLen() > 256 {
			return errors.Errorf("%s: posLimit times four timespans exceeds 256 bits", p.Name)
		}
	}
	if p.TargetTimePerBlockSeconds() <= 0 {
		return errors.Errorf("%s: targetTimePerBlock must be at least one second", p.Name)
	}
	if p.TargetTimespanSeconds() < 4 || p.DifficultyAdjustmentInterval() < 2 {
		return errors.Errorf("%s: targetTimespan %s must span at least two blocks of %s",
			p.Name, p.TargetTimespan, p.TargetTimePerBlock)
	}
	return nil
}

// Clone returns a deep copy of p, used to apply overrides without touching
// the registered network.
func (p *Params) Clone() *Params {
	clone := *p
	clone.PowLimit = new(big.Int).Set(p.PowLimit)
	clone.PosLimit = new(big.Int).Set(p.PosLimit)
	return &clone
}

// MainnetParams defines the network parameters for the main network.
var MainnetParams = Params{
	Name:               "mainnet",
	Net:                Mainnet,
	PowLimit:           mainPowLimit,
	PowLimitBits:       math.BigToCompact(mainPowLimit),
	PosLimit:           mainPosLimit,
	TargetTimePerBlock: targetTimePerBlock,
	TargetTimespan:     targetTimespan,
	PowNoRetargeting:   false,
}

// TestnetParams defines the network parameters for the test network.
var TestnetParams = Params{
	Name:               "testnet",
	Net:                Testnet,
	PowLimit:           testnetPowLimit,
	PowLimitBits:       math.BigToCompact(testnetPowLimit),
	PosLimit:           testnetPosLimit,
	TargetTimePerBlock: targetTimePerBlock,
	TargetTimespan:     targetTimespan,
	PowNoRetargeting:   false,
}

// RegressionNetParams defines the network parameters for the regression test
// network. Difficulty never changes on it.
var RegressionNetParams = Params{
	Name:               "regtest",
	Net:                Regtest,
	PowLimit:           regressionPowLimit,
	PowLimitBits:       math.BigToCompact(regressionPowLimit),
	PosLimit:           regressionPosLimit,
	TargetTimePerBlock: targetTimePerBlock,
	TargetTimespan:     targetTimespan,
	PowNoRetargeting:   true,
}

// SimnetParams defines the network parameters for the simulation test
// network. It retargets every ten blocks.
var SimnetParams = Params{
	Name:               "simnet",
	Net:                Simnet,
	PowLimit:           simnetPowLimit,
	PowLimitBits:       math.BigToCompact(simnetPowLimit),
	PosLimit:           simnetPosLimit,
	TargetTimePerBlock: targetTimePerBlock,
	TargetTimespan:     10 * targetTimePerBlock,
	PowNoRetargeting:   false,
}

// DevnetParams defines the network parameters for the development network.
// It's the only network whose params may be overridden from a file.
var DevnetParams = Params{
	Name:               "devnet",
	Net:                Devnet,
	PowLimit:           devnetPowLimit,
	PowLimitBits:       math.BigToCompact(devnetPowLimit),
	PosLimit:           devnetPosLimit,
	TargetTimePerBlock: targetTimePerBlock,
	TargetTimespan:     targetTimespan,
	PowNoRetargeting:   false,
}

var (
	// ErrDuplicateNet describes an error where the parameters for a
	// network could not be set due to the network already being a standard
	// network or previously-registered into this package.
	ErrDuplicateNet = errors.New("duplicate network")

	// ErrUnknownNet describes an error where no network is registered
	// under the requested name.
	ErrUnknownNet = errors.New("unknown network")
)

var registeredNets = make(map[Net]*Params)

// Register registers the network parameters for a network. This may
// error with ErrDuplicateNet if the network is already registered (either
// due to a previous Register call, or the network being one of the default
// networks).
//
// Network parameters should be registered into this package by a main package
// as early as possible. Then, library packages may lookup networks or network
// parameters based on inputs and work regardless of the network being standard
// or not.
func Register(params *Params) error {
	if _, ok := registeredNets[params.Net]; ok {
		return ErrDuplicateNet
	}
	registeredNets[params.Net] = params
	return nil
}

// ParamsByName returns the registered params whose Name is name.
func ParamsByName(name string) (*Params, error) {
	for _, params := range registeredNets {
		if params.Name == name {
			return params, nil
		}
	}
	return nil, errors.Wrapf(ErrUnknownNet, "%s", name)
}

// mustRegister performs the same function as Register except it panics if there
// is an error. This should only be called from package init functions.
func mustRegister(params *Params) {
	if err := Register(params); err != nil {
		panic("failed to register network: " + err.Error())
	}
}

func init() {
	// Register all default networks when the package is initialized.
	mustRegister(&MainnetParams)
	mustRegister(&TestnetParams)
	mustRegister(&RegressionNetParams)
	mustRegister(&SimnetParams)
	mustRegister(&DevnetParams)
}
