package pow

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/jbcoin/jbcd/domain/consensus/model/externalapi"
	"github.com/jbcoin/jbcd/domain/consensus/utils/math"
	"github.com/jbcoin/jbcd/domain/dagconfig"
)

func hashFromBig(t *testing.T, n *big.Int) *externalapi.DomainHash {
	hash, err := externalapi.NewDomainHashFromString(fmt.Sprintf("%064x", n))
	if err != nil {
		t.Fatalf("hashFromBig: %+v", err)
	}
	return hash
}

func TestCheckProofOfWork(t *testing.T) {
	params := dagconfig.MainnetParams.Clone()
	bits := uint32(0x1d00ffff)
	target := math.CompactToBig(bits)

	tests := []struct {
		name     string
		hash     *big.Int
		bits     uint32
		expected bool
	}{
		{name: "zero hash", hash: big.NewInt(0), bits: bits, expected: true},
		{name: "hash equals target", hash: target, bits: bits, expected: true},
		{name: "hash above target", hash: new(big.Int).Add(target, big.NewInt(1)), bits: bits, expected: false},
		{name: "hash far above target", hash: math.MaxUint256(), bits: bits, expected: false},
		{name: "limit bits", hash: big.NewInt(1), bits: params.PowLimitBits, expected: true},
		{name: "zero target", hash: big.NewInt(0), bits: 0, expected: false},
		{name: "zero mantissa", hash: big.NewInt(0), bits: 0x1d000000, expected: false},
		{name: "negative target", hash: big.NewInt(0), bits: 0x1d80ffff, expected: false},
		{name: "overflowing target", hash: big.NewInt(0), bits: 0x2100ffff + 0x01000000, expected: false},
		{name: "above limit", hash: big.NewInt(0), bits: 0x1f00ffff, expected: false},
	}
	for _, test := range tests {
		result := CheckProofOfWork(hashFromBig(t, test.hash), test.bits, params)
		if result != test.expected {
			t.Errorf("TestCheckProofOfWork: %s: got %t, expected %t", test.name, result, test.expected)
		}
	}
}

func TestCheckProofOfWorkForMode(t *testing.T) {
	params := dagconfig.TestnetParams.Clone()
	hash := hashFromBig(t, big.NewInt(1))
	posLimitBits := math.BigToCompact(params.PosLimit)

	tests := []struct {
		name     string
		bits     uint32
		mode     externalapi.ProductionMode
		expected bool
	}{
		{name: "work limit for work", bits: params.PowLimitBits, mode: externalapi.ProofOfWork, expected: true},
		{name: "work limit for stake", bits: params.PowLimitBits, mode: externalapi.ProofOfStake, expected: false},
		{name: "stake limit for stake", bits: posLimitBits, mode: externalapi.ProofOfStake, expected: true},
		{name: "stake limit for work", bits: posLimitBits, mode: externalapi.ProofOfWork, expected: true},
	}
	for _, test := range tests {
		result := CheckProofOfWorkForMode(hash, test.bits, test.mode, params)
		if result != test.expected {
			t.Errorf("TestCheckProofOfWorkForMode: %s: got %t, expected %t", test.name, result, test.expected)
		}
	}

	// CheckProofOfWork only knows the work limit
	if !CheckProofOfWork(hash, params.PowLimitBits, params) {
		t.Errorf("TestCheckProofOfWorkForMode: CheckProofOfWork rejected the work limit")
	}
}

func TestToUint256(t *testing.T) {
	n, _ := new(big.Int).SetString("00000000000000000001c0ffee000000000000000000000000000000000000ab", 16)
	hash := hashFromBig(t, n)
	if ToUint256(hash).ToBig().Cmp(n) != 0 {
		t.Fatalf("TestToUint256: got %x, expected %x", ToUint256(hash).ToBig(), n)
	}
	if hash.ByteArray()[0] != 0xab {
		t.Fatalf("TestToUint256: expected the least significant byte first in the hash")
	}
}
