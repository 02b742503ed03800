package externalapi

import (
	"testing"
)

func TestDomainHashString(t *testing.T) {
	hashString := "00000000000f0000000000000000000000000000000000000000000000000001"
	hash, err := NewDomainHashFromString(hashString)
	if err != nil {
		t.Fatalf("NewDomainHashFromString: %s", err)
	}
	if hash.String() != hashString {
		t.Errorf("expected %s but got %s", hashString, hash)
	}
	littleEndian := hash.ByteArray()
	if littleEndian[0] != 0x01 || littleEndian[26] != 0x0f {
		t.Errorf("unexpected little-endian layout %x", littleEndian[:])
	}
	bigEndian := hash.BigEndianBytes()
	if bigEndian[31] != 0x01 || bigEndian[5] != 0x0f {
		t.Errorf("unexpected big-endian layout %x", bigEndian[:])
	}

	for _, invalid := range []string{"", "00", hashString + "00", "zz" + hashString[2:]} {
		_, err := NewDomainHashFromString(invalid)
		if err == nil {
			t.Errorf("NewDomainHashFromString(%q) unexpectedly succeeded", invalid)
		}
	}
}

func TestDomainHashEqual(t *testing.T) {
	a := NewDomainHashFromByteArray(&[DomainHashSize]byte{1})
	b := NewDomainHashFromByteArray(&[DomainHashSize]byte{1})
	c := NewDomainHashFromByteArray(&[DomainHashSize]byte{2})
	var nilHash *DomainHash
	if !a.Equal(b) || a.Equal(c) || a.Equal(nil) || !nilHash.Equal(nil) {
		t.Errorf("DomainHash.Equal returned unexpected results")
	}
}

func TestParseProductionMode(t *testing.T) {
	for _, mode := range []ProductionMode{ProofOfWork, ProofOfStake} {
		parsed, err := ParseProductionMode(mode.String())
		if err != nil || parsed != mode {
			t.Errorf("ParseProductionMode(%s): got (%s, %v)", mode, parsed, err)
		}
	}
	if _, err := ParseProductionMode("pob"); err == nil {
		t.Errorf("ParseProductionMode unexpectedly accepted pob")
	}
	if !ProofOfStake.IsProofOfStake() || ProofOfWork.IsProofOfStake() {
		t.Errorf("IsProofOfStake returned unexpected results")
	}
	if ProductionMode(7).String() != "unknown" {
		t.Errorf("unexpected string for an invalid mode")
	}
}
