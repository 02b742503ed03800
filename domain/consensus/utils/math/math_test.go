package math

import (
	"math"
	"math/big"
	"testing"
)

// TestBigToCompact ensures BigToCompact converts big integers to the expected
// compact representation.
func TestBigToCompact(t *testing.T) {
	tests := []struct {
		in  string
		out uint32
	}{
		{"0", 0},
		{"-1", 25231360},
		{"18", 0x01120000},
		{"4660", 0x02123400},
		{"9223372036854775807", 142606335},
		{"922337203685477580712312312123487", 237861256},
	}

	for x, test := range tests {
		n := new(big.Int)
		n.SetString(test.in, 10)
		r := BigToCompact(n)
		if r != test.out {
			t.Errorf("TestBigToCompact test #%d failed: got %d want %d\n",
				x, r, test.out)
			return
		}
	}
}

// TestCompactToBig ensures CompactToBig converts numbers using the compact
// representation to the expected big integers.
func TestCompactToBig(t *testing.T) {
	tests := []struct {
		in  uint32
		out string
	}{
		{0, "0"},
		{10000000, "0"},
		{math.MaxUint32, "-6311914495863998658485429352026283268468573753812676234178171506285465200675957" +
			"87397376951158770808349115367298981082112562162319027637583517246275967980671962038665775867893645140" +
			"22856089959012026469381002722748489975264028415685723882208353467651862351803217528553851158828320170" +
			"89832330727351553686808317476632783024236208492771822246700842318520468733521003756809213629548010354" +
			"33865968377930773213939300289069292503211567790599147939718451689002543278625341832829837474611074167" +
			"86700705915281593002614032021233542099318559748885883681365573294332856023451874423425211080847063825" +
			"199113186681992371681311588352",
		},
		{142606335, "9223370937343148032"},
		{25231360, "-1"},
		{237861256, "922337129789886856855791696084992"},
	}

	for i, test := range tests {
		n := CompactToBig(test.in)
		if n.String() != test.out {
			t.Errorf("TestCompactToBig test #%d failed: got %s want %s",
				i, n, test.out)
			return
		}
	}
}

// TestCompactToTarget checks the fixed-width decoding and its flags against
// the reference vectors used by bitcoind for SetCompact/GetCompact.
func TestCompactToTarget(t *testing.T) {
	tests := []struct {
		in         uint32
		target     string // hex
		isNegative bool
		isOverflow bool
		reencoded  uint32
	}{
		{0x00000000, "0", false, false, 0},
		{0x00123456, "0", false, false, 0},
		{0x01003456, "0", false, false, 0},
		{0x02000056, "0", false, false, 0},
		{0x03000000, "0", false, false, 0},
		{0x04000000, "0", false, false, 0},
		{0x00923456, "0", false, false, 0},
		{0x01803456, "0", false, false, 0},
		{0x02800056, "0", false, false, 0},
		{0x03800000, "0", false, false, 0},
		{0x04800000, "0", false, false, 0},
		{0x01123456, "12", false, false, 0x01120000},
		{0x01fedcba, "7e", true, false, 0x017e0000},
		{0x02123456, "1234", false, false, 0x02123400},
		{0x03123456, "123456", false, false, 0x03123456},
		{0x04123456, "12345600", false, false, 0x04123456},
		{0x04923456, "12345600", true, false, 0x04123456},
		{0x05009234, "92340000", false, false, 0x05009234},
		{0x20123456, "1234560000000000000000000000000000000000000000000000000000000000", false, false, 0x20123456},
		{0x1d00ffff, "ffff0000000000000000000000000000000000000000000000000000", false, false, 0x1d00ffff},
		{0x2100ffff, "ffff000000000000000000000000000000000000000000000000000000000000", false, false, 0x2100ffff},
		{0x21010000, "0", false, true, 0},
		{0x22000001, "100000000000000000000000000000000000000000000000000000000000000", false, false, 0x20010000},
		{0x22000100, "0", false, true, 0},
		{0x21012345, "0", false, true, 0},
		{0xff123456, "0", false, true, 0},
	}

	for i, test := range tests {
		target, isNegative, isOverflow := CompactToTarget(test.in)
		expected, ok := new(big.Int).SetString(test.target, 16)
		if !ok {
			t.Fatalf("TestCompactToTarget test #%d: bad test vector %s", i, test.target)
		}
		if isNegative != test.isNegative || isOverflow != test.isOverflow {
			t.Errorf("TestCompactToTarget test #%d (%08x): flags got (negative %t, overflow %t) want (%t, %t)",
				i, test.in, isNegative, isOverflow, test.isNegative, test.isOverflow)
		}
		if test.isOverflow {
			continue
		}
		if target.Cmp(expected) != 0 {
			t.Errorf("TestCompactToTarget test #%d (%08x): got %x want %x", i, test.in, target, expected)
		}
		if reencoded := BigToCompact(target); reencoded != test.reencoded {
			t.Errorf("TestCompactToTarget test #%d (%08x): re-encoded to %08x want %08x",
				i, test.in, reencoded, test.reencoded)
		}
	}
}

// TestCompactRoundTrip ensures every valid decoded target survives an
// encode/decode round trip unchanged.
func TestCompactRoundTrip(t *testing.T) {
	mantissas := []uint32{0x000001, 0x0000ff, 0x000100, 0x00ffff, 0x010000, 0x123456, 0x7fffff, 0x008000, 0x7f0001}
	for exponent := uint32(0); exponent <= 34; exponent++ {
		for _, mantissa := range mantissas {
			compact := exponent<<24 | mantissa
			target, isNegative, isOverflow := CompactToTarget(compact)
			if isNegative || isOverflow || target.Sign() == 0 {
				continue
			}
			if target.BitLen() > 256 {
				t.Fatalf("TestCompactRoundTrip: %08x decoded to %d bits", compact, target.BitLen())
			}
			roundTripped, isNegative, isOverflow := CompactToTarget(BigToCompact(target))
			if isNegative || isOverflow {
				t.Errorf("TestCompactRoundTrip: %08x re-encoded with flags (negative %t, overflow %t)",
					compact, isNegative, isOverflow)
			}
			if roundTripped.Cmp(target) != 0 {
				t.Errorf("TestCompactRoundTrip: %08x: got %x want %x", compact, roundTripped, target)
			}
		}
	}
}

func TestMaxUint256(t *testing.T) {
	max := MaxUint256()
	if max.BitLen() != 256 {
		t.Fatalf("expected 256 bits but got %d", max.BitLen())
	}
	max.SetInt64(0)
	if MaxUint256().Sign() == 0 {
		t.Fatalf("MaxUint256 returned a shared value")
	}
}
