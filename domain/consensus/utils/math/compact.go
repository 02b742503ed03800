// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package math

import (
	"math/big"
)

var (
	bigOne = big.NewInt(1)

	// maxUint256 is 2^256 - 1, the widest value a target can hold.
	maxUint256 = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 256), bigOne)
)

// MaxUint256 returns a new big.Int holding 2^256 - 1.
func MaxUint256() *big.Int {
	return new(big.Int).Set(maxUint256)
}

// CompactToBig converts a compact representation of a whole number N to an
// unsigned 32-bit number. The representation is similar to IEEE754 floating
// point numbers.
//
// Like IEEE754 floating point, there are three basic components: the sign,
// the exponent, and the mantissa. They are broken out as follows:
//
//	* the most significant 8 bits represent the unsigned base 256 exponent
// 	* bit 23 (the 24th bit) represents the sign bit
//	* the least significant 23 bits represent the mantissa
//
//	-------------------------------------------------
//	|   Exponent     |    Sign    |    Mantissa     |
//	-------------------------------------------------
//	| 8 bits [31-24] | 1 bit [23] | 23 bits [22-00] |
//	-------------------------------------------------
//
// The formula to calculate N is:
// 	N = (-1^sign) * mantissa * 256^(exponent-3)
//
// CompactToBig does not bound the result to 256 bits. Consensus code that
// needs the exact fixed-width semantics uses CompactToTarget instead.
func CompactToBig(compact uint32) *big.Int {
	mantissa := compact & 0x007fffff
	isNegative := compact&0x00800000 != 0
	exponent := uint(compact >> 24)

	// Since the base for the exponent is 256, the exponent can be treated
	// as the number of bytes to represent the full 256-bit number. So,
	// treat the exponent as the number of bytes and shift the mantissa
	// right or left accordingly. This is equivalent to:
	// N = mantissa * 256^(exponent-3)
	var bn *big.Int
	if exponent <= 3 {
		mantissa >>= 8 * (3 - exponent)
		bn = big.NewInt(int64(mantissa))
	} else {
		bn = big.NewInt(int64(mantissa))
		bn.Lsh(bn, 8*(exponent-3))
	}

	if isNegative {
		bn = bn.Neg(bn)
	}

	return bn
}

// CompactToTarget decodes compact into an unsigned 256-bit target the way
// block headers are validated on the wire.
//
// The returned target is always the non-negative magnitude truncated to 256
// bits. isNegative reports a set sign bit with a non-zero mantissa, and
// isOverflow reports an encoding whose value does not fit 256 bits. Both
// flags make the encoding invalid as a proof-of-work target.
func CompactToTarget(compact uint32) (target *big.Int, isNegative bool, isOverflow bool) {
	exponent := uint(compact >> 24)
	mantissa := compact & 0x007fffff

	if exponent <= 3 {
		mantissa >>= 8 * (3 - exponent)
		target = new(big.Int).SetUint64(uint64(mantissa))
	} else {
		target = new(big.Int).SetUint64(uint64(mantissa))
		target.Lsh(target, 8*(exponent-3))
		target.And(target, maxUint256)
	}

	isNegative = mantissa != 0 && compact&0x00800000 != 0
	isOverflow = mantissa != 0 && (exponent > 34 ||
		(mantissa > 0xff && exponent > 33) ||
		(mantissa > 0xffff && exponent > 32))

	return target, isNegative, isOverflow
}

// BigToCompact converts a whole number N to a compact representation using
// an unsigned 32-bit number. The compact representation only provides 23 bits
// of precision, so values larger than (2^23 - 1) only encode the most
// significant digits of the number. See CompactToBig for details.
func BigToCompact(n *big.Int) uint32 {
	if n.Sign() == 0 {
		return 0
	}

	// Since the base for the exponent is 256, the exponent can be treated
	// as the number of bytes. So, shift the number right or left
	// accordingly. This is equivalent to:
	// mantissa = mantissa / 256^(exponent-3)
	var mantissa uint32
	absolute := new(big.Int).Abs(n)
	exponent := uint(len(absolute.Bytes()))
	if exponent <= 3 {
		mantissa = uint32(absolute.Uint64())
		mantissa <<= 8 * (3 - exponent)
	} else {
		mantissa = uint32(absolute.Rsh(absolute, 8*(exponent-3)).Uint64())
	}

	// When the mantissa already has the sign bit set, the number is too
	// large to fit into the available 23-bits, so divide the number by 256
	// and increment the exponent accordingly.
	if mantissa&0x00800000 != 0 {
		mantissa >>= 8
		exponent++
	}

	compact := uint32(exponent<<24) | mantissa
	if n.Sign() < 0 {
		compact |= 0x00800000
	}
	return compact
}
