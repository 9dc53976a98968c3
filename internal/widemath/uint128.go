package widemath

import (
	"encoding/binary"
	"math/bits"

	"github.com/holiman/uint256"
)

// Uint128 is a fixed-width unsigned 128-bit integer.
// The zero value is 0. Arithmetic wraps unless a method says otherwise.
type Uint128 struct {
	Hi uint64 // Hi is the upper 64 bits
	Lo uint64 // Lo is the lower 64 bits
}

var (
	// Zero is the 128-bit zero.
	Zero = Uint128{}

	// One is the 128-bit one.
	One = Uint128{Lo: 1}

	// Max is 2^128 - 1.
	Max = Uint128{Hi: ^uint64(0), Lo: ^uint64(0)}
)

// From64 widens a uint64.
func From64(v uint64) Uint128 {
	return Uint128{Lo: v}
}

// FromBytes decodes a big-endian value of at most 16 bytes.
// Shorter inputs are left-padded with zeros.
func FromBytes(b []byte) Uint128 {
	var buf [16]byte
	if len(b) > 16 {
		b = b[len(b)-16:]
	}
	copy(buf[16-len(b):], b)

	return Uint128{
		Hi: binary.BigEndian.Uint64(buf[:8]),
		Lo: binary.BigEndian.Uint64(buf[8:]),
	}
}

// Bytes returns the big-endian 16-byte encoding.
func (u Uint128) Bytes() [16]byte {
	var buf [16]byte
	binary.BigEndian.PutUint64(buf[:8], u.Hi)
	binary.BigEndian.PutUint64(buf[8:], u.Lo)

	return buf
}

// IsZero reports whether u == 0.
func (u Uint128) IsZero() bool {
	return u.Hi == 0 && u.Lo == 0
}

// IsUint64 reports whether u fits in 64 bits.
func (u Uint128) IsUint64() bool {
	return u.Hi == 0
}

// Cmp returns -1, 0 or +1 depending on whether u is less than, equal to or greater than v.
func (u Uint128) Cmp(v Uint128) int {
	switch {
	case u.Hi < v.Hi:
		return -1
	case u.Hi > v.Hi:
		return 1
	case u.Lo < v.Lo:
		return -1
	case u.Lo > v.Lo:
		return 1
	default:
		return 0
	}
}

// Add returns u + v and whether the sum overflowed 128 bits.
func (u Uint128) Add(v Uint128) (Uint128, bool) {
	lo, carry := bits.Add64(u.Lo, v.Lo, 0)
	hi, carry := bits.Add64(u.Hi, v.Hi, carry)

	return Uint128{Hi: hi, Lo: lo}, carry != 0
}

// Sub returns u - v and whether the subtraction borrowed.
func (u Uint128) Sub(v Uint128) (Uint128, bool) {
	lo, borrow := bits.Sub64(u.Lo, v.Lo, 0)
	hi, borrow := bits.Sub64(u.Hi, v.Hi, borrow)

	return Uint128{Hi: hi, Lo: lo}, borrow != 0
}

// MulWrap returns the low 128 bits of u * v.
func (u Uint128) MulWrap(v Uint128) Uint128 {
	hi, lo := bits.Mul64(u.Lo, v.Lo)
	hi += u.Hi*v.Lo + u.Lo*v.Hi

	return Uint128{Hi: hi, Lo: lo}
}

// Lsh returns u << n, discarding bits shifted past bit 127.
func (u Uint128) Lsh(n uint) Uint128 {
	switch {
	case n >= 128:
		return Zero
	case n >= 64:
		return Uint128{Hi: u.Lo << (n - 64)}
	default:
		return Uint128{Hi: u.Hi<<n | u.Lo>>(64-n), Lo: u.Lo << n}
	}
}

// Rsh returns u >> n.
func (u Uint128) Rsh(n uint) Uint128 {
	switch {
	case n >= 128:
		return Zero
	case n >= 64:
		return Uint128{Lo: u.Hi >> (n - 64)}
	default:
		return Uint128{Hi: u.Hi >> n, Lo: u.Lo>>n | u.Hi<<(64-n)}
	}
}

// And returns u & v.
func (u Uint128) And(v Uint128) Uint128 {
	return Uint128{Hi: u.Hi & v.Hi, Lo: u.Lo & v.Lo}
}

// Or returns u | v.
func (u Uint128) Or(v Uint128) Uint128 {
	return Uint128{Hi: u.Hi | v.Hi, Lo: u.Lo | v.Lo}
}

// BitLen returns the number of bits needed to represent u.
func (u Uint128) BitLen() int {
	if u.Hi != 0 {
		return 64 + bits.Len64(u.Hi)
	}

	return bits.Len64(u.Lo)
}

// U256 widens u to a 256-bit integer.
func (u Uint128) U256() *uint256.Int {
	return &uint256.Int{u.Lo, u.Hi, 0, 0}
}

// String returns the decimal representation.
func (u Uint128) String() string {
	return u.U256().Dec()
}
