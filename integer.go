package fixed

import (
	"math"

	"github.com/holiman/uint256"
)

// fint (Fast INTeger) is a wrapper around uint64.
type fint uint64

// maxFint is a maximum value of fint.
const maxFint = math.MaxUint64

// pow10 is a cache of powers of 10, where pow10[x] = 10^x.
var pow10 = [...]fint{
	1,                          // 10^0
	10,                         // 10^1
	100,                        // 10^2
	1_000,                      // 10^3
	10_000,                     // 10^4
	100_000,                    // 10^5
	1_000_000,                  // 10^6
	10_000_000,                 // 10^7
	100_000_000,                // 10^8
	1_000_000_000,              // 10^9
	10_000_000_000,             // 10^10
	100_000_000_000,            // 10^11
	1_000_000_000_000,          // 10^12
	10_000_000_000_000,         // 10^13
	100_000_000_000_000,        // 10^14
	1_000_000_000_000_000,      // 10^15
	10_000_000_000_000_000,     // 10^16
	100_000_000_000_000_000,    // 10^17
	1_000_000_000_000_000_000,  // 10^18
	10_000_000_000_000_000_000, // 10^19
}

// add calculates x + y and checks overflow.
func (x fint) add(y fint) (z fint, ok bool) {
	if maxFint-x < y {
		return 0, false
	}
	z = x + y
	return z, true
}

// mul calculates x * y and checks overflow.
func (x fint) mul(y fint) (z fint, ok bool) {
	if y == 0 {
		return 0, true
	}
	z = x * y
	if z/y != x {
		return 0, false
	}
	return z, true
}

// quoRem calculates q = ⌊x / y⌋, r = x - y * q.
func (x fint) quoRem(y fint) (q, r fint, ok bool) {
	if y == 0 {
		return 0, 0, false
	}
	q = x / y
	r = x - q*y
	return q, r, true
}

// lsh (Left Shift) calculates x * 10^shift and checks overflow.
func (x fint) lsh(shift int) (z fint, ok bool) {
	// Special cases
	switch {
	case shift <= 0:
		return x, true
	case shift >= len(pow10):
		if x == 0 {
			return 0, true
		}
		return 0, false
	}
	// General case
	y := pow10[shift]
	return x.mul(y)
}

// fsa (Fused Shift and Addition) calculates x * 10^shift + b and checks overflow.
func (x fint) fsa(shift int, b byte) (z fint, ok bool) {
	z, ok = x.lsh(shift)
	if !ok {
		return 0, false
	}
	z, ok = z.add(fint(b))
	if !ok {
		return 0, false
	}
	return z, true
}

// fma (Fused Multiplication and Addition) calculates x * y + b and checks overflow.
func (x fint) fma(y, b fint) (z fint, ok bool) {
	z, ok = x.mul(y)
	if !ok {
		return 0, false
	}
	z, ok = z.add(b)
	if !ok {
		return 0, false
	}
	return z, true
}

// wint (Wide INTeger) is a wrapper around uint256.Int.
// It holds intermediate results that do not fit into fint.
// The product of two scaled fixed-point numbers is less than 2^256,
// so wint arithmetic never wraps around.
type wint uint256.Int

func (z *wint) isZero() bool {
	return (*uint256.Int)(z).IsZero()
}

func (z *wint) setFint(x fint) {
	(*uint256.Int)(z).SetUint64(uint64(x))
}

// fint converts z to fint and reports whether the conversion is exact.
func (z *wint) fint() (f fint, ok bool) {
	u := (*uint256.Int)(z)
	if !u.IsUint64() {
		return 0, false
	}
	return fint(u.Uint64()), true
}

// add calculates z = x + y.
func (z *wint) add(x, y *wint) {
	(*uint256.Int)(z).Add((*uint256.Int)(x), (*uint256.Int)(y))
}

// mul calculates z = x * y.
func (z *wint) mul(x, y *wint) {
	(*uint256.Int)(z).Mul((*uint256.Int)(x), (*uint256.Int)(y))
}

// quo calculates z = ⌊x / y⌋.
// If y is 0, z is set to 0.
func (z *wint) quo(x, y *wint) {
	(*uint256.Int)(z).Div((*uint256.Int)(x), (*uint256.Int)(y))
}

// quoRem calculates z = ⌊x / y⌋, r = x - y * z.
// If y is 0, both z and r are set to 0.
func (z *wint) quoRem(x, y, r *wint) {
	(*uint256.Int)(z).DivMod((*uint256.Int)(x), (*uint256.Int)(y), (*uint256.Int)(r))
}

// fma (Fused Multiplication and Addition) calculates z = x * y + b.
func (z *wint) fma(x, y, b fint) {
	var wx, wy, wb wint
	wx.setFint(x)
	wy.setFint(y)
	wb.setFint(b)
	z.mul(&wx, &wy)
	z.add(z, &wb)
}
