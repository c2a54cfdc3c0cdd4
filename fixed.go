package fixed

import (
	"errors"
	"fmt"
)

// Fixed type is a representation of a non-negative fixed-point decimal number
// with a number of digits after the decimal point determined by the scale S.
// The zero value is the numeric value of 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A fixed-point number is a struct with two parameters:
//
//   - Whole: an unsigned integer representing the integer part of the number.
//   - Frac: an unsigned integer representing the fractional part of the number,
//     scaled by 10^decimals.
//
// For example, a Fixed[D3] with a whole part of 12 and a fractional part of 45
// represents the value 12.045.
// The fractional part is always less than 10^decimals, so every numeric value
// has exactly one representation.
type Fixed[S Scale] struct {
	whole fint // the integer part
	frac  fint // the fractional part, scaled by 10^decimals
}

const (
	MaxDecimals = 19              // maximum number of digits after the decimal point
	MaxWhole    = uint64(maxFint) // maximum value of the integer part
)

var (
	ErrOverflow       = errors.New("integer part overflow")
	ErrDivisionByZero = errors.New("division by zero")
	ErrScaleRange     = errors.New("scale out of range")
	ErrInvalidFixed   = errors.New("invalid fixed-point number")
)

// newFixedFromWint splits the scaled value x into the integer and fractional parts.
func newFixedFromWint[S Scale](x *wint, div fint) (Fixed[S], error) {
	var w, r, q wint
	w.setFint(div)
	q.quoRem(x, &w, &r)
	whole, ok := q.fint()
	if !ok {
		return Fixed[S]{}, ErrOverflow
	}
	frac, _ := r.fint() // r < div
	return Fixed[S]{whole: whole, frac: frac}, nil
}

// New returns a fixed-point number equal to whole + frac / 10^decimals.
// If frac is greater than or equal to 10^decimals, the excess is carried
// into the integer part.
//
// New returns an error if:
//   - the integer part of the result is greater than [MaxWhole];
//   - the scale S is out of range.
func New[S Scale](whole, frac uint64) (Fixed[S], error) {
	_, div, err := scaleOf[S]()
	if err != nil {
		return Fixed[S]{}, fmt.Errorf("converting (%v, %v): %w", whole, frac, err)
	}
	carry, rem, _ := fint(frac).quoRem(div)
	w, ok := fint(whole).add(carry)
	if !ok {
		return Fixed[S]{}, fmt.Errorf("converting (%v, %v): %w", whole, frac, ErrOverflow)
	}
	return Fixed[S]{whole: w, frac: rem}, nil
}

// MustNew is like [New] but panics if the fixed-point number cannot be constructed.
// It simplifies safe initialization of global variables holding numbers.
func MustNew[S Scale](whole, frac uint64) Fixed[S] {
	d, err := New[S](whole, frac)
	if err != nil {
		panic(fmt.Sprintf("MustNew(%v, %v) failed: %v", whole, frac, err))
	}
	return d
}

// Zero returns a fixed-point number with a value of 0.
func (d Fixed[S]) Zero() Fixed[S] {
	return Fixed[S]{}
}

// One returns a fixed-point number with a value of 1.
func (d Fixed[S]) One() Fixed[S] {
	return Fixed[S]{whole: 1}
}

// ULP (Unit in the Last Place) returns the smallest representable positive
// fixed-point number of scale S, which is 1 / 10^decimals.
// If S has 0 decimals, ULP returns 1.
func (d Fixed[S]) ULP() Fixed[S] {
	if d.Decimals() == 0 {
		return Fixed[S]{whole: 1}
	}
	return Fixed[S]{frac: 1}
}

// Parse converts a string to a fixed-point number.
// The input string must be in one of the following formats:
//
//	1.234
//	1234
//	0.000001234
//
// The formal EBNF grammar for the supported format is as follows:
//
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	numeric-string ::= digits [ '.' digits ]
//
// Parse returns an error if:
//   - the string contains any whitespaces or signs;
//   - the string is not a valid fixed-point number;
//   - the string has more digits after the decimal point than the scale S allows;
//   - the integer part of the number is greater than [MaxWhole];
//   - the scale S is out of range.
func Parse[S Scale](s string) (Fixed[S], error) {
	d, err := parseFint[S](s)
	if err != nil {
		return Fixed[S]{}, fmt.Errorf("parsing fixed-point number: %w", err)
	}
	return d, nil
}

func parseFint[S Scale](s string) (Fixed[S], error) {
	decimals, _, err := scaleOf[S]()
	if err != nil {
		return Fixed[S]{}, err
	}

	var (
		pos   int
		width = len(s)
		whole fint
		frac  fint
		ok    bool
	)

	// Integer part
	hasWhole := false
	for pos < width && s[pos] >= '0' && s[pos] <= '9' {
		whole, ok = whole.fsa(1, s[pos]-'0')
		if !ok {
			return Fixed[S]{}, ErrOverflow
		}
		pos++
		hasWhole = true
	}

	// Fractional part
	hasFrac := false
	if pos < width && s[pos] == '.' {
		pos++
		digits := 0
		for pos < width && s[pos] >= '0' && s[pos] <= '9' {
			if digits == decimals {
				return Fixed[S]{}, fmt.Errorf("the number of digits after the decimal point exceeds %v: %w", decimals, ErrInvalidFixed)
			}
			frac = frac*10 + fint(s[pos]-'0') // frac < 10^19
			pos++
			digits++
			hasFrac = true
		}
		frac, _ = frac.lsh(decimals - digits) // frac < 10^decimals
	}

	if pos != width {
		return Fixed[S]{}, fmt.Errorf("invalid character %q: %w", s[pos], ErrInvalidFixed)
	}
	if !hasWhole && !hasFrac {
		return Fixed[S]{}, fmt.Errorf("no digits: %w", ErrInvalidFixed)
	}
	if !hasFrac && s[width-1] == '.' {
		return Fixed[S]{}, fmt.Errorf("no digits after the decimal point: %w", ErrInvalidFixed)
	}
	return Fixed[S]{whole: whole, frac: frac}, nil
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding numbers.
func MustParse[S Scale](s string) Fixed[S] {
	d, err := Parse[S](s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return d
}

// String implements the [fmt.Stringer] interface and returns
// a string representation of the number.
// The fractional part is padded with leading zeros up to the scale of the number:
//
//	whole          ::= digits
//	frac           ::= digits of length decimals
//	numeric-string ::= whole [ '.' frac ]
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d Fixed[S]) String() string {
	var (
		buf   [41]byte
		pos   int
		whole fint
		frac  fint
	)

	pos = len(buf) - 1
	whole = d.whole
	frac = d.frac

	// Fractional part
	if decimals, _, err := scaleOf[S](); err == nil && decimals > 0 {
		for i := 0; i < decimals; i++ {
			buf[pos] = byte(frac%10) + '0'
			pos--
			frac /= 10
		}
		// Decimal point
		buf[pos] = '.'
		pos--
	}

	// Integer part
	for {
		buf[pos] = byte(whole%10) + '0'
		pos--
		whole /= 10
		if whole == 0 {
			break
		}
	}

	return string(buf[pos+1:])
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// UnmarshalText supports only numbers in the format described in [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (d *Fixed[S]) UnmarshalText(text []byte) error {
	var err error
	*d, err = Parse[S](string(text))
	return err
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// Also see method [Fixed.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (d Fixed[S]) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Whole returns the integer part of the number.
func (d Fixed[S]) Whole() uint64 {
	return uint64(d.whole)
}

// Frac returns the fractional part of the number scaled by 10^decimals.
// The result is always less than 10^decimals.
func (d Fixed[S]) Frac() uint64 {
	return uint64(d.frac)
}

// Decimals returns the number of digits after the decimal point.
// Decimals is defined by the scale S and is the same for all numbers of the type.
func (d Fixed[S]) Decimals() int {
	var s S
	return s.Decimals()
}

// IsZero returns:
//
//	true  if d == 0
//	false otherwise
func (d Fixed[S]) IsZero() bool {
	return d.whole == 0 && d.frac == 0
}

// IsInt returns true if the fractional part of the number is equal to 0.
func (d Fixed[S]) IsInt() bool {
	return d.frac == 0
}

// Cmp compares d and e numerically and returns:
//
//	-1 if d < e
//	 0 if d == e
//	+1 if d > e
func (d Fixed[S]) Cmp(e Fixed[S]) int {
	switch {
	case d.whole < e.whole:
		return -1
	case d.whole > e.whole:
		return 1
	case d.frac < e.frac:
		return -1
	case d.frac > e.frac:
		return 1
	}
	return 0
}

// scaled returns the number as a single integer d.whole * 10^decimals + d.frac.
func (d Fixed[S]) scaled(div fint) wint {
	var x wint
	x.fma(d.whole, div, d.frac)
	return x
}

// Add returns the exact sum of d and e.
//
// Add returns an error if:
//   - the integer part of the result is greater than [MaxWhole];
//   - the scale S is out of range.
func (d Fixed[S]) Add(e Fixed[S]) (Fixed[S], error) {
	_, div, err := scaleOf[S]()
	if err != nil {
		return Fixed[S]{}, fmt.Errorf("computing [%v + %v]: %w", d, e, err)
	}

	f, err := d.addFint(e, div)
	if err != nil {
		f, err = d.addWint(e, div)
	}
	if err != nil {
		return Fixed[S]{}, fmt.Errorf("computing [%v + %v]: %w", d, e, err)
	}

	return f, nil
}

// addFint computes the sum of d and e using uint64 arithmetic.
// The fractional carry is detected by comparing the fractional sum with
// the divisor, never by integer wrap-around.
func (d Fixed[S]) addFint(e Fixed[S], div fint) (Fixed[S], error) {
	frac, ok := d.frac.add(e.frac)
	if !ok {
		return Fixed[S]{}, ErrOverflow
	}

	// Carry
	carry := fint(0)
	if frac >= div {
		frac -= div
		carry = 1
	}

	// Integer part
	whole, ok := d.whole.add(e.whole)
	if !ok {
		return Fixed[S]{}, ErrOverflow
	}
	whole, ok = whole.add(carry)
	if !ok {
		return Fixed[S]{}, ErrOverflow
	}

	return Fixed[S]{whole: whole, frac: frac}, nil
}

// addWint computes the sum of d and e using uint256 arithmetic.
func (d Fixed[S]) addWint(e Fixed[S], div fint) (Fixed[S], error) {
	dx := d.scaled(div)
	ex := e.scaled(div)
	dx.add(&dx, &ex)
	return newFixedFromWint[S](&dx, div)
}

// Mul returns the product of d and e truncated towards zero to the scale S.
//
// Mul returns an error if:
//   - the integer part of the result is greater than [MaxWhole];
//   - the scale S is out of range.
func (d Fixed[S]) Mul(e Fixed[S]) (Fixed[S], error) {
	_, div, err := scaleOf[S]()
	if err != nil {
		return Fixed[S]{}, fmt.Errorf("computing [%v * %v]: %w", d, e, err)
	}

	f, err := d.mulFint(e, div)
	if err != nil {
		f, err = d.mulWint(e, div)
	}
	if err != nil {
		return Fixed[S]{}, fmt.Errorf("computing [%v * %v]: %w", d, e, err)
	}

	return f, nil
}

// mulFint computes the product of d and e using uint64 arithmetic.
func (d Fixed[S]) mulFint(e Fixed[S], div fint) (Fixed[S], error) {
	dx, ok := d.whole.fma(div, d.frac)
	if !ok {
		return Fixed[S]{}, ErrOverflow
	}
	ex, ok := e.whole.fma(div, e.frac)
	if !ok {
		return Fixed[S]{}, ErrOverflow
	}

	// Product of the scaled values
	dx, ok = dx.mul(ex)
	if !ok {
		return Fixed[S]{}, ErrOverflow
	}
	dx = dx / div

	whole, frac, _ := dx.quoRem(div)
	return Fixed[S]{whole: whole, frac: frac}, nil
}

// mulWint computes the product of d and e using uint256 arithmetic.
func (d Fixed[S]) mulWint(e Fixed[S], div fint) (Fixed[S], error) {
	var w wint
	w.setFint(div)
	dx := d.scaled(div)
	ex := e.scaled(div)

	// Product of the scaled values
	var p wint
	p.mul(&dx, &ex)
	dx.quo(&p, &w)

	return newFixedFromWint[S](&dx, div)
}

// Quo returns the quotient of d and e truncated towards zero to the scale S.
//
// Quo returns an error if:
//   - the divisor is 0;
//   - the integer part of the result is greater than [MaxWhole];
//   - the scale S is out of range.
func (d Fixed[S]) Quo(e Fixed[S]) (Fixed[S], error) {
	_, div, err := scaleOf[S]()
	if err != nil {
		return Fixed[S]{}, fmt.Errorf("computing [%v / %v]: %w", d, e, err)
	}

	// Special case: zero divisor
	if e.IsZero() {
		return Fixed[S]{}, fmt.Errorf("computing [%v / %v]: %w", d, e, ErrDivisionByZero)
	}

	// Special case: zero dividend
	if d.IsZero() {
		return Fixed[S]{}, nil
	}

	// General case
	f, err := d.quoFint(e, div)
	if err != nil {
		f, err = d.quoWint(e, div)
	}
	if err != nil {
		return Fixed[S]{}, fmt.Errorf("computing [%v / %v]: %w", d, e, err)
	}

	return f, nil
}

// quoFint computes the quotient of d and e using uint64 arithmetic.
func (d Fixed[S]) quoFint(e Fixed[S], div fint) (Fixed[S], error) {
	dx, ok := d.whole.fma(div, d.frac)
	if !ok {
		return Fixed[S]{}, ErrOverflow
	}
	ex, ok := e.whole.fma(div, e.frac)
	if !ok {
		return Fixed[S]{}, ErrOverflow
	}

	// Integer part
	whole, rem, ok := dx.quoRem(ex)
	if !ok {
		return Fixed[S]{}, ErrDivisionByZero
	}

	// Fractional part
	rem, ok = rem.mul(div)
	if !ok {
		return Fixed[S]{}, ErrOverflow
	}
	frac := rem / ex

	return Fixed[S]{whole: whole, frac: frac}, nil
}

// quoWint computes the quotient of d and e using uint256 arithmetic.
func (d Fixed[S]) quoWint(e Fixed[S], div fint) (Fixed[S], error) {
	var w wint
	w.setFint(div)
	dx := d.scaled(div)
	ex := e.scaled(div)
	if ex.isZero() {
		return Fixed[S]{}, ErrDivisionByZero
	}

	// Integer part
	var q, r wint
	q.quoRem(&dx, &ex, &r)
	whole, ok := q.fint()
	if !ok {
		return Fixed[S]{}, ErrOverflow
	}

	// Fractional part
	var p wint
	p.mul(&r, &w)
	q.quo(&p, &ex)
	frac, _ := q.fint() // r < ex, so frac < div

	return Fixed[S]{whole: whole, frac: frac}, nil
}
