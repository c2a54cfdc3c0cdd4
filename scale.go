package fixed

// Scale defines the number of digits after the decimal point of a [Fixed].
// Scales are zero-size types, so the number of digits is known at compile time
// and fixed-point numbers of different scales cannot be mixed in one operation.
//
// Custom scales may be declared as follows:
//
//	type Cents struct{}
//
//	func (Cents) Decimals() int { return 2 }
//
// Decimals must return a value between 0 and [MaxDecimals] inclusive,
// otherwise all constructors and operations return [ErrScaleRange].
type Scale interface {
	Decimals() int
}

// Predefined scales.
// D12 is the default scale, with a divisor of 10^12.
type (
	D0  struct{}
	D1  struct{}
	D2  struct{}
	D3  struct{}
	D4  struct{}
	D5  struct{}
	D6  struct{}
	D7  struct{}
	D8  struct{}
	D9  struct{}
	D10 struct{}
	D11 struct{}
	D12 struct{}
	D13 struct{}
	D14 struct{}
	D15 struct{}
	D16 struct{}
	D17 struct{}
	D18 struct{}
	D19 struct{}
)

func (D0) Decimals() int { return 0 }
func (D1) Decimals() int { return 1 }
func (D2) Decimals() int { return 2 }
func (D3) Decimals() int { return 3 }
func (D4) Decimals() int { return 4 }
func (D5) Decimals() int { return 5 }
func (D6) Decimals() int { return 6 }
func (D7) Decimals() int { return 7 }
func (D8) Decimals() int { return 8 }
func (D9) Decimals() int { return 9 }
func (D10) Decimals() int { return 10 }
func (D11) Decimals() int { return 11 }
func (D12) Decimals() int { return 12 }
func (D13) Decimals() int { return 13 }
func (D14) Decimals() int { return 14 }
func (D15) Decimals() int { return 15 }
func (D16) Decimals() int { return 16 }
func (D17) Decimals() int { return 17 }
func (D18) Decimals() int { return 18 }
func (D19) Decimals() int { return 19 }

// Default is a fixed-point number with the default scale of 12 digits.
type Default = Fixed[D12]

// scaleOf returns the number of digits after the decimal point and
// the divisor 10^decimals for the scale S.
func scaleOf[S Scale]() (decimals int, div fint, err error) {
	var s S
	decimals = s.Decimals()
	if decimals < 0 || decimals > MaxDecimals {
		return 0, 0, ErrScaleRange
	}
	return decimals, pow10[decimals], nil
}
