package fixed

import "fmt"

// MustAdd is like [Fixed.Add] but panics if computing error.
func (d Fixed[S]) MustAdd(e Fixed[S]) Fixed[S] {
	f, err := d.Add(e)
	if err != nil {
		panic(fmt.Sprintf("MustAdd(%v) failed: %v", e, err))
	}
	return f
}

// MustMul is like [Fixed.Mul] but panics if computing error.
func (d Fixed[S]) MustMul(e Fixed[S]) Fixed[S] {
	f, err := d.Mul(e)
	if err != nil {
		panic(fmt.Sprintf("MustMul(%v) failed: %v", e, err))
	}
	return f
}

// MustQuo is like [Fixed.Quo] but panics if computing error.
func (d Fixed[S]) MustQuo(e Fixed[S]) Fixed[S] {
	f, err := d.Quo(e)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", e, err))
	}
	return f
}
