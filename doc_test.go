package fixed_test

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/govalues/fixed"
)

func evaluate(input string) (fixed.Default, error) {
	tokens, err := parseTokens(input)
	if err != nil {
		return fixed.Default{}, fmt.Errorf("parsing tokens: %w", err)
	}
	stack, err := processTokens(tokens)
	if err != nil {
		return fixed.Default{}, fmt.Errorf("processing tokens: %w", err)
	}
	if len(stack) != 1 {
		return fixed.Default{}, fmt.Errorf("post-processed stack contains %v, expected exactly one item", stack)
	}
	return stack[0], nil
}

func parseTokens(input string) ([]string, error) {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return nil, fmt.Errorf("no tokens")
	}
	return tokens, nil
}

func processTokens(tokens []string) ([]fixed.Default, error) {
	stack := make([]fixed.Default, 0, len(tokens))
	var err error
	for i := len(tokens) - 1; i >= 0; i-- {
		token := tokens[i]
		switch token {
		case "+", "*", "/":
			stack, err = processOperator(stack, token)
		default:
			stack, err = processOperand(stack, token)
		}
		if err != nil {
			return nil, fmt.Errorf("processing token %q: %w", token, err)
		}
	}
	return stack, nil
}

func processOperator(stack []fixed.Default, token string) ([]fixed.Default, error) {
	if len(stack) < 2 {
		return nil, fmt.Errorf("not enough operands")
	}
	right := stack[len(stack)-2]
	left := stack[len(stack)-1]
	stack = stack[:len(stack)-2]
	var result fixed.Default
	var err error
	switch token {
	case "+":
		result, err = left.Add(right)
	case "*":
		result, err = left.Mul(right)
	case "/":
		result, err = left.Quo(right)
	default:
		err = fmt.Errorf("unknown operator %v", token)
	}
	if err != nil {
		return nil, fmt.Errorf("evaluating \"%v %v %v\": %w", left, token, right, err)
	}
	return append(stack, result), nil
}

func processOperand(stack []fixed.Default, token string) ([]fixed.Default, error) {
	d, err := fixed.Parse[fixed.D12](token)
	if err != nil {
		return nil, err
	}
	return append(stack, d), nil
}

// This example implements a simple calculator that evaluates mathematical
// expressions written in [prefix notation].
// The calculator can handle basic arithmetic operations such as addition,
// multiplication, and division.
//
// [prefix notation]: https://en.wikipedia.org/wiki/Polish_notation
func Example_prefixCalculator() {
	d, err := evaluate("* 1.5 / 3 4")
	if err != nil {
		panic(err)
	}
	fmt.Println(d)
	// Output: 1.125000000000
}

type Cents struct{}

func (Cents) Decimals() int { return 2 }

// This example shows how to declare a custom scale.
func ExampleScale() {
	price := fixed.MustParse[Cents]("19.99")
	qty := fixed.MustNew[Cents](3, 0)
	fmt.Println(price.Mul(qty))
	// Output: 59.97 <nil>
}

type Order struct {
	Price    fixed.Fixed[fixed.D2] `json:"price"`
	Quantity fixed.Fixed[fixed.D2] `json:"quantity"`
}

// This example shows how to use fixed-point numbers with JSON.
func Example_jsonEncoding() {
	var o Order
	err := json.Unmarshal([]byte(`{"price":"12.5","quantity":"4"}`), &o)
	if err != nil {
		panic(err)
	}
	total := o.Price.MustMul(o.Quantity)
	b, err := json.Marshal(map[string]fixed.Fixed[fixed.D2]{"total": total})
	if err != nil {
		panic(err)
	}
	fmt.Println(string(b))
	// Output: {"total":"50.00"}
}

func ExampleNew() {
	fmt.Println(fixed.New[fixed.D3](1, 1))
	fmt.Println(fixed.New[fixed.D3](1, 2500))
	fmt.Println(fixed.New[fixed.D3](math.MaxUint64, 1000))
	// Output:
	// 1.001 <nil>
	// 3.500 <nil>
	// 0.000 converting (18446744073709551615, 1000): integer part overflow
}

func ExampleMustNew() {
	fmt.Println(fixed.MustNew[fixed.D12](0, 1))
	// Output: 0.000000000001
}

func ExampleParse() {
	fmt.Println(fixed.Parse[fixed.D2]("12.5"))
	fmt.Println(fixed.Parse[fixed.D2]("12.345"))
	// Output:
	// 12.50 <nil>
	// 0.00 parsing fixed-point number: the number of digits after the decimal point exceeds 2: invalid fixed-point number
}

func ExampleMustParse() {
	fmt.Println(fixed.MustParse[fixed.D3]("1024"))
	// Output: 1024.000
}

func ExampleFixed_String() {
	d := fixed.MustNew[fixed.D3](1025, 24)
	fmt.Println(d.String())
	// Output: 1025.024
}

func ExampleFixed_Whole() {
	d := fixed.MustNew[fixed.D3](1025, 24)
	fmt.Println(d.Whole())
	// Output: 1025
}

func ExampleFixed_Frac() {
	d := fixed.MustNew[fixed.D3](1025, 24)
	fmt.Println(d.Frac())
	// Output: 24
}

func ExampleFixed_Decimals() {
	var d fixed.Default
	fmt.Println(d.Decimals())
	// Output: 12
}

func ExampleFixed_ULP() {
	d := fixed.MustNew[fixed.D3](5, 0)
	fmt.Println(d.ULP())
	// Output: 0.001
}

func ExampleFixed_Add() {
	d := fixed.MustNew[fixed.D3](1, 500)
	e := fixed.MustNew[fixed.D3](2, 600)
	fmt.Println(d.Add(e))
	// Output: 4.100 <nil>
}

func ExampleFixed_Mul() {
	d := fixed.MustNew[fixed.D3](1024, 0)
	e := fixed.MustNew[fixed.D3](1, 1)
	fmt.Println(d.Mul(e))
	// Output: 1025.024 <nil>
}

func ExampleFixed_Quo() {
	const (
		million  = 1_000_000
		billion  = 1_000 * million
		trillion = 1_000 * billion
	)

	x := fixed.MustNew[fixed.D12](18*1_000*trillion, 0)
	y := fixed.MustNew[fixed.D12](0, billion)
	fmt.Println(x.Quo(y))

	x = fixed.MustNew[fixed.D12](18*million, 0)
	y = fixed.MustNew[fixed.D12](18*1_000*1_000*trillion, 0)
	fmt.Println(x.Quo(y))

	x = fixed.MustNew[fixed.D12](180*trillion, 0)
	y = fixed.MustNew[fixed.D12](180*trillion+1, 0)
	fmt.Println(x.Quo(y))

	x = fixed.MustNew[fixed.D12](1, 0)
	fmt.Println(x.Quo(fixed.Default{}))
	// Output:
	// 18000000000000000000.000000000000 <nil>
	// 0.000000000001 <nil>
	// 0.999999999999 <nil>
	// 0.000000000000 computing [1.000000000000 / 0.000000000000]: division by zero
}

func ExampleFixed_MustQuo() {
	d := fixed.MustNew[fixed.D3](1, 0)
	e := fixed.MustNew[fixed.D3](3, 0)
	fmt.Println(d.MustQuo(e))
	// Output: 0.333
}

func ExampleFixed_Cmp() {
	d := fixed.MustParse[fixed.D3]("1.5")
	e := fixed.MustParse[fixed.D3]("1.05")
	fmt.Println(d.Cmp(e))
	fmt.Println(d.Cmp(d))
	fmt.Println(e.Cmp(d))
	// Output:
	// 1
	// 0
	// -1
}

func ExampleFixed_IsZero() {
	d := fixed.MustNew[fixed.D3](0, 0)
	e := fixed.MustNew[fixed.D3](0, 1)
	fmt.Println(d.IsZero())
	fmt.Println(e.IsZero())
	// Output:
	// true
	// false
}

func ExampleFixed_IsInt() {
	d := fixed.MustNew[fixed.D3](2, 0)
	e := fixed.MustNew[fixed.D3](2, 1)
	fmt.Println(d.IsInt())
	fmt.Println(e.IsInt())
	// Output:
	// true
	// false
}

func ExampleFixed_MarshalText() {
	d := fixed.MustParse[fixed.D2]("15.6")
	b, err := d.MarshalText()
	if err != nil {
		panic(err)
	}
	fmt.Println(string(b))
	// Output: 15.60
}

func ExampleFixed_UnmarshalText() {
	var d fixed.Fixed[fixed.D2]
	err := d.UnmarshalText([]byte("15.6"))
	if err != nil {
		panic(err)
	}
	fmt.Println(d)
	// Output: 15.60
}
