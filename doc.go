/*
Package fixed implements immutable non-negative fixed-point decimal numbers.
It is designed for exact decimal arithmetic in financial and unit-quantity
computations, where floating-point rounding errors are not acceptable.

# Representation

[Fixed] is a generic struct with two fields:

  - Whole: an unsigned 64-bit integer representing the integer part of the number.
  - Frac: an unsigned 64-bit integer representing the fractional part of the number,
    scaled by 10^decimals.
    For example, a number of type Fixed[D3] with a whole part of 1 and a
    fractional part of 1 represents the value 1.001.

The number of digits after the decimal point is determined by the type parameter,
which must implement the [Scale] interface.
The package provides predefined scales from [D0] to [D19].
The default scale is [D12], available through the [Default] alias.
Numbers of different scales are different types, so they cannot be mixed
in a single operation.

The numerical value of a fixed-point number is calculated as:

  - Whole + Frac / 10^decimals

The fractional part is always less than 10^decimals.
Therefore, every numeric value has exactly one representation and numbers
can be compared with the == operator.

# Constraints

The range of a fixed-point number does not depend on its scale.
The integer part can hold any value from 0 to [MaxWhole]:

	| Example      | Scale | Minimum | Maximum                                         |
	| ------------ | ----- | ------- | ----------------------------------------------- |
	| Japanese Yen | D0    | 0       | 18,446,744,073,709,551,615                      |
	| US Dollar    | D2    | 0       | 18,446,744,073,709,551,615.99                   |
	| Omani Rial   | D3    | 0       | 18,446,744,073,709,551,615.999                  |
	| Bitcoin      | D8    | 0       | 18,446,744,073,709,551,615.99999999             |
	| Default      | D12   | 0       | 18,446,744,073,709,551,615.999999999999         |

Negative numbers are not supported.

# Operations

Each arithmetic operation is carried out in two steps:

 1. The operation is initially performed using uint64 arithmetic.
    If no overflow occurs, the exact result is immediately returned.
    If an overflow does occur, the operation proceeds to step 2.

 2. The operation is repeated with the scaled values widened to 256 bits.
    Intermediate products of two scaled numbers always fit into 256 bits,
    so the only possible failure is an integer part that does not fit into uint64.

Step 1 was introduced to improve performance for the common case of
small numbers.

# Rounding

[Fixed.Add] is always exact.
[Fixed.Mul] and [Fixed.Quo] compute the exact mathematical result and
then truncate it towards zero to the scale of the operands.
No other rounding method is applied.

# Errors

All arithmetic methods are panic-free and pure.
Errors are returned in the following cases:

  - Division by Zero.
    Unlike the standard library, [Fixed.Quo] does not panic when dividing by 0.
    Instead, it returns an error wrapping [ErrDivisionByZero].

  - Overflow.
    Unlike standard integers, there is no "wrap around" for fixed-point numbers.
    If the integer part of a result exceeds [MaxWhole], arithmetic operations
    return an error wrapping [ErrOverflow].

  - Scale out of range.
    If a custom [Scale] reports a number of digits outside the range
    from 0 to [MaxDecimals], all operations return an error wrapping [ErrScaleRange].
*/
package fixed
