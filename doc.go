/*
Package bigint implements immutable arbitrary-precision signed integers.
Integers are stored as sequences of decimal digits, so conversions from and
to strings are linear and never lose precision.

# Representation

[BigInt] is a struct with two fields:

  - Sign: -1 if the integer is negative, 0 if it is zero, +1 if it is positive.
  - Digits: decimal digits of the absolute value, stored least significant
    digit first.
    For example, the integer -120 has the sign -1 and the digits [0, 2, 1].

Every integer has exactly one representation:

  - there are no leading zeros, so the number of digits reported by
    [BigInt.Len] is the length of the decimal representation without sign;
  - 0 is stored as the single digit 0 with the sign 0, so there are no
    [negative zeros].

The zero value of [BigInt] is a valid 0.

# Constraints

The range of an integer is limited only by available memory.
Arithmetic operations never overflow and never round.

# Conversions

The package provides methods for converting integers:

  - from/to string:
    [Parse], [MustParse], [BigInt.String], [BigInt.Format], [BigInt.Scan].
  - from/to int64:
    [New], [NewFromUint64], [BigInt.Int64].
  - from/to text, binary and MessagePack encodings:
    [BigInt.UnmarshalText], [BigInt.MarshalText],
    [BigInt.UnmarshalBinary], [BigInt.MarshalBinary],
    [BigInt.DecodeMsgpack], [BigInt.EncodeMsgpack].

See the documentation for each method for more details.

# Operations

Arithmetic methods take operands by value and return a new integer:
[BigInt.Add], [BigInt.Sub], [BigInt.Mul], [BigInt.Quo], [BigInt.Rem],
[BigInt.QuoRem], [BigInt.Neg], [BigInt.Abs], [BigInt.Inc], [BigInt.Dec].
Addition and subtraction use schoolbook carry and borrow, multiplication uses
long multiplication, and division uses long division where each quotient digit
is found by binary search over the multiples of the divisor.

Division truncates towards zero, the same way as the / and % operators
do for Go integers:

	| x   | y  | x / y | x % y |
	| --- | -- | ----- | ----- |
	|  15 |  2 |     7 |     1 |
	| -15 |  2 |    -7 |    -1 |
	|  15 | -2 |    -7 |     1 |
	| -15 | -2 |     7 |    -1 |

Compound assignments, such as [BigInt.AddAssign] or [BigInt.PostIncrement],
store the result in the receiver.
They are the only methods that modify an integer.

# Errors

Arithmetic methods are pure, and only division can fail.
Errors are returned in the following cases:

  - Division by Zero.
    Unlike the standard library, [BigInt.Quo], [BigInt.Rem] and [BigInt.QuoRem]
    do not panic when dividing by 0.
    Instead, they return an error wrapping [ErrDivisionByZero].
    Methods [BigInt.MustQuo], [BigInt.MustRem] and [BigInt.MustQuoRem] panic
    instead.

  - Invalid Format.
    [Parse], [BigInt.Scan] and the decoding methods return an error wrapping
    [ErrInvalidFormat] if the input does not represent an integer.

[negative zeros]: https://en.wikipedia.org/wiki/Signed_zero
*/
package bigint
