/*
Package hugeint implements immutable unsigned decimal integers of fixed width.
All arithmetic is carried out digit by digit on decimal storage,
without conversion to binary.

# Representation

[Int] is a struct holding an array of [Digits] decimal digits,
most significant digit first.
Each digit is an integer in the range [0, 9].
The array never grows or shrinks, so the range of an [Int] is

	0 ... 999,999,999,999,999,999,999,999,999,999

Values are copied by value, so every copy owns an independent digit array
and no operation modifies its operands.
Integers are safe for concurrent use by multiple goroutines.

# Conversions

The package provides methods for converting integers:

  - from/to string:
    [Parse], [ParseExact], [Int.String], [Int.Format], [Int.WriteTo].
  - from/to uint64:
    [New], [Int.Uint64].
  - from int64:
    [NewFromInt64].
  - from/to database/sql:
    [Int.Scan], [Int.Value], [NullInt].

[Parse] is permissive: the input is aligned to the right, bytes that are not
ASCII digits leave a zero in their position, and bytes that do not fit are
dropped from the left.
[ParseExact] validates its input and returns an error instead.

# Operations

Arithmetic is performed the way it is done with pencil and paper:

  - [Int.Add]: addition with carry, from the least significant digit.
  - [Int.Sub]: subtraction with borrow, from the least significant digit.
  - [Int.Mul]: long multiplication, one product row per digit of the
    multiplier, each row accumulated with addition.
  - [Int.Quo], [Int.QuoRem]: long division, bringing down one digit
    of the dividend at a time.
  - [Int.Cmp] and friends: digit-by-digit comparison from the most
    significant digit.

# Overflow

There is no overflow error by default.
Like native unsigned integers, [Int.Add], [Int.Sub] and [Int.Mul] wrap around
modulo 10^[Digits]: a carry out of the most significant digit is discarded,
and subtracting a larger integer yields its ten's complement.
For example, adding 1 to 999,999,999,999,999,999,999,999,999,999 yields 0.

[Int.AddExact], [Int.SubExact] and [Int.MulExact] perform the same operations
but return [ErrOverflow] or [ErrUnderflow] if the result is not representable.

# Errors

All methods are pure.
Errors are returned in the following cases:

  - Division by Zero.
    [Int.Quo] and [Int.QuoRem] return [ErrDivisionByZero] when dividing by 0.

  - Invalid Input.
    [ParseExact] returns [ErrInvalidInt] or [ErrOverflow], and
    [NewFromInt64] returns [ErrNegative].

  - Overflow and Underflow.
    Only methods with the Exact suffix report them.
*/
package hugeint
