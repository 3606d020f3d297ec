package hugeint

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"io"
)

// Int type is a representation of an unsigned decimal integer with
// a fixed number of digits.
// The zero value is the numeric value of 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// An integer is stored as an array of exactly [Digits] decimal digits,
// most significant digit first.
// Values that need more than [Digits] digits are not representable:
// constructors and arithmetic operations keep the least significant
// [Digits] digits and silently drop the rest, so that arithmetic
// wraps around modulo 10^[Digits].
// Use methods with the Exact suffix to detect such loss.
type Int struct {
	digs digits // decimal digits, most significant first
}

// Digits is the number of decimal digits stored in an [Int].
const Digits = 30

var (
	// ErrDivisionByZero is returned when the divisor is zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrOverflow is returned when a result needs more than [Digits] digits.
	ErrOverflow = errors.New("integer overflow")
	// ErrUnderflow is returned when a difference would be negative.
	ErrUnderflow = errors.New("integer underflow")
	// ErrInvalidInt is returned when a string is not a valid integer.
	ErrInvalidInt = errors.New("invalid integer")
	// ErrNegative is returned when a negative native integer is converted.
	ErrNegative = errors.New("negative integer")
)

// New returns an integer equal to v.
// Since [Digits] exceeds the length of the largest uint64,
// New never loses digits.
func New(v uint64) Int {
	var x Int
	x.digs.setUint64(v)
	return x
}

// NewFromInt64 returns an integer equal to v.
// NewFromInt64 returns an error if v is negative.
func NewFromInt64(v int64) (Int, error) {
	if v < 0 {
		return Int{}, fmt.Errorf("converting %v: %w", v, ErrNegative)
	}
	return New(uint64(v)), nil
}

// Zero returns an integer with a value of 0.
func Zero() Int {
	return Int{}
}

// One returns an integer with a value of 1.
func One() Int {
	return New(1)
}

// MaxValue returns the largest representable integer, which is 10^[Digits] - 1.
func MaxValue() Int {
	var x Int
	for i := range x.digs {
		x.digs[i] = 9
	}
	return x
}

// Parse converts a string to an integer.
// Parse never fails.
// The string is aligned to the right, so that its last byte becomes
// the least significant digit.
// Bytes that are not ASCII digits are skipped and leave a zero digit
// in their position, which means that "1,000" is parsed as 10000.
// If the string is longer than [Digits] bytes, its leftmost bytes are dropped.
//
// Use [ParseExact] to reject malformed or oversized input.
func Parse(s string) Int {
	var x Int
	x.digs.setString(s)
	return x
}

// ParseExact converts a string to an integer.
// The input string must consist of ASCII digits only:
//
//	0
//	123456789
//	000042
//
// ParseExact returns an error:
//   - if the string is empty or contains a byte other than '0'...'9';
//   - if the integer has more than [Digits] significant digits.
func ParseExact(s string) (Int, error) {
	if len(s) == 0 {
		return Int{}, fmt.Errorf("no digits: %w", ErrInvalidInt)
	}
	lead := 0
	for pos := 0; pos < len(s); pos++ {
		c := s[pos]
		if c < '0' || c > '9' {
			return Int{}, fmt.Errorf("invalid character %q at position %v: %w", c, pos, ErrInvalidInt)
		}
		if c == '0' && lead == pos {
			lead++
		}
	}
	if sig := len(s) - lead; sig > Digits {
		return Int{}, fmt.Errorf("an %T can have at most %v digit(s), but %q has %v: %w", Int{}, Digits, s, sig, ErrOverflow)
	}
	return Parse(s[lead:]), nil
}

// String method implements the [fmt.Stringer] interface and returns
// the canonical representation of an integer: its decimal digits without
// leading zeros, or "0" if the integer is zero.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (x Int) String() string {
	var buf [Digits]byte
	pos := x.digs.msd()
	if pos == Digits {
		return "0"
	}
	for i := pos; i < Digits; i++ {
		buf[i] = x.digs[i] + '0'
	}
	return string(buf[pos:])
}

// WriteTo implements the [io.WriterTo] interface and writes the canonical
// representation of an integer to w.
//
// [io.WriterTo]: https://pkg.go.dev/io#WriterTo
func (x Int) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, x.String())
	return int64(n), err
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Unlike [Parse], it rejects malformed input, see [ParseExact].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (x *Int) UnmarshalText(text []byte) error {
	var err error
	*x, err = ParseExact(string(text))
	return err
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [Int.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (x Int) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// Scan implements the [sql.Scanner] interface.
// It accepts strings and byte slices in the format of [ParseExact]
// and non-negative int64 values.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (x *Int) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*x, err = ParseExact(value)
	case []byte:
		*x, err = ParseExact(string(value))
	case int64:
		*x, err = NewFromInt64(value)
	case nil:
		err = fmt.Errorf("%T does not support null values, use %T or *%T", x, NullInt{}, Int{})
	default:
		err = fmt.Errorf("failed to convert from %T to %T", value, Int{})
	}
	return err
}

// Value implements the [driver.Valuer] interface.
// The integer is stored as its canonical string, since most databases cannot
// hold [Digits] digits in a native integer column.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (x Int) Value() (driver.Value, error) {
	return x.String(), nil
}

// NullInt represents an integer that can be null.
// Its zero value is null.
// NullInt is not thread-safe.
type NullInt struct {
	Int   Int
	Valid bool
}

// Scan implements the [sql.Scanner] interface.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (n *NullInt) Scan(value any) error {
	if value == nil {
		n.Int = Int{}
		n.Valid = false
		return nil
	}
	err := n.Int.Scan(value)
	if err != nil {
		n.Int = Int{}
		n.Valid = false
		return err
	}
	n.Valid = true
	return nil
}

// Value implements the [driver.Valuer] interface.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (n NullInt) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Int.Value()
}

// Format implements [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%d, %s, %v: 12345
//	%q:        "12345"
//
// The following format flags can be used with all verbs: '+', ' ', '0', '-'.
// Precision is not supported.
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (x Int) Format(state fmt.State, verb rune) {
	// Digits
	msd := x.digs.msd()
	intdigs := Digits - msd
	if intdigs == 0 {
		msd, intdigs = Digits-1, 1
	}

	// Arithmetic sign
	rsign := 0
	if state.Flag('+') || state.Flag(' ') {
		rsign = 1
	}

	// Quotes
	lquote, tquote := 0, 0
	if verb == 'q' || verb == 'Q' {
		lquote, tquote = 1, 1
	}

	// Padding
	width := lquote + rsign + intdigs + tquote
	lspaces, tspaces, lzeroes := 0, 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		case state.Flag('0'):
			lzeroes = w - width
		default:
			lspaces = w - width
		}
		width = w
	}

	// Writing buffer
	buf := make([]byte, 0, width)
	for i := 0; i < lspaces; i++ {
		buf = append(buf, ' ')
	}
	if lquote > 0 {
		buf = append(buf, '"')
	}
	if rsign > 0 {
		if state.Flag('+') {
			buf = append(buf, '+')
		} else {
			buf = append(buf, ' ')
		}
	}
	for i := 0; i < lzeroes; i++ {
		buf = append(buf, '0')
	}
	for i := msd; i < Digits; i++ {
		buf = append(buf, x.digs[i]+'0')
	}
	if tquote > 0 {
		buf = append(buf, '"')
	}
	for i := 0; i < tspaces; i++ {
		buf = append(buf, ' ')
	}

	// Writing result
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'd', 'D':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(hugeint.Int="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}

// Prec returns number of significant digits in the integer.
// Prec returns 0 if the integer is zero.
func (x Int) Prec() int {
	return x.digs.prec()
}

// Digit returns the digit at the place value 10^pos.
// Digit(0) is the least significant digit.
//
// Digit panics if pos is less than 0 or not less than [Digits].
func (x Int) Digit(pos int) int {
	if pos < 0 || pos >= Digits {
		panic(fmt.Sprintf("%v.Digit(%v) failed: position out of range [0, %v)", x, pos, Digits))
	}
	return int(x.digs[Digits-1-pos])
}

// Uint64 returns the integer as uint64.
// If the integer cannot be represented as uint64, the result is (0, false).
func (x Int) Uint64() (uint64, bool) {
	const maxUint64 = 1<<64 - 1
	var v uint64
	for i := x.digs.msd(); i < Digits; i++ {
		d := uint64(x.digs[i])
		if v > (maxUint64-d)/10 {
			return 0, false
		}
		v = v*10 + d
	}
	return v, true
}

// IsZero returns true if x == 0.
func (x Int) IsZero() bool {
	return x.digs == digits{}
}

// Add returns the sum of x and y.
// A carry out of the most significant digit is silently discarded,
// so the sum wraps around modulo 10^[Digits].
// Also see method [Int.AddExact].
func (x Int) Add(y Int) Int {
	z, _ := x.digs.add(y.digs)
	return Int{digs: z}
}

// AddExact is similar to [Int.Add], but returns an error
// if the sum has more than [Digits] digits.
func (x Int) AddExact(y Int) (Int, error) {
	z, carry := x.digs.add(y.digs)
	if carry != 0 {
		return Int{}, fmt.Errorf("computing [%v + %v]: %w", x, y, ErrOverflow)
	}
	return Int{digs: z}, nil
}

// Sub returns the difference of x and y.
// If x is less than y, the difference silently wraps around to
// 10^[Digits] + x - y.
// Also see method [Int.SubExact].
func (x Int) Sub(y Int) Int {
	z, _ := x.digs.sub(y.digs)
	return Int{digs: z}
}

// SubExact is similar to [Int.Sub], but returns an error if x is less than y.
func (x Int) SubExact(y Int) (Int, error) {
	z, borrow := x.digs.sub(y.digs)
	if borrow != 0 {
		return Int{}, fmt.Errorf("computing [%v - %v]: %w", x, y, ErrUnderflow)
	}
	return Int{digs: z}, nil
}

// Mul returns the product of x and y.
// Digits of the product beyond [Digits] are silently discarded,
// so the product wraps around modulo 10^[Digits].
// Also see method [Int.MulExact].
func (x Int) Mul(y Int) Int {
	z, _ := x.digs.mul(y.digs)
	return Int{digs: z}
}

// MulExact is similar to [Int.Mul], but returns an error
// if the product has more than [Digits] digits.
func (x Int) MulExact(y Int) (Int, error) {
	z, overflow := x.digs.mul(y.digs)
	if overflow {
		return Int{}, fmt.Errorf("computing [%v * %v]: %w", x, y, ErrOverflow)
	}
	return Int{digs: z}, nil
}

// Quo returns the quotient of x and y truncated towards zero.
//
// Quo returns an error if y is zero.
func (x Int) Quo(y Int) (Int, error) {
	q, _, err := x.QuoRem(y)
	if err != nil {
		return Int{}, err
	}
	return q, nil
}

// QuoRem returns the quotient q and remainder r of x and y
// such that x = q * y + r and r < y.
//
// QuoRem returns an error if y is zero.
func (x Int) QuoRem(y Int) (q, r Int, err error) {
	if y.IsZero() {
		return Int{}, Int{}, fmt.Errorf("computing [%v / %v]: %w", x, y, ErrDivisionByZero)
	}
	q.digs, r.digs = x.digs.quoRem(y.digs)
	return q, r, nil
}

// Cmp compares x and y and returns:
//
//	-1 if x < y
//	 0 if x == y
//	+1 if x > y
func (x Int) Cmp(y Int) int {
	return x.digs.cmp(y.digs)
}

// Less returns true if x < y.
func (x Int) Less(y Int) bool {
	return x.Cmp(y) < 0
}

// Greater returns true if x > y.
func (x Int) Greater(y Int) bool {
	return y.Less(x)
}

// LessOrEqual returns true if x <= y.
func (x Int) LessOrEqual(y Int) bool {
	return !y.Less(x)
}

// GreaterOrEqual returns true if x >= y.
func (x Int) GreaterOrEqual(y Int) bool {
	return !x.Less(y)
}

// Equal returns true if x and y have the same digits in all positions.
func (x Int) Equal(y Int) bool {
	return x.digs == y.digs
}

// NotEqual returns true if x != y.
func (x Int) NotEqual(y Int) bool {
	return !x.Equal(y)
}

// Max returns the larger of x and y.
func (x Int) Max(y Int) Int {
	if x.Less(y) {
		return y
	}
	return x
}

// Min returns the smaller of x and y.
func (x Int) Min(y Int) Int {
	if y.Less(x) {
		return y
	}
	return x
}
