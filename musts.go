package hugeint

import "fmt"

// MustNewFromInt64 is like [NewFromInt64] but panics if v is negative.
func MustNewFromInt64(v int64) Int {
	x, err := NewFromInt64(v)
	if err != nil {
		panic(fmt.Sprintf("MustNewFromInt64(%v) failed: %v", v, err))
	}
	return x
}

// MustParseExact is like [ParseExact] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding integers.
func MustParseExact(s string) Int {
	x, err := ParseExact(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseExact(%q) failed: %v", s, err))
	}
	return x
}

// MustAddExact is like [Int.AddExact] but panics if computing error.
func (x Int) MustAddExact(y Int) Int {
	z, err := x.AddExact(y)
	if err != nil {
		panic(fmt.Sprintf("MustAddExact(%v) failed: %v", y, err))
	}
	return z
}

// MustSubExact is like [Int.SubExact] but panics if computing error.
func (x Int) MustSubExact(y Int) Int {
	z, err := x.SubExact(y)
	if err != nil {
		panic(fmt.Sprintf("MustSubExact(%v) failed: %v", y, err))
	}
	return z
}

// MustMulExact is like [Int.MulExact] but panics if computing error.
func (x Int) MustMulExact(y Int) Int {
	z, err := x.MulExact(y)
	if err != nil {
		panic(fmt.Sprintf("MustMulExact(%v) failed: %v", y, err))
	}
	return z
}

// MustQuo is like [Int.Quo] but panics if computing error.
func (x Int) MustQuo(y Int) Int {
	z, err := x.Quo(y)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", y, err))
	}
	return z
}
