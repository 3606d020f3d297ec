package hugeint_test

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/govalues/hugeint"
)

func ExampleNew() {
	x := hugeint.New(7654321)
	y := hugeint.New(7891234)
	fmt.Println(x.Add(y))
	// Output: 15545555
}

func ExampleNewFromInt64() {
	fmt.Println(hugeint.NewFromInt64(42))
	fmt.Println(hugeint.NewFromInt64(-42))
	// Output:
	// 42 <nil>
	// 0 converting -42: negative integer
}

func ExampleParse() {
	fmt.Println(hugeint.Parse("123456789012345678901234567890"))
	fmt.Println(hugeint.Parse("1,000"))
	fmt.Println(hugeint.Parse("1123456789012345678901234567890"))
	// Output:
	// 123456789012345678901234567890
	// 10000
	// 123456789012345678901234567890
}

func ExampleParseExact() {
	fmt.Println(hugeint.ParseExact("000042"))
	fmt.Println(hugeint.ParseExact("1,000"))
	// Output:
	// 42 <nil>
	// 0 invalid character ',' at position 1: invalid integer
}

func ExampleMustParseExact() {
	fmt.Println(hugeint.MustParseExact("987654321098765432109876543210"))
	// Output: 987654321098765432109876543210
}

func ExampleInt_String() {
	x := hugeint.Parse("000000123")
	fmt.Println(x.String())
	// Output: 123
}

func ExampleInt_WriteTo() {
	x := hugeint.MustParseExact("123456789012345678901234567890")
	_, err := x.WriteTo(os.Stdout)
	if err != nil {
		panic(err)
	}
	// Output: 123456789012345678901234567890
}

func ExampleInt_Format() {
	x := hugeint.New(12345)
	fmt.Printf("%v\n", x)
	fmt.Printf("%q\n", x)
	fmt.Printf("%08d\n", x)
	fmt.Printf("[%-8s]\n", x)
	// Output:
	// 12345
	// "12345"
	// 00012345
	// [12345   ]
}

type Account struct {
	Balance hugeint.Int `json:"balance"`
}

func ExampleInt_MarshalText() {
	a := Account{Balance: hugeint.MustParseExact("99999999999999999999")}
	b, err := json.Marshal(a)
	if err != nil {
		panic(err)
	}
	fmt.Println(string(b))
	// Output: {"balance":"99999999999999999999"}
}

func ExampleInt_UnmarshalText() {
	var a Account
	err := json.Unmarshal([]byte(`{"balance":"15545555"}`), &a)
	if err != nil {
		panic(err)
	}
	fmt.Println(a.Balance)
	// Output: 15545555
}

func ExampleInt_Scan() {
	x := &hugeint.Int{}
	err := x.Scan("15545555")
	if err != nil {
		panic(err)
	}
	fmt.Println(x)
	// Output: 15545555
}

func ExampleInt_Value() {
	x := hugeint.New(15545555)
	v, err := x.Value()
	if err != nil {
		panic(err)
	}
	fmt.Println(v)
	// Output: 15545555
}

func ExampleInt_Prec() {
	fmt.Println(hugeint.New(7654321).Prec())
	fmt.Println(hugeint.Zero().Prec())
	// Output:
	// 7
	// 0
}

func ExampleInt_Digit() {
	x := hugeint.New(7654321)
	fmt.Println(x.Digit(0), x.Digit(6), x.Digit(7))
	// Output: 1 7 0
}

func ExampleInt_Uint64() {
	fmt.Println(hugeint.New(42).Uint64())
	fmt.Println(hugeint.MaxValue().Uint64())
	// Output:
	// 42 true
	// 0 false
}

func ExampleInt_Add() {
	x := hugeint.MustParseExact("99999999999999999999999999999")
	fmt.Println(x.Add(hugeint.One()))
	fmt.Println(hugeint.MaxValue().Add(hugeint.One()))
	// Output:
	// 100000000000000000000000000000
	// 0
}

func ExampleInt_AddExact() {
	fmt.Println(hugeint.MaxValue().AddExact(hugeint.One()))
	// Output: 0 computing [999999999999999999999999999999 + 1]: integer overflow
}

func ExampleInt_Sub() {
	fmt.Println(hugeint.New(7).Sub(hugeint.New(5)))
	fmt.Println(hugeint.New(5).Sub(hugeint.New(7)))
	// Output:
	// 2
	// 999999999999999999999999999998
}

func ExampleInt_SubExact() {
	fmt.Println(hugeint.New(5).SubExact(hugeint.New(7)))
	// Output: 0 computing [5 - 7]: integer underflow
}

func ExampleInt_Mul() {
	x := hugeint.MustParseExact("123456789012345678901234567890")
	y := hugeint.MustParseExact("987654321098765432109876543210")
	fmt.Println(hugeint.New(123456789).Mul(hugeint.New(987654321)))
	fmt.Println(x.Mul(y))
	// Output:
	// 121932631112635269
	// 622923332237463801111263526900
}

func ExampleInt_MulExact() {
	x := hugeint.MustParseExact("1000000000000000")
	fmt.Println(x.MulExact(x))
	// Output: 0 computing [1000000000000000 * 1000000000000000]: integer overflow
}

func ExampleInt_Quo() {
	x := hugeint.MustParseExact("987654321098765432109876543210")
	y := hugeint.MustParseExact("123456789012345678901234567890")
	fmt.Println(x.Quo(y))
	fmt.Println(hugeint.New(5).Quo(hugeint.Zero()))
	// Output:
	// 8 <nil>
	// 0 computing [5 / 0]: division by zero
}

func ExampleInt_QuoRem() {
	x := hugeint.MustParseExact("987654321098765432109876543210")
	y := hugeint.MustParseExact("123456789012345678901234567890")
	fmt.Println(x.QuoRem(y))
	// Output: 8 9000000000900000000090 <nil>
}

func ExampleInt_Cmp() {
	x := hugeint.New(7654321)
	y := hugeint.New(7891234)
	fmt.Println(x.Cmp(x))
	fmt.Println(x.Cmp(y))
	fmt.Println(y.Cmp(x))
	// Output:
	// 0
	// -1
	// 1
}

func ExampleInt_Less() {
	x := hugeint.New(7654321)
	y := hugeint.New(7891234)
	fmt.Println(x.Less(y), x.LessOrEqual(y), x.Greater(y), x.GreaterOrEqual(y))
	// Output: true true false false
}

func ExampleInt_Equal() {
	x := hugeint.Parse("0042")
	y := hugeint.New(42)
	fmt.Println(x.Equal(y), x.NotEqual(y), x == y)
	// Output: true false true
}

func ExampleInt_Max() {
	x := hugeint.New(7654321)
	y := hugeint.New(7891234)
	fmt.Println(x.Max(y), x.Min(y))
	// Output: 7891234 7654321
}

func ExampleInt_IsZero() {
	fmt.Println(hugeint.Zero().IsZero(), hugeint.One().IsZero())
	// Output: true false
}
