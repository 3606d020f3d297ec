package hugeint

// digits is a fixed-width buffer of decimal digits.
// digits[0] holds the most significant digit, digits[Digits-1] the least
// significant one.
// Every element is in the range [0, 9].
type digits [Digits]uint8

// setUint64 places the decimal digits of v into x, starting from the least
// significant position.
// Digits of v beyond the most significant position are dropped.
func (x *digits) setUint64(v uint64) {
	*x = digits{}
	for i := Digits - 1; v != 0 && i >= 0; i-- {
		x[i] = uint8(v % 10)
		v /= 10
	}
}

// setString right-aligns s in x, so that the last byte of s lands in the least
// significant position.
// Bytes that are not ASCII digits leave their position untouched.
// If s is longer than Digits, its leftmost bytes are dropped.
func (x *digits) setString(s string) {
	*x = digits{}
	if len(s) > Digits {
		s = s[len(s)-Digits:]
	}
	for j, k := Digits-len(s), 0; j < Digits; j, k = j+1, k+1 {
		if c := s[k]; c >= '0' && c <= '9' {
			x[j] = c - '0'
		}
	}
}

// add calculates z = x + y.
// The carry out of the most significant position is returned, not stored.
func (x digits) add(y digits) (z digits, carry uint8) {
	for i := Digits - 1; i >= 0; i-- {
		sum := x[i] + y[i] + carry
		if sum > 9 {
			z[i] = sum - 10
			carry = 1
		} else {
			z[i] = sum
			carry = 0
		}
	}
	return z, carry
}

// sub calculates z = x - y.
// If x < y, z is the ten's complement 10^Digits + x - y and borrow is 1.
func (x digits) sub(y digits) (z digits, borrow uint8) {
	for i := Digits - 1; i >= 0; i-- {
		diff := int(x[i]) - int(y[i]) - int(borrow)
		if diff < 0 {
			diff += 10
			borrow = 1
		} else {
			borrow = 0
		}
		z[i] = uint8(diff)
	}
	return z, borrow
}

// mulRow calculates z = x * d * 10^shift, where d is a single digit.
// Positions above the most significant one are dropped,
// lost reports whether any of them was non-zero.
func (x digits) mulRow(d uint8, shift int) (z digits, lost bool) {
	var carry uint8
	for i := Digits - 1; i >= 0; i-- {
		p := x[i]*d + carry // at most 9 * 9 + 8
		carry = p / 10
		switch k := i - shift; {
		case k >= 0:
			z[k] = p % 10
		case p%10 != 0:
			lost = true
		}
	}
	return z, lost || carry != 0
}

// mul calculates z = x * y using grade-school long multiplication.
// Each row is accumulated with add, so z = x * y mod 10^Digits.
// overflow reports whether any non-zero digit was lost.
func (x digits) mul(y digits) (z digits, overflow bool) {
	for i := Digits - 1; i >= 0; i-- {
		if x[i] == 0 {
			continue
		}
		row, lost := y.mulRow(x[i], Digits-1-i)
		var carry uint8
		z, carry = z.add(row)
		if lost || carry != 0 {
			overflow = true
		}
	}
	return z, overflow
}

// lsh (Left Shift) calculates z = x * 10 + d.
// The digit shifted out of the most significant position is returned.
func (x digits) lsh(d uint8) (z digits, hi uint8) {
	hi = x[0]
	copy(z[:], x[1:])
	z[Digits-1] = d
	return z, hi
}

// quoRem calculates q = ⌊x / y⌋, r = x - y * q using long division.
// y must not be zero.
func (x digits) quoRem(y digits) (q, r digits) {
	var hi uint8 // digit above the most significant position of r
	for i := 0; i < Digits; i++ {
		r, hi = r.lsh(x[i])
		var qd uint8
		for hi != 0 || r.cmp(y) >= 0 {
			var borrow uint8
			r, borrow = r.sub(y)
			hi -= borrow
			qd++
		}
		q[i] = qd
	}
	return q, r
}

// quoSlow calculates q = ⌊x / y⌋, r = x - y * q by repeatedly subtracting y
// from x and counting the subtractions.
// The number of iterations equals q, so quoSlow is only practical when the
// quotient is small.
// y must not be zero.
func (x digits) quoSlow(y digits) (q, r digits) {
	var one digits
	one[Digits-1] = 1
	r = x
	for r.cmp(y) >= 0 {
		r, _ = r.sub(y)
		q, _ = q.add(one)
	}
	return q, r
}

// cmp compares x and y digit by digit and returns:
//
//	-1 if x < y
//	 0 if x == y
//	+1 if x > y
func (x digits) cmp(y digits) int {
	for i := 0; i < Digits; i++ {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}
	return 0
}

// msd returns the index of the most significant non-zero digit.
// msd returns Digits if x is zero.
func (x digits) msd() int {
	i := 0
	for i < Digits && x[i] == 0 {
		i++
	}
	return i
}

// prec returns length of x in decimal digits.
// prec assumes that 0 has no digits.
func (x digits) prec() int {
	return Digits - x.msd()
}
