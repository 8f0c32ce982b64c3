package bigint

import "math"

// dint (Decimal INTeger) is an unsigned integer stored as a sequence of
// decimal digits, where dint[0] is the least significant digit.
// A normalized dint has no leading zeros, except for 0, which is stored as [0].
// Methods of dint never modify their operands, they always return a freshly
// allocated result or one of the operands.
type dint []byte

// dintZero is the normalized representation of 0.
var dintZero = dint{0}

// newDintFromUint64 converts uint64 to dint.
func newDintFromUint64(u uint64) dint {
	if u == 0 {
		return dintZero
	}
	z := make(dint, 0, 20)
	for u > 0 {
		z = append(z, byte(u%10))
		u /= 10
	}
	return z
}

// trim removes leading zeros from x.
// If x is empty or consists of zeros only, trim returns [0].
func (x dint) trim() dint {
	n := len(x)
	for n > 1 && x[n-1] == 0 {
		n--
	}
	if n == 0 {
		return dintZero
	}
	return x[:n]
}

func (x dint) isZero() bool {
	return len(x) == 0 || len(x) == 1 && x[0] == 0
}

// uint64 converts x to uint64 and checks overflow.
func (x dint) uint64() (uint64, bool) {
	var z uint64
	for i := len(x) - 1; i >= 0; i-- {
		d := uint64(x[i])
		if z > (math.MaxUint64-d)/10 {
			return 0, false
		}
		z = z*10 + d
	}
	return z, true
}

// cmp compares x and y and returns:
//
//	-1 if x < y
//	 0 if x == y
//	+1 if x > y
//
// cmp assumes that x and y are normalized.
func (x dint) cmp(y dint) int {
	switch {
	case len(x) < len(y):
		return -1
	case len(x) > len(y):
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}
	return 0
}

// add calculates z = x + y.
func (x dint) add(y dint) dint {
	if len(x) < len(y) {
		x, y = y, x
	}
	z := make(dint, len(x)+1)
	var carry byte
	for i := range x {
		s := x[i] + carry
		if i < len(y) {
			s += y[i]
		}
		z[i] = s % 10
		carry = s / 10
	}
	z[len(x)] = carry
	return z.trim()
}

// sub calculates z = x - y.
// If x < y, the result is unpredictable.
func (x dint) sub(y dint) dint {
	z := make(dint, len(x))
	borrow := 0
	for i := range x {
		d := int(x[i]) - borrow
		if i < len(y) {
			d -= int(y[i])
		}
		borrow = 0
		if d < 0 {
			d += 10
			borrow = 1
		}
		z[i] = byte(d)
	}
	return z.trim()
}

// fsa (Fused Shift and Addition) calculates z = x * 10 + d.
func (x dint) fsa(d byte) dint {
	if x.isZero() {
		return dint{d}
	}
	z := make(dint, len(x)+1)
	z[0] = d
	copy(z[1:], x)
	return z
}

// mul calculates z = x * y using long multiplication.
func (x dint) mul(y dint) dint {
	// Special case
	if x.isZero() || y.isZero() {
		return dintZero
	}
	// General case
	z := make(dint, len(x)+len(y))
	for i := range x {
		if x[i] == 0 {
			continue
		}
		carry := 0
		for j := range y {
			t := int(z[i+j]) + int(x[i])*int(y[j]) + carry
			z[i+j] = byte(t % 10)
			carry = t / 10
		}
		for k := i + len(y); carry > 0; k++ {
			t := int(z[k]) + carry
			z[k] = byte(t % 10)
			carry = t / 10
		}
	}
	return z.trim()
}

// quoRem calculates q = ⌊x / y⌋, r = x - y * q using long division.
func (x dint) quoRem(y dint) (q, r dint, ok bool) {
	// Special cases
	switch {
	case y.isZero():
		return nil, nil, false
	case x.cmp(y) < 0:
		return dintZero, x, true
	}
	// General case
	var muls [10]dint // muls[k] = y * k
	muls[0] = dintZero
	for k := 1; k < len(muls); k++ {
		muls[k] = muls[k-1].add(y)
	}
	q = make(dint, len(x))
	r = dintZero
	for i := len(x) - 1; i >= 0; i-- {
		r = r.fsa(x[i]) // r < y * 10
		d := quoDigit(&muls, r)
		q[i] = d
		r = r.sub(muls[d])
	}
	return q.trim(), r, true
}

// quoDigit returns the largest k such that muls[k] <= r.
// quoDigit assumes that muls[0] is 0 and muls is ascending.
func quoDigit(muls *[10]dint, r dint) byte {
	left, right := 1, len(muls)
	for left < right {
		mid := (left + right) / 2
		if muls[mid].cmp(r) > 0 {
			right = mid
		} else {
			left = mid + 1
		}
	}
	return byte(left - 1)
}
