package bigint

import "fmt"

// MustQuo is like [BigInt.Quo] but panics if y is 0.
func (x BigInt) MustQuo(y BigInt) BigInt {
	q, err := x.Quo(y)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", y, err))
	}
	return q
}

// MustRem is like [BigInt.Rem] but panics if y is 0.
func (x BigInt) MustRem(y BigInt) BigInt {
	r, err := x.Rem(y)
	if err != nil {
		panic(fmt.Sprintf("MustRem(%v) failed: %v", y, err))
	}
	return r
}

// MustQuoRem is like [BigInt.QuoRem] but panics if y is 0.
func (x BigInt) MustQuoRem(y BigInt) (BigInt, BigInt) {
	q, r, err := x.QuoRem(y)
	if err != nil {
		panic(fmt.Sprintf("MustQuoRem(%v) failed: %v", y, err))
	}
	return q, r
}
