package bigint

// The methods below are compound assignments: they store the result in the
// receiver and return the receiver for chaining.
// The result is always computed into new storage before it replaces the
// receiver, so the receiver can also be passed as the operand, as in
// z.QuoAssign(*z), and a failed operation leaves the receiver unchanged.

// AddAssign sets z to z + y and returns z.
func (z *BigInt) AddAssign(y BigInt) *BigInt {
	*z = z.Add(y)
	return z
}

// SubAssign sets z to z - y and returns z.
func (z *BigInt) SubAssign(y BigInt) *BigInt {
	*z = z.Sub(y)
	return z
}

// MulAssign sets z to z * y and returns z.
func (z *BigInt) MulAssign(y BigInt) *BigInt {
	*z = z.Mul(y)
	return z
}

// QuoAssign sets z to the truncated quotient z / y and returns z.
// If y is 0, QuoAssign returns an error wrapping [ErrDivisionByZero]
// and z remains unchanged.
func (z *BigInt) QuoAssign(y BigInt) (*BigInt, error) {
	q, err := z.Quo(y)
	if err != nil {
		return z, err
	}
	*z = q
	return z, nil
}

// RemAssign sets z to the remainder z % y and returns z.
// If y is 0, RemAssign returns an error wrapping [ErrDivisionByZero]
// and z remains unchanged.
func (z *BigInt) RemAssign(y BigInt) (*BigInt, error) {
	r, err := z.Rem(y)
	if err != nil {
		return z, err
	}
	*z = r
	return z, nil
}

// Increment sets z to z + 1 and returns z.
// It is the prefix form, also see method [BigInt.PostIncrement].
func (z *BigInt) Increment() *BigInt {
	*z = z.Inc()
	return z
}

// Decrement sets z to z - 1 and returns z.
// It is the prefix form, also see method [BigInt.PostDecrement].
func (z *BigInt) Decrement() *BigInt {
	*z = z.Dec()
	return z
}

// PostIncrement sets z to z + 1 and returns the value z had before.
func (z *BigInt) PostIncrement() BigInt {
	prev := *z
	*z = z.Inc()
	return prev
}

// PostDecrement sets z to z - 1 and returns the value z had before.
func (z *BigInt) PostDecrement() BigInt {
	prev := *z
	*z = z.Dec()
	return prev
}
