package bigint

import (
	"errors"
	"fmt"
	"math"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"
)

// BigInt type is a representation of an arbitrary-precision signed integer.
// The zero value is the numeric value of 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A BigInt is a struct with two parameters:
//
//   - Sign: -1 if the integer is negative, 0 if it is zero, +1 if it is positive.
//   - Digits: decimal digits of the absolute value, stored least significant
//     digit first. There are no leading zeros, except for 0 itself,
//     which has exactly one digit.
//
// Operations never modify the digits of their operands, so an assigned copy
// of a BigInt can be used independently from the original.
// Use [BigInt.Clone] if independent storage is required.
type BigInt struct {
	sign int8 // -1, 0 or +1
	digs dint // the absolute value of the integer
}

var (
	NegOne = New(-1) // NegOne represents the integer value of -1.
	Zero   = New(0)  // Zero represents the integer value of 0.
	One    = New(1)  // One represents the integer value of 1.
	Two    = New(2)  // Two represents the integer value of 2.
	Ten    = New(10) // Ten represents the integer value of 10.
)

var (
	// ErrDivisionByZero is returned by [BigInt.Quo], [BigInt.Rem] and
	// [BigInt.QuoRem] when the divisor is 0.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrInvalidFormat is returned when a text or binary representation
	// cannot be converted to an integer.
	ErrInvalidFormat = errors.New("invalid integer")
)

// newBigInt restores the representation invariants:
// leading zeros are removed, an empty digs is treated as 0,
// and the sign of 0 is always 0.
func newBigInt(neg bool, digs dint) BigInt {
	digs = digs.trim()
	switch {
	case digs.isZero():
		return BigInt{digs: dintZero}
	case neg:
		return BigInt{sign: -1, digs: digs}
	}
	return BigInt{sign: 1, digs: digs}
}

// mag returns the absolute value of x.
func (x BigInt) mag() dint {
	if len(x.digs) == 0 {
		return dintZero
	}
	return x.digs
}

// New returns an integer equal to i.
func New(i int64) BigInt {
	neg := i < 0
	u := uint64(i)
	if neg {
		u = -u
	}
	return newBigInt(neg, newDintFromUint64(u))
}

// NewFromUint64 returns an integer equal to u.
func NewFromUint64(u uint64) BigInt {
	return newBigInt(false, newDintFromUint64(u))
}

// Parse converts a string to an integer.
// The input string must be in one of the following formats:
//
//	1234
//	-1234
//	000123
//
// The formal EBNF grammar for the supported format is as follows:
//
//	sign           ::= '-'
//	digit          ::= '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9'
//	numeric-string ::= [sign] digit { digit }
//
// Parse removes leading zeros, so "-000" is parsed as 0.
//
// Parse returns an error wrapping [ErrInvalidFormat] if the string is empty,
// contains only a sign, or contains any character other than a leading '-'
// and decimal digits. Whitespace is not allowed.
func Parse(s string) (BigInt, error) {
	var (
		pos   int
		width int
		start int
		neg   bool
	)

	width = len(s)

	// Sign
	if pos < width && s[pos] == '-' {
		neg = true
		pos++
	}

	// Digits
	start = pos
	for pos < width && s[pos] >= '0' && s[pos] <= '9' {
		pos++
	}

	if pos != width {
		return BigInt{}, fmt.Errorf("invalid character %q: %w", s[pos], ErrInvalidFormat)
	}
	if pos == start {
		return BigInt{}, fmt.Errorf("no digits: %w", ErrInvalidFormat)
	}

	digs := make(dint, width-start)
	for i := range digs {
		digs[i] = s[width-1-i] - '0'
	}
	return newBigInt(neg, digs), nil
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding integers.
func MustParse(s string) BigInt {
	x, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return x
}

// Clone returns a copy of x that does not share storage with x.
func (x BigInt) Clone() BigInt {
	digs := make(dint, len(x.mag()))
	copy(digs, x.mag())
	return BigInt{sign: x.sign, digs: digs}
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of an integer.
// The returned string is formatted according to the following formal
// EBNF grammar:
//
//	sign           ::= '-'
//	digit          ::= '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9'
//	numeric-string ::= [sign] digit { digit }
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (x BigInt) String() string {
	digs := x.mag()
	buf := make([]byte, len(digs)+1)
	pos := len(buf) - 1

	// Digits
	for _, d := range digs {
		buf[pos] = d + '0'
		pos--
	}

	// Sign
	if x.IsNeg() {
		buf[pos] = '-'
		pos--
	}

	return string(buf[pos+1:])
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// If text cannot be parsed, x remains unchanged.
// Also see method [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (x *BigInt) UnmarshalText(text []byte) error {
	y, err := Parse(string(text))
	if err != nil {
		return err
	}
	*x = y
	return nil
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [BigInt.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (x BigInt) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalBinary implements [encoding.BinaryUnmarshaler] interface.
// If data is not a valid packed BCD, x remains unchanged.
// Also see method [BigInt.MarshalBinary].
//
// [encoding.BinaryUnmarshaler]: https://pkg.go.dev/encoding#BinaryUnmarshaler
func (x *BigInt) UnmarshalBinary(data []byte) error {
	y, err := parseBCD(data)
	if err != nil {
		return err
	}
	*x = y
	return nil
}

// MarshalBinary implements [encoding.BinaryMarshaler] interface.
// It encodes x as [packed BCD]: decimal digits occupy one nibble each,
// starting with the most significant one, and the last nibble holds
// the sign, 0xc for zero and positive integers or 0xd for negative ones.
// An integer with an even number of digits gets an extra leading 0 nibble.
// For example, -1234 is encoded as 0x01 0x23 0x4d.
//
// [encoding.BinaryMarshaler]: https://pkg.go.dev/encoding#BinaryMarshaler
// [packed BCD]: https://en.wikipedia.org/wiki/Binary-coded_decimal#Packed_BCD
func (x BigInt) MarshalBinary() ([]byte, error) {
	return x.bcd(), nil
}

// bcd returns a packed BCD representation of x.
func (x BigInt) bcd() []byte {
	digs := x.mag()
	buf := make([]byte, (len(digs)+2)/2)
	pos := len(buf) - 1

	// Sign
	if x.IsNeg() {
		buf[pos] = 0x0d
	} else {
		buf[pos] = 0x0c
	}

	// Digits, where the k-th nibble from the end holds digs[k-1]
	for i, d := range digs {
		k := i + 1
		if k%2 == 0 {
			buf[pos-k/2] |= d
		} else {
			buf[pos-k/2] |= d << 4
		}
	}

	return buf
}

// parseBCD converts a packed BCD representation to an integer.
func parseBCD(bcd []byte) (BigInt, error) {
	if len(bcd) == 0 {
		return BigInt{}, fmt.Errorf("empty BCD: %w", ErrInvalidFormat)
	}
	pos := len(bcd) - 1

	// Sign
	var neg bool
	switch nibble := bcd[pos] & 0x0f; nibble {
	case 0x0c:
		neg = false
	case 0x0d:
		neg = true
	default:
		return BigInt{}, fmt.Errorf("invalid sign nibble %#x: %w", nibble, ErrInvalidFormat)
	}

	// Digits
	digs := make(dint, 2*len(bcd)-1)
	for i := range digs {
		k := i + 1
		nibble := bcd[pos-k/2]
		if k%2 == 0 {
			nibble &= 0x0f
		} else {
			nibble >>= 4
		}
		if nibble > 9 {
			return BigInt{}, fmt.Errorf("invalid digit nibble %#x: %w", nibble, ErrInvalidFormat)
		}
		digs[i] = nibble
	}

	return newBigInt(neg, digs), nil
}

// EncodeMsgpack implements [msgpack.CustomEncoder] interface.
// The integer is encoded as a MessagePack string holding [BigInt.String].
//
// [msgpack.CustomEncoder]: https://pkg.go.dev/github.com/vmihailenco/msgpack/v5#CustomEncoder
func (x BigInt) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeString(x.String())
}

// DecodeMsgpack implements [msgpack.CustomDecoder] interface.
// If the decoded string cannot be parsed, x remains unchanged.
//
// [msgpack.CustomDecoder]: https://pkg.go.dev/github.com/vmihailenco/msgpack/v5#CustomDecoder
func (x *BigInt) DecodeMsgpack(dec *msgpack.Decoder) error {
	s, err := dec.DecodeString()
	if err != nil {
		return err
	}
	y, err := Parse(s)
	if err != nil {
		return err
	}
	*x = y
	return nil
}

// Scan implements [fmt.Scanner] interface, so integers can be read with
// [fmt.Fscan] and its variants.
// Scan skips leading spaces and consumes the longest run of an optional '-'
// followed by decimal digits.
// The verbs %v, %d and %s are supported.
// If no digits are found, Scan returns an error wrapping [ErrInvalidFormat]
// and x remains unchanged.
//
// [fmt.Scanner]: https://pkg.go.dev/fmt#Scanner
func (x *BigInt) Scan(state fmt.ScanState, verb rune) error {
	switch verb {
	case 'v', 'd', 's':
	default:
		return fmt.Errorf("unsupported verb %%%c: %w", verb, ErrInvalidFormat)
	}
	first := true
	tok, err := state.Token(true, func(r rune) bool {
		if first {
			first = false
			if r == '-' {
				return true
			}
		}
		return r >= '0' && r <= '9'
	})
	if err != nil {
		return err
	}
	y, err := Parse(string(tok))
	if err != nil {
		return err
	}
	*x = y
	return nil
}

// Format implements [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%d, %s, %v: -123456
//	%q:        "-123456"
//
// The following format flags can be used with all verbs: '+', ' ', '0', '-'.
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (x BigInt) Format(state fmt.State, verb rune) {
	digs := x.mag()

	// Arithmetic sign
	rsign := 0
	if x.IsNeg() || state.Flag('+') || state.Flag(' ') {
		rsign = 1
	}

	// Quotes
	lquote, tquote := 0, 0
	if verb == 'q' || verb == 'Q' {
		lquote, tquote = 1, 1
	}

	// Padding
	width := lquote + rsign + len(digs) + tquote
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
	buf := make([]byte, width)
	pos := width - 1
	for i := 0; i < tspaces; i++ {
		buf[pos] = ' '
		pos--
	}
	if tquote > 0 {
		buf[pos] = '"'
		pos--
	}
	for _, d := range digs {
		buf[pos] = d + '0'
		pos--
	}
	for i := 0; i < lzeroes; i++ {
		buf[pos] = '0'
		pos--
	}
	if rsign > 0 {
		if x.IsNeg() {
			buf[pos] = '-'
		} else if state.Flag(' ') {
			buf[pos] = ' '
		} else {
			buf[pos] = '+'
		}
		pos--
	}
	if lquote > 0 {
		buf[pos] = '"'
		pos--
	}
	for i := 0; i < lspaces; i++ {
		buf[pos] = ' '
		pos--
	}

	// Writing result
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'd':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(bigint.BigInt="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}

// Int64 returns the integer as int64.
// If the integer cannot be represented as int64, the result is (0, false).
func (x BigInt) Int64() (int64, bool) {
	u, ok := x.mag().uint64()
	if !ok {
		return 0, false
	}
	if x.IsNeg() && u == 1<<63 {
		return math.MinInt64, true
	}
	i, err := safecast.Conv[int64](u)
	if err != nil {
		return 0, false
	}
	if x.IsNeg() {
		i = -i
	}
	return i, true
}

// Len returns the number of decimal digits in the absolute value of x.
// Len returns 1 for 0.
func (x BigInt) Len() int {
	return len(x.mag())
}

// Digit returns the i-th decimal digit of the absolute value of x,
// where the least significant digit has index 0.
// Digit returns 0 for any index outside the range [0, x.Len()).
func (x BigInt) Digit(i int) int {
	digs := x.mag()
	if i < 0 || i >= len(digs) {
		return 0
	}
	return int(digs[i])
}

// Neg returns x with opposite sign.
func (x BigInt) Neg() BigInt {
	return BigInt{sign: -x.sign, digs: x.digs}
}

// Abs returns absolute value of x.
func (x BigInt) Abs() BigInt {
	if x.IsNeg() {
		return x.Neg()
	}
	return x
}

// Sign returns:
//
//	-1 if x < 0
//	 0 if x == 0
//	+1 if x > 0
func (x BigInt) Sign() int {
	return int(x.sign)
}

// IsPos returns true if x > 0.
func (x BigInt) IsPos() bool {
	return x.sign > 0
}

// IsNeg returns true if x < 0.
func (x BigInt) IsNeg() bool {
	return x.sign < 0
}

// IsZero returns true if x == 0.
func (x BigInt) IsZero() bool {
	return x.sign == 0
}

// Bool returns true if x != 0.
// It is the explicit form of the integer-to-boolean conversion.
func (x BigInt) Bool() bool {
	return x.sign != 0
}

// Add returns the sum of x and y.
func (x BigInt) Add(y BigInt) BigInt {
	// Special cases
	switch {
	case y.IsZero():
		return x
	case x.IsZero():
		return y
	}

	// General case
	xdigs, ydigs := x.mag(), y.mag()
	if x.sign == y.sign {
		return newBigInt(x.IsNeg(), xdigs.add(ydigs))
	}
	switch xdigs.cmp(ydigs) {
	case 1:
		return newBigInt(x.IsNeg(), xdigs.sub(ydigs))
	case -1:
		return newBigInt(y.IsNeg(), ydigs.sub(xdigs))
	}
	return Zero
}

// Sub returns the difference of x and y.
func (x BigInt) Sub(y BigInt) BigInt {
	return x.Add(y.Neg())
}

// Inc returns x + 1.
func (x BigInt) Inc() BigInt {
	return x.Add(One)
}

// Dec returns x - 1.
func (x BigInt) Dec() BigInt {
	return x.Sub(One)
}

// Mul returns the product of x and y.
func (x BigInt) Mul(y BigInt) BigInt {
	return newBigInt(x.IsNeg() != y.IsNeg(), x.mag().mul(y.mag()))
}

// Quo returns the quotient of x and y truncated towards zero,
// the same way as the / operator does for Go integers.
//
// Quo returns an error wrapping [ErrDivisionByZero] if y is 0.
func (x BigInt) Quo(y BigInt) (BigInt, error) {
	if y.IsZero() {
		return BigInt{}, fmt.Errorf("computing [%v / %v]: %w", x, y, ErrDivisionByZero)
	}
	return x.quo(y), nil
}

// quo calculates ⌊|x| / |y|⌋ and applies the sign.
// quo assumes that y is not 0.
func (x BigInt) quo(y BigInt) BigInt {
	// Special case: zero dividend
	if x.IsZero() {
		return Zero
	}

	// General case
	q, _, ok := x.mag().quoRem(y.mag())
	if !ok {
		panic(fmt.Sprintf("%q.quo(%q) failed: %v", x, y, ErrDivisionByZero)) // unexpected by design
	}
	return newBigInt(x.IsNeg() != y.IsNeg(), q)
}

// Rem returns the remainder of x and y, such that x = y * q + r,
// where q is the truncated quotient returned by [BigInt.Quo].
// The remainder is either 0 or has the same sign as x,
// the same way as the % operator does for Go integers.
//
// Rem returns an error wrapping [ErrDivisionByZero] if y is 0.
func (x BigInt) Rem(y BigInt) (BigInt, error) {
	if y.IsZero() {
		return BigInt{}, fmt.Errorf("computing [%v %% %v]: %w", x, y, ErrDivisionByZero)
	}
	q := x.quo(y)
	return x.Sub(q.Mul(y)), nil
}

// QuoRem returns the quotient q and the remainder r of x and y,
// such that x = y * q + r.
// Also see methods [BigInt.Quo] and [BigInt.Rem].
//
// QuoRem returns an error wrapping [ErrDivisionByZero] if y is 0.
func (x BigInt) QuoRem(y BigInt) (q, r BigInt, err error) {
	if y.IsZero() {
		return BigInt{}, BigInt{}, fmt.Errorf("computing [%v / %v] and [%v %% %v]: %w", x, y, x, y, ErrDivisionByZero)
	}
	q = x.quo(y)
	r = x.Sub(q.Mul(y))
	return q, r, nil
}

// Cmp compares x and y and returns:
//
//	-1 if x < y
//	 0 if x == y
//	+1 if x > y
func (x BigInt) Cmp(y BigInt) int {
	// Special cases: different signs or zeros
	switch {
	case x.sign < y.sign:
		return -1
	case y.sign < x.sign:
		return 1
	case x.IsZero():
		return 0
	}

	// General case
	r := x.mag().cmp(y.mag())
	if x.IsNeg() {
		return -r
	}
	return r
}

// CmpAbs compares absolute values of x and y and returns:
//
//	-1 if |x| < |y|
//	 0 if |x| == |y|
//	+1 if |x| > |y|
func (x BigInt) CmpAbs(y BigInt) int {
	return x.mag().cmp(y.mag())
}

// Equal returns true if x == y.
func (x BigInt) Equal(y BigInt) bool {
	return x.Cmp(y) == 0
}

// Less returns true if x < y.
func (x BigInt) Less(y BigInt) bool {
	return x.Cmp(y) < 0
}

// LessOrEqual returns true if x <= y.
func (x BigInt) LessOrEqual(y BigInt) bool {
	return x.Cmp(y) <= 0
}

// Greater returns true if x > y.
func (x BigInt) Greater(y BigInt) bool {
	return x.Cmp(y) > 0
}

// GreaterOrEqual returns true if x >= y.
func (x BigInt) GreaterOrEqual(y BigInt) bool {
	return x.Cmp(y) >= 0
}

// Max returns maximum of x and y.
// Also see method [BigInt.Cmp].
func (x BigInt) Max(y BigInt) BigInt {
	if x.Cmp(y) >= 0 {
		return x
	}
	return y
}

// Min returns minimum of x and y.
// Also see method [BigInt.Cmp].
func (x BigInt) Min(y BigInt) BigInt {
	if x.Cmp(y) <= 0 {
		return x
	}
	return y
}
