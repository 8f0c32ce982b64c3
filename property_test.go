package bigint_test

import (
	"fmt"
	"math/big"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/govalues/bigint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// randInts returns n pseudo-random integers with up to maxLen digits.
// The sequence is the same for every run.
func randInts(n, maxLen int) []bigint.BigInt {
	r := rand.New(rand.NewPCG(1, 2))
	ints := make([]bigint.BigInt, 0, n)
	for range n {
		var sb strings.Builder
		if r.IntN(2) == 0 {
			sb.WriteByte('-')
		}
		for range 1 + r.IntN(maxLen) {
			sb.WriteByte(byte('0' + r.IntN(10)))
		}
		ints = append(ints, bigint.MustParse(sb.String()))
	}
	return ints
}

func TestProperties(t *testing.T) {
	ints := randInts(40, 45)
	ints = append(ints, bigint.Zero, bigint.One, bigint.NegOne, bigint.Ten)

	t.Run("round trip", func(t *testing.T) {
		for _, x := range ints {
			y, err := bigint.Parse(x.String())
			require.NoError(t, err)
			assert.True(t, x.Equal(y), "Parse(%q) = %q", x, y)
		}
	})

	t.Run("division law", func(t *testing.T) {
		for _, a := range ints {
			for _, b := range ints {
				if b.IsZero() {
					continue
				}
				q, r, err := a.QuoRem(b)
				require.NoError(t, err)
				assert.True(t, q.Mul(b).Add(r).Equal(a), "(%v / %v) * %v + %v %% %v != %v", a, b, b, a, b, a)
				assert.Contains(t, []int{a.Sign(), 0}, r.Sign(), "sign(%v %% %v) = %v", a, b, r.Sign())
				assert.Equal(t, -1, r.CmpAbs(b), "|%v %% %v| >= |%v|", a, b, b)
			}
		}
	})

	t.Run("additive inverse", func(t *testing.T) {
		for _, x := range ints {
			sum := x.Add(x.Neg())
			assert.True(t, sum.IsZero(), "%v + (-%v) = %v", x, x, sum)
			assert.Equal(t, 0, sum.Sign())
		}
	})

	t.Run("commutativity", func(t *testing.T) {
		for _, a := range ints {
			for _, b := range ints {
				assert.True(t, a.Add(b).Equal(b.Add(a)), "%v + %v", a, b)
				assert.True(t, a.Mul(b).Equal(b.Mul(a)), "%v * %v", a, b)
			}
		}
	})

	t.Run("associativity", func(t *testing.T) {
		for i := 0; i+2 < len(ints); i++ {
			a, b, c := ints[i], ints[i+1], ints[i+2]
			assert.True(t, a.Add(b).Add(c).Equal(a.Add(b.Add(c))), "(%v + %v) + %v", a, b, c)
			assert.True(t, a.Mul(b).Mul(c).Equal(a.Mul(b.Mul(c))), "(%v * %v) * %v", a, b, c)
		}
	})

	t.Run("distributivity", func(t *testing.T) {
		for i := 0; i+2 < len(ints); i++ {
			a, b, c := ints[i], ints[i+1], ints[i+2]
			assert.True(t, a.Mul(b.Add(c)).Equal(a.Mul(b).Add(a.Mul(c))), "%v * (%v + %v)", a, b, c)
		}
	})

	t.Run("ordering", func(t *testing.T) {
		for _, a := range ints {
			for _, b := range ints {
				n := 0
				for _, ok := range []bool{a.Less(b), a.Equal(b), a.Greater(b)} {
					if ok {
						n++
					}
				}
				assert.Equal(t, 1, n, "exactly one of <, ==, > must hold for %v and %v", a, b)
				assert.Equal(t, a.Cmp(b), -b.Cmp(a))
				for _, c := range ints {
					if a.Less(b) && b.Less(c) {
						assert.True(t, a.Less(c), "%v < %v < %v", a, b, c)
					}
				}
			}
		}
	})

	t.Run("self operations", func(t *testing.T) {
		for _, x := range ints {
			assert.True(t, x.Sub(x).IsZero(), "%v - %v", x, x)
			if !x.IsZero() {
				q, err := x.Quo(x)
				require.NoError(t, err)
				assert.True(t, q.Equal(bigint.One), "%v / %v = %v", x, x, q)
			}
			want := new(big.Int)
			want.SetString(x.String(), 10)
			want.Mul(want, want)
			assert.Equal(t, want.String(), x.Mul(x).String())
		}
	})

	t.Run("squaring by addition", func(t *testing.T) {
		for _, x := range randInts(20, 3) {
			z := bigint.Zero
			for i := bigint.Zero; i.Less(x.Abs()); i.Increment() {
				z.AddAssign(x)
			}
			assert.True(t, z.Equal(x.Mul(x.Abs())), "%v * |%v| = %v", x, x, z)
		}
	})

	t.Run("zero canonicalization", func(t *testing.T) {
		for _, s := range []string{"0", "-0", "000", "-000000"} {
			x := bigint.MustParse(s)
			assert.Equal(t, "0", x.String())
			assert.Equal(t, 0, x.Sign())
			assert.Equal(t, 1, x.Len())
			assert.True(t, x.Equal(bigint.BigInt{}))
		}
		for _, x := range ints {
			assert.Equal(t, 0, x.Mul(bigint.Zero).Sign())
			assert.Equal(t, 0, x.Neg().Add(x).Sign())
		}
	})
}

func TestScenarios(t *testing.T) {
	t.Run("carry", func(t *testing.T) {
		got := bigint.MustParse("123").Add(bigint.MustParse("877"))
		assert.Equal(t, "1000", got.String())
		assert.Equal(t, 4, got.Len())
	})

	t.Run("mixed sign product", func(t *testing.T) {
		got := bigint.MustParse("-5").Mul(bigint.MustParse("5"))
		assert.Equal(t, "-25", got.String())
	})

	t.Run("division", func(t *testing.T) {
		q, r, err := bigint.MustParse("100").QuoRem(bigint.MustParse("7"))
		require.NoError(t, err)
		assert.Equal(t, "14", q.String())
		assert.Equal(t, "2", r.String())
	})

	t.Run("truncated division", func(t *testing.T) {
		q, r, err := bigint.MustParse("-7").QuoRem(bigint.Two)
		require.NoError(t, err)
		assert.Equal(t, "-3", q.String())
		assert.Equal(t, "-1", r.String())
	})

	t.Run("zero difference", func(t *testing.T) {
		got := bigint.Zero.Sub(bigint.Zero)
		assert.Equal(t, "0", got.String())
		assert.Equal(t, 0, got.Sign())
	})

	t.Run("long carry", func(t *testing.T) {
		got := bigint.MustParse("999999999999999999999999").Add(bigint.One)
		assert.Equal(t, "1000000000000000000000000", got.String())
		assert.Equal(t, 25, got.Len())
	})

	t.Run("division by zero", func(t *testing.T) {
		x := bigint.MustParse("5")
		_, err := x.Quo(bigint.Zero)
		require.ErrorIs(t, err, bigint.ErrDivisionByZero)
		_, err = x.QuoAssign(bigint.Zero)
		require.ErrorIs(t, err, bigint.ErrDivisionByZero)
		assert.Equal(t, "5", x.String())
	})
}

func TestStreamIO(t *testing.T) {
	var sb strings.Builder
	ints := randInts(10, 60)
	for _, x := range ints {
		_, err := fmt.Fprintln(&sb, x)
		require.NoError(t, err)
	}

	r := strings.NewReader(sb.String())
	for _, want := range ints {
		var got bigint.BigInt
		_, err := fmt.Fscan(r, &got)
		require.NoError(t, err)
		assert.True(t, got.Equal(want), "Fscan = %q, want %q", got, want)
	}

	var got bigint.BigInt
	_, err := fmt.Fscan(strings.NewReader("x12"), &got)
	require.ErrorIs(t, err, bigint.ErrInvalidFormat)
	assert.True(t, got.IsZero())
}

func TestConcurrentReads(t *testing.T) {
	ints := randInts(16, 40)
	want := make([]string, len(ints))
	for i, x := range ints {
		want[i] = x.String()
	}

	var g errgroup.Group
	for i := range ints {
		for j := range ints {
			g.Go(func() error {
				x, y := ints[i], ints[j]
				sum := x.Add(y)
				if !sum.Sub(y).Equal(x) {
					return fmt.Errorf("(%v + %v) - %v != %v", x, y, y, x)
				}
				if y.IsZero() {
					return nil
				}
				q, r, err := x.QuoRem(y)
				if err != nil {
					return err
				}
				if !q.Mul(y).Add(r).Equal(x) {
					return fmt.Errorf("division law fails for %v and %v", x, y)
				}
				return nil
			})
		}
	}
	require.NoError(t, g.Wait())

	for i, x := range ints {
		assert.Equal(t, want[i], x.String(), "operand %v changed", i)
	}
}
