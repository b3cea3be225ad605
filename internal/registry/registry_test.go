package registry

import (
	"errors"
	"testing"

	"github.com/lox/prng/random"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNames(t *testing.T) {
	assert.Equal(t, []string{
		"well512",
		"xoroshiro128+",
		"xoroshiro256+",
		"xoroshiro512+",
		"xoshiro128**",
		"xoshiro128+",
	}, Names())
	assert.Len(t, All(), 6)
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("mt19937")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownEngine))

	_, err = New("mt19937", 1)
	assert.ErrorIs(t, err, ErrUnknownEngine)
}

func TestEnginesMatchPackageRandom(t *testing.T) {
	e, err := New("xoshiro128+", 0x1234)
	require.NoError(t, err)
	assert.Equal(t, 32, e.Width())
	assert.Equal(t, "xoshiro128+", e.Name())
	assert.Equal(t, uint64(0xD4C24180), e.Rand())

	e, err = New("xoroshiro128+", 0x1234)
	require.NoError(t, err)
	assert.Equal(t, 64, e.Width())
	assert.Equal(t, uint64(0x8D7CBA948B1AA4B9), e.Rand())

	e, err = New("well512", 0x1234)
	require.NoError(t, err)
	assert.Equal(t, uint64(0xF16DF202), e.Rand())
}

func TestSeedTruncatesFor32Bit(t *testing.T) {
	a, err := New("xoshiro128**", 0xFFFFFFFF_00001234)
	require.NoError(t, err)
	b := random.NewXoshiro128StarStar(0x1234)
	for i := 0; i < 16; i++ {
		assert.Equal(t, uint64(b.Rand()), a.Rand())
	}
}

func TestFloatRange(t *testing.T) {
	for _, info := range All() {
		t.Run(info.Name, func(t *testing.T) {
			e := info.New()
			for i := 0; i < 10000; i++ {
				f := e.Float()
				if f < 0 || f >= 1 {
					t.Fatalf("Float() = %v", f)
				}
			}
		})
	}
}

func TestEngineShuffles(t *testing.T) {
	e, err := New("xoshiro128+", 0x1234)
	require.NoError(t, err)

	v := []int{0, 1, 2, 3, 4, 5, 6, 7}
	random.Shuffle(e, v)
	assert.Equal(t, []int{2, 1, 4, 7, 3, 5, 6, 0}, v, "widened output keeps the 32-bit shuffle")
}
