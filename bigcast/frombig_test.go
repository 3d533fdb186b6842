package bigcast

import (
	"math"
	"math/big"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Amelit-Nexus/infallible-to-big-int/commonerrors"
	"github.com/Amelit-Nexus/infallible-to-big-int/commonerrors/errortest"
)

func TestFromBigIntRoundTrip(t *testing.T) {
	t.Run("int8", func(t *testing.T) {
		for _, value := range []int8{math.MinInt8, -1, 0, 1, math.MaxInt8} {
			converted, err := FromBigInt[int8](ToBigInt(value))
			require.NoError(t, err)
			assert.Equal(t, value, converted)
		}
	})
	t.Run("int64", func(t *testing.T) {
		for _, value := range []int64{math.MinInt64, -1, 0, faker.RandomUnixTime(), math.MaxInt64} {
			converted, err := FromBigInt[int64](ToBigInt(value))
			require.NoError(t, err)
			assert.Equal(t, value, converted)
		}
	})
	t.Run("uint16", func(t *testing.T) {
		for _, value := range []uint16{0, 1, math.MaxUint16} {
			converted, err := FromBigUint[uint16](ToBigUint(value))
			require.NoError(t, err)
			assert.Equal(t, value, converted)
		}
	})
	t.Run("uint64", func(t *testing.T) {
		for _, value := range []uint64{0, uint64(faker.RandomUnixTime()), math.MaxUint64} {
			converted, err := FromBigUint[uint64](ToBigUint(value))
			require.NoError(t, err)
			assert.Equal(t, value, converted)
		}
	})
	t.Run("derived type", func(t *testing.T) {
		type counter uint16
		converted, err := FromBigUint[counter](big.NewInt(65535))
		require.NoError(t, err)
		assert.Equal(t, counter(math.MaxUint16), converted)
	})
}

func TestFromBigIntOutOfRange(t *testing.T) {
	t.Run("above destination maximum", func(t *testing.T) {
		_, err := FromBigInt[int8](big.NewInt(math.MaxInt8 + 1))
		errortest.RequireError(t, err, commonerrors.ErrOutOfRange)
	})
	t.Run("below destination minimum", func(t *testing.T) {
		_, err := FromBigInt[int8](big.NewInt(math.MinInt8 - 1))
		errortest.RequireError(t, err, commonerrors.ErrOutOfRange)
	})
	t.Run("negative into unsigned", func(t *testing.T) {
		_, err := FromBigUint[uint64](big.NewInt(-1))
		errortest.RequireError(t, err, commonerrors.ErrOutOfRange)
	})
	t.Run("beyond 64 bits", func(t *testing.T) {
		huge := new(big.Int).Lsh(big.NewInt(1), 100)
		_, err := FromBigInt[int64](huge)
		errortest.AssertError(t, err, commonerrors.ErrOutOfRange)
		_, err = FromBigUint[uint64](huge)
		errortest.AssertError(t, err, commonerrors.ErrOutOfRange)
	})
	t.Run("above MaxInt64 still fits uint64", func(t *testing.T) {
		converted, err := FromBigInt[uint64](new(big.Int).SetUint64(math.MaxUint64))
		require.NoError(t, err)
		assert.Equal(t, uint64(math.MaxUint64), converted)
		_, err = FromBigInt[int64](new(big.Int).SetUint64(math.MaxUint64))
		errortest.RequireError(t, err, commonerrors.ErrOutOfRange)
	})
}

func TestFromBigIntUndefined(t *testing.T) {
	_, err := FromBigInt[int](nil)
	errortest.RequireError(t, err, commonerrors.ErrUndefined)
	_, err = FromBigUint[uint](nil)
	errortest.RequireError(t, err, commonerrors.ErrUndefined)
}
