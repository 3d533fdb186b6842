package bigcast

import (
	"math"
	"math/big"
	"unsafe"

	"github.com/Amelit-Nexus/infallible-to-big-int/commonerrors"
)

// typeBounds reports whether C is signed along with the extremes of its value range.
// For unsigned types only maximum is meaningful; minimum stays 0.
func typeBounds[C IInteger]() (signed bool, minimum int64, maximum uint64) {
	var zero C
	signed = zero-1 < 0
	shift := 64 - uint(unsafe.Sizeof(zero))*8
	if signed {
		minimum = math.MinInt64 >> shift
		maximum = uint64(int64(math.MaxInt64) >> shift)
	} else {
		maximum = math.MaxUint64 >> shift
	}
	return
}

func overflowError[C IInteger](b *big.Int) error {
	var zero C
	return commonerrors.Newf(commonerrors.ErrOutOfRange, "value %v does not fit in a %T", b, zero)
}

// FromBigInt attempts to convert a [big.Int] back to any [IBigIntConvertable] type.
// Unlike [ToBigInt] this direction can fail: it returns an error wrapping
// [commonerrors.ErrUndefined] when b is nil and one wrapping [commonerrors.ErrOutOfRange]
// when the value of b does not fit in the destination type. The conversion is exact
// whenever it succeeds.
func FromBigInt[C IBigIntConvertable](b *big.Int) (c C, err error) {
	if b == nil {
		err = commonerrors.New(commonerrors.ErrUndefined, "no value to convert")
		return
	}
	signed, minimum, maximum := typeBounds[C]()
	if signed {
		if !b.IsInt64() {
			err = overflowError[C](b)
			return
		}
		value := b.Int64()
		if value < minimum || (value > 0 && uint64(value) > maximum) {
			err = overflowError[C](b)
			return
		}
		c = C(value)
		return
	}
	if b.Sign() < 0 || !b.IsUint64() || b.Uint64() > maximum {
		err = overflowError[C](b)
		return
	}
	c = C(b.Uint64())
	return
}

// FromBigUint attempts to convert a [big.Int] back to any [IBigUintConvertable] type.
// Negative inputs have no unsigned representation and are rejected with an error wrapping
// [commonerrors.ErrOutOfRange].
func FromBigUint[C IBigUintConvertable](b *big.Int) (C, error) {
	return FromBigInt[C](b)
}
