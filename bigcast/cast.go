// Package bigcast provides conversions between machine integers and arbitrary precision
// integers which are guaranteed to succeed, so that callers do not have to deal with
// impossible error paths. The guarantee comes from restricting the conversions to closed
// sets of source types ([IBigIntConvertable] and [IBigUintConvertable]) for which every
// representable value embeds exactly into the target.
package bigcast

import (
	"math/big"

	"github.com/shabbyrobe/go-num"
)

// ToBigInt converts any [IBigIntConvertable] value to a [big.Int].
// The result carries the exact value of i; no range or error check is needed since every
// member type of [IBigIntConvertable] embeds into the integers.
func ToBigInt[C IBigIntConvertable](i C) *big.Int {
	if i >= 0 {
		// a non-negative value of any member type fits in a uint64.
		return new(big.Int).SetUint64(uint64(i))
	}
	return big.NewInt(int64(i))
}

// ToBigUint converts any [IBigUintConvertable] value to a [big.Int].
// The result carries the exact value of i and is always non-negative.
func ToBigUint[C IBigUintConvertable](i C) *big.Int {
	return new(big.Int).SetUint64(uint64(i))
}

// ToBigIntFromI128 converts a 128 bit signed integer to a [big.Int] carrying the exact
// same value. Go has no primitive 128 bit integers so this conversion cannot be part of
// [IBigIntConvertable] and is provided as a dedicated function instead.
func ToBigIntFromI128(i num.I128) *big.Int {
	return i.AsBigInt()
}

// ToBigIntFromU128 converts a 128 bit unsigned integer to a [big.Int] carrying the exact
// same value.
func ToBigIntFromU128(u num.U128) *big.Int {
	return u.AsBigInt()
}

// ToBigUintFromU128 converts a 128 bit unsigned integer to a non-negative [big.Int]
// carrying the exact same value.
func ToBigUintFromU128(u num.U128) *big.Int {
	return u.AsBigInt()
}
