package bigcast

// This file is highly inspired from https://pkg.go.dev/golang.org/x/exp/constraints

// ISignedInteger is an alias for all signed integers: int, int8, int16, int32, and int64 types.
type ISignedInteger interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// IUnsignedInteger is an alias for all unsigned integers: uint, uint8, uint16, uint32, uint64 and uintptr types.
type IUnsignedInteger interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// IInteger is an alias for the all unsigned and signed integers
type IInteger interface {
	ISignedInteger | IUnsignedInteger
}

// IBigIntConvertable is an alias for every type whose conversion to a [math/big.Int] always
// succeeds: every one of its member types embeds exactly into the integers. Floating point
// types are deliberately absent since a NaN or an infinity has no integer value.
type IBigIntConvertable interface {
	IInteger
}

// IBigUintConvertable is an alias for every type whose conversion to a non-negative
// [math/big.Int] always succeeds. It is narrower than [IBigIntConvertable]: a negative value
// has no unsigned representation, so only the unsigned integers are members.
type IBigUintConvertable interface {
	IUnsignedInteger
}
