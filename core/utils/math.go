package utils

import "math"

// SaturatingAdd returns x+y, clamped to math.MaxUint64 instead of wrapping.
func SaturatingAdd(x, y uint64) uint64 {
	if x > math.MaxUint64-y {
		return math.MaxUint64
	}
	return x + y
}

// CeilDiv returns ceil(x/y). It panics when y is 0.
func CeilDiv(x, y uint64) uint64 {
	if y == 0 {
		panic("utils: division by zero")
	}
	q := x / y
	if x%y != 0 {
		q++
	}
	return q
}

// MinUint64 returns the smaller of x and y.
func MinUint64(x, y uint64) uint64 {
	if x < y {
		return x
	}
	return y
}
