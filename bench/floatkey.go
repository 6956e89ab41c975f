package bench

import "math"

// Order-preserving IEEE-754 key transform: float bits map to a monotonic
// signed integer key (flip the sign bit for non-negative values, complement
// all bits for negative values), so an integer sorter yields correct float
// order including negative values, signed zero (-0 before +0) and a fixed
// NaN placement. Decode inverts the transform exactly, bit for bit.

// Float32Key encodes f as a signed-sortable 32-bit key.
func Float32Key(f float32) int32 {
	u := math.Float32bits(f)
	var ukey uint32
	if u&0x8000_0000 != 0 {
		ukey = ^u
	} else {
		ukey = u ^ 0x8000_0000
	}
	return int32(ukey ^ 0x8000_0000)
}

// Float32FromKey inverts Float32Key.
func Float32FromKey(k int32) float32 {
	ukey := uint32(k) ^ 0x8000_0000
	var u uint32
	if ukey&0x8000_0000 != 0 {
		u = ukey ^ 0x8000_0000
	} else {
		u = ^ukey
	}
	return math.Float32frombits(u)
}

// Float64Key encodes f as a signed-sortable 64-bit key.
func Float64Key(f float64) int64 {
	u := math.Float64bits(f)
	var ukey uint64
	if u&(1<<63) != 0 {
		ukey = ^u
	} else {
		ukey = u ^ 1<<63
	}
	return int64(ukey ^ 1<<63)
}

// Float64FromKey inverts Float64Key.
func Float64FromKey(k int64) float64 {
	ukey := uint64(k) ^ 1<<63
	var u uint64
	if ukey&(1<<63) != 0 {
		u = ukey ^ 1<<63
	} else {
		u = ^ukey
	}
	return math.Float64frombits(u)
}

// radixSortFKey32 sorts floats by encoding to integer keys, radix-sorting
// the keys, and decoding back.
func radixSortFKey32(v []float32) {
	if len(v) < 2 {
		return
	}
	keys := make([]int32, len(v))
	for i, f := range v {
		keys[i] = Float32Key(f)
	}
	radixSortLSD(keys, 32, true)
	for i, k := range keys {
		v[i] = Float32FromKey(k)
	}
}

func radixSortFKey64(v []float64) {
	if len(v) < 2 {
		return
	}
	keys := make([]int64, len(v))
	for i, f := range v {
		keys[i] = Float64Key(f)
	}
	radixSortLSD(keys, 64, true)
	for i, k := range keys {
		v[i] = Float64FromKey(k)
	}
}
