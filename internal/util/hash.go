// Package util contains internal helpers (hashing, nil checks, padding).
//revive:disable:var-naming  // allow 'util' as an internal helpers package name
package util

import (
	"fmt"
	"math"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// Hasher64 lets a value type supply its own identity hash.
// Values that hash equal are treated as the same cache entry.
type Hasher64 interface {
	Hash64() uint64
}

// Hash derives the index key of a value.
// Order of preference: Hasher64, strings/bytes (xxhash), integer and float
// widths (FNV-1a over the little-endian bytes), bool, fmt.Stringer, and
// finally the %#v rendering of the value.
func Hash[T any](v T) uint64 {
	switch x := any(v).(type) {
	case Hasher64:
		return x.Hash64()
	case string:
		return xxhash.Sum64String(x)
	case []byte:
		return xxhash.Sum64(x)

	case uint8:
		return fnv64aFromUint64(uint64(x))
	case uint16:
		return fnv64aFromUint64(uint64(x))
	case uint32:
		return fnv64aFromUint64(uint64(x))
	case uint64:
		return fnv64aFromUint64(x)
	case uint:
		return fnv64aFromUint64(uint64(x))
	case uintptr:
		return fnv64aFromUint64(uint64(x))
	case int8:
		return fnv64aFromUint64(uint64(uint8(x)))
	case int16:
		return fnv64aFromUint64(uint64(uint16(x)))
	case int32:
		return fnv64aFromUint64(uint64(uint32(x)))
	case int64:
		return fnv64aFromUint64(uint64(x))
	case int:
		return fnv64aFromUint64(uint64(x))
	case float32:
		return fnv64aFromUint64(uint64(math.Float32bits(x)))
	case float64:
		return fnv64aFromUint64(math.Float64bits(x))
	case bool:
		if x {
			return fnv64aFromUint64(1)
		}
		return fnv64aFromUint64(0)

	case fmt.Stringer:
		return xxhash.Sum64String(x.String())
	default:
		// Structs hash by field values; pointers inside them hash by address.
		return xxhash.Sum64String(fmt.Sprintf("%#v", v))
	}
}

const (
	fnvOffset64 = 1469598103934665603
	fnvPrime64  = 1099511628211
)

func fnv64aFromUint64(u uint64) uint64 {
	// Hash the 8 little-endian bytes of u without allocating.
	h := uint64(fnvOffset64)
	for i := 0; i < 8; i++ {
		h ^= uint64(byte(u))
		h *= fnvPrime64
		u >>= 8
	}
	return h
}

// IsNil reports whether v is absent: a nil interface, pointer, map, slice,
// func or channel. Non-nillable kinds are never absent.
func IsNil[T any](v T) bool {
	a := any(v)
	if a == nil {
		return true
	}
	rv := reflect.ValueOf(a)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func,
		reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
