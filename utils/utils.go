// Package utils holds stateless string, number and sequence helpers.
package utils

import (
	"math"
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fastygo/valueops/domain"
)

// Number is the set of types accepted by the numeric helpers.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// ReverseString reverses s rune by rune. Grapheme clusters built from several
// runes (combining marks, flag emoji) come out in reversed rune order. Bytes
// that are not valid UTF-8 are moved one at a time and kept as-is; a run of
// them can recombine into a valid rune, so such strings may not survive a
// second reversal.
func ReverseString(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for end := len(s); end > 0; {
		_, size := utf8.DecodeLastRuneInString(s[:end])
		b.WriteString(s[end-size : end])
		end -= size
	}
	return b.String()
}

// Capitalize upper-cases the first rune and lower-cases the rest.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	first, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(first)) + strings.ToLower(s[size:])
}

// IsEven reports whether n mod 2 is zero. Integers are checked exactly;
// fractional floats are never even.
func IsEven[T Number](n T) bool {
	rv := reflect.ValueOf(n)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()%2 == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint()%2 == 0
	default:
		return math.Mod(rv.Float(), 2) == 0
	}
}

// RemoveDuplicates keeps the first occurrence of every value, preserving order.
// All NaNs count as one value. The input is not modified.
func RemoveDuplicates[T comparable](values []T) []T {
	seen := make(map[T]struct{}, len(values))
	out := make([]T, 0, len(values))
	sawNaN := false
	for _, v := range values {
		if v != v && isNaN(v) {
			if !sawNaN {
				sawNaN = true
				out = append(out, v)
			}
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// RemoveDuplicateValues is RemoveDuplicates for heterogeneous values.
// Comparable values dedupe by ==, with NaNs of the same type counted once.
// Maps, slices and funcs have no usable equality and are always kept.
func RemoveDuplicateValues(values []any) []any {
	seen := make(map[any]struct{}, len(values))
	sawNaN := make(map[reflect.Type]bool)
	out := make([]any, 0, len(values))
	for _, v := range values {
		if v != nil && !reflect.ValueOf(v).Comparable() {
			out = append(out, v)
			continue
		}
		if v != v && isNaN(v) {
			typ := reflect.TypeOf(v)
			if !sawNaN[typ] {
				sawNaN[typ] = true
				out = append(out, v)
			}
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func isNaN(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return math.IsNaN(rv.Float())
	}
	return false
}

// Average returns the arithmetic mean of values.
func Average[T Number](values []T) (float64, error) {
	if len(values) == 0 {
		return 0, domain.ErrEmptyArray
	}
	var sum float64
	for _, v := range values {
		sum += float64(v)
	}
	return sum / float64(len(values)), nil
}
