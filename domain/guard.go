package domain

import (
	"reflect"
)

// RequireNumber returns v as a float64 when it holds a Go numeric type and
// fails with onFail otherwise. Booleans and numeric-looking strings are not
// numbers. NaN and the infinities are numbers.
func RequireNumber(v any, onFail *Error) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int8:
		return float64(n), nil
	case int16:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case uint8:
		return float64(n), nil
	case uint16:
		return float64(n), nil
	case uint32:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	}
	return 0, onFail
}

// RequireNumbers checks a pair of operands, failing with onFail if either one
// is not a number.
func RequireNumbers(a, b any, onFail *Error) (float64, float64, error) {
	x, errA := RequireNumber(a, onFail)
	y, errB := RequireNumber(b, onFail)
	if errA != nil || errB != nil {
		return 0, 0, onFail
	}
	return x, y, nil
}

// RequireText returns v as a string or fails with onFail.
func RequireText(v any, onFail *Error) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", onFail
	}
	return s, nil
}

// RequireBool returns v as a bool or fails with onFail.
func RequireBool(v any, onFail *Error) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, onFail
	}
	return b, nil
}

// RequireSequence returns the elements of any slice or array held in v, in
// order. A nil slice is an empty sequence; strings, maps and untyped nil are
// not sequences.
func RequireSequence(v any, onFail *Error) ([]any, error) {
	if seq, ok := v.([]any); ok {
		return seq, nil
	}
	rv := reflect.ValueOf(v)
	if kind := rv.Kind(); kind != reflect.Slice && kind != reflect.Array {
		return nil, onFail
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, nil
}

// RequireNumericSequence applies RequireSequence and then checks every element
// left to right. An empty sequence fails with ErrEmptyArray.
func RequireNumericSequence(v any) ([]float64, error) {
	seq, err := RequireSequence(v, ErrNotArray)
	if err != nil {
		return nil, err
	}
	if len(seq) == 0 {
		return nil, ErrEmptyArray
	}
	out := make([]float64, len(seq))
	for i, el := range seq {
		n, err := RequireNumber(el, ErrNonNumericElement)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}
