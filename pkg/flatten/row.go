package flatten

import (
	"fmt"
	"math"

	"github.com/aarondl/opt/null"
)

// Int returns the integer stored at key.
// Whole float values are accepted since some feeds encode ids as 1.0.
func (r Row) Int(key string) (int, error) {
	v, ok := r[key]
	if !ok || v == nil {
		return 0, fmt.Errorf("%w: %s", ErrMissing, key)
	}
	switch n := v.(type) {
	case int64:
		return int(n), nil
	case int:
		return n, nil
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("%w: %s is not integral (%v)", ErrType, key, n)
		}
		return int(n), nil
	}
	return 0, fmt.Errorf("%w: %s is %T", ErrType, key, v)
}

func (r Row) String(key string) (string, error) {
	v, ok := r[key]
	if !ok || v == nil {
		return "", fmt.Errorf("%w: %s", ErrMissing, key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s is %T", ErrType, key, v)
	}
	return s, nil
}

// StringOr returns the string at key or def if absent or of another type.
func (r Row) StringOr(key, def string) string {
	if s, err := r.String(key); err == nil {
		return s
	}
	return def
}

func (r Row) BoolOr(key string, def bool) bool {
	if b, ok := r[key].(bool); ok {
		return b
	}
	return def
}

// Float returns the number at key. Absent and null values yield a null Val.
func (r Row) Float(key string) (null.Val[float64], error) {
	v, ok := r[key]
	if !ok || v == nil {
		return null.Val[float64]{}, nil
	}
	switch n := v.(type) {
	case float64:
		return null.From(n), nil
	case int64:
		return null.From(float64(n)), nil
	case int:
		return null.From(float64(n)), nil
	}
	return null.Val[float64]{}, fmt.Errorf("%w: %s is %T", ErrType, key, v)
}
