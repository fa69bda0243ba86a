package utils

import "strconv"

// Safe lookups over generically decoded JSON (map[string]any). Every helper
// walks a key path and degrades to nil when a key is absent, a value is null,
// or a value has an unexpected shape, so the record survives with the
// field unset.

func dig(m map[string]any, keys ...string) (any, bool) {
	var cur any = m
	for _, k := range keys {
		mm, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = mm[k]
		if !ok {
			return nil, false
		}
	}
	if cur == nil {
		return nil, false
	}
	return cur, true
}

// DigSlice walks the key path and returns the nested array, or nil.
func DigSlice(m map[string]any, keys ...string) []any {
	v, ok := dig(m, keys...)
	if !ok {
		return nil
	}
	s, _ := v.([]any)
	return s
}

// DigString walks the key path and returns the value rendered as a string.
// Numbers and booleans are formatted; empty strings count as absent.
func DigString(m map[string]any, keys ...string) *string {
	v, ok := dig(m, keys...)
	if !ok {
		return nil
	}
	var s string
	switch val := v.(type) {
	case string:
		s = val
	case float64:
		s = strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		s = strconv.FormatBool(val)
	default:
		return nil
	}
	if s == "" {
		return nil
	}
	return &s
}

// DigFloat walks the key path and returns a numeric value. Numeric strings
// are accepted; anything else is absent.
func DigFloat(m map[string]any, keys ...string) *float64 {
	v, ok := dig(m, keys...)
	if !ok {
		return nil
	}
	switch val := v.(type) {
	case float64:
		return &val
	case string:
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return nil
		}
		return &f
	}
	return nil
}

// DigInt walks the key path and returns an integer value. Fractional numbers
// are absent, not truncated.
func DigInt(m map[string]any, keys ...string) *int {
	f := DigFloat(m, keys...)
	if f == nil {
		return nil
	}
	n := int(*f)
	if float64(n) != *f {
		return nil
	}
	return &n
}
