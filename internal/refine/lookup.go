package refine

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// lookupAny walks a dotted path through nested objects.
func lookupAny(m map[string]any, path string) any {
	cur := any(m)
	for _, part := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		v, ok := obj[part]
		if !ok {
			return nil
		}
		cur = v
	}
	return cur
}

func lookupStr(m map[string]any, path string) string {
	if s, ok := lookupAny(m, path).(string); ok {
		return s
	}
	return ""
}

// lookupFloat reads a number, a json.Number or a numeric string ("1,200" allowed).
func lookupFloat(m map[string]any, path string) (float64, bool) {
	var f float64
	switch v := lookupAny(m, path).(type) {
	case float64:
		f = v
	case int:
		f = float64(v)
	case int64:
		f = float64(v)
	case json.Number:
		x, err := v.Float64()
		if err != nil {
			return 0, false
		}
		f = x
	case string:
		s := strings.ReplaceAll(strings.TrimSpace(v), ",", "")
		if s == "" {
			return 0, false
		}
		x, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		f = x
	default:
		return 0, false
	}
	if math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

func lookupBool(m map[string]any, path string) bool {
	switch v := lookupAny(m, path).(type) {
	case bool:
		return v
	case string:
		b, _ := strconv.ParseBool(strings.TrimSpace(v))
		return b
	}
	return false
}

// lookupTime reads an RFC 3339 string or unix milliseconds.
func lookupTime(m map[string]any, path string) (time.Time, bool) {
	if s := strings.TrimSpace(lookupStr(m, path)); s != "" {
		if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
			return t, true
		}
		return time.Time{}, false
	}
	if ms, ok := lookupFloat(m, path); ok {
		return time.UnixMilli(int64(ms)), true
	}
	return time.Time{}, false
}
