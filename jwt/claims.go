package jwt

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Claims provides generic claims on map
type Claims map[string]any

// String will return the named claim as a string,
// if the underlying type is not a string,
// it will try and co-oerce it to a string.
func (c Claims) String(k string) string {
	v := c[k]
	if v == nil {
		return ""
	}
	switch tv := v.(type) {
	case string:
		return tv
	case json.Number:
		return tv.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Time will return the named claim as Time,
// numeric claims are treated as seconds since epoch
func (c Claims) Time(k string) *time.Time {
	v := c[k]
	if v == nil {
		return nil
	}
	var unix int64
	switch tv := v.(type) {
	case json.Number:
		i, err := tv.Int64()
		if err != nil {
			f, err := tv.Float64()
			if err != nil {
				return nil
			}
			i = int64(f)
		}
		unix = i
	case float64:
		unix = int64(tv)
	case int64:
		unix = tv
	case int:
		unix = int64(tv)
	case string:
		i, err := strconv.ParseInt(tv, 10, 64)
		if err != nil {
			t, err := time.Parse(time.RFC3339, tv)
			if err != nil {
				return nil
			}
			return &t
		}
		unix = i
	default:
		return nil
	}
	t := time.Unix(unix, 0).UTC()
	return &t
}
