package domain

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// flexTimeKind tags which JSON variant a FlexTime was decoded from.
type flexTimeKind int

const (
	flexTimeAbsent flexTimeKind = iota
	flexTimeNumber
	flexTimeString
)

// FlexTime is a timestamp the upstream API encodes either as epoch seconds
// (JSON number) or as a date-time string. The variant is captured once at the
// JSON boundary; Instant is the single normalization path to time.Time, so
// code downstream of decoding never branches on the raw representation.
type FlexTime struct {
	kind flexTimeKind
	unix float64
	str  string
}

// UnixSeconds constructs a FlexTime from epoch seconds.
func UnixSeconds(sec int64) FlexTime {
	return FlexTime{kind: flexTimeNumber, unix: float64(sec)}
}

// TimeString constructs a FlexTime from a date-time string.
func TimeString(s string) FlexTime {
	return FlexTime{kind: flexTimeString, str: s}
}

// stringLayouts are tried in order when normalizing a string variant.
var stringLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Instant normalizes the timestamp to a UTC instant. ok is false for absent
// values, non-positive epoch seconds, and strings that parse under no known
// layout.
func (t FlexTime) Instant() (time.Time, bool) {
	switch t.kind {
	case flexTimeNumber:
		if t.unix <= 0 {
			return time.Time{}, false
		}
		sec := int64(t.unix)
		nsec := int64((t.unix - float64(sec)) * float64(time.Second))
		return time.Unix(sec, nsec).UTC(), true
	case flexTimeString:
		s := strings.TrimSpace(t.str)
		if s == "" {
			return time.Time{}, false
		}
		for _, layout := range stringLayouts {
			if ts, err := time.Parse(layout, s); err == nil {
				return ts.UTC(), true
			}
		}
		// Some endpoints stringify the epoch-seconds form.
		if sec, err := strconv.ParseFloat(s, 64); err == nil {
			return FlexTime{kind: flexTimeNumber, unix: sec}.Instant()
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}

// UnmarshalJSON accepts a JSON number, a JSON string, or null.
func (t *FlexTime) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*t = FlexTime{}
		return nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = FlexTime{kind: flexTimeString, str: s}
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*t = FlexTime{kind: flexTimeNumber, unix: n}
	return nil
}

// MarshalJSON re-emits the variant the value was decoded from.
func (t FlexTime) MarshalJSON() ([]byte, error) {
	switch t.kind {
	case flexTimeNumber:
		return json.Marshal(t.unix)
	case flexTimeString:
		return json.Marshal(t.str)
	default:
		return []byte("null"), nil
	}
}
