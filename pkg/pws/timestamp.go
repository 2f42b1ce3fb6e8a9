package pws

import (
	"fmt"
	"strings"
	"time"
)

// TimestampLayout is the wire format for every timestamp the API sends or
// accepts: millisecond precision, UTC, literal Z.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

const offsetLayout = "2006-01-02T15:04:05-0700"

// Timestamp is a point in time that serializes in TimestampLayout.
type Timestamp struct {
	time.Time
}

// NewTimestamp truncates t to milliseconds and converts it to UTC.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC().Truncate(time.Millisecond)}
}

// ParseTimestamp parses a wire timestamp. A trailing Z is read as +0000.
func ParseTimestamp(value string) (Timestamp, error) {
	normalized := value
	if strings.HasSuffix(normalized, "Z") {
		normalized = strings.TrimSuffix(normalized, "Z") + "+0000"
	}

	parsed, err := time.Parse(offsetLayout, normalized)
	if err != nil {
		return Timestamp{}, fmt.Errorf("parsing timestamp %q: %w", value, err)
	}

	return NewTimestamp(parsed), nil
}

// String returns the wire form.
func (t Timestamp) String() string {
	return t.UTC().Format(TimestampLayout)
}

// MarshalJSON implements json.Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)

	parsed, err := ParseTimestamp(raw)
	if err != nil {
		return err
	}

	*t = parsed

	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (t Timestamp) MarshalYAML() (interface{}, error) {
	return t.String(), nil
}
