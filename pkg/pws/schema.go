package pws

import (
	"encoding/json"
	"fmt"
	"math"
	"net/netip"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"time"
)

// FieldType is the primitive kind a field value must have before its
// format check runs.
type FieldType int

// Field types.
const (
	TypeAny FieldType = iota
	TypeString
	TypeBool
	TypeInt
	TypeFloat
	TypeList
)

// Check validates a value that already passed the type check and returns
// the value to store. Returning a nil value with ok set drops the field.
type Check func(value any) (any, bool)

// Rule declares the constraints for a single field.
type Rule struct {
	// Name is the wire name of the field.
	Name string
	// Required fields must be present in every input.
	Required bool
	// Nullable fields accept an explicit nil, which leaves the field absent.
	Nullable bool
	// Type is checked before Check.
	Type FieldType
	// Check is an optional format constraint layered on top of Type.
	Check Check
	// Message is reported when Type or Check rejects the value.
	Message string
	// MissingMessage is reported when a required field is absent.
	MissingMessage string
}

// Schema is an ordered table of field rules.
type Schema []Rule

// Rule returns the rule for name.
func (s Schema) Rule(name string) (Rule, bool) {
	for _, rule := range s {
		if rule.Name == name {
			return rule, true
		}
	}

	return Rule{}, false
}

// Names returns the field names in schema order.
func (s Schema) Names() []string {
	names := make([]string, 0, len(s))
	for _, rule := range s {
		names = append(names, rule.Name)
	}

	return names
}

// Known returns a copy of input restricted to the fields the schema declares.
// Server responses go through Known before Validate so new server-side fields
// do not break decoding.
func (s Schema) Known(input map[string]any) map[string]any {
	known := make(map[string]any, len(input))

	for key, value := range input {
		if _, ok := s.Rule(key); ok {
			known[key] = value
		}
	}

	return known
}

// Validate checks input against every rule and returns the accepted fields.
// All violations are collected; on failure the returned Fields is nil.
func (s Schema) Validate(input map[string]any) (Fields, error) {
	accepted := make(Fields, len(input))

	var violations []Violation

	for _, rule := range s {
		raw, present := input[rule.Name]
		if !present {
			if rule.Required {
				violations = append(violations, Violation{Field: rule.Name, Message: rule.missingMessage()})
			}

			continue
		}

		value, ok := rule.apply(raw)
		if !ok {
			violations = append(violations, Violation{Field: rule.Name, Message: rule.message()})

			continue
		}

		if value == nil {
			if rule.Required {
				violations = append(violations, Violation{Field: rule.Name, Message: rule.missingMessage()})
			}

			continue
		}

		accepted[rule.Name] = value
	}

	unknown := make([]string, 0)

	for key := range input {
		if _, ok := s.Rule(key); !ok {
			unknown = append(unknown, key)
		}
	}

	sort.Strings(unknown)

	for _, key := range unknown {
		violations = append(violations, Violation{Field: key, Message: fmt.Sprintf("Wrong key %q", key)})
	}

	if len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}

	return accepted, nil
}

func (r Rule) apply(raw any) (any, bool) {
	if raw == nil {
		return nil, r.Nullable
	}

	value, ok := coerce(r.Type, raw)
	if !ok {
		return nil, false
	}

	if r.Check == nil {
		return value, true
	}

	return r.Check(value)
}

func (r Rule) message() string {
	if r.Message != "" {
		return r.Message
	}

	return fmt.Sprintf("%q has an invalid value", r.Name)
}

func (r Rule) missingMessage() string {
	if r.MissingMessage != "" {
		return r.MissingMessage
	}

	return fmt.Sprintf("%q is required", r.Name)
}

func coerce(fieldType FieldType, raw any) (any, bool) {
	switch fieldType {
	case TypeString:
		s, ok := raw.(string)

		return s, ok
	case TypeBool:
		b, ok := raw.(bool)

		return b, ok
	case TypeInt:
		return toInt(raw)
	case TypeFloat:
		return toFloat(raw)
	case TypeList:
		if raw == nil || reflect.TypeOf(raw).Kind() != reflect.Slice {
			return nil, false
		}

		return raw, true
	case TypeAny:
		return raw, true
	default:
		return nil, false
	}
}

func toInt(raw any) (any, bool) {
	switch v := raw.(type) {
	case int:
		return v, true
	case int8:
		return int(v), true
	case int16:
		return int(v), true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case uint8:
		return int(v), true
	case uint16:
		return int(v), true
	case uint32:
		return int(v), true
	case uint64:
		if v > math.MaxInt64 {
			return nil, false
		}

		return int(v), true
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) {
			return nil, false
		}

		return int(v), true
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return nil, false
		}

		return int(n), true
	default:
		return nil, false
	}
}

func toFloat(raw any) (any, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return nil, false
		}

		return f, true
	case bool:
		return nil, false
	default:
		n, ok := toInt(raw)
		if !ok {
			return nil, false
		}

		return float64(n.(int)), true
	}
}

// Pattern rules shared by every resource.
var (
	IDPattern    = regexp.MustCompile(`(?i)^[a-zA-Z0-9]{8,}$`)
	TitlePattern = regexp.MustCompile(`(?i)[a-zA-Z0-9]+`)
)

// MatchPattern accepts strings matching re.
func MatchPattern(re *regexp.Regexp) Check {
	return func(value any) (any, bool) {
		s, ok := value.(string)
		if !ok || !re.MatchString(s) {
			return nil, false
		}

		return s, true
	}
}

// OneOf accepts strings from a closed set.
func OneOf(allowed ...string) Check {
	return func(value any) (any, bool) {
		s, ok := value.(string)
		if !ok {
			return nil, false
		}

		for _, candidate := range allowed {
			if s == candidate {
				return s, true
			}
		}

		return nil, false
	}
}

// Choice is an enumeration member known by a short code and a label.
type Choice struct {
	Code  string
	Label string
}

// OneOfChoices accepts either the code or the label of a choice. The value
// is stored as supplied.
func OneOfChoices(choices []Choice) Check {
	return func(value any) (any, bool) {
		s, ok := value.(string)
		if !ok {
			return nil, false
		}

		for _, choice := range choices {
			if s == choice.Code || s == choice.Label {
				return s, true
			}
		}

		return nil, false
	}
}

// IntRange accepts integers in [lo, hi].
func IntRange(lo, hi int) Check {
	return func(value any) (any, bool) {
		n, ok := value.(int)
		if !ok || n < lo || n > hi {
			return nil, false
		}

		return n, true
	}
}

// CanonicalIP accepts an IPv4 or IPv6 address and stores its canonical form.
// Zoned addresses are rejected.
func CanonicalIP(value any) (any, bool) {
	s, ok := value.(string)
	if !ok {
		return nil, false
	}

	addr, err := netip.ParseAddr(s)
	if err != nil || addr.Zone() != "" {
		return nil, false
	}

	return addr.String(), true
}

// TimestampValue accepts a wire timestamp string, a Timestamp or a
// time.Time. An empty string leaves the field absent.
func TimestampValue(value any) (any, bool) {
	switch v := value.(type) {
	case Timestamp:
		return NewTimestamp(v.Time), true
	case time.Time:
		return NewTimestamp(v), true
	case string:
		if v == "" {
			return nil, true
		}

		ts, err := ParseTimestamp(v)
		if err != nil {
			return nil, false
		}

		return ts, true
	default:
		return nil, false
	}
}

// StringList accepts a slice whose elements are all strings.
func StringList(value any) (any, bool) {
	switch v := value.(type) {
	case []string:
		return append([]string(nil), v...), true
	case []any:
		out := make([]string, 0, len(v))

		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}

			out = append(out, s)
		}

		return out, true
	default:
		return nil, false
	}
}

// MapList accepts a slice of checklist entries: maps whose values are all
// strings, such as {"0": "Log In?"}.
func MapList(value any) (any, bool) {
	switch v := value.(type) {
	case []map[string]any:
		for _, item := range v {
			if !stringValues(item) {
				return nil, false
			}
		}

		return v, true
	case []map[string]string:
		out := make([]map[string]any, 0, len(v))

		for _, item := range v {
			converted := make(map[string]any, len(item))
			for key, val := range item {
				converted[key] = val
			}

			out = append(out, converted)
		}

		return out, true
	case []any:
		out := make([]map[string]any, 0, len(v))

		for _, item := range v {
			m, ok := item.(map[string]any)
			if !ok || !stringValues(m) {
				return nil, false
			}

			out = append(out, m)
		}

		return out, true
	default:
		return nil, false
	}
}

func stringValues(m map[string]any) bool {
	for _, val := range m {
		if _, ok := val.(string); !ok {
			return false
		}
	}

	return true
}

// quoteList renders values the way the enumeration messages list them:
// 'a', 'b', 'c'.
func quoteList(values []string) string {
	quoted := make([]string, 0, len(values))
	for _, v := range values {
		quoted = append(quoted, "'"+v+"'")
	}

	return strings.Join(quoted, ", ")
}

func idRule(name string, required bool) Rule {
	return Rule{
		Name:     name,
		Required: required,
		Nullable: !required,
		Type:     TypeString,
		Check:    MatchPattern(IDPattern),
		Message:  fmt.Sprintf("%q should be 8 alphanumeric characters", name),
	}
}

func stringRule(name, message string) Rule {
	return Rule{Name: name, Nullable: true, Type: TypeString, Message: message}
}

func boolRule(name string) Rule {
	return Rule{
		Name:     name,
		Nullable: true,
		Type:     TypeBool,
		Message:  fmt.Sprintf("%q should be True/False boolean", name),
	}
}

func titleRule(message string) Rule {
	return Rule{
		Name:           "title",
		Required:       true,
		Type:           TypeString,
		Check:          MatchPattern(TitlePattern),
		Message:        message,
		MissingMessage: message,
	}
}

func timestampRule(name string) Rule {
	return Rule{
		Name:     name,
		Nullable: true,
		Type:     TypeAny,
		Check:    TimestampValue,
		Message:  fmt.Sprintf("%q should be a timestamp formatted as YYYY-MM-DDTHH:MM:SS.mmmZ", name),
	}
}
