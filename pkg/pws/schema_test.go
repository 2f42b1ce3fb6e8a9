package pws_test

import (
	"encoding/json"
	"testing"

	"github.com/bjb28/pws-api-wrapper/pkg/pws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchema_Validate(t *testing.T) {
	t.Parallel()

	schema := pws.Schema{
		{Name: "name", Required: true, Type: pws.TypeString, Message: "bad name"},
		{Name: "count", Type: pws.TypeInt, Check: pws.IntRange(1, 10), Message: "bad count"},
		{Name: "note", Nullable: true, Type: pws.TypeString, Message: "bad note"},
	}

	t.Run("accepts valid input", func(t *testing.T) {
		t.Parallel()

		fields, err := schema.Validate(map[string]any{"name": "a", "count": 3})
		require.NoError(t, err)
		assert.Equal(t, pws.Fields{"name": "a", "count": 3}, fields)
	})

	t.Run("reports missing required field", func(t *testing.T) {
		t.Parallel()

		_, err := schema.Validate(map[string]any{})
		require.Error(t, err)
		assert.Equal(t, `"name" is required`, err.Error())
	})

	t.Run("collects every violation in schema order", func(t *testing.T) {
		t.Parallel()

		_, err := schema.Validate(map[string]any{"name": 1, "count": 11, "extra": true})

		validationErr := &pws.ValidationError{}
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, []string{"bad name", "bad count", `Wrong key "extra"`}, validationErr.Messages())

		violation, ok := validationErr.Field("count")
		require.True(t, ok)
		assert.Equal(t, "bad count", violation.Message)
	})

	t.Run("explicit nil on nullable field leaves it absent", func(t *testing.T) {
		t.Parallel()

		fields, err := schema.Validate(map[string]any{"name": "a", "note": nil})
		require.NoError(t, err)
		assert.False(t, fields.Has("note"))
	})

	t.Run("explicit nil on non-nullable field fails", func(t *testing.T) {
		t.Parallel()

		_, err := schema.Validate(map[string]any{"name": "a", "count": nil})
		require.EqualError(t, err, "bad count")
	})

	t.Run("normalizes numeric kinds to int", func(t *testing.T) {
		t.Parallel()

		for _, raw := range []any{int64(4), float64(4), json.Number("4"), uint16(4)} {
			fields, err := schema.Validate(map[string]any{"name": "a", "count": raw})
			require.NoError(t, err)
			assert.Equal(t, 4, fields["count"])
		}
	})

	t.Run("rejects non-integral numbers and booleans for int fields", func(t *testing.T) {
		t.Parallel()

		for _, raw := range []any{4.5, true, "4", json.Number("4.5")} {
			_, err := schema.Validate(map[string]any{"name": "a", "count": raw})
			require.EqualError(t, err, "bad count", "value %v", raw)
		}
	})
}

func TestSchema_Known(t *testing.T) {
	t.Parallel()

	known := pws.PortSchema.Known(map[string]any{"port": 22, "created_by": "someone"})
	assert.Equal(t, map[string]any{"port": 22}, known)
}

func TestCanonicalIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input any
		want  string
		ok    bool
	}{
		{name: "ipv4", input: "192.168.1.10", want: "192.168.1.10", ok: true},
		{name: "ipv6 compressed", input: "2001:0db8:85a3:0000:0000:8a2e:0370:7334", want: "2001:db8:85a3::8a2e:370:7334", ok: true},
		{name: "octet out of range", input: "456.1.1.1"},
		{name: "too many octets", input: "1.2.3.4.5"},
		{name: "long octet", input: "2456.1.1.1"},
		{name: "word", input: "test"},
		{name: "empty", input: ""},
		{name: "ipv6 with suffix", input: "2001:0db8:85a3:0000:0000:8a2e:0370:7334:asdf"},
		{name: "zoned", input: "fe80::1%eth0"},
		{name: "not a string", input: 1},
		{name: "surrounding whitespace", input: " 10.0.0.1 "},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got, ok := pws.CanonicalIP(testCase.input)
			assert.Equal(t, testCase.ok, ok)

			if testCase.ok {
				assert.Equal(t, testCase.want, got)
			}
		})
	}
}

func TestOneOfChoices(t *testing.T) {
	t.Parallel()

	check := pws.OneOfChoices(pws.OSTypes)

	for _, value := range []string{"linux", "Linux", "windows", "Unknown"} {
		got, ok := check(value)
		assert.True(t, ok, value)
		assert.Equal(t, value, got)
	}

	_, ok := check("invented")
	assert.False(t, ok)
}

func TestListChecks(t *testing.T) {
	t.Parallel()

	strs, ok := pws.StringList([]any{"a", "b"})
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, strs)

	_, ok = pws.StringList([]any{"a", 1})
	assert.False(t, ok)

	maps, ok := pws.MapList([]any{map[string]any{"0": "Log In?"}})
	require.True(t, ok)
	assert.Equal(t, []map[string]any{{"0": "Log In?"}}, maps)

	maps, ok = pws.MapList([]map[string]string{{"0": "Log In?"}})
	require.True(t, ok)
	assert.Equal(t, []map[string]any{{"0": "Log In?"}}, maps)

	_, ok = pws.MapList([]any{"not a map"})
	assert.False(t, ok)

	_, ok = pws.MapList([]any{map[string]any{"a": 1, "b": 2}})
	assert.False(t, ok)

	_, ok = pws.MapList([]map[string]any{{"0": true}})
	assert.False(t, ok)
}
