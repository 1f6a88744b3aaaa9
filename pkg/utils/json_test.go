package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrettyJson(t *testing.T) {
	tests := []struct {
		name     string
		in       any
		validate func(t *testing.T, out string, err error)
	}{
		{
			name: "struct is indented with spaces",
			in: struct {
				Visitors int     `json:"visitors"`
				Rate     float64 `json:"rate"`
			}{Visitors: 10, Rate: 12.5},
			validate: func(t *testing.T, out string, err error) {
				require.NoError(t, err)
				assert.Equal(t, "{\n  \"visitors\": 10,\n  \"rate\": 12.5\n}", out)
			},
		},
		{
			name: "nested values keep nesting",
			in:   map[string]any{"rows": []any{map[string]any{"value": 1}}},
			validate: func(t *testing.T, out string, err error) {
				require.NoError(t, err)
				assert.Contains(t, out, "\n      \"value\": 1")
				assert.NotContains(t, out, "\t")
			},
		},
		{
			name: "raw bytes are re-indented",
			in:   []byte(`{"a":[1,2]}`),
			validate: func(t *testing.T, out string, err error) {
				require.NoError(t, err)
				assert.Equal(t, "{\n  \"a\": [\n    1,\n    2\n  ]\n}", out)
			},
		},
		{
			name: "invalid raw bytes are an error",
			in:   []byte(`{"a":`),
			validate: func(t *testing.T, out string, err error) {
				assert.Error(t, err)
				assert.Empty(t, out)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := PrettyJson(tt.in)
			tt.validate(t, out, err)
		})
	}
}
