package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeCityList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		want    []string
		wantErr bool
	}{
		{name: "empty", raw: "", want: nil},
		{name: "json null", raw: "null", want: nil},
		{name: "empty array", raw: "[]", want: []string{}},
		{name: "array", raw: `["Amman", "Irbid"]`, want: []string{"Amman", "Irbid"}},
		{name: "drops blanks and non strings", raw: `["Amman", "", "  ", 42, null]`, want: []string{"Amman"}},
		{name: "trims entries", raw: `[" Zarqa "]`, want: []string{"Zarqa"}},
		{name: "legacy string encoded array", raw: `"[\"Amman\",\"Aqaba\"]"`, want: []string{"Amman", "Aqaba"}},
		{name: "legacy comma separated string", raw: `"Amman, Irbid ,"`, want: []string{"Amman", "Irbid"}},
		{name: "legacy empty string", raw: `""`, want: nil},
		{name: "object rejected", raw: `{"city":"Amman"}`, wantErr: true},
		{name: "broken array", raw: `["Amman"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := decodeCityList([]byte(tt.raw))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeCityList(t *testing.T) {
	t.Parallel()

	assert.JSONEq(t, `[]`, string(encodeCityList(nil)))
	assert.JSONEq(t, `["Amman","São Paulo"]`, string(encodeCityList([]string{" Amman", "", "São Paulo"})))

	back, err := decodeCityList(encodeCityList([]string{"Irbid"}))
	require.NoError(t, err)
	assert.Equal(t, []string{"Irbid"}, back)
}
