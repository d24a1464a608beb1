package v1

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      Number
		expectErr bool
	}{
		{"string encoded", `"1536"`, Number{Value: 1536, Valid: true}, false},
		{"plain number", `42`, Number{Value: 42, Valid: true}, false},
		{"null", `null`, Number{}, false},
		{"empty string", `""`, Number{}, true},
		{"not a number", `"lots"`, Number{}, true},
		{"fractional", `1.5`, Number{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n Number
			err := jsoniter.Unmarshal([]byte(tt.input), &n)

			if tt.expectErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, n)
		})
	}
}

func TestSearchResultDecodesApibayShape(t *testing.T) {
	body := `[{"id":"123","name":"Ubuntu 24.04","info_hash":"ABCDEF0123456789ABCDEF0123456789ABCDEF01","leechers":"3","seeders":"250","num_files":"1","size":"6114656256","username":"someone","added":"1713398400","status":"vip","category":"303","imdb":""}]`

	var results []SearchResult
	require.NoError(t, jsoniter.Unmarshal([]byte(body), &results))
	require.Len(t, results, 1)

	r := results[0]
	assert.Equal(t, "Ubuntu 24.04", r.Name)
	assert.Equal(t, "ABCDEF0123456789ABCDEF0123456789ABCDEF01", r.InfoHash)
	assert.Equal(t, Number{Value: 6114656256, Valid: true}, r.Size)
	assert.Equal(t, int64(250), r.Seeders.Value)
	assert.Equal(t, int64(3), r.Leechers.Value)
}

func TestSearchResultMissingNumberIsInvalid(t *testing.T) {
	var r SearchResult
	require.NoError(t, jsoniter.Unmarshal([]byte(`{"name":"x","info_hash":"y"}`), &r))

	assert.False(t, r.Size.Valid)
	assert.False(t, r.Seeders.Valid)
}
