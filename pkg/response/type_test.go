package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus-lost-found/pkg/response"
)

func TestDateTimeMarshalJSON(t *testing.T) {
	saoPaulo := time.FixedZone("BRT", -3*60*60)

	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"utc", time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC), `"2024-05-01T15:30:00Z"`},
		{"converted to utc", time.Date(2024, 5, 1, 22, 0, 0, 0, saoPaulo), `"2024-05-02T01:00:00Z"`},
		{"zero", time.Time{}, `null`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(response.DateTime(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(b))
		})
	}
}

func TestDateTimeInStruct(t *testing.T) {
	at := response.DateTime(time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC))
	b, err := json.Marshal(struct {
		FetchedAt *response.DateTime `json:"fetchedAt,omitempty"`
	}{FetchedAt: &at})
	require.NoError(t, err)
	assert.JSONEq(t, `{"fetchedAt":"2024-05-10T12:00:00Z"}`, string(b))
}
