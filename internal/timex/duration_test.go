package timex

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestUnmarshalJSON_String(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`"15s"`), &d))
	require.Equal(t, 15*time.Second, d.Duration)
}

func TestUnmarshalJSON_Nanoseconds(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`1000000000`), &d))
	require.Equal(t, time.Second, d.Duration)
}

func TestUnmarshalJSON_InvalidString(t *testing.T) {
	var d Duration
	require.Error(t, json.Unmarshal([]byte(`"soon"`), &d))
}

func TestUnmarshalJSON_InvalidType(t *testing.T) {
	var d Duration
	require.Error(t, json.Unmarshal([]byte(`true`), &d))
}

func TestMarshalJSON_RoundTrip(t *testing.T) {
	out, err := json.Marshal(Duration{Duration: 90 * time.Second})
	require.NoError(t, err)

	var d Duration
	require.NoError(t, json.Unmarshal(out, &d))
	require.Equal(t, 90*time.Second, d.Duration)
}
