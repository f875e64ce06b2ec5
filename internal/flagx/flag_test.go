package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilterArgs_SeparateValue(t *testing.T) {
	got := FilterArgs([]string{"-a", "http://x", "-q", "noise"}, []string{"-a"})
	require.Equal(t, []string{"-a", "http://x"}, got)
}

func TestFilterArgs_EqualsForm(t *testing.T) {
	got := FilterArgs([]string{"--config=conf.json", "-a=http://x"}, []string{"--config"})
	require.Equal(t, []string{"--config=conf.json"}, got)
}

func TestFilterArgs_BooleanFlagWithoutValue(t *testing.T) {
	got := FilterArgs([]string{"-v", "-a", "http://x"}, []string{"-v"})
	require.Equal(t, []string{"-v"}, got)
}

func TestFilterArgs_NothingAllowed(t *testing.T) {
	got := FilterArgs([]string{"-a", "http://x"}, nil)
	require.Empty(t, got)
}

func TestJsonConfigFlags(t *testing.T) {
	old := os.Args
	t.Cleanup(func() { os.Args = old })

	os.Args = []string{"libris", "-c", "conf.json"}
	require.Equal(t, "conf.json", JsonConfigFlags())

	os.Args = []string{"libris", "-config=other.json"}
	require.Equal(t, "other.json", JsonConfigFlags())

	os.Args = []string{"libris"}
	require.Empty(t, JsonConfigFlags())
}
