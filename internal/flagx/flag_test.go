package flagx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilterArgs_SeparateValue(t *testing.T) {
	got := FilterArgs([]string{"-a", "1", "-b", "2", "-c", "cfg.json"}, []string{"-a", "-c"})
	require.Equal(t, []string{"-a", "1", "-c", "cfg.json"}, got)
}

func TestFilterArgs_EqualsForm(t *testing.T) {
	got := FilterArgs([]string{"--config=cfg.json", "--other=x"}, []string{"--config"})
	require.Equal(t, []string{"--config=cfg.json"}, got)
}

func TestFilterArgs_FlagFollowedByFlag(t *testing.T) {
	// -a has no value: the next token is another flag and must not be consumed.
	got := FilterArgs([]string{"-a", "-c", "cfg.json"}, []string{"-a", "-c"})
	require.Equal(t, []string{"-a", "-c", "cfg.json"}, got)
}

func TestFilterArgs_NoMatches(t *testing.T) {
	got := FilterArgs([]string{"-x", "1"}, []string{"-a"})
	require.Empty(t, got)
}
