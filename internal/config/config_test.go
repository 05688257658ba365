package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleHCL = `
small_blind = 5
big_blind   = 10
dealer      = 0

seat "Alice" {
  chips = 1000
}

seat "Bob" {
  chips = 1000
}
`

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "table.hcl")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadParsesSeatsAndBlinds(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleHCL))
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.SmallBlind)
	assert.Equal(t, 10, cfg.BigBlind)
	assert.Equal(t, 0, cfg.Dealer)
	assert.Equal(t, []string{"Alice", "Bob"}, cfg.Names())
	assert.Equal(t, []int{1000, 1000}, cfg.Stacks())
}

func TestLoadRejectsSingleSeat(t *testing.T) {
	const single = `
small_blind = 5
big_blind   = 10

seat "Alice" {
  chips = 1000
}
`
	_, err := Load(writeConfig(t, single))
	require.Error(t, err)
}

func TestLoadRejectsDealerOutOfRange(t *testing.T) {
	const badDealer = `
small_blind = 5
big_blind   = 10
dealer      = 5

seat "Alice" {
  chips = 1000
}

seat "Bob" {
  chips = 1000
}
`
	_, err := Load(writeConfig(t, badDealer))
	require.Error(t, err)
}
