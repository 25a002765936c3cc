package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	in := &Config{
		Driver:      "max7219",
		Width:       16,
		Height:      8,
		Orientation: 90,
		Contrast:    30,
		TickMs:      100,
		SPI:         SPI{Dev: "/dev/spidev0.0", SpeedHz: 10000000},
		Preview:     Preview{Enabled: true, Addr: ":8080"},
	}
	require.NoError(t, Save(path, in))
	out, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
