package analysis

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, 0.1, opts.CloseTolerance)
	assert.Equal(t, 80.0, opts.MinDoorSweep)
	assert.Equal(t, 100.0, opts.MaxDoorSweep)
	assert.Equal(t, 0.6, opts.MinDoorRadius)
	assert.Equal(t, 1.5, opts.MaxDoorRadius)
	assert.Equal(t, 1.0, opts.MinRoomArea)
	assert.Equal(t, 10, opts.TopRooms)
}

func TestLoadOptionsOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.yaml")
	content := "min_room_area: 2.5\ntop_rooms: 3\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	opts, err := LoadOptions(path)
	require.NoError(t, err)
	assert.Equal(t, 2.5, opts.MinRoomArea)
	assert.Equal(t, 3, opts.TopRooms)
	// Untouched keys keep their defaults.
	assert.Equal(t, 0.1, opts.CloseTolerance)
	assert.Equal(t, 80.0, opts.MinDoorSweep)
}

func TestLoadOptionsMissingFile(t *testing.T) {
	_, err := LoadOptions(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadOptionsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\n\t- nope"), 0o644))
	_, err := LoadOptions(path)
	assert.Error(t, err)
}
