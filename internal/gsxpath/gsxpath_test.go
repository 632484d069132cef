//go:build !windows

package gsxpath

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRoot(t *testing.T) {
	t.Parallel()

	p := FromRoot("/opt/gsx")
	assert.True(t, p.Valid())
	assert.Equal(t, filepath.Join("/opt/gsx", "menu"), p.MenuFile)
	assert.Equal(t, filepath.Join("/opt/gsx", "tooltip"), p.TooltipFile)
	assert.False(t, Paths{}.Valid())
}

func TestResolveOverrideWins(t *testing.T) {
	t.Setenv("GSX_ROOT", "/from/env")

	p, err := Resolve("/from/config")
	require.NoError(t, err)
	assert.Equal(t, "/from/config", p.Root)
}

func TestResolveEnvFallback(t *testing.T) {
	t.Setenv("GSX_ROOT", "/from/env")

	p, err := Resolve("")
	require.NoError(t, err)
	assert.Equal(t, "/from/env", p.Root)
}

func TestResolveNotFound(t *testing.T) {
	t.Setenv("GSX_ROOT", "")

	_, err := Resolve("")
	assert.Error(t, err)
}
