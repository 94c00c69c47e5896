package pathutil

import (
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputePaths(t *testing.T) {
	configHome := t.TempDir()
	dataHome := t.TempDir()

	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("XDG_DATA_HOME", dataHome)
	xdg.Reload()

	t.Cleanup(xdg.Reload)

	cases := []struct {
		env     string
		config  string
		session string
		log     string
	}{
		{"", "config.yml", "session.json", "discipline.log"},
		{"development", "config_development.yml", "session_development.json", "discipline_development.log"},
	}

	for _, tc := range cases {
		p := newPaths(tc.env)

		require.NoError(t, p.computePaths())

		assert.Equal(t, filepath.Join(configHome, "discipline", tc.config), p.ConfigFilePath())
		assert.Equal(t, filepath.Join(dataHome, "discipline", tc.session), p.SessionFilePath())
		assert.Equal(t, filepath.Join(dataHome, "discipline", "log", tc.log), p.LogFilePath())
		assert.Equal(t, "discipline", p.Dir())
	}
}
