package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_WritesDefaults(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "config")

	v, err := loadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, defaultBackend, v.GetString(cfgKeyBackend))
	assert.Equal(t, defaultLogLevel, v.GetString(cfgKeyLogLevel))
	assert.Empty(t, v.GetString(cfgKeyDataDir))

	data, err := os.ReadFile(filepath.Join(dir, configFileExt))
	require.NoError(t, err)
	assert.Equal(t, defaultConfigYAML, string(data))
}

func TestLoadConfig_ReadsExisting(t *testing.T) {
	dir := t.TempDir()
	content := "backend: sqlite\ndata_dir: /srv/schema\nlog_level: debug\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileExt), []byte(content), 0o644))

	v, err := loadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "/srv/schema", v.GetString(cfgKeyDataDir))
	assert.Equal(t, "debug", v.GetString(cfgKeyLogLevel))
}

func TestLoadConfig_Malformed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileExt), []byte("backend: [sqlite\n"), 0o644))

	_, err := loadConfig(dir)
	assert.Error(t, err)
}

func TestSetupLogging(t *testing.T) {
	t.Cleanup(func() { logrus.SetLevel(logrus.InfoLevel) })

	tests := []struct {
		name    string
		debug   bool
		level   string
		want    logrus.Level
		wantErr bool
	}{
		{name: "default", want: logrus.InfoLevel},
		{name: "configured", level: "warn", want: logrus.WarnLevel},
		{name: "debug flag wins", debug: true, level: "error", want: logrus.DebugLevel},
		{name: "invalid", level: "loud", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := setupLogging(os.Stderr, tt.debug, tt.level)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, logrus.GetLevel())
		})
	}
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, exitUserError, exitCode(userError(os.ErrNotExist)))
	assert.Equal(t, exitSysError, exitCode(sysError(os.ErrNotExist)))
	assert.Equal(t, exitUserError, exitCode(os.ErrNotExist))
	assert.ErrorIs(t, sysError(os.ErrNotExist), os.ErrNotExist)
}
