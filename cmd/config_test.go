package cmd

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pkgwrap.dev/pkg/pkgwrap/internal/domain"
	m "pkgwrap.dev/pkg/pkgwrap/internal/model"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, ".pkgwrap", configBaseName)
	assert.Equal(t, ".pkgwrap.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "PKGWRAP", envPrefix)
	assert.Equal(t, "options.min_workers", minWorkersConfigKey)
	assert.Equal(t, "options.max_workers", maxWorkersConfigKey)
	assert.Equal(t, "paths.scratch", scratchDirKey)
	assert.Equal(t, "~/.tmp/.nyc_output", defaultScratchDir)
	assert.Equal(t, "~/.tmp/pkgwrap.log", defaultLogFilename)
	assert.Equal(t, "report.path", reportPathKey)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestConfigDefaults(t *testing.T) {
	newRootCmd()

	opts := optionsFromConfig()
	assert.Equal(t, m.DefaultOptions(), opts)
	assert.Equal(t, domain.DefaultTools(), toolsFromConfig())
	assert.Equal(t, domain.DefaultDocsConfig().Exclude, viper.GetStringSlice(docsExcludeKey))
}

func TestToolsFromEnvironment(t *testing.T) {
	t.Setenv("PKGWRAP_TOOLS_TRANSPILER", "swc")

	tools := toolsFromConfig()
	assert.Equal(t, "swc", tools.Transpiler)
	assert.Equal(t, "tsc", tools.Compiler)
}

func TestResolvePath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	base := filepath.Join(string(filepath.Separator), "work", "project")

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "empty", value: "", want: ""},
		{name: "relative", value: "node_modules/.bin", want: filepath.Join(base, "node_modules", ".bin")},
		{name: "absolute", value: filepath.Join(string(filepath.Separator), "opt", "scratch"), want: filepath.Join(string(filepath.Separator), "opt", "scratch")},
		{name: "home", value: "~/.tmp/.nyc_output", want: filepath.Join(home, ".tmp", ".nyc_output")},
		{name: "bare home", value: "~", want: home},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolvePath(base, tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{value: "", want: slog.LevelInfo},
		{value: "debug", want: slog.LevelDebug},
		{value: " WARN ", want: slog.LevelWarn},
		{value: "error", want: slog.LevelError},
		{value: "-4", want: slog.LevelDebug},
		{value: "bogus", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelInfo))
		})
	}
}

func TestConfigureLogger_DebugLevel(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	logPath := filepath.Join(t.TempDir(), "pkgwrap.log")
	require.NoError(t, configureLogger(logPath, true))

	slog.Debug("debug line", "component", "test")

	contents, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "debug line")
	assert.Contains(t, string(contents), "component=test")
}
