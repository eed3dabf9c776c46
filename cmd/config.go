package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
	"pkgwrap.dev/pkg/pkgwrap/internal/domain"
	m "pkgwrap.dev/pkg/pkgwrap/internal/model"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = ".pkgwrap"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	envPrefix = "PKGWRAP"

	avaFlagName             = "ava"
	jestFlagName            = "jest"
	jsxFlagName             = "jsx"
	jsxTestFlagName         = "jsxtest"
	minWorkersFlagName      = "minWorkers"
	maxWorkersFlagName      = "maxWorkers"
	webpackFlagName         = "webpack"
	siteFlagName            = "site"
	updateSnapshotsFlagName = "updateSnapshots"
	debugFlagName           = "debug"
	reportFlagName          = "report"

	avaConfigKey             = "options.ava"
	jestConfigKey            = "options.jest"
	jsxConfigKey             = "options.jsx"
	jsxTestConfigKey         = "options.jsxtest"
	minWorkersConfigKey      = "options.min_workers"
	maxWorkersConfigKey      = "options.max_workers"
	webpackConfigKey         = "options.webpack"
	siteConfigKey            = "options.site"
	updateSnapshotsConfigKey = "options.update_snapshots"
	debugConfigKey           = "options.debug"

	scratchDirKey = "paths.scratch"
	binDirKey     = "paths.bin"
	docsDirKey    = "paths.docs"
	jsxTestDirKey = "paths.jsx_test"

	docsIncludeKey     = "docs.include"
	docsExcludeKey     = "docs.exclude"
	docsJSDocConfigKey = "docs.jsdoc_config"
	docsReadmeKey      = "docs.readme"

	reportPathKey = "report.path"

	defaultScratchDir = "~/.tmp/.nyc_output"
	defaultBinDir     = "node_modules/.bin"
	defaultDocsDir    = "docs"
	defaultJSXTestDir = "test"
	defaultReportPath = "~/.tmp/pkgwrap-report.yaml"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = "~/.tmp/pkgwrap.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

// toolConfigKeys maps every tools.* key to the field it fills.
var toolConfigKeys = map[string]func(*domain.Tools) *string{
	"tools.compiler":        func(t *domain.Tools) *string { return &t.Compiler },
	"tools.linter":          func(t *domain.Tools) *string { return &t.Linter },
	"tools.mocha":           func(t *domain.Tools) *string { return &t.Mocha },
	"tools.ava":             func(t *domain.Tools) *string { return &t.Ava },
	"tools.jest":            func(t *domain.Tools) *string { return &t.Jest },
	"tools.nyc":             func(t *domain.Tools) *string { return &t.NYC },
	"tools.coveralls":       func(t *domain.Tools) *string { return &t.Coveralls },
	"tools.bundler":         func(t *domain.Tools) *string { return &t.Bundler },
	"tools.transpiler":      func(t *domain.Tools) *string { return &t.Transpiler },
	"tools.jsdoc2md":        func(t *domain.Tools) *string { return &t.JSDoc2MD },
	"tools.jsdoc":           func(t *domain.Tools) *string { return &t.JSDoc },
	"tools.package_manager": func(t *domain.Tools) *string { return &t.PackageManager },
}

var globalLogger *slog.Logger

// configErr holds a config file that exists but could not be read. It is
// reported once a command runs.
var configErr error

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)

	defaults := m.DefaultOptions()
	viper.SetDefault(avaConfigKey, defaults.Ava)
	viper.SetDefault(jestConfigKey, defaults.Jest)
	viper.SetDefault(jsxConfigKey, defaults.JSX)
	viper.SetDefault(jsxTestConfigKey, defaults.JSXTest)
	viper.SetDefault(minWorkersConfigKey, defaults.MinWorkers)
	viper.SetDefault(maxWorkersConfigKey, defaults.MaxWorkers)
	viper.SetDefault(webpackConfigKey, defaults.Webpack)
	viper.SetDefault(siteConfigKey, defaults.Site)
	viper.SetDefault(updateSnapshotsConfigKey, defaults.UpdateSnapshots)
	viper.SetDefault(debugConfigKey, defaults.Debug)

	tools := domain.DefaultTools()
	for key, field := range toolConfigKeys {
		viper.SetDefault(key, *field(&tools))
	}

	viper.SetDefault(scratchDirKey, defaultScratchDir)
	viper.SetDefault(binDirKey, defaultBinDir)
	viper.SetDefault(docsDirKey, defaultDocsDir)
	viper.SetDefault(jsxTestDirKey, defaultJSXTestDir)

	docs := domain.DefaultDocsConfig()
	viper.SetDefault(docsIncludeKey, docs.Include)
	viper.SetDefault(docsExcludeKey, docs.Exclude)
	viper.SetDefault(docsJSDocConfigKey, docs.JSDocConfig)
	viper.SetDefault(docsReadmeKey, docs.Readme)

	viper.SetDefault(reportPathKey, defaultReportPath)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return
		}

		configErr = err
	}
}

// optionsFromConfig reads the dispatch options, honoring flag > env > config
// file > default precedence.
func optionsFromConfig() m.Options {
	return m.Options{
		Ava:             viper.GetBool(avaConfigKey),
		Jest:            viper.GetBool(jestConfigKey),
		JSX:             viper.GetBool(jsxConfigKey),
		JSXTest:         viper.GetBool(jsxTestConfigKey),
		MinWorkers:      viper.GetInt(minWorkersConfigKey),
		MaxWorkers:      viper.GetInt(maxWorkersConfigKey),
		Webpack:         viper.GetBool(webpackConfigKey),
		Site:            viper.GetBool(siteConfigKey),
		UpdateSnapshots: viper.GetBool(updateSnapshotsConfigKey),
		Debug:           viper.GetBool(debugConfigKey),
	}
}

func toolsFromConfig() domain.Tools {
	var tools domain.Tools
	for key, field := range toolConfigKeys {
		*field(&tools) = viper.GetString(key)
	}

	return tools
}

// buildConfig assembles the dispatch configuration for the project in the
// current working directory.
func buildConfig() (domain.Config, error) {
	workDir, err := os.Getwd()
	if err != nil {
		return domain.Config{}, err
	}

	manifest, err := manifestAdapter.Load(m.Path(workDir))
	if err != nil {
		return domain.Config{}, err
	}

	paths := make(map[string]m.Path)

	for _, key := range []string{scratchDirKey, binDirKey, docsDirKey, jsxTestDirKey, reportPathKey} {
		resolved, err := resolvePath(workDir, viper.GetString(key))
		if err != nil {
			return domain.Config{}, fmt.Errorf("%s: %w", key, err)
		}

		paths[key] = m.Path(resolved)
	}

	return domain.Config{
		WorkDir:    m.Path(workDir),
		BinDir:     paths[binDirKey],
		ScratchDir: paths[scratchDirKey],
		DocsDir:    paths[docsDirKey],
		JSXTestDir: paths[jsxTestDirKey],
		ReportPath: paths[reportPathKey],
		Tools:      toolsFromConfig(),
		Docs: domain.DocsConfig{
			Include:     viper.GetStringSlice(docsIncludeKey),
			Exclude:     viper.GetStringSlice(docsExcludeKey),
			JSDocConfig: viper.GetString(docsJSDocConfigKey),
			Readme:      viper.GetString(docsReadmeKey),
		},
		Manifest: manifest,
	}, nil
}

// resolvePath expands a leading ~ and anchors relative paths at base. Empty
// values stay empty.
func resolvePath(base, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", nil
	}

	expanded, err := expandHome(value)
	if err != nil {
		return "", err
	}

	if filepath.IsAbs(expanded) {
		return filepath.Clean(expanded), nil
	}

	return filepath.Join(base, expanded), nil
}

func expandHome(value string) (string, error) {
	if value != "~" && !strings.HasPrefix(value, "~/") {
		return value, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(home, strings.TrimPrefix(value, "~")), nil
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger points the global slog logger at a rotating log file.
//
// By default it logs at the configured level; debug forces Debug.
func configureLogger(logPath string, debug bool) error {
	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	logPath, err := expandHome(logPath)
	if err != nil {
		return err
	}

	var logLevel slog.Level
	if debug {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)

	return nil
}
