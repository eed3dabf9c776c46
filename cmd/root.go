// Package cmd provides the root command and CLI setup for pkgwrap.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"pkgwrap.dev/pkg/pkgwrap/internal/adapter"
	"pkgwrap.dev/pkg/pkgwrap/internal/controller"
	"pkgwrap.dev/pkg/pkgwrap/internal/domain"
	m "pkgwrap.dev/pkg/pkgwrap/internal/model"
)

// Process exit codes.
const (
	exitFailure     = 1
	exitToolFailure = 127
)

var fsAdapter adapter.SourceFSAdapter
var processAdapter adapter.ProcessAdapter
var manifestAdapter adapter.ManifestAdapter
var reportStore adapter.ReportStore
var dispatcher domain.Dispatcher
var ui controller.UI

func init() {
	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	processAdapter = adapter.NewLocalProcessAdapter(os.Stdout, os.Stderr)
	manifestAdapter = adapter.NewLocalManifestAdapter()
	reportStore = adapter.NewReportStore()
	dispatcher = domain.NewDispatcher(
		fsAdapter,
		processAdapter,
		reportStore,
		ui,
	)
}

const rootLongDescription = `pkgwrap runs the build, lint, test, coverage and documentation tooling of a
JavaScript/TypeScript package through a single entry point.

Commands can be given as flags or as arguments and always run in this order:
  clean, build, testing, lint, reporting, coverage, postinstall, docs, globals

Examples:
  pkgwrap --clean --build --jsx
  pkgwrap build lint testing --jest`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "pkgwrap [commands...]",
		Short:         "Build, test and document JavaScript packages",
		Long:          rootLongDescription,
		ValidArgs:     m.CommandNames(),
		Args:          validateCommandArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if configErr != nil {
				return fmt.Errorf("read %s: %w", configFileName, configErr)
			}

			return configureLogger(viper.GetString(logFilenameKey), viper.GetBool(debugConfigKey))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := requestFromFlags(cmd, args)
			if err != nil {
				return err
			}

			if req.Empty() {
				return cmd.Help()
			}

			cfg, err := buildConfig()
			if err != nil {
				return err
			}

			return dispatcher.Dispatch(cmd.Context(), cfg, req)
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	for _, c := range m.Pipeline {
		cmd.Flags().Bool(string(c), false, c.Description())
	}

	flags := cmd.PersistentFlags()

	flags.Bool(avaFlagName, false, "use ava as the test runner")
	bindFlagToConfig(flags.Lookup(avaFlagName), avaConfigKey)

	flags.Bool(jestFlagName, false, "use jest as the test runner (overrides --ava)")
	bindFlagToConfig(flags.Lookup(jestFlagName), jestConfigKey)

	flags.Bool(jsxFlagName, false, "transpile .jsx files after the typescript build")
	bindFlagToConfig(flags.Lookup(jsxFlagName), jsxConfigKey)

	flags.Bool(jsxTestFlagName, false, "only look for .jsx files in the test directory")
	bindFlagToConfig(flags.Lookup(jsxTestFlagName), jsxTestConfigKey)

	flags.Int(minWorkersFlagName, m.DefaultMinWorkers, "minimum number of parallel JSX transpiles")
	bindFlagToConfig(flags.Lookup(minWorkersFlagName), minWorkersConfigKey)

	flags.Int(maxWorkersFlagName, m.DefaultMaxWorkers, "maximum number of parallel JSX transpiles")
	bindFlagToConfig(flags.Lookup(maxWorkersFlagName), maxWorkersConfigKey)

	flags.Bool(webpackFlagName, false, "run the bundler after the build")
	bindFlagToConfig(flags.Lookup(webpackFlagName), webpackConfigKey)

	flags.Bool(siteFlagName, false, "also generate the jsdoc site with docs")
	bindFlagToConfig(flags.Lookup(siteFlagName), siteConfigKey)

	flags.BoolP(updateSnapshotsFlagName, "u", false, "update test snapshots")
	bindFlagToConfig(flags.Lookup(updateSnapshotsFlagName), updateSnapshotsConfigKey)

	flags.Bool(debugFlagName, false, "print internal steps and log at debug level")
	bindFlagToConfig(flags.Lookup(debugFlagName), debugConfigKey)

	flags.String(reportFlagName, defaultReportPath, "path of the run report")
	bindFlagToConfig(flags.Lookup(reportFlagName), reportPathKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

func validateCommandArgs(_ *cobra.Command, args []string) error {
	_, err := parseCommands(args)
	return err
}

func parseCommands(args []string) ([]m.Command, error) {
	commands := make([]m.Command, 0, len(args))

	for _, arg := range args {
		c, err := m.ParseCommand(arg)
		if err != nil {
			return nil, fmt.Errorf("%w (valid commands: %s)", err, strings.Join(m.CommandNames(), ", "))
		}

		commands = append(commands, c)
	}

	return commands, nil
}

// requestFromFlags merges positional commands with command flags.
func requestFromFlags(cmd *cobra.Command, args []string) (m.Request, error) {
	commands, err := parseCommands(args)
	if err != nil {
		return m.Request{}, err
	}

	for _, c := range m.Pipeline {
		set, err := cmd.Flags().GetBool(string(c))
		if err != nil {
			return m.Request{}, err
		}

		if set {
			commands = append(commands, c)
		}
	}

	return m.NewRequest(optionsFromConfig(), commands...), nil
}

// exitCode maps a failed run to the process exit status.
func exitCode(err error) int {
	var toolErr *adapter.ToolError
	if errors.As(err, &toolErr) || errors.Is(err, domain.ErrCompileFailed) {
		return exitToolFailure
	}

	return exitFailure
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		_, _ = fmt.Fprintln(rootCmd.ErrOrStderr(), err)
		os.Exit(exitCode(err))
	}
}
