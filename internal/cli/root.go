// Package cli implements the get-webpack-config command line.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/get-webpack-config/internal/codec"
	"github.com/MKhiriev/get-webpack-config/internal/config"
	"github.com/MKhiriev/get-webpack-config/internal/logger"
	"github.com/MKhiriev/get-webpack-config/models"
	"github.com/MKhiriev/get-webpack-config/webpackconfig"
)

// Log formats accepted by --log-format.
const (
	logFormatConsole = "console"
	logFormatJSON    = "json"
)

// ErrUnknownLogFormat is returned for a --log-format other than console or
// json.
var ErrUnknownLogFormat = errors.New("unknown log format")

// app carries state shared by every subcommand of one invocation.
type app struct {
	overrides *config.Options
	format    string
	logFormat string
	client    *webpackconfig.Client
}

// NewRootCommand builds the command tree.
func NewRootCommand(info models.BuildInfo) *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "get-webpack-config",
		Short: "Resolve and merge named webpack settings and configs",
		Long: `get-webpack-config renders bundler configurations composed from
<settings-dir>/<name>.settings.{yaml,yml,json,toml} and
<configs-dir>/<name>.config.{yaml,yml,json,toml} templates.`,
		Version:           info.String(),
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	a.overrides = config.BindFlags(root.PersistentFlags())
	root.PersistentFlags().StringVarP(&a.format, "format", "o", string(codec.JSON), "Output format: json, yaml or toml")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", logFormatConsole, "Log format on stderr: console or json")

	root.AddCommand(
		newSettingsCommand(a),
		newConfigCommand(a),
		newAggregateCommand(a, "build", "Merge the build (modern) configs of NAMES", (*webpackconfig.Client).BuildConfigs),
		newAggregateCommand(a, "legacy", "Merge the legacy configs of NAMES", (*webpackconfig.Client).LegacyConfigs),
		newAggregateCommand(a, "modern", "Merge the modern configs of NAMES", (*webpackconfig.Client).ModernConfigs),
		newListCommand(a),
		newVersionCommand(a, info),
	)

	return root
}

// Execute runs the command line with os.Args.
func Execute(ctx context.Context, info models.BuildInfo) error {
	return NewRootCommand(info).ExecuteContext(ctx)
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if _, err := codec.ParseFormat(a.format); err != nil {
		return err
	}

	opts, err := config.Load(a.overrides)
	if err != nil {
		return fmt.Errorf("error loading options: %w", err)
	}

	level, err := logger.ParseLevel(opts.LogLevel)
	if err != nil {
		return err
	}

	log, err := newLogger(a.logFormat, level)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(log.WithContext(ctx))

	log.Debug().Str("settings_path", opts.SettingsPath).Str("configs_path", opts.ConfigsPath).
		Str("base_config_name", opts.BaseConfigName).Msg("options resolved")

	a.client = webpackconfig.New(
		webpackconfig.WithRegistry(webpackconfig.DefaultRegistry),
		webpackconfig.WithBaseConfigName(a.overrides.BaseConfigName),
		webpackconfig.WithSettingsPath(a.overrides.SettingsPath),
		webpackconfig.WithConfigsPath(a.overrides.ConfigsPath),
		webpackconfig.WithOptionsFile(a.overrides.JSONFilePath),
		webpackconfig.WithLogger(log.Logger),
	)

	return nil
}

// newLogger builds the stderr logger for the given --log-format.
func newLogger(format string, level zerolog.Level) (*logger.Logger, error) {
	switch format {
	case logFormatConsole:
		return logger.NewConsoleLogger("cli", level), nil
	case logFormatJSON:
		return &logger.Logger{Logger: logger.NewLogger("cli").Level(level)}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownLogFormat, format)
	}
}

func (a *app) print(cmd *cobra.Command, v any) error {
	format, err := codec.ParseFormat(a.format)
	if err != nil {
		return err
	}

	return codec.Encode(cmd.OutOrStdout(), format, v)
}
