package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/get-webpack-config/internal/logger"
	"github.com/MKhiriev/get-webpack-config/models"
	"github.com/MKhiriev/get-webpack-config/webpackconfig"
)

func newSettingsCommand(a *app) *cobra.Command {
	var combined, strict bool

	cmd := &cobra.Command{
		Use:   "settings NAME",
		Short: "Print the settings stored for NAME",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			switch {
			case combined:
				return a.print(cmd, a.client.CombinedSettings(name))
			case strict:
				res, err := a.client.LookupSettings(name)
				if err != nil {
					return err
				}
				if !res.Present() {
					return fmt.Errorf("no settings file for %q", name)
				}
				return a.print(cmd, res.Values)
			default:
				return a.print(cmd, a.client.Settings(name))
			}
		},
	}

	cmd.Flags().BoolVar(&combined, "combined", false, "Overlay the settings on the base settings")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when the settings file is missing or invalid")
	cmd.MarkFlagsMutuallyExclusive("combined", "strict")

	return cmd
}

func newConfigCommand(a *app) *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "config NAME",
		Short: "Print the config for NAME in one mode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := models.ParseMode(mode)
			if err != nil {
				return err
			}

			cfg, err := a.client.Config(m, args[0])
			if err != nil {
				return err
			}

			return a.print(cmd, cfg)
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", string(models.Modern), "Config mode: legacy or modern")

	return cmd
}

type aggregateFunc func(c *webpackconfig.Client, names ...string) (models.Configuration, error)

func newAggregateCommand(a *app, use, short string, aggregate aggregateFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use + " NAME...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.FromContext(cmd.Context())
			log.Debug().Strs("names", args).Str("aggregation", use).Msg("merging configs")

			cfg, err := aggregate(a.client, args...)
			if err != nil {
				return err
			}

			return a.print(cmd, cfg)
		},
	}
}

func newListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the config names that can be loaded",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			names, err := a.client.Available()
			if err != nil {
				return err
			}

			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func newVersionCommand(a *app, info models.BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Long:  "Print build information as text, or as a document when --format is given.",
		Args:  cobra.NoArgs,
		// Skips option loading so a broken environment still reports a version.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("format") {
				return a.print(cmd, info)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Build version: %s\n", info.Version)
			fmt.Fprintf(out, "Build date: %s\n", info.Date)
			fmt.Fprintf(out, "Build commit: %s\n", info.Commit)
			return nil
		},
	}
}
