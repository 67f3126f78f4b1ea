// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvtype/catalog"
	"github.com/katalvlaran/lvtype/internal/logging"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "0.1.0"

// app carries the state shared by every subcommand of one invocation.
type app struct {
	configDir string
	cfg       *viper.Viper
	log       *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "dtype",
		Short:         "Inspect and catalog runtime type descriptors",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.configDir, "config-dir", defaultConfigDir, "configuration directory")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newNamesCmd())
	root.AddCommand(newSizeCmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newCatalogCmd(a))

	return root
}

// setup loads configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := loadConfig(a.configDir)
	if err != nil {
		return err
	}
	level, err := logging.ParseLevel(cfg.GetString(cfgKeyLogLevel))
	if err != nil {
		return err
	}
	format, err := logging.ParseFormat(cfg.GetString(cfgKeyLogFormat))
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = logging.New(cmd.ErrOrStderr(), level, format)
	a.log.Debug("config loaded", "dir", a.configDir, "catalog", cfg.GetString(cfgKeyCatalogPath))

	return nil
}

// openCatalog opens the configured catalog database.
func (a *app) openCatalog(ctx context.Context) (*catalog.Catalog, error) {
	if err := ensureConfigDir(a.configDir); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}

	opts := []catalog.Option{catalog.WithLogger(a.log)}
	if a.cfg.GetBool(cfgKeyLooseMatching) {
		opts = append(opts, catalog.WithLooseMatching())
	}

	return catalog.Open(ctx, a.cfg.GetString(cfgKeyCatalogPath), opts...)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the dtype version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "dtype", version)
		},
	}
}
