package commands

import (
	"github.com/spf13/cobra"

	"credstore/internal/app"
)

var (
	dir        string
	configPath string
	debug      bool
	withCache  bool

	appCtx *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:           "credstore",
		Short:         "Durable local store for protocol credentials and key records",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.Config{
				Dir:          dir,
				CacheEnabled: withCache,
				Debug:        debug,
			}
			if configPath != "" {
				loaded, err := app.LoadConfig(configPath)
				if err != nil {
					return err
				}
				// Flags win over file values.
				if dir == "" {
					cfg.Dir = loaded.Dir
				}
				cfg.CacheEnabled = cfg.CacheEnabled || loaded.CacheEnabled
				cfg.Debug = cfg.Debug || loaded.Debug
			}

			wire, err := app.NewWire(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			appCtx = wire
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if appCtx == nil {
				return nil
			}
			return appCtx.Close(cmd.Context())
		},
	}

	root.PersistentFlags().StringVar(&dir, "dir", "", "store directory (default ~/.credstore)")
	root.PersistentFlags().StringVar(&configPath, "config", "", "optional YAML config file")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "verbose internal tracing")
	root.PersistentFlags().BoolVar(&withCache, "cache", false, "warm the TTL record cache at startup")

	root.AddCommand(initCmd(), showCmd(), getCmd(), setCmd(), rmCmd(), lsCmd())
	return root.Execute()
}
