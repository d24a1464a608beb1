package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pojntfx/torrent-cli/pkg/config"
	"github.com/pojntfx/torrent-cli/pkg/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	verboseFlag = "verbose"
	configFlag  = "config"
)

var rootCmd = &cobra.Command{
	Use:   "torrent-cli",
	Short: "Search for torrents and download them using Transmission",
	Long: `Search a public torrent index, pick a result and hand it to a running Transmission daemon.

Connection settings for the daemon are stored in ~/.config/torrent-cli/config.json.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := viper.BindPFlags(cmd.Root().PersistentFlags()); err != nil {
			return err
		}

		log.Logger = log.Output(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()})

		switch viper.GetInt(verboseFlag) {
		case 0:
			zerolog.SetGlobalLevel(zerolog.Disabled)
		case 1:
			zerolog.SetGlobalLevel(zerolog.PanicLevel)
		case 2:
			zerolog.SetGlobalLevel(zerolog.FatalLevel)
		case 3:
			zerolog.SetGlobalLevel(zerolog.ErrorLevel)
		case 4:
			zerolog.SetGlobalLevel(zerolog.WarnLevel)
		case 5:
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
		case 6:
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		default:
			zerolog.SetGlobalLevel(zerolog.TraceLevel)
		}

		return nil
	},
}

// Execute runs the CLI. The returned error is ready to be shown to the user.
func Execute(ctx context.Context) error {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		return describe(err)
	}

	return nil
}

func describe(err error) error {
	var (
		networkErr    *errs.NetworkError
		connectionErr *errs.ConnectionError
		daemonErr     *errs.DaemonError
		configErr     *errs.ConfigError
	)

	switch {
	case errors.As(err, &networkErr):
		return fmt.Errorf("searching for torrents: %w", err)
	case errors.As(err, &connectionErr):
		return fmt.Errorf("connecting to Transmission: %w", err)
	case errors.As(err, &daemonErr):
		return fmt.Errorf("Transmission rejected the request: %w", err)
	case errors.As(err, &configErr):
		return fmt.Errorf("configuration: %w", err)
	default:
		return err
	}
}

// settingsStore opens the settings file from --config, or the default path
// under the home directory if none was given.
func settingsStore() (*config.Store, error) {
	if configPath := viper.GetString(configFlag); configPath != "" {
		return config.NewStore(configPath), nil
	}

	configPath, err := config.DefaultPath()
	if err != nil {
		return nil, &errs.ConfigError{Path: "~/.config/torrent-cli/config.json", Reason: "could not find home directory", Err: err}
	}

	return config.NewStore(configPath), nil
}

func init() {
	rootCmd.PersistentFlags().IntP(verboseFlag, "v", 2, "Verbosity level (0 is disabled, 5 is info, 7 is trace)")
	rootCmd.PersistentFlags().StringP(configFlag, "c", "", "Path to the settings file, defaults to ~/.config/torrent-cli/config.json (can also be set using the TORRENT_CLI_CONFIG env variable)")

	viper.SetEnvPrefix("torrent_cli")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		panic(err)
	}

	viper.AutomaticEnv()
}
