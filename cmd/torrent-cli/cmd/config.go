package cmd

import (
	"fmt"

	"github.com/pojntfx/torrent-cli/pkg/config"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	hostFlag     = "host"
	portFlag     = "port"
	usernameFlag = "username"
	passwordFlag = "password"
	showFlag     = "show"

	maskedPassword = "********"
)

var configCmd = &cobra.Command{
	Use:     "config",
	Aliases: []string{"c"},
	Short:   "Update the Transmission connection settings",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()

		var p config.Partial
		changed := false

		if flags.Changed(hostFlag) {
			v, err := flags.GetString(hostFlag)
			if err != nil {
				return err
			}

			p.Host = &v
			changed = true
		}

		if flags.Changed(portFlag) {
			v, err := flags.GetInt(portFlag)
			if err != nil {
				return err
			}

			p.Port = &v
			changed = true
		}

		if flags.Changed(usernameFlag) {
			v, err := flags.GetString(usernameFlag)
			if err != nil {
				return err
			}

			p.Username = &v
			changed = true
		}

		if flags.Changed(passwordFlag) {
			v, err := flags.GetString(passwordFlag)
			if err != nil {
				return err
			}

			p.Password = &v
			changed = true
		}

		show, err := flags.GetBool(showFlag)
		if err != nil {
			return err
		}

		store, err := settingsStore()
		if err != nil {
			return err
		}

		// --show on its own only prints
		var settings config.Settings
		if changed || !show {
			settings, err = store.Update(p)
			if err != nil {
				return err
			}

			log.Debug().Str("path", store.Path()).Msg("Updated settings")

			fmt.Fprintln(cmd.OutOrStdout(), "Configuration updated successfully!")
		} else {
			settings, err = store.Load()
			if err != nil {
				return err
			}
		}

		if !show {
			return nil
		}

		if settings.Password != "" {
			settings.Password = maskedPassword
		}

		out, err := yaml.Marshal(settings)
		if err != nil {
			return err
		}

		_, err = cmd.OutOrStdout().Write(out)

		return err
	},
}

func init() {
	configCmd.Flags().String(hostFlag, config.DefaultHost, "Transmission host")
	configCmd.Flags().Int(portFlag, config.DefaultPort, "Transmission RPC port")
	configCmd.Flags().String(usernameFlag, config.DefaultUsername, "Transmission RPC username")
	configCmd.Flags().String(passwordFlag, config.DefaultPassword, "Transmission RPC password")
	configCmd.Flags().Bool(showFlag, false, "Print the current settings with the password masked")

	rootCmd.AddCommand(configCmd)
}
