package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pojntfx/torrent-cli/pkg/client"
	"github.com/pojntfx/torrent-cli/pkg/magnet"
	"github.com/pojntfx/torrent-cli/pkg/search"
	"github.com/pojntfx/torrent-cli/pkg/selector"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	endpointFlag = "endpoint"
)

var (
	errEmptyQuery = errors.New("could not search with empty query")

	prompt = selector.TerminalPrompt(nil, nil)
)

var searchCmd = &cobra.Command{
	Use:     "search <query>",
	Aliases: []string{"s"},
	Short:   "Search for torrents and add the selected one to Transmission",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := viper.BindPFlags(cmd.PersistentFlags()); err != nil {
			return err
		}

		query := strings.TrimSpace(strings.Join(args, " "))
		if query == "" {
			return errEmptyQuery
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		results, err := search.NewClient(viper.GetString(endpointFlag), nil).Search(ctx, query)
		if err != nil {
			return err
		}

		selected, ok, err := selector.New(prompt, cmd.OutOrStdout()).Select(results)
		if err != nil {
			return err
		}

		if !ok {
			log.Debug().Msg("Nothing selected")

			return nil
		}

		link, err := magnet.New(selected.InfoHash, selected.Name)
		if err != nil {
			return err
		}

		store, err := settingsStore()
		if err != nil {
			return err
		}

		settings, err := store.Load()
		if err != nil {
			return err
		}

		manager := client.NewManager(settings, ctx)
		if err := manager.Connect(); err != nil {
			return err
		}

		added, err := manager.AddTorrent(link)
		if err != nil {
			return err
		}

		log.Info().
			Int64("id", added.ID).
			Str("name", added.Name).
			Str("hash", added.HashString).
			Msg("Added torrent")

		if added.Duplicate {
			fmt.Fprintln(cmd.OutOrStdout(), "Torrent is already in the download queue.")

			return nil
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Successfully added torrent to download queue!")

		return nil
	},
}

func init() {
	searchCmd.PersistentFlags().String(endpointFlag, search.DefaultEndpoint, "Search endpoint (can also be set using the TORRENT_CLI_ENDPOINT env variable)")

	viper.AutomaticEnv()

	rootCmd.AddCommand(searchCmd)
}
