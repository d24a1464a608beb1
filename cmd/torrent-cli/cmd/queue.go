package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	jsoniter "github.com/json-iterator/go"
	"github.com/pojntfx/torrent-cli/pkg/client"
	"github.com/pojntfx/torrent-cli/pkg/format"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	outputFlag = "output"

	outputText = "text"
	outputYAML = "yaml"
	outputJSON = "json"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var queueCmd = &cobra.Command{
	Use:     "queue",
	Aliases: []string{"q"},
	Short:   "List the torrents in the Transmission queue",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		output, err := cmd.Flags().GetString(outputFlag)
		if err != nil {
			return err
		}

		switch output {
		case outputText, outputYAML, outputJSON:
		default:
			return fmt.Errorf("unsupported output format %q, must be one of %s, %s or %s", output, outputText, outputYAML, outputJSON)
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

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

		entries, err := manager.ListTorrents()
		if err != nil {
			return err
		}

		log.Debug().Int("torrents", len(entries)).Msg("Listed queue")

		w := cmd.OutOrStdout()

		switch output {
		case outputYAML:
			out, err := yaml.Marshal(entries)
			if err != nil {
				return err
			}

			_, err = w.Write(out)

			return err

		case outputJSON:
			out, err := json.MarshalIndent(entries, "", "  ")
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(w, string(out))

			return err
		}

		printQueue(w, entries, time.Now())

		return nil
	},
}

func printQueue(w io.Writer, entries []client.QueueEntry, now time.Time) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No torrents in queue!")

		return
	}

	for _, e := range entries {
		fmt.Fprintln(w)
		fmt.Fprintln(w, e.Name)
		fmt.Fprintf(w, "Status: %s\n", e.Status)

		if e.Status == client.StatusDownloading {
			fmt.Fprintf(w, "Progress: %s\n", format.ProgressBar(e.ProgressPercent/100, format.DefaultWidth))
			fmt.Fprintf(w, "Download Speed: %s\n", format.Rate(e.DownloadRateBytesPerSec))

			if e.ETA > 0 {
				fmt.Fprintf(w, "ETA: %s\n", humanize.RelTime(now, now.Add(time.Duration(e.ETA)*time.Second), "left", ""))
			}
		}

		fmt.Fprintf(w, "Size: %s\n", format.Size(e.TotalSizeBytes))

		if !e.AddedAt.IsZero() {
			fmt.Fprintf(w, "Added: %s\n", humanize.RelTime(e.AddedAt, now, "ago", "from now"))
		}

		if e.ErrorString != "" {
			fmt.Fprintf(w, "Error: %s\n", e.ErrorString)
		}
	}
}

func init() {
	queueCmd.Flags().StringP(outputFlag, "o", outputText, "Output format (text, yaml or json)")

	rootCmd.AddCommand(queueCmd)
}
