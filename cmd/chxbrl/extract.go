package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/xcrowfinance/stream-read-xbrl"
	"github.com/xcrowfinance/stream-read-xbrl/pipeline"
)

var extractCmd = &cobra.Command{
	Use:   "extract <file>",
	Short: "Extract row tuples from a single XBRL/iXBRL file on disk",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		body, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		rows, err := xbrl.Extract(path, body)
		if err != nil {
			log.Error().Err(err).Str("file", path).Msg("extraction failed")
			return err
		}

		return pipeline.WriteCSV(os.Stdout, rows)
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)
}
