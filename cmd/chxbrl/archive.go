package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/xcrowfinance/stream-read-xbrl/pipeline"
)

var archiveOutPath string

var archiveCmd = &cobra.Command{
	Use:   "archive <zip-path>",
	Short: "Extract row tuples from every filing in a local zip archive",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		info, err := f.Stat()
		if err != nil {
			return err
		}

		rows, errs := pipeline.ExtractArchive(cmd.Context(), f, info.Size())
		for _, e := range errs {
			log.Warn().Err(e).Msg("filing skipped")
		}

		out := os.Stdout
		if archiveOutPath != "" {
			file, err := os.Create(archiveOutPath)
			if err != nil {
				return err
			}
			defer file.Close()
			out = file
		}

		log.Info().Int("rows", len(rows)).Int("errors", len(errs)).Str("archive", path).Msg("extraction complete")
		return pipeline.WriteCSV(out, rows)
	},
}

func init() {
	archiveCmd.Flags().StringVar(&archiveOutPath, "out", "", "write CSV to this path instead of stdout")
	rootCmd.AddCommand(archiveCmd)
}
