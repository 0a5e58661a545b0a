package main

import (
	"bytes"
	"os"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/xcrowfinance/stream-read-xbrl"
	"github.com/xcrowfinance/stream-read-xbrl/pipeline"
)

const defaultIndexURL = "http://download.companieshouse.gov.uk/en_accountsdata.html"

var bulkCmd = &cobra.Command{
	Use:   "bulk",
	Short: "Discover and process every archive on the Companies House bulk accounts index",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		indexURL := viper.GetString("index-url")
		concurrency := viper.GetInt("concurrency")
		outPath := viper.GetString("out")

		fetcher := &pipeline.Fetcher{}

		archives, err := pipeline.DiscoverArchives(ctx, fetcher, indexURL)
		if err != nil {
			return err
		}
		log.Info().Int("archives", len(archives)).Str("index", indexURL).Msg("discovered archives")

		out := os.Stdout
		if outPath != "" {
			file, err := os.Create(outPath)
			if err != nil {
				return err
			}
			defer file.Close()
			out = file
		}

		// RunWorkerPool's fn runs concurrently across up to concurrency
		// goroutines, so every row slice is accumulated behind a mutex
		// here and handed to WriteCSV exactly once after the pool drains
		// - a shared io.Writer (stdout or the output file) can't safely
		// take concurrent Encode calls, and WriteCSV itself writes a
		// fresh header on every call, so calling it per-archive would
		// interleave a header before each archive's rows in the output.
		var mu sync.Mutex
		var allRows []xbrl.Row
		errs := pipeline.RunWorkerPool(ctx, archives, concurrency, func(archiveURL string) error {
			body, err := fetcher.Get(ctx, archiveURL)
			if err != nil {
				return err
			}
			rows, rowErrs := pipeline.ExtractArchive(ctx, bytes.NewReader(body), int64(len(body)))
			for _, e := range rowErrs {
				log.Warn().Err(e).Str("archive", archiveURL).Msg("filing skipped")
			}
			mu.Lock()
			allRows = append(allRows, rows...)
			mu.Unlock()
			return nil
		})

		for i, e := range errs {
			if e != nil {
				log.Error().Err(e).Str("archive", archives[i]).Msg("archive failed")
			}
		}
		log.Info().Int("rows", len(allRows)).Msg("bulk run complete")
		return pipeline.WriteCSV(out, allRows)
	},
}

func init() {
	bulkCmd.Flags().String("index-url", defaultIndexURL, "Companies House bulk accounts index page")
	bulkCmd.Flags().Int("concurrency", 4, "number of archives to process concurrently")
	bulkCmd.Flags().String("out", "", "write CSV to this path instead of stdout")

	viper.BindPFlag("index-url", bulkCmd.Flags().Lookup("index-url"))
	viper.BindPFlag("concurrency", bulkCmd.Flags().Lookup("concurrency"))
	viper.BindPFlag("out", bulkCmd.Flags().Lookup("out"))

	rootCmd.AddCommand(bulkCmd)
}
