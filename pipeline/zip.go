package pipeline

import (
	"archive/zip"
	"context"
	"fmt"
	"io"

	"github.com/xcrowfinance/stream-read-xbrl"
)

// WalkZip streams every file entry of a zip archive, invoking fn with
// each entry's name and fully-read body. archive/zip's reader needs
// random access (io.ReaderAt plus the total size), the stdlib has no
// true streaming unzip API, so the caller supplies a sized reader —
// ordinarily a downloaded archive buffered to a temp file or in memory.
func WalkZip(r io.ReaderAt, size int64, fn func(name string, body []byte) error) error {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return fmt.Errorf("pipeline: open zip: %w", err)
	}

	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		if err := walkZipEntry(f, fn); err != nil {
			return err
		}
	}
	return nil
}

func walkZipEntry(f *zip.File, fn func(name string, body []byte) error) error {
	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("pipeline: open %s: %w", f.Name, err)
	}
	defer rc.Close()

	body, err := io.ReadAll(rc)
	if err != nil {
		return fmt.Errorf("pipeline: read %s: %w", f.Name, err)
	}
	return fn(f.Name, body)
}

// ExtractArchive walks a zip archive and runs the core extractor over
// every entry, collecting all rows across all entries and the errors
// from any filings that failed individually — a bad filing never
// aborts the batch.
func ExtractArchive(_ context.Context, r io.ReaderAt, size int64) ([]xbrl.Row, []error) {
	var rows []xbrl.Row
	var errs []error

	walkErr := WalkZip(r, size, func(name string, body []byte) error {
		entryRows, err := xbrl.Extract(name, body)
		if err != nil {
			errs = append(errs, fmt.Errorf("pipeline: extract %s: %w", name, err))
			return nil
		}
		rows = append(rows, entryRows...)
		return nil
	})
	if walkErr != nil {
		errs = append(errs, walkErr)
	}

	return rows, errs
}
