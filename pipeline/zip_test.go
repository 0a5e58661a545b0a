package pipeline

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestZip(t *testing.T, files map[string]string) *bytes.Reader {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, body := range files {
		f, err := w.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return bytes.NewReader(buf.Bytes())
}

func TestWalkZipVisitsEveryEntry(t *testing.T) {
	r := buildTestZip(t, map[string]string{
		"Prod223_3384_09355500_20221231.html": "<xbrl></xbrl>",
		"Prod223_3384_14068295_20210630.html": "<xbrl></xbrl>",
	})

	seen := map[string]string{}
	err := WalkZip(r, r.Size(), func(name string, body []byte) error {
		seen[name] = string(body)
		return nil
	})
	require.NoError(t, err)
	assert.Len(t, seen, 2)
	assert.Equal(t, "<xbrl></xbrl>", seen["Prod223_3384_09355500_20221231.html"])
}

func TestExtractArchiveCollectsRowsAndPerFilingErrors(t *testing.T) {
	r := buildTestZip(t, map[string]string{
		"Prod223_3384_09355500_20221231.html": `<xbrl><CompanyDormant>false</CompanyDormant></xbrl>`,
		"not-a-valid-filename.html":           `<xbrl></xbrl>`,
	})

	rows, errs := ExtractArchive(nil, r, r.Size())
	assert.Len(t, rows, 1)
	assert.Len(t, errs, 1)
}
