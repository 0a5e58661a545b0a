package pipeline

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xcrowfinance/stream-read-xbrl"
)

func TestWriteCSVRendersNullsAsEmpty(t *testing.T) {
	name := "SUGANTHI & VELAVAN LTD"
	rows := []xbrl.Row{
		{
			RunCode:                 "Prod223_3384",
			CompanyID:               "09355500",
			Date:                    "2022-12-31",
			FileType:                "html",
			Taxonomy:                "http://xbrl.frc.org.uk/fr/2014-09-01/core",
			EntityCurrentLegalName:  &name,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, rows))

	out := buf.String()
	assert.True(t, strings.Contains(out, "SUGANTHI & VELAVAN LTD"))
	assert.True(t, strings.Contains(out, "09355500"))
	// balance_sheet_date and companies_house_registered_number are nil and
	// sit between taxonomy and entity_current_legal_name as empty fields.
	assert.True(t, strings.Contains(out, "/core,,,SUGANTHI & VELAVAN LTD,"))
}
