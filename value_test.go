package xbrl

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStringStripsQuotesAndNewlines(t *testing.T) {
	v, ok := parseString("Suganthi &\nVelavan \"Ltd\"\r", nil)
	require.True(t, ok)
	assert.Equal(t, "Suganthi & Velavan Ltd", v)
}

func TestParseStringNullOnDash(t *testing.T) {
	_, ok := parseString(" - ", nil)
	assert.False(t, ok)
}

func TestParseStringNullOnEmpty(t *testing.T) {
	_, ok := parseString("   ", nil)
	assert.False(t, ok)
}

func TestParseDecimalBasic(t *testing.T) {
	v, ok := parseDecimal("214,222", nil)
	require.True(t, ok)
	assert.True(t, decimal.NewFromInt(214222).Equal(v))
}

func TestParseDecimalSignAttribute(t *testing.T) {
	v, ok := parseDecimal("100", map[string]string{"sign": "-"})
	require.True(t, ok)
	assert.True(t, decimal.NewFromInt(-100).Equal(v))
}

func TestParseDecimalScaleAttribute(t *testing.T) {
	v, ok := parseDecimal("42", map[string]string{"scale": "3"})
	require.True(t, ok)
	assert.True(t, decimal.NewFromInt(42000).Equal(v))
}

func TestParseDecimalWithColonStripsPrefix(t *testing.T) {
	v, ok := parseDecimalWithColon("Average number of employees: 0.02", nil)
	require.True(t, ok)
	assert.True(t, decimal.NewFromFloat(0.02).Equal(v))
}

func TestParseDecimalWithColonNoColon(t *testing.T) {
	v, ok := parseDecimalWithColon("0.02", nil)
	require.True(t, ok)
	assert.True(t, decimal.NewFromFloat(0.02).Equal(v))
}

func TestParseDateISO(t *testing.T) {
	v, ok := parseDate("2022-12-31", nil)
	require.True(t, ok)
	assert.Equal(t, time.Date(2022, 12, 31, 0, 0, 0, 0, time.UTC), v)
}

func TestParseDateSlashVariant(t *testing.T) {
	v, ok := parseDate("31/12/2022", nil)
	require.True(t, ok)
	assert.Equal(t, time.Date(2022, 12, 31, 0, 0, 0, 0, time.UTC), v)
}

func TestParseDateInvalid(t *testing.T) {
	_, ok := parseDate("not a date", nil)
	assert.False(t, ok)
}

func TestParseBool(t *testing.T) {
	v, ok := parseBool("true", nil)
	require.True(t, ok)
	assert.True(t, v)

	v, ok = parseBool("false", nil)
	require.True(t, ok)
	assert.False(t, v)

	_, ok = parseBool("maybe", nil)
	assert.False(t, ok)
}

func TestParseReversedBool(t *testing.T) {
	v, ok := parseReversedBool("true", nil)
	require.True(t, ok)
	assert.False(t, v)

	v, ok = parseReversedBool("false", nil)
	require.True(t, ok)
	assert.True(t, v)
}

func TestParseYYYYMMDD(t *testing.T) {
	v, ok := parseYYYYMMDD("20221231")
	require.True(t, ok)
	assert.Equal(t, time.Date(2022, 12, 31, 0, 0, 0, 0, time.UTC), v)

	_, ok = parseYYYYMMDD("2022-12-31")
	assert.False(t, ok)
}
