package xbrl

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeFirstContext(t *testing.T, doc string) (contextPeriod, bool) {
	t.Helper()
	decoder := xml.NewDecoder(strings.NewReader(doc))
	idx := make(contextIndex)
	for {
		tok, err := decoder.Token()
		require.NoError(t, err)
		if tok == nil {
			break
		}
		if start, ok := tok.(xml.StartElement); ok && start.Name.Local == "context" {
			require.NoError(t, readContext(decoder, start, idx))
			break
		}
	}
	cp, ok := idx["d1"]
	return cp, ok
}

func TestReadContextInstant(t *testing.T) {
	doc := `<root><context id="d1"><period><instant>2022-12-31</instant></period></context></root>`
	cp, ok := decodeFirstContext(t, doc)
	require.True(t, ok)
	assert.True(t, cp.hasStart)
	assert.True(t, cp.hasEnd)
	assert.Equal(t, "2022-12-31", cp.start)
	assert.Equal(t, "2022-12-31", cp.end)
}

func TestReadContextDuration(t *testing.T) {
	doc := `<root><context id="d1"><period><startDate>2021-01-01</startDate><endDate>2021-12-31</endDate></period></context></root>`
	cp, ok := decodeFirstContext(t, doc)
	require.True(t, ok)
	assert.Equal(t, "2021-01-01", cp.start)
	assert.Equal(t, "2021-12-31", cp.end)
}

func TestReadContextMissingEndDateYieldsNullPeriod(t *testing.T) {
	doc := `<root><context id="d1"><period><startDate>2021-01-01</startDate></period></context></root>`
	cp, ok := decodeFirstContext(t, doc)
	require.True(t, ok)
	assert.False(t, cp.hasStart)
	assert.False(t, cp.hasEnd)
}

func TestBuildContextIndexCollectsEveryContextRegardlessOfPosition(t *testing.T) {
	doc := `<root>
  <SomeFact contextRef="d1">123</SomeFact>
  <context id="d1"><period><instant>2022-12-31</instant></period></context>
  <AnotherFact contextRef="d2">456</AnotherFact>
  <context id="d2"><period><startDate>2021-01-01</startDate><endDate>2021-12-31</endDate></period></context>
</root>`
	decoder := xml.NewDecoder(strings.NewReader(doc))
	idx, err := buildContextIndex(decoder)
	require.NoError(t, err)
	require.Len(t, idx, 2)

	d1, ok := idx["d1"]
	require.True(t, ok)
	assert.Equal(t, "2022-12-31", d1.start)
	assert.Equal(t, "2022-12-31", d1.end)

	d2, ok := idx["d2"]
	require.True(t, ok)
	assert.Equal(t, "2021-01-01", d2.start)
	assert.Equal(t, "2021-12-31", d2.end)
}
