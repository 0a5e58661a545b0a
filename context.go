package xbrl

import (
	"encoding/xml"
	"io"
)

// contextPeriod is the resolved period for one <context> element: either
// an instant (start == end) or a genuine start/end duration, as date-only
// ISO strings. If a bound is missing or doesn't parse, the whole context
// is left with both hasStart and hasEnd false, and the extraction pass
// drops periodic facts that reference it.
type contextPeriod struct {
	start    string
	end      string
	hasStart bool
	hasEnd   bool
}

// contextIndex maps a context id, as referenced by a fact's contextRef
// attribute, to its resolved period. It is built by a dedicated pass
// over the whole document before the extraction pass runs, so context
// resolution never depends on a <context> element's position relative
// to the facts that reference it — inline-XBRL filings routinely place
// the ix:header/ix:resources block holding all <context> elements at
// the end of the document, after the tagged facts themselves.
type contextIndex map[string]contextPeriod

// buildContextIndex walks decoder end to end, recording every <context>
// element's resolved period. It ignores everything else; the extraction
// pass (a separate decoder over the same bytes) is the one that matches
// facts against the completed index.
func buildContextIndex(decoder *xml.Decoder) (contextIndex, error) {
	idx := make(contextIndex)
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			return idx, nil
		}
		if err != nil {
			return nil, err
		}
		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "context" {
			continue
		}
		if err := readContext(decoder, start, idx); err != nil {
			return nil, err
		}
	}
}

// readContext consumes one <context ...>...</context> subtree (the
// decoder having just produced its StartElement) and records its period
// in idx. Unlike fact elements, contexts are structural: they are never
// matched against the column catalog, only scanned for id/period.
func readContext(decoder *xml.Decoder, start xml.StartElement, idx contextIndex) error {
	id := attrValue(start.Attr, "id")

	var period struct {
		Instant   string `xml:"period>instant"`
		StartDate string `xml:"period>startDate"`
		EndDate   string `xml:"period>endDate"`
	}
	if err := decoder.DecodeElement(&period, &start); err != nil {
		if err == io.EOF {
			return nil
		}
		return err
	}

	if id == "" {
		return nil
	}

	cp := contextPeriod{}
	if period.Instant != "" {
		if d, ok := parseYYYYDate(period.Instant); ok {
			cp.start, cp.hasStart = d, true
			cp.end, cp.hasEnd = d, true
		}
	} else {
		// Either bound missing or unparsable demotes the whole context to
		// (None, None): a duration with only one end known isn't usable.
		startDate, startOK := parseYYYYDate(period.StartDate)
		endDate, endOK := parseYYYYDate(period.EndDate)
		if startOK && endOK {
			cp.start, cp.hasStart = startDate, true
			cp.end, cp.hasEnd = endDate, true
		}
	}
	idx[id] = cp
	return nil
}

// parseYYYYDate normalizes a context period date string to its date-only
// ISO form, so two contexts that differ only in time-of-day bucket into
// the same (period_start, period_end) row key. Text carrying a timezone
// suffix matches none of dateLayouts and does not parse.
func parseYYYYDate(text string) (string, bool) {
	t, ok := parseDate(text, nil)
	if !ok {
		return "", false
	}
	return t.Format("2006-01-02"), true
}

func attrValue(attrs []xml.Attr, local string) string {
	for _, a := range attrs {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}
