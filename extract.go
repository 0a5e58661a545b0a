package xbrl

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"
	"sync"
)

// Extract takes an archive entry's filename and its raw XBRL bytes and
// produces the sequence of output row tuples. It makes two independent
// passes over the document: the first resolves every <context> element
// into a complete contextIndex regardless of where it falls in document
// order, the second matches facts against the column catalog and looks
// up each one's contextRef in that completed index. Two passes are
// necessary because inline-XBRL filings commonly declare their contexts
// in an ix:header/ix:resources block placed after the facts that
// reference them; a single forward pass would silently drop any fact
// whose context it hadn't reached yet.
func Extract(filename string, xbrlBytes []byte) ([]Row, error) {
	core, err := parseFilename(filename)
	if err != nil {
		return nil, err
	}

	idx, err := buildContextIndex(newRecoveryDecoder(xbrlBytes))
	if err != nil {
		return nil, &MalformedInputError{Filename: filename, Err: err}
	}

	decoder := newRecoveryDecoder(xbrlBytes)

	namespaces := make(map[string]struct{})
	matchers := sharedMatcherTables()

	var general [generalColumnCount]slot
	for i := range general {
		general[i] = newSlot()
	}
	periodic := make(map[periodKey][]slot)

	sawRoot := false
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &MalformedInputError{Filename: filename, Err: err}
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		if !sawRoot {
			sawRoot = true
			collectNamespaces(start, namespaces)
		}

		if start.Name.Local == "context" {
			// Context periods were already resolved by buildContextIndex's
			// earlier whole-document pass; just skip the subtree here.
			if err := decoder.Skip(); err != nil {
				return nil, &MalformedInputError{Filename: filename, Err: err}
			}
			continue
		}

		attrs := attrMap(start.Attr)
		nameSuffix := suffixOf(attrs["name"])
		contextRef := attrs["contextRef"]

		candidates := matchers.gather(start.Name.Local, nameSuffix, contextRef)
		if len(candidates) == 0 {
			continue
		}

		directText, spanText, _, err := captureElement(decoder, start)
		if err != nil {
			return nil, &MalformedInputError{Filename: filename, Err: err}
		}

		period, hasPeriod := idx[contextRef]

		for _, c := range candidates {
			harvest := directText
			if c.harvestSpanDescendant {
				harvest = spanText
			}
			value, ok := c.parser(harvest, attrs)
			if !ok {
				continue
			}
			if c.column.IsGeneral() {
				handleGeneral(&general[c.column], c.priority, value)
				continue
			}
			if !hasPeriod || !period.hasStart || !period.hasEnd {
				continue
			}
			key := periodKey{start: period.start, end: period.end}
			slots, ok := periodic[key]
			if !ok {
				slots = make([]slot, len(periodicColumnOrder))
				for i := range slots {
					slots[i] = newSlot()
				}
				periodic[key] = slots
			}
			handlePeriodic(&slots[periodicSlotIndex(c.column)], c.priority, value)
		}
	}

	core.Taxonomy = computeTaxonomy(namespaces)
	return assembleRows(core, general, periodic), nil
}

// handleGeneral fills or replaces a general slot when the candidate's
// priority is strictly better than or equal to the slot's current one,
// so same-priority candidates can fall through to one that yields a
// non-null value.
func handleGeneral(s *slot, priority int, value any) {
	if priority > s.priority {
		return
	}
	s.priority = priority
	s.value = value
	s.filled = true
}

// handlePeriodic is stricter than handleGeneral: only a candidate with
// priority strictly less than the slot's current priority may replace
// it, so same-priority ties keep whichever candidate filled it first.
func handlePeriodic(s *slot, priority int, value any) {
	if priority >= s.priority {
		return
	}
	s.priority = priority
	s.value = value
	s.filled = true
}

// captureElement consumes the subtree of an already-opened element
// (start must have just been returned by decoder.Token()), returning its
// direct character data (text that is not inside any nested element) and
// the character data of the first "span"-local-name descendant
// encountered, if any (the entity_current_legal_name custom rule needs
// both).
func captureElement(decoder *xml.Decoder, start xml.StartElement) (directText, spanText string, spanFound bool, err error) {
	var directBuf, spanBuf strings.Builder
	depth := 0
	inSpan := false
	spanDepth := -1
	for {
		tok, err := decoder.Token()
		if err != nil {
			return directBuf.String(), spanBuf.String(), spanFound, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if !spanFound && !inSpan && t.Name.Local == "span" {
				inSpan = true
				spanDepth = depth
			}
			depth++
		case xml.CharData:
			if depth == 0 {
				directBuf.Write(t)
			}
			if inSpan {
				spanBuf.Write(t)
			}
		case xml.EndElement:
			depth--
			if inSpan && depth == spanDepth {
				inSpan = false
				spanFound = true
			}
			if depth < 0 {
				return directBuf.String(), spanBuf.String(), spanFound, nil
			}
		}
	}
}

// attrMap flattens an element's attribute list into a local-name-keyed
// map, the shape every Value Parser and every Custom predicate expects.
func attrMap(attrs []xml.Attr) map[string]string {
	m := make(map[string]string, len(attrs))
	for _, a := range attrs {
		m[a.Name.Local] = a.Value
	}
	return m
}

// suffixOf extracts the part of a `name` attribute after its rightmost
// colon, e.g. "uk-gaap:TangibleFixedAssets" -> "TangibleFixedAssets". A
// name attribute with no colon is returned unchanged; an empty or absent
// one yields "".
func suffixOf(name string) string {
	if name == "" {
		return ""
	}
	if idx := strings.LastIndex(name, ":"); idx >= 0 {
		return name[idx+1:]
	}
	return name
}

// collectNamespaces records every xmlns/xmlns:prefix declaration on the
// document's root element, the universe computeTaxonomy intersects
// against when computing the taxonomy column.
func collectNamespaces(root xml.StartElement, into map[string]struct{}) {
	for _, a := range root.Attr {
		if a.Name.Space == "xmlns" || a.Name.Local == "xmlns" {
			into[a.Value] = struct{}{}
		}
	}
}

// newRecoveryDecoder builds an xml.Decoder in permissive mode: it skips
// any bytes before the first '<' (BOM or junk preamble) and tolerates
// encoding declarations the stdlib charset table doesn't know about by
// treating the bytes as already-UTF-8.
func newRecoveryDecoder(raw []byte) *xml.Decoder {
	if idx := bytes.IndexByte(raw, '<'); idx > 0 {
		raw = raw[idx:]
	}
	raw = sanitizeRawBytes(raw)
	decoder := xml.NewDecoder(bytes.NewReader(raw))
	decoder.Strict = false
	decoder.AutoClose = xml.HTMLAutoClose
	decoder.Entity = xml.HTMLEntity
	decoder.CharsetReader = func(_ string, input io.Reader) (io.Reader, error) {
		return input, nil
	}
	return decoder
}

var (
	globalMatchers     *matcherTables
	globalMatchersOnce sync.Once
)

// sharedMatcherTables lazily builds and caches the static matcher
// tables. They are read-only after construction and safe to share
// across concurrent Extract calls.
func sharedMatcherTables() *matcherTables {
	globalMatchersOnce.Do(func() {
		globalMatchers = newMatcherTables()
	})
	return globalMatchers
}
