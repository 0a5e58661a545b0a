package xbrl

// matcherTables precomputes three lookup structures over the column
// catalog — a tag-name map, a name-attribute-suffix map, and an ordered
// list of predicate-guarded candidates — so dispatch per element is
// O(1) instead of running every column's match rule against every
// element. Built once and reused for every filing.
type matcherTables struct {
	tagName map[string]candidate   // local tag name -> candidate
	nameAttr map[string]candidate  // name-attribute suffix -> candidate
	custom  []candidate            // ordered list of predicate-guarded candidates
}

// newMatcherTables builds the three tables from the flat candidate list.
// When two candidates claim the same tag name or name-attribute suffix,
// the first one encountered in columnOrder wins the table slot; this
// only matters when a later column's declaration happens to collide with
// an earlier column's tag or suffix, which the catalog avoids in
// practice but the rule is still documented here for clarity.
func newMatcherTables() *matcherTables {
	m := &matcherTables{
		tagName:  make(map[string]candidate),
		nameAttr: make(map[string]candidate),
	}
	for _, c := range buildCandidates() {
		switch c.kind {
		case ruleTagName:
			if _, exists := m.tagName[c.key]; !exists {
				m.tagName[c.key] = c
			}
		case ruleNameAttr:
			if _, exists := m.nameAttr[c.key]; !exists {
				m.nameAttr[c.key] = c
			}
		case ruleCustom:
			m.custom = append(m.custom, c)
		}
	}
	return m
}

// gather returns every candidate whose match rule fires for an element
// with the given local tag name, name-attribute suffix (empty if the
// element has no name attribute; the whole value if it has no colon), and
// contextRef. At most one TagName and one NameAttr candidate can fire;
// any number of Custom candidates can fire, evaluated in catalog order.
func (m *matcherTables) gather(localName, nameSuffix, contextRef string) []candidate {
	var out []candidate
	if c, ok := m.tagName[localName]; ok {
		out = append(out, c)
	}
	if nameSuffix != "" {
		if c, ok := m.nameAttr[nameSuffix]; ok {
			out = append(out, c)
		}
	}
	for _, c := range m.custom {
		if c.predicate(localName, nameSuffix, contextRef) {
			out = append(out, c)
		}
	}
	return out
}
