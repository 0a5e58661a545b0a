package xbrl

import "strings"

// sanitizeRawBytes prepares raw filing bytes for the recovery decoder.
// It only touches whitespace and invisible characters: named and numeric
// character references are left untouched here, because decoder.Entity
// (set to xml.HTMLEntity in newRecoveryDecoder) already resolves them
// during tokenization, and blindly string-replacing "&nbsp;"-style text
// before parsing risks corrupting markup that happens to contain that
// literal substring inside an attribute or comment.
func sanitizeRawBytes(data []byte) []byte {
	text := string(data)
	text = normalizeWhitespace(text)
	text = removeInvisibleChars(text)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return []byte(text)
}

// nonBreakingSpace is the one Unicode space character Companies House
// filings actually carry in running text: word-processor-exported
// HTML/iXBRL routinely uses U+00A0 in place of a plain space.
const nonBreakingSpace = '\u00A0'

// zeroWidthSpace and byteOrderMark are the two invisible code points
// seen in practice: a stray ZWSP inside copy-pasted narrative text, and
// a literal BOM embedded in the raw bytes after the first '<' (on top of
// the leading BOM bytes newRecoveryDecoder already strips before it).
// This runs before tokenization, so a BOM produced by an entity reference
// is not removed here.
const (
	zeroWidthSpace = '\u200B'
	byteOrderMark  = '\uFEFF'
)

// normalizeWhitespace converts non-breaking spaces to a plain space.
func normalizeWhitespace(text string) string {
	if !strings.ContainsRune(text, nonBreakingSpace) {
		return text
	}
	return strings.ReplaceAll(text, string(nonBreakingSpace), " ")
}

// removeInvisibleChars strips the zero-width characters that carry no
// meaning for a numeric or date fact but can otherwise land inside a
// parsed value and break a Value Parser's null check or decimal parse.
func removeInvisibleChars(text string) string {
	if !strings.ContainsRune(text, zeroWidthSpace) && !strings.ContainsRune(text, byteOrderMark) {
		return text
	}
	text = strings.ReplaceAll(text, string(zeroWidthSpace), "")
	text = strings.ReplaceAll(text, string(byteOrderMark), "")
	return text
}
