package xl

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/adnsv/srw/xml"
)

// escapeText encodes cell text for element content. Markup characters become
// entities and a carriage return becomes &#13; so it survives line-end
// normalization. Runes XML 1.0 cannot carry are written as the OOXML _xHHHH_
// escape, and a literal "_xHHHH_" in the text is protected as "_x005F_xHHHH_".
// Invalid UTF-8 is replaced with U+FFFD.
func escapeText(s string) xml.RawString {
	var sb strings.Builder
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == utf8.RuneError && size == 1:
			sb.WriteRune(utf8.RuneError)
		case r == '&':
			sb.WriteString("&amp;")
		case r == '<':
			sb.WriteString("&lt;")
		case r == '>':
			sb.WriteString("&gt;")
		case r == '\r':
			sb.WriteString("&#13;")
		case r == '_' && isEscapeSeq(s[i:]):
			sb.WriteString("_x005F_")
		case !isXMLChar(r):
			fmt.Fprintf(&sb, "_x%04X_", r)
		default:
			sb.WriteString(s[i : i+size])
		}
		i += size
	}
	return xml.RawString(sb.String())
}

// isEscapeSeq reports whether s starts with _xHHHH_.
func isEscapeSeq(s string) bool {
	if len(s) < 7 || s[0] != '_' || s[1] != 'x' || s[6] != '_' {
		return false
	}
	for _, c := range []byte(s[2:6]) {
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return false
		}
	}
	return true
}

// isXMLChar reports whether r is in the XML 1.0 Char production.
func isXMLChar(r rune) bool {
	return r == '\t' || r == '\n' || r == '\r' ||
		r >= 0x20 && r <= 0xD7FF ||
		r >= 0xE000 && r <= 0xFFFD ||
		r >= 0x10000 && r <= 0x10FFFF
}
