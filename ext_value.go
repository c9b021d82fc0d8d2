package contentdisposition

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// charsets are the only charsets an ext-value may be marked with
// (RFC 5987 Section 3.2.1). Names are compared case-insensitively, but
// aliases such as "latin1" are not accepted.
var charsets = map[string]encoding.Encoding{
	"utf-8":      unicode.UTF8,
	"iso-8859-1": charmap.ISO8859_1,
}

// DecodeExtValue decodes the given ext-value (RFC 5987, RFC 8187) into its
// text and language tag, the latter lowercased and possibly empty.
//
// Malformed UTF-8 is replaced with U+FFFD. In ISO-8859-1 values, every byte
// outside the printable ranges 0x20-0x7E and 0xA0-0xFF decodes to '?'
// instead of its code point. This covers the C0 controls, DEL, and the whole
// 0x80-0x9F range, so %82 decodes to "?". Any charset other than UTF-8 and
// ISO-8859-1 is an error wrapping ErrUnsupportedCharset; a value that does not
// match the ext-value grammar is an error wrapping
// ErrInvalidExtendedFieldValue.
func DecodeExtValue(v string) (text, lang string, err error) {
	return decodeExtValue(v, -1)
}

func decodeExtValue(v string, offset int) (text, lang string, err error) {
	charset, lang, chars, ok := splitExtValue(v)
	if !ok {
		return "", "", newError(ErrInvalidExtendedFieldValue, v, offset)
	}
	enc, ok := charsets[strings.ToLower(charset)]
	if !ok {
		return "", "", newError(ErrUnsupportedCharset, charset, offset)
	}
	b, err := enc.NewDecoder().Bytes(pctDecode(chars))
	if err != nil {
		return "", "", newError(ErrInvalidExtendedFieldValue, v, offset)
	}
	text = string(b)
	if enc == charmap.ISO8859_1 {
		text = toLatin1.String(text)
	}
	return text, strings.ToLower(lang), nil
}

// splitExtValue matches v against
//
//	ext-value = charset "'" [ language ] "'" value-chars
//
// where value-chars must not be empty.
func splitExtValue(v string) (charset, lang, chars string, ok bool) {
	i := 0
	for i < len(v) && isCharsetChar[v[i]] {
		i++
	}
	if i == 0 || peek(v[i:]) != '\'' {
		return "", "", "", false
	}
	charset, v = v[:i], v[i+1:]
	i = strings.IndexByte(v, '\'')
	if i == -1 {
		return "", "", "", false
	}
	lang, chars = v[:i], v[i+1:]
	if !isLanguage(lang) || !isValueChars(chars) {
		return "", "", "", false
	}
	return charset, lang, chars, true
}

// pctDecode unescapes every %XX in s, which must be valid value-chars.
func pctDecode(s string) []byte {
	b := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' {
			b = append(b, unhex(s[i+1])<<4|unhex(s[i+2]))
			i += 2
			continue
		}
		b = append(b, s[i])
	}
	return b
}

// EncodeExtValue encodes text, which should be valid UTF-8, into an ext-value
// (RFC 8187) with the given lang tag. Both text and lang may be empty,
// although a valid ext-value needs non-empty text.
func EncodeExtValue(text, lang string) string {
	b := &strings.Builder{}
	writeExtValue(b, text, lang)
	return b.String()
}

func writeExtValue(b *strings.Builder, text, lang string) {
	b.Grow(6 + len(lang) + 1 + len(text)) // need at least this many bytes
	write(b, "UTF-8'", lang, "'")
	for i := 0; i < len(text); i++ {
		write(b, pctEncoding[text[i]])
	}
}

// pctEncoding is URI component escaping (as in ECMAScript
// encodeURIComponent), tightened so that only attr-chars are left alone.
var pctEncoding [256]string

func init() {
	for i := 0; i <= 0xFF; i++ {
		b := byte(i)
		unreserved := (b >= '0' && b <= '9') ||
			(b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') ||
			strings.IndexByte("-_.!~*'()", b) != -1
		if unreserved && !isAttrEscape(b) {
			pctEncoding[b] = string([]byte{b})
		} else {
			pctEncoding[b] = fmt.Sprintf("%%%02X", b)
		}
	}
}
