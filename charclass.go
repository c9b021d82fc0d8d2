package contentdisposition

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
)

// Byte classes of the grammars in RFC 2616 Section 2.2 and RFC 5987
// Section 3.2.1.
var (
	isTchar       [256]bool // token
	isQdtext      [256]bool // quoted-string content that needs no quoted-pair
	isAttrChar    [256]bool // ext-value value-chars, besides pct-encoded
	isCharsetChar [256]bool // mime-charsetc
)

func init() {
	const alnum = "0123456789" +
		"abcdefghijklmnopqrstuvwxyz" +
		"ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	for _, c := range alnum + "!#$%&'*+-.^_`|~" {
		isTchar[c] = true
	}
	for _, c := range alnum + "!#$&+-.^_`|~" {
		isAttrChar[c] = true
	}
	for _, c := range alnum + "!#$%&+-^_`{}~" {
		isCharsetChar[c] = true
	}
	for i := 0; i <= 0xFF; i++ {
		b := byte(i)
		isQdtext[b] = b == ' ' || b == '!' ||
			(b >= 0x23 && b <= 0x5B) || (b >= 0x5D && b <= 0x7E) || b >= 0x80
	}
}

// isAttrEscape reports whether b must be percent-encoded in an ext-value
// even though URI component escaping would leave it alone.
func isAttrEscape(b byte) bool {
	return b <= 0x20 || b == 0x7F ||
		strings.IndexByte("\"'()*,/:;<=>?@[\\]{}", b) != -1
}

func isToken(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isTchar[s[i]] {
			return false
		}
	}
	return s != ""
}

func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if c := s[i] | 0x20; c < 'a' || c > 'z' {
			return false
		}
	}
	return s != ""
}

func isHex(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func unhex(c byte) byte {
	switch {
	case c >= 'a':
		return c - 'a' + 10
	case c >= 'A':
		return c - 'A' + 10
	default:
		return c - '0'
	}
}

// isLanguage reports whether s is empty or a language tag as accepted in
// an ext-value: 2*3ALPHA *3("-" 3ALPHA), or 4*8ALPHA.
func isLanguage(s string) bool {
	if s == "" {
		return true
	}
	subtags := strings.Split(s, "-")
	primary := subtags[0]
	if !isAlpha(primary) {
		return false
	}
	switch n := len(primary); {
	case n >= 2 && n <= 3:
		if len(subtags) > 4 {
			return false
		}
		for _, extlang := range subtags[1:] {
			if len(extlang) != 3 || !isAlpha(extlang) {
				return false
			}
		}
		return true
	case n >= 4 && n <= 8:
		return len(subtags) == 1
	default:
		return false
	}
}

// isValueChars reports whether s is 1*(pct-encoded / attr-char).
func isValueChars(s string) bool {
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '%':
			if i+2 >= len(s) || !isHex(s[i+1]) || !isHex(s[i+2]) {
				return false
			}
			i += 2
		case !isAttrChar[s[i]]:
			return false
		}
	}
	return s != ""
}

// hasPctEscape reports whether s contains something that looks like
// a percent-encoded octet, which some clients would decode in a plain
// filename parameter.
func hasPctEscape(s string) bool {
	for i := 0; i+2 < len(s); i++ {
		if s[i] == '%' && isHex(s[i+1]) && isHex(s[i+2]) {
			return true
		}
	}
	return false
}

// latin1 is the printable part of ISO-8859-1.
var latin1 = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x20, Hi: 0x7E, Stride: 1},
		{Lo: 0xA0, Hi: 0xFF, Stride: 1},
	},
	LatinOffset: 2,
}

// isLatin1 reports whether every rune of s is printable ISO-8859-1,
// so that s can be sent in a quoted-string as is. Invalid UTF-8 is not.
func isLatin1(s string) bool {
	for _, r := range s {
		if !unicode.Is(latin1, r) {
			return false
		}
	}
	return true
}

// toLatin1 replaces every rune that is not printable ISO-8859-1 with '?'.
var toLatin1 = runes.Map(func(r rune) rune {
	if unicode.Is(latin1, r) {
		return r
	}
	return '?'
})
