package contentdisposition

import (
	"path"
	"strings"
)

func peek(v string) byte {
	if v == "" {
		return 0
	}
	return v[0]
}

// skipWS skips over the implied *LWS of RFC 2616 Section 2.1,
// which in a single header line is just spaces and tabs.
func skipWS(v string) string {
	for v != "" && (v[0] == ' ' || v[0] == '\t') {
		v = v[1:]
	}
	return v
}

func consumeToken(v string) (tok, rest string) {
	i := 0
	for ; i < len(v); i++ {
		if !isTchar[v[i]] {
			break
		}
	}
	return v[:i], v[i:]
}

// consumeQuoted consumes a quoted-string from the start of v, returning it
// with the quotes and escapes intact. ok is false if v does not start with
// a well-formed quoted-string.
func consumeQuoted(v string) (quoted, rest string, ok bool) {
	if peek(v) != '"' {
		return "", v, false
	}
	for i := 1; i < len(v); i++ {
		switch b := v[i]; {
		case b == '"':
			return v[:i+1], v[i+1:], true
		case b == '\\':
			// quoted-pair = "\" CHAR
			if i+1 == len(v) || v[i+1] > 0x7F {
				return "", v, false
			}
			i++
		case !isQdtext[b]:
			return "", v, false
		}
	}
	return "", v, false
}

// unquote strips the quotes from a quoted-string returned by consumeQuoted
// and resolves its quoted-pairs.
func unquote(quoted string) string {
	s := quoted[1 : len(quoted)-1]
	if strings.IndexByte(s, '\\') == -1 {
		return s
	}
	b := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		b = append(b, s[i])
	}
	return string(b)
}

// consumeParam consumes one `; name = value` from the start of v, along with
// any whitespace after it. The value is returned raw: quoted reports
// whether it is a quoted-string that still needs unquote.
func consumeParam(v string) (name, value string, quoted bool, rest string, ok bool) {
	if peek(v) != ';' {
		return "", "", false, v, false
	}
	v = skipWS(v[1:])
	if name, v = consumeToken(v); name == "" {
		return "", "", false, v, false
	}
	v = skipWS(v)
	if peek(v) != '=' {
		return "", "", false, v, false
	}
	v = skipWS(v[1:])
	if peek(v) == '"' {
		if value, v, ok = consumeQuoted(v); !ok {
			return "", "", false, v, false
		}
		quoted = true
	} else if value, v = consumeToken(v); value == "" {
		return "", "", false, v, false
	}
	return name, value, quoted, skipWS(v), true
}

// extendedName returns the base name of an ext-parameter name such as
// "filename*". Names with an asterisk anywhere else, like the RFC 2231
// continuations "filename*0" and "filename*0*", are not ext-parameters.
func extendedName(name string) (base string, ok bool) {
	i := strings.IndexByte(name, '*')
	if i == -1 || i != len(name)-1 {
		return name, false
	}
	return name[:i], true
}

// basename returns the last element of a slash-separated path,
// or the empty string if there is none.
func basename(p string) string {
	p = strings.TrimRight(p, "/")
	if p == "" {
		return ""
	}
	return path.Base(p)
}

func write(b *strings.Builder, ss ...string) {
	for _, s := range ss {
		b.WriteString(s)
	}
}

func writeQuoted(b *strings.Builder, s string) {
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		if s[i] == '"' || s[i] == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
	b.WriteByte('"')
}
