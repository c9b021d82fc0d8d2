package contentdisposition

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func checkParse(t *testing.T, header string, expected, actual *Value) {
	t.Helper()
	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Errorf("parsing: %q\n(-expected +actual):\n%s", header, diff)
	}
}

func checkGenerate(t *testing.T, input interface{}, expected, actual string) {
	t.Helper()
	if expected != actual {
		t.Errorf("generating: %#v\nexpected: %s\nactual:   %s",
			input, expected, actual)
	}
}

func checkErrorKind(t *testing.T, input interface{}, expected Error, err error) {
	t.Helper()
	var verr *ValueError
	switch {
	case err == nil:
		t.Errorf("input: %#v\nexpected error: %s\nactual: no error", input, expected)
	case !errors.Is(err, expected):
		t.Errorf("input: %#v\nexpected error: %s\nactual:   %v", input, expected, err)
	case !errors.As(err, &verr):
		t.Errorf("input: %#v\nerror is not a *ValueError: %#v", input, err)
	}
}

func checkFuzz(t *testing.T, parse func(string) (*Value, error)) {
	// Simplistic fuzz testing: On any input, the parse function must not panic,
	// and any error must be one of ours.
	t.Helper()
	for i := 0; i < 100; i++ {
		t.Run("", func(t *testing.T) {
			r := rand.New(rand.NewSource(int64(i)))
			b := make([]byte, r.Intn(64))
			for j := range b {
				// Biased towards punctuation, to trigger more parser states.
				const chars = "\x00 \t,;=-%'*/\"\\abcdefghijklmnopqrstuvwxyz0123456789"
				b[j] = chars[r.Intn(len(chars))]
			}
			if r.Intn(2) == 0 {
				b = append([]byte("attachment; "), b...)
			}
			header := string(b)
			t.Logf("header: %q", header)
			v, err := parse(header)
			t.Logf("parsed: %#v, %v", v, err)
			var verr *ValueError
			if err != nil && !errors.As(err, &verr) {
				t.Errorf("unexpected error type %T", err)
			}
		})
	}
}

const (
	loalpha = "abcdefghijklmnopqrstuvwxyz"
	hialpha = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	alpha   = loalpha + hialpha
	digit   = "0123456789"
	alnum   = alpha + digit
	tchar   = "!#$%&'*+-.^_`|~" + alnum
)

func randString(r *rand.Rand, alphabet string) string {
	b := make([]byte, 1+r.Intn(10))
	for i := 0; i < len(b); i++ {
		b[i] = alphabet[r.Intn(len(alphabet))]
	}
	return string(b)
}

// randLatin1 returns a random string of printable ISO-8859-1 characters,
// including quotes and backslashes.
func randLatin1(r *rand.Rand) string {
	runes := make([]rune, 1+r.Intn(10))
	for i := range runes {
		if r.Intn(3) == 0 {
			runes[i] = rune(0xA0 + r.Intn(0x60))
		} else {
			runes[i] = rune(0x20 + r.Intn(0x5F))
		}
	}
	return strings.ReplaceAll(string(runes), "/", "_")
}

// randUTF8 returns a random string with at least one character outside
// ISO-8859-1, and no slashes.
func randUTF8(r *rand.Rand) string {
	runes := make([]rune, 1+r.Intn(10))
	for i := range runes {
		runes[i] = rune(r.Intn(0xFFFF))
	}
	runes[r.Intn(len(runes))] = rune(0x100 + r.Intn(0xD700))
	return strings.ReplaceAll(string(runes), "/", "_")
}
