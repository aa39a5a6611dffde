package slugkit

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTable maps letters that Unicode decomposition cannot reduce to ASCII.
// Everything with a combining-mark decomposition (é, ü, ż, ...) is handled
// by the NFD transform in foldDiacritics.
var foldTable = map[rune]string{
	'ß': "s",
	'æ': "a", 'Æ': "a",
	'œ': "o", 'Œ': "o",
	'ø': "o", 'Ø': "o",
	'ł': "l", 'Ł': "l",
	'đ': "d", 'Đ': "d",
	'ð': "d", 'Ð': "d",
	'þ': "t", 'Þ': "t",
	'ħ': "h", 'Ħ': "h",
	'ı': "i",
}

// Make converts arbitrary text into a URL-safe slug.
//
// The input is lowercased (unless disabled), diacritics are folded to their
// ASCII equivalents, and every run of non-alphanumeric characters becomes a
// single separator. Leading and trailing separators are trimmed. Input with
// no usable characters produces an empty string; use Generate when an error
// is preferred.
//
//	Make("Hello, World!")       // "hello-world"
//	Make("Café & Restaurant")   // "cafe-restaurant"
func Make(s string, opts ...Option) string {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return makeWith(s, o)
}

func makeWith(s string, o *options) string {
	for old, repl := range o.replacements {
		s = strings.ReplaceAll(s, old, repl)
	}
	if o.stripChars != "" {
		s = strings.Map(func(r rune) rune {
			if strings.ContainsRune(o.stripChars, r) {
				return -1
			}
			return r
		}, s)
	}

	s = foldDiacritics(s)
	if o.lowercase {
		s = strings.ToLower(s)
	}

	result := strings.Join(tokenize(s), o.separator)

	// Reserved slugs and explicit suffixes share the suffix mechanism:
	// an explicit WithSuffix length wins, reserved hits default to 6.
	suffixLen := 0
	if o.suffixLength > 0 {
		suffixLen = o.suffixLength
	} else if isReserved(result, o.reserved) {
		suffixLen = defaultSuffixLength
	}
	if suffixLen > 0 {
		result = joinSuffix(result, randomSuffix(suffixLen, o.lowercase), o.separator)
	}

	if o.minLength > 0 && utf8.RuneCountInString(result) < o.minLength {
		result = joinSuffix(result, randomSuffix(defaultSuffixLength, o.lowercase), o.separator)
	}

	if o.maxLength > 0 && utf8.RuneCountInString(result) > o.maxLength {
		result = truncate(result, o)
	}

	return result
}

// foldDiacritics reduces accented letters to ASCII. Characters outside the
// supported families (Cyrillic, CJK, emoji, ...) pass through and are later
// dropped by tokenize.
func foldDiacritics(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if repl, ok := foldTable[r]; ok {
			b.WriteString(repl)
			continue
		}
		if unicode.IsUpper(r) {
			if repl, ok := foldTable[unicode.ToLower(r)]; ok {
				b.WriteString(strings.ToUpper(repl))
				continue
			}
		}
		b.WriteRune(r)
	}
	// Chain transformers carry state, so the chain is built per call.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, b.String())
	if err != nil {
		return b.String()
	}
	return folded
}

// tokenize splits the string into runs of ASCII alphanumerics; anything else
// acts as a token boundary.
func tokenize(s string) []string {
	var tokens []string
	var b strings.Builder
	for _, r := range s {
		if r < 128 && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
			continue
		}
		if b.Len() > 0 {
			tokens = append(tokens, b.String())
			b.Reset()
		}
	}
	if b.Len() > 0 {
		tokens = append(tokens, b.String())
	}
	return tokens
}

func isReserved(slug string, reserved []string) bool {
	for _, r := range reserved {
		if strings.EqualFold(slug, r) {
			return true
		}
	}
	return false
}

// joinSuffix appends a random suffix, skipping the separator when the base
// is empty so all-special-character input yields a bare suffix.
func joinSuffix(base, suffix, sep string) string {
	if suffix == "" {
		return base
	}
	if base == "" {
		return suffix
	}
	return base + sep + suffix
}

// truncate enforces maxLength. An explicit WithSuffix suffix keeps its full
// length and the base shrinks to fit; otherwise the slug is cut at the limit
// and trailing separator characters are trimmed.
func truncate(result string, o *options) string {
	if o.suffixLength > 0 {
		sepRunes := utf8.RuneCountInString(o.separator)
		avail := o.maxLength - o.suffixLength - sepRunes
		r := []rune(result)
		if avail <= 0 {
			// No room for any base: the truncated suffix is the slug.
			suffix := r[len(r)-o.suffixLength:]
			if len(suffix) > o.maxLength {
				suffix = suffix[:o.maxLength]
			}
			return string(suffix)
		}
		suffix := string(r[len(r)-o.suffixLength:])
		base := string(r[:len(r)-o.suffixLength-sepRunes])
		base = trimTrailingSeparator(truncateRunes(base, avail), o.separator)
		return base + o.separator + suffix
	}
	return trimTrailingSeparator(truncateRunes(result, o.maxLength), o.separator)
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

func trimTrailingSeparator(s, sep string) string {
	if sep == "" {
		return s
	}
	return strings.TrimRight(s, sep)
}
