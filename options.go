package slugkit

// Option configures slug normalization.
type Option func(*options)

type options struct {
	replacements map[string]string
	separator    string
	stripChars   string
	reserved     []string
	maxLength    int
	minLength    int
	suffixLength int
	lowercase    bool
}

func defaultOptions() *options {
	return &options{
		separator: "-",
		lowercase: true,
	}
}

// Separator sets the string placed between word tokens.
// Empty and multi-character separators are allowed.
// Default: "-".
func Separator(s string) Option {
	return func(o *options) {
		o.separator = s
	}
}

// Lowercase controls case conversion. When false, the original case is
// preserved and random suffixes may contain uppercase characters.
// Default: true.
func Lowercase(enabled bool) Option {
	return func(o *options) {
		o.lowercase = enabled
	}
}

// MaxLength limits the slug to n runes. Truncation never leaves a trailing
// separator. When a random suffix was requested via WithSuffix, the suffix
// keeps its full length and the base is truncated to fit.
// Zero means unlimited.
func MaxLength(n int) Option {
	return func(o *options) {
		o.maxLength = n
	}
}

// MinLength pads slugs shorter than n runes with a separator and a fixed
// 6-character random suffix. Zero disables padding.
func MinLength(n int) Option {
	return func(o *options) {
		o.minLength = n
	}
}

// StripChars removes the listed characters from the input before tokenization.
func StripChars(chars string) Option {
	return func(o *options) {
		o.stripChars = chars
	}
}

// CustomReplace applies string replacements before any other processing,
// e.g. map[string]string{"&": "and", "@": "at"}.
func CustomReplace(replacements map[string]string) Option {
	return func(o *options) {
		o.replacements = replacements
	}
}

// WithSuffix appends a random alphanumeric suffix of the given length,
// separated by the configured separator. Zero disables the suffix.
func WithSuffix(length int) Option {
	return func(o *options) {
		o.suffixLength = length
	}
}

// ReservedSlugs prevents the listed slugs (compared case-insensitively) from
// being returned as-is. A matching result gets a random suffix appended,
// 6 characters long unless WithSuffix set an explicit length.
func ReservedSlugs(slugs ...string) Option {
	return func(o *options) {
		o.reserved = append(o.reserved, slugs...)
	}
}
