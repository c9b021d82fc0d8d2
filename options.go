package contentdisposition

// An Option changes how Create builds a Content-Disposition header.
type Option func(*options)

type options struct {
	dtype        string
	fallback     bool
	fallbackName *string
}

func newOptions(opts []Option) *options {
	o := &options{dtype: "attachment", fallback: true}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithType sets the disposition type, which must be a valid token.
// It is lowercased on output. The default is "attachment",
// and so is the empty string.
func WithType(dtype string) Option {
	return func(o *options) {
		if dtype != "" {
			o.dtype = dtype
		}
	}
}

// WithFallback controls whether a file name that is not printable
// ISO-8859-1 gets a 'filename' parameter with such characters replaced
// by '?', next to the 'filename*' parameter. It is enabled by default.
// When disabled, only 'filename*' is sent for such names.
func WithFallback(enabled bool) Option {
	return func(o *options) {
		o.fallback = enabled
		o.fallbackName = nil
	}
}

// WithFallbackName sets the 'filename' parameter to the last element of name
// instead of deriving it from the file name. The 'filename*' parameter then
// carries the real file name, unless both are the same. name must consist of
// printable ISO-8859-1 characters only.
func WithFallbackName(name string) Option {
	return func(o *options) {
		o.fallbackName = &name
	}
}
