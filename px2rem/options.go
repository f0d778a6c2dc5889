package px2rem

// Options controls conversion. Use DefaultOptions as a starting point, zero
// value is not a useful configuration.
type Options struct {
	// RootValue is root font size, 1rem equals this many pixels.
	RootValue float64
	// Precision is number of decimal digits kept in rem values.
	Precision int
	// MinPixelValue - pixel values below it are not converted.
	MinPixelValue float64
	// MediaQuery enables conversion of at-rule keys.
	MediaQuery bool
	// CalcZeroRem keeps "0rem" instead of "0" inside calc() values.
	CalcZeroRem bool
}

// DefaultOptions returns postcss-pxtorem defaults.
func DefaultOptions() Options {
	return Options{
		RootValue:     16,
		Precision:     5,
		MinPixelValue: 0,
		MediaQuery:    false,
		CalcZeroRem:   true,
	}
}

// Option modifies Options during construction.
type Option func(*Options)

func WithRootValue(v float64) Option {
	return func(o *Options) { o.RootValue = v }
}

func WithPrecision(p int) Option {
	return func(o *Options) { o.Precision = p }
}

func WithMinPixelValue(v float64) Option {
	return func(o *Options) { o.MinPixelValue = v }
}

func WithMediaQuery(enable bool) Option {
	return func(o *Options) { o.MediaQuery = enable }
}

func WithCalcZeroRem(enable bool) Option {
	return func(o *Options) { o.CalcZeroRem = enable }
}

// WithOptions replaces all options at once.
func WithOptions(opts Options) Option {
	return func(o *Options) { *o = opts }
}
