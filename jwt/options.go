package jwt

type options struct {
	reporter Reporter
	mapper   ClaimMapper
}

// Option configures a Token
type Option func(*options)

// WithReporter sets the sink for verification failures,
// LogReporter is used by default, nil discards reports.
func WithReporter(r Reporter) Option {
	return func(o *options) {
		o.reporter = r
	}
}

// WithClaimMapper replaces JSONClaimMapper
func WithClaimMapper(m ClaimMapper) Option {
	return func(o *options) {
		o.mapper = m
	}
}

func newOptions(opts []Option) options {
	o := options{
		reporter: LogReporter,
		mapper:   JSONClaimMapper,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.reporter == nil {
		o.reporter = DiscardReporter
	}
	if o.mapper == nil {
		o.mapper = JSONClaimMapper
	}
	return o
}
