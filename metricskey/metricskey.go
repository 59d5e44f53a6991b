package metricskey

import "github.com/effective-security/metrics"

// Perf
var (
	// PerfTokenParse is perf metric
	PerfTokenParse = metrics.Describe{
		Type:         metrics.TypeSample,
		Name:         "perf_jwt_parse",
		Help:         "perf_jwt_parse provides the sample metrics of token parsing",
		RequiredTags: []string{"action"},
	}

	// PerfTokenVerify is perf metric
	PerfTokenVerify = metrics.Describe{
		Type:         metrics.TypeSample,
		Name:         "perf_jwt_verify",
		Help:         "perf_jwt_verify provides the sample metrics of signature verification",
		RequiredTags: []string{"alg"},
	}
)
