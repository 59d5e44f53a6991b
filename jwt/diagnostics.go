package jwt

import (
	"github.com/cockroachdb/errors"
	"github.com/effective-security/xlog"
)

var logger = xlog.NewPackageLogger("github.com/effective-security/xjwt", "jwt")

// Reporter receives the details of verification failures.
// Verification itself only ever returns a boolean, the reason
// why a token was rejected is delivered here.
type Reporter interface {
	Report(alg string, err error)
}

// ReporterFunc is an adapter to use ordinary functions as Reporter
type ReporterFunc func(alg string, err error)

// Report implements Reporter
func (f ReporterFunc) Report(alg string, err error) {
	f(alg, err)
}

// LogReporter reports to the package logger:
// signature mismatches at DEBUG, everything else at ERROR.
var LogReporter Reporter = ReporterFunc(logReport)

// DiscardReporter drops all reports
var DiscardReporter Reporter = ReporterFunc(func(string, error) {})

func logReport(alg string, err error) {
	if errors.Is(err, ErrInvalidSignature) {
		logger.KV(xlog.DEBUG, "alg", alg, "reason", "signature_mismatch")
		return
	}
	logger.KV(xlog.ERROR, "alg", alg, "reason", "verification_failed", "err", err.Error())
}
