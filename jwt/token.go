package jwt

import (
	"maps"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/xjwt/metricskey"
	"github.com/effective-security/xlog"
)

// AlgorithmClaim is the claim holding the "alg" header value
const AlgorithmClaim = "algorithm"

// nameClaims are checked in order to derive the token name
var nameClaims = []string{"name", "preferred_name", "sub"}

// Status of the token validation
type Status int

// Status values
const (
	StatusUnchecked Status = iota
	StatusValid
	StatusInvalid
)

func (s Status) String() string {
	switch s {
	case StatusValid:
		return "valid"
	case StatusInvalid:
		return "invalid"
	default:
		return "unchecked"
	}
}

// Token is a parsed JWT.
// A Token is not safe for concurrent use: parse, validate, then read.
type Token struct {
	raw     string
	name    string
	hasName bool
	claims  Claims
	status  Status
	opts    options
}

// New returns an empty token, it has no claims and never validates
func New(opts ...Option) *Token {
	return &Token{
		claims: Claims{},
		opts:   newOptions(opts),
	}
}

// Parse returns Token with claims from the header and payload of raw.
// The signature is not verified, see CheckValid.
//
// The "alg" header value is stored as AlgorithmClaim, payload claims
// are merged after it and a payload claim with the same name replaces it.
func Parse(raw string, opts ...Option) (*Token, error) {
	defer metricskey.PerfTokenParse.MeasureSince(time.Now(), "parse")

	first := strings.Index(raw, ".")
	last := strings.LastIndex(raw, ".")
	if first < 0 || first == last {
		return nil, errors.Wrap(ErrMalformedToken, "expected three segments")
	}

	t := New(opts...)
	t.raw = raw

	header, err := t.decodeJSON(raw[:first], "header")
	if err != nil {
		return nil, err
	}

	alg := header["alg"]
	if _, ok := alg.(string); alg != nil && !ok {
		return nil, errors.Wrapf(ErrMalformedClaims, "alg must be a string, got %T", alg)
	}
	t.claims[AlgorithmClaim] = alg

	payload, err := t.decodeJSON(raw[first+1:last], "payload")
	if err != nil {
		return nil, err
	}
	maps.Copy(t.claims, payload)

	for _, c := range nameClaims {
		if v, ok := t.claims[c].(string); ok {
			t.name = v
			t.hasName = true
			break
		}
	}

	logger.KV(xlog.TRACE, "alg", alg, "name", t.name)
	return t, nil
}

func (t *Token) decodeJSON(seg, part string) (map[string]any, error) {
	text, err := DecodeSegmentString(seg)
	if err != nil {
		return nil, errors.Mark(errors.WithMessagef(err, "unable to decode %s", part), ErrMalformedToken)
	}
	m, err := t.opts.mapper(text)
	if err != nil {
		return nil, errors.Mark(errors.WithMessagef(err, "unable to parse %s", part), ErrMalformedClaims)
	}
	return m, nil
}

// CheckValid verifies the token signature with key using the algorithm
// declared by the token, and returns the outcome that is also kept
// for IsValid. Failure details go to the Reporter.
func (t *Token) CheckValid(key string) bool {
	alg := t.Algorithm()

	last := strings.LastIndex(t.raw, ".")
	if last < 0 {
		t.opts.reporter.Report(alg, errors.Wrap(ErrMalformedToken, "token is empty"))
		t.status = StatusInvalid
		return false
	}

	sig, err := DecodeSegment(t.raw[last+1:])
	if err != nil {
		t.opts.reporter.Report(alg, errors.WithMessage(err, "unable to decode signature"))
		t.status = StatusInvalid
		return false
	}

	if CheckValid(Lookup(alg), t.raw[:last], sig, key, t.opts.reporter) {
		t.status = StatusValid
	} else {
		t.status = StatusInvalid
	}
	return t.status == StatusValid
}

// IsValid returns true if the last CheckValid succeeded.
// It is false both before validation and after a failed one, use Status
// to tell them apart.
func (t *Token) IsValid() bool {
	return t.status == StatusValid
}

// Status returns validation status
func (t *Token) Status() Status {
	return t.status
}

// Algorithm returns the declared algorithm,
// or empty string if it is missing or not a string
func (t *Token) Algorithm() string {
	alg, _ := t.claims[AlgorithmClaim].(string)
	return alg
}

// Name returns the first string claim of name, preferred_name, sub
func (t *Token) Name() (string, bool) {
	return t.name, t.hasName
}

// Claim returns the claim value, or nil if it is not present
func (t *Token) Claim(name string) any {
	return t.claims[name]
}

// Claims returns a copy of all claims
func (t *Token) Claims() Claims {
	return maps.Clone(t.claims)
}

// String returns the raw token
func (t *Token) String() string {
	return t.raw
}
