package jwt

import (
	"slices"

	"github.com/cockroachdb/errors"
)

// Verifier parses tokens and verifies them with a fixed key,
// accepting only the configured algorithms.
type Verifier struct {
	cfg  VerifyConfig
	opts []Option
}

// NewVerifier returns Verifier
func NewVerifier(cfg *VerifyConfig, opts ...Option) (*Verifier, error) {
	if cfg == nil {
		return nil, errors.New("config not provided")
	}
	if cfg.Key == "" && !cfg.AllowNone {
		return nil, errors.New("key not configured")
	}
	return &Verifier{cfg: *cfg, opts: opts}, nil
}

// Allowed returns true if tokens with alg are accepted
func (v *Verifier) Allowed(alg string) bool {
	if alg == None {
		return v.cfg.AllowNone
	}
	if len(v.cfg.AllowedAlgorithms) == 0 {
		return IsSupported(alg)
	}
	return slices.Contains(v.cfg.AllowedAlgorithms, alg)
}

// Verify parses raw and returns the token if its signature is valid
func (v *Verifier) Verify(raw string) (*Token, error) {
	t, err := Parse(raw, v.opts...)
	if err != nil {
		return nil, err
	}

	// the token chooses its algorithm, pin it before validation
	if alg := t.Algorithm(); !v.Allowed(alg) {
		return nil, errors.Wrapf(ErrAlgorithmNotAllowed, "%q", alg)
	}

	if !t.CheckValid(v.cfg.Key) {
		return nil, errors.WithStack(ErrInvalidSignature)
	}
	return t, nil
}
