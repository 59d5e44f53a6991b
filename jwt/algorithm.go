package jwt

import (
	"crypto"
	"crypto/hmac"
	"crypto/rsa"
	_ "crypto/sha256" // register SHA-256
	_ "crypto/sha512" // register SHA-384 and SHA-512
	"time"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/xjwt/metricskey"
)

// Supported "alg" header values
const (
	HS256 = "HS256"
	HS384 = "HS384"
	HS512 = "HS512"
	RS256 = "RS256"
	RS384 = "RS384"
	RS512 = "RS512"
	// None is the unsecured JWT profile. A token declaring it is always
	// reported as valid, callers that forbid unsecured tokens must
	// reject it before validation, see Verifier.
	None = "none"
)

// Algorithm verifies a signature over the signing input with a key
// supplied as an opaque string. Implementations are stateless and safe
// for concurrent use.
type Algorithm interface {
	// Name returns the "alg" header value
	Name() string
	// Verify returns nil if signature is valid for signingInput under key
	Verify(signingInput string, signature []byte, key string) error
}

var algorithms = map[string]Algorithm{
	HS256: &hmacAlgorithm{name: HS256, hash: crypto.SHA256},
	HS384: &hmacAlgorithm{name: HS384, hash: crypto.SHA384},
	HS512: &hmacAlgorithm{name: HS512, hash: crypto.SHA512},
	RS256: &rsaAlgorithm{name: RS256, hash: crypto.SHA256},
	RS384: &rsaAlgorithm{name: RS384, hash: crypto.SHA384},
	RS512: &rsaAlgorithm{name: RS512, hash: crypto.SHA512},
	None:  noneAlgorithm{},
}

// Lookup returns the Algorithm for the "alg" value,
// or Unsupported if the name is not recognized.
func Lookup(name string) Algorithm {
	if a, ok := algorithms[name]; ok {
		return a
	}
	return Unsupported(name)
}

// IsSupported returns true if name resolves to a verifying algorithm
func IsSupported(name string) bool {
	_, ok := algorithms[name]
	return ok
}

// CheckValid verifies the signature with alg and returns the outcome.
// It never fails: any error, including a panic in the crypto provider,
// is delivered to r and turns into false.
func CheckValid(alg Algorithm, signingInput string, signature []byte, key string, r Reporter) (valid bool) {
	if r == nil {
		r = LogReporter
	}
	defer metricskey.PerfTokenVerify.MeasureSince(time.Now(), metricTag(alg))
	defer func() {
		if rec := recover(); rec != nil {
			r.Report(alg.Name(), errors.Errorf("verification panic: %v", rec))
			valid = false
		}
	}()

	if err := alg.Verify(signingInput, signature, key); err != nil {
		r.Report(alg.Name(), err)
		return false
	}
	return true
}

// unsupportedTag is the metric tag for every unrecognized "alg" value,
// the declared name is token input and would grow series without bound.
const unsupportedTag = "unsupported"

func metricTag(alg Algorithm) string {
	name := alg.Name()
	if _, ok := alg.(Unsupported); ok || !IsSupported(name) {
		return unsupportedTag
	}
	return name
}

type hmacAlgorithm struct {
	name string
	hash crypto.Hash
}

func (a *hmacAlgorithm) Name() string {
	return a.name
}

// Verify computes HMAC over signingInput with the raw bytes of key
func (a *hmacAlgorithm) Verify(signingInput string, signature []byte, key string) error {
	if key == "" {
		return errors.Wrapf(ErrInvalidKey, "%s: empty secret", a.name)
	}
	h := hmac.New(a.hash.New, []byte(key))
	h.Write([]byte(signingInput))
	if !hmac.Equal(h.Sum(nil), signature) {
		return errors.WithStack(ErrInvalidSignature)
	}
	return nil
}

type rsaAlgorithm struct {
	name string
	hash crypto.Hash
}

func (a *rsaAlgorithm) Name() string {
	return a.name
}

// Verify checks RSASSA-PKCS1-v1_5 signature, key is in
// the modulus.exponent form, see ParseRSAKey
func (a *rsaAlgorithm) Verify(signingInput string, signature []byte, key string) error {
	pub, err := ParseRSAKey(key)
	if err != nil {
		return err
	}

	hasher := a.hash.New()
	hasher.Write([]byte(signingInput))

	err = rsa.VerifyPKCS1v15(pub, a.hash, hasher.Sum(nil), signature)
	if errors.Is(err, rsa.ErrVerification) {
		return errors.WithStack(ErrInvalidSignature)
	}
	if err != nil {
		return errors.Mark(errors.WithMessagef(err, "%s", a.name), ErrInvalidKey)
	}
	return nil
}

type noneAlgorithm struct{}

func (noneAlgorithm) Name() string {
	return None
}

func (noneAlgorithm) Verify(string, []byte, string) error {
	return nil
}

// Unsupported is the Algorithm for any unrecognized "alg" value,
// it never verifies.
type Unsupported string

// Name returns the declared algorithm name
func (u Unsupported) Name() string {
	return string(u)
}

// Verify always fails with ErrUnsupportedAlgorithm
func (u Unsupported) Verify(string, []byte, string) error {
	return errors.Wrapf(ErrUnsupportedAlgorithm, "alg %q", string(u))
}
