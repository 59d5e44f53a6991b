package jwt

import "github.com/cockroachdb/errors"

var (
	// ErrMalformedToken is returned when the raw token does not have
	// three dot-separated segments, or a segment is not Base64URL.
	ErrMalformedToken = errors.New("malformed token")
	// ErrMalformedClaims is returned when a decoded header or payload
	// is not a JSON object.
	ErrMalformedClaims = errors.New("malformed claims")
	// ErrDecode marks Base64URL decoding failures.
	ErrDecode = errors.New("decode error")

	// ErrInvalidSignature is reported when the signature does not match.
	ErrInvalidSignature = errors.New("invalid signature")
	// ErrUnsupportedAlgorithm is reported when the token declares an
	// algorithm this package does not verify.
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")
	// ErrInvalidKey is reported when the verification key cannot be used.
	ErrInvalidKey = errors.New("invalid key")
	// ErrAlgorithmNotAllowed is returned by Verifier when the token
	// algorithm is not in the configured allow-list.
	ErrAlgorithmNotAllowed = errors.New("algorithm not allowed")
)
