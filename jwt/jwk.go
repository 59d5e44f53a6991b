package jwt

import (
	"crypto/rsa"
	"encoding/json"

	"github.com/cockroachdb/errors"
	jose "github.com/go-jose/go-jose/v3"
)

// KeyFromJWK returns the RS256 key string of RSA JSON Web Key.
// For a private JWK the public part is used.
func KeyFromJWK(data []byte) (string, error) {
	var jwk jose.JSONWebKey
	if err := json.Unmarshal(data, &jwk); err != nil {
		return "", errors.WithMessage(err, "unable to parse JWK")
	}

	switch key := jwk.Key.(type) {
	case *rsa.PublicKey:
		return FormatRSAKey(key), nil
	case *rsa.PrivateKey:
		return FormatRSAKey(&key.PublicKey), nil
	default:
		return "", errors.Errorf("public key not supported: %T", key)
	}
}

// KeysFromJWKS returns RS256 key strings of RSA keys in JSON Web Key Set,
// indexed by key ID. For private JWKs the public part is used,
// non-RSA keys are skipped.
func KeysFromJWKS(data []byte) (map[string]string, error) {
	var set jose.JSONWebKeySet
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, errors.WithMessage(err, "unable to parse JWKS")
	}

	keys := map[string]string{}
	for _, jwk := range set.Keys {
		switch key := jwk.Key.(type) {
		case *rsa.PublicKey:
			keys[jwk.KeyID] = FormatRSAKey(key)
		case *rsa.PrivateKey:
			keys[jwk.KeyID] = FormatRSAKey(&key.PublicKey)
		}
	}
	return keys, nil
}
