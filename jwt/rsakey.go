package jwt

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"math"
	"math/big"
	"strings"

	"github.com/cockroachdb/errors"
)

// ParseRSAKey returns RSA public key from its key string form:
// base64url(modulus) "." base64url(exponent), both big-endian unsigned.
func ParseRSAKey(key string) (*rsa.PublicKey, error) {
	modulus, exponent, ok := strings.Cut(key, ".")
	if !ok || modulus == "" || exponent == "" || strings.Contains(exponent, ".") {
		return nil, errors.Wrap(ErrInvalidKey, "expected modulus.exponent")
	}

	nb, err := DecodeSegment(modulus)
	if err != nil {
		return nil, errors.Mark(errors.WithMessage(err, "modulus"), ErrInvalidKey)
	}
	eb, err := DecodeSegment(exponent)
	if err != nil {
		return nil, errors.Mark(errors.WithMessage(err, "exponent"), ErrInvalidKey)
	}

	n := new(big.Int).SetBytes(nb)
	e := new(big.Int).SetBytes(eb)
	if n.Sign() == 0 {
		return nil, errors.Wrap(ErrInvalidKey, "zero modulus")
	}
	if !e.IsInt64() || e.Int64() < 2 || e.Int64() > math.MaxInt32 {
		return nil, errors.Wrap(ErrInvalidKey, "exponent out of range")
	}

	return &rsa.PublicKey{N: n, E: int(e.Int64())}, nil
}

// FormatRSAKey returns the key string form of pub, see ParseRSAKey
func FormatRSAKey(pub *rsa.PublicKey) string {
	return EncodeSegment(pub.N.Bytes()) + "." + EncodeSegment(big.NewInt(int64(pub.E)).Bytes())
}

// KeyFromPEM returns the key string of RSA public key in PEM,
// the block can be PUBLIC KEY, RSA PUBLIC KEY or CERTIFICATE
func KeyFromPEM(data []byte) (string, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return "", errors.Errorf("unable to parse PEM")
	}

	var pub any
	var err error
	switch block.Type {
	case "PUBLIC KEY":
		pub, err = x509.ParsePKIXPublicKey(block.Bytes)
	case "RSA PUBLIC KEY":
		pub, err = x509.ParsePKCS1PublicKey(block.Bytes)
	case "CERTIFICATE":
		var crt *x509.Certificate
		crt, err = x509.ParseCertificate(block.Bytes)
		if err == nil {
			pub = crt.PublicKey
		}
	default:
		return "", errors.Errorf("unsupported PEM type: %s", block.Type)
	}
	if err != nil {
		return "", errors.WithMessage(err, "unable to parse public key")
	}

	rsaKey, ok := pub.(*rsa.PublicKey)
	if !ok {
		return "", errors.Errorf("public key not supported: %T", pub)
	}
	return FormatRSAKey(rsaKey), nil
}
