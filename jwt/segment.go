package jwt

import (
	"encoding/base64"
	"strings"

	"github.com/cockroachdb/errors"
)

var (
	toStd = strings.NewReplacer("-", "+", "_", "/")
	toURL = strings.NewReplacer("+", "-", "/", "_")
)

// DecodeSegment decodes a Base64URL segment into raw bytes.
// Missing padding is restored before decoding, input that already
// carries its padding is accepted as well. Line breaks are not part of
// the alphabet and are rejected.
func DecodeSegment(seg string) ([]byte, error) {
	if strings.ContainsAny(seg, "\r\n") {
		return nil, errors.Mark(errors.New("invalid base64url: line break in segment"), ErrDecode)
	}
	if pad := (4 - len(seg)%4) % 4; pad > 0 {
		seg += strings.Repeat("=", pad)
	}
	b, err := base64.StdEncoding.DecodeString(toStd.Replace(seg))
	if err != nil {
		return nil, errors.Mark(errors.WithMessage(err, "invalid base64url"), ErrDecode)
	}
	return b, nil
}

// DecodeSegmentString decodes a Base64URL segment and returns it as text.
// Use DecodeSegment for signatures, which are not text.
func DecodeSegmentString(seg string) (string, error) {
	b, err := DecodeSegment(seg)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// EncodeSegment returns JWT specific base64url encoding with padding stripped
func EncodeSegment(seg []byte) string {
	return toURL.Replace(strings.TrimRight(base64.StdEncoding.EncodeToString(seg), "="))
}

// EncodeSegmentString returns EncodeSegment of the raw bytes of s
func EncodeSegmentString(s string) string {
	return EncodeSegment([]byte(s))
}
