// Package jwt provides JSON Web Token (JWT) parsing and signature verification.
//
// A token is parsed once with Parse, which decodes the header and payload
// into claims, and then verified with Token.CheckValid against a key supplied
// by the caller as a string:
//   - HS256, HS384, HS512: the shared secret, used as raw bytes
//   - RS256, RS384, RS512: base64url(modulus) "." base64url(exponent)
//
// The algorithm is the one declared by the token itself. A token declaring
// "none" always validates; use Verifier to restrict accepted algorithms.
//
// Verification never returns an error, failures are reported to a Reporter.
package jwt
