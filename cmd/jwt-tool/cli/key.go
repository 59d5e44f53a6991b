package cli

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/xjwt/jwt"
)

// KeyCmd provides commands to produce RS256 verification keys
type KeyCmd struct {
	Pem KeyPemCmd `cmd:"" help:"print verification key of RSA public key or certificate in PEM"`
	Jwk KeyJwkCmd `cmd:"" help:"print verification key of RSA JSON Web Key"`
}

// KeyPemCmd specifies flags for key pem command
type KeyPemCmd struct {
	In string `kong:"arg" required:"" help:"PEM file, - for stdin"`
}

// Run the command
func (a *KeyPemCmd) Run(ctx *Cli) error {
	pem, err := ctx.ReadFile(a.In)
	if err != nil {
		return errors.WithMessage(err, "unable to load PEM file")
	}
	key, err := jwt.KeyFromPEM(pem)
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.Writer(), key)
	return nil
}

// KeyJwkCmd specifies flags for key jwk command
type KeyJwkCmd struct {
	In  string `kong:"arg" required:"" help:"JWK or JWKS file, - for stdin"`
	Kid string `help:"key ID to select from JWKS"`
}

// Run the command
func (a *KeyJwkCmd) Run(ctx *Cli) error {
	raw, err := ctx.ReadFile(a.In)
	if err != nil {
		return errors.WithMessage(err, "unable to load JWK file")
	}

	if a.Kid == "" {
		key, err := jwt.KeyFromJWK(raw)
		if err != nil {
			return err
		}
		fmt.Fprintln(ctx.Writer(), key)
		return nil
	}

	keys, err := jwt.KeysFromJWKS(raw)
	if err != nil {
		return err
	}
	key, ok := keys[a.Kid]
	if !ok {
		return errors.Errorf("key not found: %s", a.Kid)
	}
	fmt.Fprintln(ctx.Writer(), key)
	return nil
}
