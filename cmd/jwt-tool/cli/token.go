package cli

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/x/fileutil"
	"github.com/effective-security/xjwt/jwt"
	"github.com/effective-security/xlog"
)

// TokenCmd provides token commands
type TokenCmd struct {
	Info   TokenInfoCmd   `cmd:"" help:"print token claims without verification"`
	Verify TokenVerifyCmd `cmd:"" help:"verify token signature"`
}

// TokenInfo is the output of token commands
type TokenInfo struct {
	Algorithm string     `json:"algorithm"`
	Name      string     `json:"name,omitempty"`
	Subject   string     `json:"subject,omitempty"`
	IssuedAt  *time.Time `json:"issued_at,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	Status    string     `json:"status"`
	Claims    jwt.Claims `json:"claims"`
}

func newTokenInfo(t *jwt.Token) *TokenInfo {
	name, _ := t.Name()
	claims := t.Claims()
	return &TokenInfo{
		Algorithm: t.Algorithm(),
		Name:      name,
		Subject:   claims.String("sub"),
		IssuedAt:  claims.Time("iat"),
		ExpiresAt: claims.Time("exp"),
		Status:    t.Status().String(),
		Claims:    claims,
	}
}

// TokenInfoCmd specifies flags for token info command
type TokenInfoCmd struct {
	In string `kong:"arg" required:"" help:"file with the token, - for stdin"`
}

// Run the command
func (a *TokenInfoCmd) Run(ctx *Cli) error {
	raw, err := ctx.ReadToken(a.In)
	if err != nil {
		return err
	}

	t, err := jwt.Parse(raw)
	if err != nil {
		return errors.WithMessage(err, "unable to parse token")
	}
	return ctx.WriteJSON(newTokenInfo(t))
}

// TokenVerifyCmd specifies flags for token verify command
type TokenVerifyCmd struct {
	In        string   `kong:"arg" required:"" help:"file with the token, - for stdin"`
	Cfg       string   `help:"verification config file" type:"path"`
	Key       string   `help:"verification key, file:// and env:// references are supported"`
	Alg       []string `help:"allowed algorithms"`
	AllowNone *bool    `help:"allow unsecured tokens"`
}

// Run the command
func (a *TokenVerifyCmd) Run(ctx *Cli) error {
	cfg, err := jwt.LoadVerifyConfig(a.Cfg)
	if err != nil {
		return errors.WithMessage(err, "unable to load config")
	}
	if a.Key != "" {
		key, err := fileutil.LoadConfigWithSchema(a.Key)
		if err != nil {
			return errors.WithMessage(err, "unable to resolve key")
		}
		cfg.Key = strings.TrimSpace(key)
	}
	if len(a.Alg) > 0 {
		cfg.AllowedAlgorithms = a.Alg
	}
	if a.AllowNone != nil {
		cfg.AllowNone = *a.AllowNone
	}

	var reason error
	reporter := jwt.ReporterFunc(func(alg string, err error) {
		logger.KV(xlog.DEBUG, "alg", alg, "err", err.Error())
		reason = err
	})

	v, err := jwt.NewVerifier(cfg, jwt.WithReporter(reporter))
	if err != nil {
		return err
	}

	raw, err := ctx.ReadToken(a.In)
	if err != nil {
		return err
	}

	t, err := v.Verify(raw)
	if err != nil {
		if reason != nil {
			return errors.WithMessagef(err, "token verification failed: %s", reason.Error())
		}
		return errors.WithMessage(err, "token verification failed")
	}
	return ctx.WriteJSON(newTokenInfo(t))
}
