package jwt

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/effective-security/xlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	xlog.SetGlobalLogLevel(xlog.DEBUG)
	retCode := m.Run()
	os.Exit(retCode)
}

func TestClaims(t *testing.T) {
	c, err := JSONClaimMapper(`{"sub":"alice","exp":1700000000,"iat":"1600000000","admin":true,"n":{"a":1},"f":1.5,"d":"2020-01-02T03:04:05Z"}`)
	require.NoError(t, err)
	claims := Claims(c)

	assert.Equal(t, "alice", claims.String("sub"))
	assert.Equal(t, "1700000000", claims.String("exp"))
	assert.Equal(t, "true", claims.String("admin"))
	assert.Equal(t, "", claims.String("missing"))

	assert.Equal(t, "map[a:1]", claims.String("n"))

	exp := claims.Time("exp")
	require.NotNil(t, exp)
	assert.Equal(t, int64(1700000000), exp.Unix())
	iat := claims.Time("iat")
	require.NotNil(t, iat)
	assert.Equal(t, int64(1600000000), iat.Unix())
	f := claims.Time("f")
	require.NotNil(t, f)
	assert.Equal(t, int64(1), f.Unix())
	d := claims.Time("d")
	require.NotNil(t, d)
	assert.Equal(t, time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC), d.UTC())
	assert.Nil(t, claims.Time("sub"))
	assert.Nil(t, claims.Time("admin"))
	assert.Nil(t, claims.Time("missing"))
	assert.Nil(t, claims.Time("n"))
}

func TestMetricTag(t *testing.T) {
	for _, name := range []string{HS256, HS384, HS512, RS256, RS384, RS512, None} {
		assert.Equal(t, name, metricTag(Lookup(name)))
	}
	for _, name := range []string{"", "ES256", "hs256", "x-forged-1", "x-forged-2"} {
		assert.Equal(t, "unsupported", metricTag(Lookup(name)), name)
	}
	assert.Equal(t, "unsupported", metricTag(Unsupported(HS256)))

	var reported string
	r := ReporterFunc(func(alg string, err error) {
		reported = alg
	})
	assert.False(t, CheckValid(Lookup("x-forged"), "a.b", nil, "k", r))
	assert.Equal(t, "x-forged", reported)
}

func TestJSONClaimMapper(t *testing.T) {
	m, err := JSONClaimMapper(" {\"a\":1} \n")
	require.NoError(t, err)
	assert.Equal(t, json.Number("1"), m["a"])

	for _, text := range []string{"", "null", "[]", "1", `"s"`, `{"a":1}x`, `{"a":1`} {
		_, err := JSONClaimMapper(text)
		assert.Error(t, err, text)
	}
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "unchecked", StatusUnchecked.String())
	assert.Equal(t, "valid", StatusValid.String())
	assert.Equal(t, "invalid", StatusInvalid.String())
}

func TestLogReporter(t *testing.T) {
	// must not panic for any error
	LogReporter.Report(HS256, ErrInvalidSignature)
	LogReporter.Report(RS256, ErrInvalidKey)
	DiscardReporter.Report(RS256, ErrInvalidKey)
}
