package jwt_test

import (
	"testing"

	"github.com/effective-security/xjwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadVerifyConfig(t *testing.T) {
	cfg, err := jwt.LoadVerifyConfig("")
	require.NoError(t, err)
	assert.Empty(t, cfg.Key)

	cfg, err = jwt.LoadVerifyConfig("testdata/verify_hs.yaml")
	require.NoError(t, err)
	assert.Equal(t, []string{"HS256", "HS512"}, cfg.AllowedAlgorithms)
	assert.Equal(t, "k", cfg.Key)
	assert.False(t, cfg.AllowNone)

	t.Setenv("XJWT_TEST_KEY", "AQAB.AQAB")
	cfg, err = jwt.LoadVerifyConfig("testdata/verify_env.json")
	require.NoError(t, err)
	assert.Equal(t, []string{"RS256"}, cfg.AllowedAlgorithms)
	assert.Equal(t, "AQAB.AQAB", cfg.Key)

	cfg, err = jwt.LoadVerifyConfig("testdata/verify_none.yaml")
	require.NoError(t, err)
	assert.True(t, cfg.AllowNone)

	_, err = jwt.LoadVerifyConfig("testdata/missing.yaml")
	assert.EqualError(t, err, "unable to read file: open testdata/missing.yaml: no such file or directory")

	_, err = jwt.LoadVerifyConfig("testdata/verify_bad_alg.yaml")
	assert.EqualError(t, err, `unsupported algorithm in config: "ES256"`)

	_, err = jwt.LoadVerifyConfig("testdata/verify_corrupted.json")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), `unable to unmarshal JSON: "testdata/verify_corrupted.json"`)

	_, err = jwt.LoadVerifyConfig("testdata/verify_corrupted.yaml")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), `unable to unmarshal YAML: "testdata/verify_corrupted.yaml"`)

	_, err = jwt.LoadVerifyConfig("testdata/verify_missing_key.yaml")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unable to resolve key")
}
