package jwt

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/x/fileutil"
	"gopkg.in/yaml.v3"
)

// VerifyConfig provides token verification policy
type VerifyConfig struct {
	// AllowedAlgorithms specifies the accepted "alg" values,
	// if empty then any supported algorithm except "none" is accepted
	AllowedAlgorithms []string `json:"allowed_algorithms" yaml:"allowed_algorithms"`
	// AllowNone allows unsecured tokens
	AllowNone bool `json:"allow_none" yaml:"allow_none"`
	// Key specifies the verification key: HMAC secret or RSA modulus.exponent,
	// file:// and env:// references are resolved on load
	Key string `json:"key" yaml:"key"`
}

// LoadVerifyConfig returns configuration loaded from a file
func LoadVerifyConfig(file string) (*VerifyConfig, error) {
	if file == "" {
		return &VerifyConfig{}, nil
	}

	raw, err := os.ReadFile(file)
	if err != nil {
		return nil, errors.WithMessage(err, "unable to read file")
	}

	var config VerifyConfig
	if strings.HasSuffix(file, ".json") {
		err = json.Unmarshal(raw, &config)
		if err != nil {
			return nil, errors.WithMessagef(err, "unable to unmarshal JSON: %q", file)
		}
	} else {
		err = yaml.Unmarshal(raw, &config)
		if err != nil {
			return nil, errors.WithMessagef(err, "unable to unmarshal YAML: %q", file)
		}
	}

	if config.Key != "" {
		config.Key, err = fileutil.LoadConfigWithSchema(config.Key)
		if err != nil {
			return nil, errors.WithMessage(err, "unable to resolve key")
		}
		config.Key = strings.TrimSpace(config.Key)
	}

	for _, alg := range config.AllowedAlgorithms {
		if !IsSupported(alg) {
			return nil, errors.Errorf("unsupported algorithm in config: %q", alg)
		}
	}
	return &config, nil
}
