package jwt_test

import (
	"crypto/rand"
	"crypto/rsa"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type report struct {
	alg string
	err error
}

type recorder struct {
	lock    sync.Mutex
	reports []report
}

func (r *recorder) Report(alg string, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.reports = append(r.reports, report{alg: alg, err: err})
}

func (r *recorder) last() report {
	r.lock.Lock()
	defer r.lock.Unlock()
	if len(r.reports) == 0 {
		return report{}
	}
	return r.reports[len(r.reports)-1]
}

var (
	rsaOnce sync.Once
	rsaKey  *rsa.PrivateKey
)

func testRSAKey(t *testing.T) *rsa.PrivateKey {
	rsaOnce.Do(func() {
		k, err := rsa.GenerateKey(rand.Reader, 2048)
		require.NoError(t, err)
		rsaKey = k
	})
	require.NotNil(t, rsaKey)
	return rsaKey
}
