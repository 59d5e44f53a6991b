package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersion(t *testing.T) {
	v := Current()
	assert.NotEmpty(t, v.Build)
	assert.Contains(t, v.String(), v.Build)

	assert.Equal(t, "v1.0.0", Version{Build: "v1.0.0"}.String())
	assert.Equal(t, "v1.0.0 (go1.26)", Version{Build: "v1.0.0", Runtime: "go1.26"}.String())
}
