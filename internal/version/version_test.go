package version_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zostay/go-eml/internal/version"
)

func TestParse(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1.2.3", version.Parse("1.2.3").String())
	assert.Equal(t, "1.2.3", version.Parse("v1.2.3").String())
	assert.Equal(t, "2.0.0-rc.1", version.Parse("2.0.0-rc.1").String())
	assert.Equal(t, "0.0.0-dev", version.Parse("garbage").String())
	assert.Equal(t, "0.0.0-dev", version.Parse("").String())
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "v1.0.0", version.String())
}
