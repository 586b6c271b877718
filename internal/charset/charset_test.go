package charset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zostay/go-eml/internal/charset"
)

func TestDecode(t *testing.T) {
	t.Parallel()

	s, err := charset.Decode("", []byte("plain"))
	assert.NoError(t, err)
	assert.Equal(t, "plain", s)

	s, err = charset.Decode("UTF-8", []byte("café"))
	assert.NoError(t, err)
	assert.Equal(t, "café", s)

	s, err = charset.Decode("ISO-8859-1", []byte("caf\xe9"))
	assert.NoError(t, err)
	assert.Equal(t, "café", s)

	s, err = charset.Decode("windows-1252", []byte("\x80"))
	assert.NoError(t, err)
	assert.Equal(t, "€", s)

	_, err = charset.Decode("x-no-such-charset", []byte("x"))
	assert.Error(t, err)
}
