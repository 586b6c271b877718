package addr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-eml/addr"
)

func TestParseList(t *testing.T) {
	t.Parallel()

	assert.Nil(t, addr.ParseList(""))
	assert.Nil(t, addr.ParseList("   "))

	l := addr.ParseList("one@example.com, two@example.com")
	require.Len(t, l, 2)
	assert.Equal(t, "one@example.com", l[0].Email())
	assert.Equal(t, "two@example.com", l[1].Email())
	assert.Equal(t, "one@example.com, two@example.com", l.String())
}

func TestParseList_DisplayName(t *testing.T) {
	t.Parallel()

	l := addr.ParseList(`"Smith, John" <john@example.com>, jane@example.com`)
	require.Len(t, l, 2)
	assert.Equal(t, `"Smith, John" <john@example.com>`, l[0].String())
	assert.Equal(t, "jane@example.com", l[1].String())
}

func TestParseList_KeepsElementsAsWritten(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want []string
	}{
		{"Jane Doe <jane@x.com>", []string{"Jane Doe <jane@x.com>"}},
		{
			"Jane Q. Doe <jane@x.com>, Bob Smith <bob@x.com>",
			[]string{"Jane Q. Doe <jane@x.com>", "Bob Smith <bob@x.com>"},
		},
		{`"Q \"q\"" <q@x.com>`, []string{`"Q \"q\"" <q@x.com>`}},
		{"a@x.com,,b@x.com", []string{"a@x.com", "b@x.com"}},
		{"a@x.com, , b@x.com,", []string{"a@x.com", "b@x.com"}},
	}

	for _, tt := range tests {
		l := addr.ParseList(tt.in)
		got := make([]string, len(l))
		for i, a := range l {
			assert.True(t, a.IsPlain(), "%q", tt.in)
			got[i] = a.String()
		}
		assert.Equal(t, tt.want, got, "%q", tt.in)
	}
}

func TestParseList_Group(t *testing.T) {
	t.Parallel()

	var l addr.List
	require.NotPanics(t, func() {
		l = addr.ParseList("Team: a@x.com, b@x.com;")
	})
	require.Len(t, l, 2)
	assert.Equal(t, "Team: a@x.com, b@x.com;", l.String())
}

func TestParseList_Fallback(t *testing.T) {
	t.Parallel()

	// not RFC 5322 at all, so we split on commas and keep the pieces
	l := addr.ParseList("bob, , @@weird")
	require.Len(t, l, 2)
	assert.True(t, l[0].IsPlain())
	assert.Equal(t, "bob", l[0].String())
	assert.Equal(t, "@@weird", l[1].String())
}
