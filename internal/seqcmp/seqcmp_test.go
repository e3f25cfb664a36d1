package seqcmp

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareEqual(t *testing.T) {
	require.NoError(t, Compare(nil, nil))
	require.NoError(t, Compare([]string{"a", "b"}, []string{"a", "b"}))
}

func TestCompareMismatch(t *testing.T) {
	err := Compare([]string{".svn", "something"}, []string{"something"})
	require.Error(t, err)

	var mm *MismatchError
	require.True(t, errors.As(err, &mm))
	assert.Empty(t, mm.Same)
	assert.Equal(t, []string{".svn", "something"}, mm.First)
	assert.Equal(t, []string{"something"}, mm.Second)
	assert.Equal(t,
		"sequence not as expected:\n\nsame:\n()\n\nfirst:\n('.svn', 'something')\n\nsecond:\n('something',)",
		err.Error())
}

func TestCompareCommonPrefix(t *testing.T) {
	err := Compare([]string{"a", "b", "c"}, []string{"a", "b"})
	var mm *MismatchError
	require.True(t, errors.As(err, &mm))
	assert.Equal(t, []string{"a", "b"}, mm.Same)
	assert.Equal(t, []string{"c"}, mm.First)
	assert.Empty(t, mm.Second)
	assert.Equal(t,
		"sequence not as expected:\n\nsame:\n('a', 'b')\n\nfirst:\n('c',)\n\nsecond:\n()",
		err.Error())
}

func TestCompareDoesNotAlias(t *testing.T) {
	first := []string{"x", "y"}
	err := Compare(first, []string{"x"})
	var mm *MismatchError
	require.True(t, errors.As(err, &mm))
	first[0] = "changed"
	assert.Equal(t, []string{"x"}, mm.Same)
}

func TestQuote(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"plain", `'plain'`},
		{"it's", `"it's"`},
		{`both ' and "`, `'both \' and "'`},
		{"tab\there", `'tab\there'`},
		{`back\slash`, `'back\\slash'`},
		{"bell\a", `'bell\x07'`},
		{"héllo", `'héllo'`},
		{"bad\xffbyte", `'bad\xffbyte'`},
		{"repl\ufffdchar", "'repl\ufffdchar'"},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			assert.Equal(t, c.want, Quote(c.in))
		})
	}
}
