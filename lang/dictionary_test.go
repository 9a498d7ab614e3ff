package lang

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDictionary(t *testing.T) {
	d := NewDictionary([]string{"hi", "SOS", "it's", "3rd", ""})

	assert.Equal(t, 2, d.Len())
	assert.True(t, d.Contains("HI"))
	assert.True(t, d.Contains("SOS"))
	assert.False(t, d.Contains("hi"))
	assert.False(t, d.Contains("ITS"))
}

func TestReadDictionary(t *testing.T) {
	source := "hello\nWorld\n\nit's\ncafé\nsos\n"
	d, err := ReadDictionary(strings.NewReader(source))
	require.NoError(t, err)

	assert.Equal(t, 3, d.Len())
	assert.True(t, d.Contains("HELLO"))
	assert.True(t, d.Contains("WORLD"))
	assert.True(t, d.Contains("SOS"))
}

func TestDictionary_Words(t *testing.T) {
	d := NewDictionary([]string{"hi", "sos"})

	words := d.Words()
	assert.ElementsMatch(t, []string{"HI", "SOS"}, words)
}
