package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsPattern(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "%%", ContainsPattern(""))
	assert.Equal(t, "%Hop%", ContainsPattern("Hop"))
	assert.Equal(t, `%100\%%`, ContainsPattern("100%"))
	assert.Equal(t, `%a\_b%`, ContainsPattern("a_b"))
	assert.Equal(t, `%c:\\d%`, ContainsPattern(`c:\d`))
}
