package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	Match("en-US")

	assert.Equal("plain", From("plain"))
	assert.Equal("line 3 of 10", From("line %d of %d", 3, 10))
}

func TestMatchFallback(t *testing.T) {
	assert := assert.New(t)

	// An unknown locale falls back to the en-US message catalog.
	Match("xx-XX")
	assert.Equal("tick 42", From("tick %d", 42))

	Match("en-US")
}
