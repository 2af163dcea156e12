package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAcceptText(t *testing.T) {
	accepted := []string{"", "-", "0", "42", "-42", "1000000"}
	for _, s := range accepted {
		assert.True(t, AcceptText(s), "should accept %q", s)
	}

	rejected := []string{"abc", "1.5", "+5", "4 2", "--3", "5-", "١٢"}
	for _, s := range rejected {
		assert.False(t, AcceptText(s), "should reject %q", s)
	}
}

func TestParseAmount(t *testing.T) {
	assert.Equal(t, 0, ParseAmount(""))
	assert.Equal(t, 0, ParseAmount("-"))
	assert.Equal(t, 0, ParseAmount("abc"))
	assert.Equal(t, 0, ParseAmount("0"))
	assert.Equal(t, 42, ParseAmount("42"))
	assert.Equal(t, -42, ParseAmount("-42"))
	assert.Equal(t, 1000000, ParseAmount("1000000"))
}
