package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimilar(t *testing.T) {
	mapping := map[string]string{
		"CAFE X TLV":   "Food",
		"CAFE X HAIFA": "Food",
		"SUPER PHARM":  "Health",
		"RAMI LEVY":    "Groceries",
	}
	c, err := New(newMemDoc(t, []string{"Food", "Health", "Groceries"}), newMemDoc(t, mapping), nil)
	require.NoError(t, err)

	found := c.Similar("cafe x jlm", 5)
	require.Len(t, found, 2)
	assert.Equal(t, "CAFE X TLV", found[0].Business)
	assert.Equal(t, "Food", found[0].Category)
	assert.LessOrEqual(t, found[0].Distance, found[1].Distance)

	assert.Len(t, c.Similar("cafe x jlm", 1), 1)
	assert.Empty(t, c.Similar("zzzzzzzzzzzzzzzzzzz", 3))
	assert.Nil(t, c.Similar("cafe x", 0))
}

func TestStaticResolver(t *testing.T) {
	s := &Static{Category: "unknown"}
	category, remember, err := s.Resolve("anything", nil)
	require.NoError(t, err)
	assert.Equal(t, "unknown", category)
	assert.False(t, remember)
}
