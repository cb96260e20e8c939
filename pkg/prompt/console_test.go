package prompt

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voidshard/spendmap/pkg/classifier"
)

type hints []classifier.Match

func (h hints) Similar(business string, n int) []classifier.Match {
	return h
}

func TestParse(t *testing.T) {
	categories := []string{"Food", "Rent", "unknown"}

	cases := []struct {
		line     string
		category string
		remember bool
		err      bool
	}{
		{"1\n", "Food", true, false},
		{"  2 ", "Rent", true, false},
		{"-3\n", "unknown", false, false},
		{"Travel\n", "Travel", true, false},
		{"- Gifts\n", "Gifts", false, false},
		{"\n", "", false, true},
		{"-\n", "", false, true},
		{"0\n", "", false, true},
		{"4\n", "", false, true},
	}

	for _, tt := range cases {
		category, remember, err := parse(tt.line, categories)
		if tt.err {
			assert.Error(t, err, tt.line)
			continue
		}
		require.NoError(t, err, tt.line)
		assert.Equal(t, tt.category, category, tt.line)
		assert.Equal(t, tt.remember, remember, tt.line)
	}
}

func TestResolve(t *testing.T) {
	out := &bytes.Buffer{}
	c := &Console{
		In:    strings.NewReader("2\n-Gifts\n"),
		Out:   out,
		Hints: hints{{Business: "CAFE X TLV", Category: "Food"}},
	}

	category, remember, err := c.Resolve("CAFE X JLM", []string{"Rent", "Food"})
	require.NoError(t, err)
	assert.Equal(t, "Food", category)
	assert.True(t, remember)

	assert.Contains(t, out.String(), "CAFE X JLM")
	assert.Contains(t, out.String(), "1. Rent")
	assert.Contains(t, out.String(), "2. Food")
	assert.Contains(t, out.String(), `looks like "CAFE X TLV": Food`)

	// the same reader carries on to the next question
	category, remember, err = c.Resolve("Toy shop", []string{"Rent", "Food"})
	require.NoError(t, err)
	assert.Equal(t, "Gifts", category)
	assert.False(t, remember)
}

func TestResolveRetries(t *testing.T) {
	out := &bytes.Buffer{}
	c := &Console{In: strings.NewReader("\n9\n1\n"), Out: out}

	category, _, err := c.Resolve("Cafe X", []string{"Food"})
	require.NoError(t, err)
	assert.Equal(t, "Food", category)
	assert.Equal(t, 2, strings.Count(out.String(), "try again"))
}

func TestResolveGivesUp(t *testing.T) {
	c := &Console{In: strings.NewReader("\n\n\n\n1\n"), Out: &bytes.Buffer{}, Attempts: 2}

	_, _, err := c.Resolve("Cafe X", []string{"Food"})
	assert.True(t, errors.Is(err, ErrNoAnswer), err)
}

func TestResolveEOF(t *testing.T) {
	c := &Console{In: strings.NewReader(""), Out: &bytes.Buffer{}}

	_, _, err := c.Resolve("Cafe X", []string{"Food"})
	assert.True(t, errors.Is(err, ErrNoAnswer), err)
}

func TestResolveLastLineWithoutNewline(t *testing.T) {
	c := &Console{In: strings.NewReader("Food"), Out: &bytes.Buffer{}}

	category, remember, err := c.Resolve("Cafe X", nil)
	require.NoError(t, err)
	assert.Equal(t, "Food", category)
	assert.True(t, remember)
}
