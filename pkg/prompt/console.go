// Package prompt asks a person which category a business belongs to.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cenkalti/backoff/v4"

	"github.com/voidshard/spendmap/pkg/classifier"
)

const defaultAttempts = 3

// ErrNoAnswer is returned when no usable answer was given.
var ErrNoAnswer = errors.New("no answer")

// Hinter suggests known businesses that look like the one being asked about.
type Hinter interface {
	Similar(business string, n int) []classifier.Match
}

// Console asks on Out and reads answers from In, one per line.
//
// An answer is either the number of a listed category or the name of a new
// one. Prefix it with '-' to use it this time only.
type Console struct {
	In  io.Reader
	Out io.Writer

	// Hints, if set, lists up to three lookalike businesses with the question.
	Hints Hinter

	// Attempts bounds how many times a bad answer is asked again.
	Attempts uint64

	reader *bufio.Reader
}

// check it meets the interface
var _ classifier.Resolver = &Console{}

func (c *Console) Resolve(business string, categories []string) (string, bool, error) {
	if c.reader == nil {
		c.reader = bufio.NewReader(c.In)
	}
	attempts := c.Attempts
	if attempts == 0 {
		attempts = defaultAttempts
	}

	var (
		category string
		remember bool
	)
	ask := func() error {
		c.question(business, categories)

		line, err := c.reader.ReadString('\n')
		if err != nil && !(err == io.EOF && line != "") {
			return backoff.Permanent(fmt.Errorf("%w for %q: %v", ErrNoAnswer, business, err))
		}

		category, remember, err = parse(line, categories)
		if err != nil {
			fmt.Fprintf(c.Out, "%v, try again\n", err)
		}
		return err
	}

	b := backoff.WithMaxRetries(&backoff.ZeroBackOff{}, attempts-1)
	if err := backoff.Retry(ask, b); err != nil {
		if errors.Is(err, ErrNoAnswer) {
			return "", false, err
		}
		return "", false, fmt.Errorf("%w for %q: %v", ErrNoAnswer, business, err)
	}
	return category, remember, nil
}

func (c *Console) question(business string, categories []string) {
	fmt.Fprintf(c.Out, "\nCategory for:\n\t%s\n", business)

	if c.Hints != nil {
		for _, m := range c.Hints.Similar(business, 3) {
			fmt.Fprintf(c.Out, "  (looks like %q: %s)\n", m.Business, m.Category)
		}
	}

	for i, name := range categories {
		fmt.Fprintf(c.Out, "%d. %s\n", i+1, name)
	}
	fmt.Fprint(c.Out, "* enter a number or a new category name\n* prefix with '-' to use it this time only\n> ")
}

// parse turns an answer line into a category.
func parse(line string, categories []string) (string, bool, error) {
	answer := strings.TrimSpace(line)
	remember := true
	if strings.HasPrefix(answer, "-") {
		remember = false
		answer = strings.TrimSpace(answer[1:])
	}
	if answer == "" {
		return "", false, fmt.Errorf("empty answer")
	}

	idx, err := strconv.Atoi(answer)
	if err != nil {
		return answer, remember, nil // new category
	}
	if idx < 1 || idx > len(categories) {
		return "", false, fmt.Errorf("no category number %d", idx)
	}
	return categories[idx-1], remember, nil
}
