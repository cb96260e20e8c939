package classifier

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Match is a known business name near the one asked about.
type Match struct {
	Business string
	Category string
	Distance int
}

// Similar returns up to n mapped businesses closest to business by edit
// distance, nearest first. Businesses further than half the name length
// away are not considered a match.
func (c *Classifier) Similar(business string, n int) []Match {
	if n <= 0 {
		return nil
	}

	want := strings.ToUpper(strings.TrimSpace(business))
	limit := len([]rune(want)) / 2

	found := []Match{}
	for name, category := range c.mapping {
		dist := levenshtein.ComputeDistance(want, strings.ToUpper(name))
		if dist > limit {
			continue
		}
		found = append(found, Match{Business: name, Category: category, Distance: dist})
	}

	sort.Slice(found, func(i, j int) bool {
		if found[i].Distance != found[j].Distance {
			return found[i].Distance < found[j].Distance
		}
		return found[i].Business < found[j].Business
	})

	if len(found) > n {
		found = found[:n]
	}
	return found
}
