package statement

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/voidshard/spendmap/pkg/table"
)

var (
	// transaction dates are written with a full year, billing dates usually not
	transactionDateLayouts = []string{"02/01/2006", "2/1/2006", "02/01/06", "2/1/06"}
	billingDateLayouts     = []string{"02/01/06", "2/1/06", "02/01/2006", "2/1/2006"}
)

func cellText(c table.Cell) string {
	return strings.TrimSpace(c.String())
}

func cellDate(c table.Cell, layouts []string) (time.Time, error) {
	switch c.Kind {
	case table.Date:
		return c.Time, nil
	case table.Text:
		s := strings.TrimSpace(c.Text)
		for _, layout := range layouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, nil
			}
		}
		return time.Time{}, fmt.Errorf("unparsable date %q", s)
	}
	return time.Time{}, fmt.Errorf("expected a date, got %s cell", c.Kind)
}

func cellNumber(c table.Cell) (float64, error) {
	switch c.Kind {
	case table.Empty:
		return 0, nil
	case table.Number:
		return c.Number, nil
	case table.Text:
		s := strings.ReplaceAll(strings.TrimSpace(c.Text), ",", "")
		if s == "" {
			return 0, nil
		}
		return strconv.ParseFloat(s, 64)
	}
	return 0, fmt.Errorf("expected a number, got %s cell", c.Kind)
}
