package market

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Period is a trailing history length such as 24mo or 5y.
type Period struct {
	N    int
	Unit string // d, w, mo, y
}

// ParsePeriod parses <n>d, <n>w, <n>mo or <n>y.
func ParsePeriod(value string) (Period, error) {
	s := strings.ToLower(strings.TrimSpace(value))
	for _, unit := range []string{"mo", "d", "w", "y"} {
		if !strings.HasSuffix(s, unit) {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSuffix(s, unit))
		if err != nil || n <= 0 {
			return Period{}, fmt.Errorf("period %q must be a positive count followed by d, w, mo or y", value)
		}
		return Period{N: n, Unit: unit}, nil
	}
	return Period{}, fmt.Errorf("period %q must end in d, w, mo or y", value)
}

// Start returns the exclusive lower bound of the period ending at end.
func (p Period) Start(end time.Time) time.Time {
	switch p.Unit {
	case "d":
		return end.AddDate(0, 0, -p.N)
	case "w":
		return end.AddDate(0, 0, -7*p.N)
	case "mo":
		return end.AddDate(0, -p.N, 0)
	case "y":
		return end.AddDate(-p.N, 0, 0)
	default:
		return end
	}
}

func (p Period) String() string {
	return strconv.Itoa(p.N) + p.Unit
}
