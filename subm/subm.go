package subm

import (
	"sort"
	"time"
)

// Submission is one judge submission document. Code is nil until the raw
// source has been fetched by the scraper.
type Submission struct {
	ID       int
	User     string
	Date     time.Time
	Language string
	Time     float64
	Memory   float64
	Points   *float64
	Result   string
	Code     *string
}

const VerdictAccepted = "AC"

func (s Submission) IsAccepted() bool {
	return s.Result == VerdictAccepted
}

// SortByDate orders submissions ascending by date, breaking ties by id so
// that replays are deterministic.
func SortByDate(subms []Submission) {
	sort.Slice(subms, func(i, j int) bool {
		if subms[i].Date.Equal(subms[j].Date) {
			return subms[i].ID < subms[j].ID
		}
		return subms[i].Date.Before(subms[j].Date)
	})
}
