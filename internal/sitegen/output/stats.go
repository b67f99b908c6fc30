package output

import (
	"encoding/json"
	"time"
)

// BuildStats is the build-stats.json artifact: total and per-type page
// counts plus timing for the whole run.
type BuildStats struct {
	BuildDate   string         `json:"buildDate"`
	TotalPages  int            `json:"totalPages"`
	PagesByType map[string]int `json:"pagesByType"`
	BuildTime   int64          `json:"buildTime"` // milliseconds
}

// NewBuildStats aggregates per-type counts into a stats record.
func NewBuildStats(pagesByType map[string]int, buildDate time.Time, elapsed time.Duration) BuildStats {
	total := 0
	for _, n := range pagesByType {
		total += n
	}
	return BuildStats{
		BuildDate:   buildDate.UTC().Format(time.RFC3339),
		TotalPages:  total,
		PagesByType: pagesByType,
		BuildTime:   elapsed.Milliseconds(),
	}
}

// Marshal renders the stats as indented JSON.
func (s BuildStats) Marshal() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}
