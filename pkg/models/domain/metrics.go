package domain

import "fmt"

// PlatformMetrics holds the tracked numbers for one platform over one period.
// Engagement is the total interaction count (likes, comments, shares) and is
// nil for platforms that publish no interaction data. ProvidedRate carries an
// officially published engagement rate which takes precedence over the
// computed one.
type PlatformMetrics struct {
	Platform     string
	Followers    int64
	Engagement   *int64
	Posts        int64
	Period       string
	ProvidedRate *float64
}

// MetricsTable is an ordered collection of per-platform metrics.
// Order mirrors the source and is preserved through analysis and export.
type MetricsTable []PlatformMetrics

// DataError reports malformed input metrics. Analysis and export refuse to
// proceed on the first DataError encountered.
type DataError struct {
	Platform string
	Reason   string
}

func (e *DataError) Error() string {
	if e.Platform == "" {
		return fmt.Sprintf("metrics data: %s", e.Reason)
	}
	return fmt.Sprintf("metrics data: platform %q: %s", e.Platform, e.Reason)
}

// Validate checks the row-level invariants: non-empty platform name and
// non-negative counts.
func (m PlatformMetrics) Validate() error {
	if m.Platform == "" {
		return &DataError{Reason: "empty platform name"}
	}
	if m.Followers < 0 {
		return &DataError{Platform: m.Platform, Reason: fmt.Sprintf("negative follower count %d", m.Followers)}
	}
	if m.Engagement != nil && *m.Engagement < 0 {
		return &DataError{Platform: m.Platform, Reason: fmt.Sprintf("negative engagement count %d", *m.Engagement)}
	}
	if m.Posts < 0 {
		return &DataError{Platform: m.Platform, Reason: fmt.Sprintf("negative post count %d", m.Posts)}
	}
	if m.ProvidedRate != nil && *m.ProvidedRate < 0 {
		return &DataError{Platform: m.Platform, Reason: fmt.Sprintf("negative engagement rate %v", *m.ProvidedRate)}
	}
	return nil
}

// Validate checks every row and the table invariant that a platform name
// appears at most once.
func (t MetricsTable) Validate() error {
	seen := make(map[string]struct{}, len(t))
	for _, row := range t {
		if err := row.Validate(); err != nil {
			return err
		}
		if _, ok := seen[row.Platform]; ok {
			return &DataError{Platform: row.Platform, Reason: "duplicate platform"}
		}
		seen[row.Platform] = struct{}{}
	}
	return nil
}

// Int64 returns a pointer to v. Convenience for building tables with
// optional engagement counts.
func Int64(v int64) *int64 { return &v }

// Float64 returns a pointer to v.
func Float64(v float64) *float64 { return &v }
