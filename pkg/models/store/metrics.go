package store

// MetricsRecord is the storage-layer shape of one platform/period row as
// persisted in a local metrics database.
type MetricsRecord struct {
	Platform     string
	Followers    int64
	Engagement   *int64
	Posts        int64
	Period       string
	ProvidedRate *float64
}
