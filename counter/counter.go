package counter

// Counter is a cumulative count of drawn numbers
type Counter interface {
	Value() int64
	RatePerSec() int64

	Add(n int64)
}
