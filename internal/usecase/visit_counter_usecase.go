package usecase

// Visit counter keys.
const (
	VisitKeyGeneral = "general"
)

// VisitCounterUsecase counts requests per key for the lifetime of the process.
type VisitCounterUsecase interface {
	// Increment adds one to key, creating it at zero first, and returns the new value.
	Increment(key string) int64

	// GetAll returns a snapshot of every counter.
	GetAll() map[string]int64
}
