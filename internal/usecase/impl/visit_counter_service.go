package impl

import (
	"sync"
	"sync/atomic"

	"store/internal/usecase"
)

type visitCounterService struct {
	counters sync.Map // string -> *atomic.Int64
}

// NewVisitCounterService creates an empty set of counters.
func NewVisitCounterService() usecase.VisitCounterUsecase {
	return &visitCounterService{}
}

func (s *visitCounterService) Increment(key string) int64 {
	counter, ok := s.counters.Load(key)
	if !ok {
		counter, _ = s.counters.LoadOrStore(key, new(atomic.Int64))
	}

	return counter.(*atomic.Int64).Add(1)
}

func (s *visitCounterService) GetAll() map[string]int64 {
	snapshot := make(map[string]int64)
	s.counters.Range(func(key, value any) bool {
		snapshot[key.(string)] = value.(*atomic.Int64).Load()

		return true
	})

	return snapshot
}
