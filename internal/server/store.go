package server

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// job is a completed circuit run kept around for later retrieval.
type job struct {
	shots     int
	histogram map[string]int
}

// histogramStore is an in-memory, uuid-keyed table of completed runs.
// Grounded on the teacher's ProgramStore (internal/qservice/pstore.go):
// a sync.RWMutex-guarded map keyed by uuid.New().String(), generalized
// from storing a qprog.Program to storing a run's resulting histogram.
type histogramStore struct {
	mu   sync.RWMutex
	jobs map[string]job
}

func newHistogramStore() *histogramStore {
	return &histogramStore{jobs: make(map[string]job)}
}

// put records a completed run under a fresh ID and returns it.
func (s *histogramStore) put(shots int, histogram map[string]int) string {
	id := uuid.New().String()
	s.mu.Lock()
	s.jobs[id] = job{shots: shots, histogram: histogram}
	s.mu.Unlock()
	return id
}

// get retrieves a previously stored run by ID.
func (s *histogramStore) get(id string) (job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	j, ok := s.jobs[id]
	if !ok {
		return job{}, fmt.Errorf("server: no job with id %q", id)
	}
	return j, nil
}
