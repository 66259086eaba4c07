package store

import (
	"context"
	"sort"
	"sync"

	"zoo/internal/anomaly"
	id "zoo/pkg/domain"
)

// InMemoryStore is an anomaly.ObservationStore fed directly by tests and
// tools. Observations are kept in the order they were added; the last one
// added is the newest.
type InMemoryStore struct {
	mu       sync.RWMutex
	weights  map[id.AnimalID][]anomaly.Observation
	feedings map[id.AnimalID][]anomaly.Observation
	animals  map[id.AnimalID]animalRow
}

type animalRow struct {
	name  string
	inZoo bool
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{
		weights:  make(map[id.AnimalID][]anomaly.Observation),
		feedings: make(map[id.AnimalID][]anomaly.Observation),
		animals:  make(map[id.AnimalID]animalRow),
	}
}

// AddAnimal registers an animal. Only animals added with inZoo are scanned.
func (s *InMemoryStore) AddAnimal(animal id.AnimalID, name string, inZoo bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.animals[animal] = animalRow{name: name, inZoo: inZoo}
}

// AddWeight appends a weight observation as the newest for its animal.
func (s *InMemoryStore) AddWeight(animal id.AnimalID, obs anomaly.Observation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.weights[animal] = append(s.weights[animal], obs)
}

// AddFeeding appends a feeding observation as the newest for its animal.
func (s *InMemoryStore) AddFeeding(animal id.AnimalID, obs anomaly.Observation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.feedings[animal] = append(s.feedings[animal], obs)
}

func (s *InMemoryStore) RecentWeights(_ context.Context, animal id.AnimalID, limit int) ([]anomaly.Observation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return newestFirst(s.weights[animal], limit), nil
}

func (s *InMemoryStore) RecentFeedings(_ context.Context, animal id.AnimalID, limit int) ([]anomaly.Observation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return newestFirst(s.feedings[animal], limit), nil
}

func (s *InMemoryStore) AnimalsInZoo(_ context.Context) ([]anomaly.Animal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []anomaly.Animal
	for animalID, row := range s.animals {
		if row.inZoo {
			out = append(out, anomaly.Animal{ID: animalID, Name: row.name})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *InMemoryStore) AnimalNames(_ context.Context, animals []id.AnimalID) (map[id.AnimalID]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[id.AnimalID]string, len(animals))
	for _, a := range animals {
		if row, ok := s.animals[a]; ok {
			out[a] = row.name
		}
	}
	return out, nil
}

func newestFirst(in []anomaly.Observation, limit int) []anomaly.Observation {
	out := make([]anomaly.Observation, 0, min(len(in), max(limit, 0)))
	for i := len(in) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, in[i])
	}
	return out
}
