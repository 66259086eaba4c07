package anomaly

import (
	"context"

	"zoo/internal/eventlog"
	id "zoo/pkg/domain"
)

// ObservationStore reads measurements from the primary store. It never writes.
type ObservationStore interface {
	// RecentWeights returns up to limit non-null weights of animal, newest first.
	RecentWeights(ctx context.Context, animal id.AnimalID, limit int) ([]Observation, error)
	// RecentFeedings returns up to limit feeding amounts of animal, newest first.
	RecentFeedings(ctx context.Context, animal id.AnimalID, limit int) ([]Observation, error)
	// AnimalsInZoo lists animals whose life status is In_Zoo.
	AnimalsInZoo(ctx context.Context) ([]Animal, error)
	// AnimalNames resolves display names; unknown ids are omitted.
	AnimalNames(ctx context.Context, animals []id.AnimalID) (map[id.AnimalID]string, error)
}

// Notifier fans a raised alert out to other systems. Delivery is best effort.
type Notifier interface {
	AlertRaised(ctx context.Context, alert *eventlog.HealthAlert) error
}
