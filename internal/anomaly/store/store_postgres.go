package store

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"zoo/internal/anomaly"
	"zoo/internal/platform/postgres"
	id "zoo/pkg/domain"
)

// PostgresStore reads weights, feeding amounts and animals from the primary
// store. Ids are ascending numeric strings, so ties on the timestamp are
// broken by id length and then lexically.
type PostgresStore struct {
	db postgres.Querier
}

func NewPostgres(db postgres.Querier) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) RecentWeights(ctx context.Context, animal id.AnimalID, limit int) ([]anomaly.Observation, error) {
	query := `
		SELECT record_id, weight::text, datetime, recorded_by
		FROM animal_state_record
		WHERE a_id = $1 AND weight IS NOT NULL
		ORDER BY datetime DESC, length(record_id) DESC, record_id DESC
		LIMIT $2
	`
	obs, err := s.observations(ctx, query, animal, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent weights: %w", err)
	}
	return obs, nil
}

func (s *PostgresStore) RecentFeedings(ctx context.Context, animal id.AnimalID, limit int) ([]anomaly.Observation, error) {
	query := `
		SELECT feeding_id, feeding_amount_kg::text, feed_date, fed_by
		FROM feeding_records
		WHERE a_id = $1
		ORDER BY feed_date DESC, length(feeding_id) DESC, feeding_id DESC
		LIMIT $2
	`
	obs, err := s.observations(ctx, query, animal, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent feedings: %w", err)
	}
	return obs, nil
}

func (s *PostgresStore) observations(ctx context.Context, query string, animal id.AnimalID, limit int) ([]anomaly.Observation, error) {
	rows, err := postgres.Conn(ctx, s.db).Query(ctx, query, animal, limit)
	if err != nil {
		return nil, postgres.MapError(err)
	}
	defer rows.Close()

	var out []anomaly.Observation
	for rows.Next() {
		var (
			recordID, value, recordedBy string
			at                          time.Time
		)
		if err := rows.Scan(&recordID, &value, &at, &recordedBy); err != nil {
			return nil, postgres.MapError(err)
		}
		v, err := decimal.NewFromString(value)
		if err != nil {
			return nil, fmt.Errorf("parse quantity %q of %s: %w", value, recordID, err)
		}
		out = append(out, anomaly.Observation{
			RecordID:   id.RecordID(recordID),
			Value:      v,
			At:         at,
			RecordedBy: id.EmployeeID(recordedBy),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err)
	}
	return out, nil
}

func (s *PostgresStore) AnimalsInZoo(ctx context.Context) ([]anomaly.Animal, error) {
	rows, err := postgres.Conn(ctx, s.db).Query(ctx,
		`SELECT a_id, COALESCE(a_name, '') FROM animal WHERE life_status = 'In_Zoo' ORDER BY a_id`)
	if err != nil {
		return nil, fmt.Errorf("list animals in zoo: %w", postgres.MapError(err))
	}
	defer rows.Close()

	var out []anomaly.Animal
	for rows.Next() {
		var animalID, name string
		if err := rows.Scan(&animalID, &name); err != nil {
			return nil, fmt.Errorf("scan animal: %w", postgres.MapError(err))
		}
		out = append(out, anomaly.Animal{ID: id.AnimalID(animalID), Name: name})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list animals in zoo: %w", postgres.MapError(err))
	}
	return out, nil
}

func (s *PostgresStore) AnimalNames(ctx context.Context, animals []id.AnimalID) (map[id.AnimalID]string, error) {
	keys := make([]string, len(animals))
	for i, a := range animals {
		keys[i] = string(a)
	}
	rows, err := postgres.Conn(ctx, s.db).Query(ctx,
		`SELECT a_id, COALESCE(a_name, species) FROM animal WHERE a_id = ANY($1)`, keys)
	if err != nil {
		return nil, fmt.Errorf("resolve animal names: %w", postgres.MapError(err))
	}
	defer rows.Close()

	out := make(map[id.AnimalID]string, len(animals))
	for rows.Next() {
		var animalID, name string
		if err := rows.Scan(&animalID, &name); err != nil {
			return nil, fmt.Errorf("scan animal name: %w", postgres.MapError(err))
		}
		out[id.AnimalID(animalID)] = name
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("resolve animal names: %w", postgres.MapError(err))
	}
	return out, nil
}
