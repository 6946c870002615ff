package persist

import (
	"context"
	"fmt"
)

// Snapshot is one persisted observation of the reef.
type Snapshot struct {
	Tick       int64
	Population int
	Births     int64
	Deaths     int64
	Checksum   string
	BySpecies  map[int32]int
}

// SnapshotRepo persists population snapshots.
type SnapshotRepo struct {
	db *DB
}

func NewSnapshotRepo(db *DB) *SnapshotRepo {
	return &SnapshotRepo{db: db}
}

// Insert writes a snapshot and its per-species counts in one transaction.
func (r *SnapshotRepo) Insert(ctx context.Context, s Snapshot) error {
	tx, err := r.db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin snapshot tx: %w", err)
	}
	defer tx.Rollback(ctx)

	var id int64
	err = tx.QueryRow(ctx,
		`INSERT INTO snapshots (tick, population, births, deaths, checksum)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		s.Tick, s.Population, s.Births, s.Deaths, s.Checksum,
	).Scan(&id)
	if err != nil {
		return fmt.Errorf("insert snapshot: %w", err)
	}

	for speciesID, count := range s.BySpecies {
		if _, err := tx.Exec(ctx,
			`INSERT INTO species_counts (snapshot_id, species_id, population)
			 VALUES ($1, $2, $3)`,
			id, speciesID, count,
		); err != nil {
			return fmt.Errorf("insert species count: %w", err)
		}
	}

	return tx.Commit(ctx)
}

// LatestTick returns the tick of the newest snapshot, or 0 when none exist.
func (r *SnapshotRepo) LatestTick(ctx context.Context) (int64, error) {
	var tick int64
	err := r.db.Pool.QueryRow(ctx,
		`SELECT COALESCE(MAX(tick), 0) FROM snapshots`,
	).Scan(&tick)
	if err != nil {
		return 0, fmt.Errorf("query latest tick: %w", err)
	}
	return tick, nil
}
