package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"

	"gcwab-store/cart"
	"gcwab-store/models"
)

// cartKeyPrefix namespaces snapshot keys so they can never collide with other
// rows sharing the key-value table
const cartKeyPrefix = "gcwab:cart:"

// CartSnapshotRepository persists cart snapshots as JSONB rows keyed by a
// namespaced session key
type CartSnapshotRepository struct {
	db *sql.DB
}

// NewCartSnapshotRepository creates a new CartSnapshotRepository
func NewCartSnapshotRepository(database *sql.DB) *CartSnapshotRepository {
	return &CartSnapshotRepository{db: database}
}

// Ensure CartSnapshotRepository implements CartSnapshotRepositoryInterface
var _ CartSnapshotRepositoryInterface = (*CartSnapshotRepository)(nil)

// Load fetches the snapshot stored under key. A missing row and a corrupt
// payload both report absent (nil, nil); corruption is logged, never surfaced.
func (r *CartSnapshotRepository) Load(ctx context.Context, key string) (*models.CartSnapshot, error) {
	query := `SELECT data FROM cart_snapshots WHERE key = $1`

	var raw []byte
	err := r.db.QueryRowContext(ctx, query, key).Scan(&raw)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load cart snapshot: %w", err)
	}

	var snapshot models.CartSnapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		log.Printf("⚠️ Load: discarding malformed cart snapshot for key=%s: %v", key, err)
		return nil, nil
	}

	return &snapshot, nil
}

// Save upserts the snapshot under key
func (r *CartSnapshotRepository) Save(ctx context.Context, key string, snapshot *models.CartSnapshot) error {
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode cart snapshot: %w", err)
	}

	query := `
		INSERT INTO cart_snapshots (key, data, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key)
		DO UPDATE SET data = EXCLUDED.data, updated_at = now()
	`

	if _, err := r.db.ExecContext(ctx, query, key, raw); err != nil {
		return fmt.Errorf("failed to save cart snapshot: %w", err)
	}
	return nil
}

// Clear deletes the snapshot row entirely. Deleting an absent key is a no-op.
func (r *CartSnapshotRepository) Clear(ctx context.Context, key string) error {
	query := `DELETE FROM cart_snapshots WHERE key = $1`

	if _, err := r.db.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("failed to clear cart snapshot: %w", err)
	}
	return nil
}

// ForSession binds the repository to one session's namespaced key, yielding
// the adapter a cart.Store consumes
func (r *CartSnapshotRepository) ForSession(sessionID string) cart.SnapshotAdapter {
	return &sessionSnapshotAdapter{repo: r, key: cartKeyPrefix + sessionID}
}

type sessionSnapshotAdapter struct {
	repo CartSnapshotRepositoryInterface
	key  string
}

var _ cart.SnapshotAdapter = (*sessionSnapshotAdapter)(nil)

func (a *sessionSnapshotAdapter) Load(ctx context.Context) (*models.CartSnapshot, error) {
	return a.repo.Load(ctx, a.key)
}

func (a *sessionSnapshotAdapter) Save(ctx context.Context, snapshot *models.CartSnapshot) error {
	return a.repo.Save(ctx, a.key, snapshot)
}

func (a *sessionSnapshotAdapter) Clear(ctx context.Context) error {
	return a.repo.Clear(ctx, a.key)
}
