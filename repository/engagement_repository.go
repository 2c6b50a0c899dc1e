package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"

	"gcwab-store/models"
)

// engagementConfigKey is the site_settings document holding the financing
// rates and contact phone number
const engagementConfigKey = "engagement_config"

// EngagementRepository handles like counters and engagement settings
type EngagementRepository struct {
	db *sql.DB
}

// NewEngagementRepository creates a new EngagementRepository
func NewEngagementRepository(database *sql.DB) *EngagementRepository {
	return &EngagementRepository{db: database}
}

// Ensure EngagementRepository implements EngagementRepositoryInterface
var _ EngagementRepositoryInterface = (*EngagementRepository)(nil)

// AddLike increments a vehicle's like counter and returns the new count.
// Counters are best-effort engagement signals, not transactional inventory;
// callers surface the returned value optimistically.
func (r *EngagementRepository) AddLike(ctx context.Context, vehicleID int64) (int64, error) {
	query := `
		INSERT INTO vehicle_likes (vehicle_id, likes)
		VALUES ($1, 1)
		ON CONFLICT (vehicle_id)
		DO UPDATE SET likes = vehicle_likes.likes + 1
		RETURNING likes
	`

	var likes int64
	if err := r.db.QueryRowContext(ctx, query, vehicleID).Scan(&likes); err != nil {
		log.Printf("❌ AddLike: Error incrementing likes for vehicle=%d: %v", vehicleID, err)
		return 0, fmt.Errorf("failed to increment likes: %w", err)
	}

	return likes, nil
}

// RemoveLike decrements a vehicle's like counter, flooring at zero
func (r *EngagementRepository) RemoveLike(ctx context.Context, vehicleID int64) (int64, error) {
	query := `
		UPDATE vehicle_likes
		SET likes = GREATEST(likes - 1, 0)
		WHERE vehicle_id = $1
		RETURNING likes
	`

	var likes int64
	err := r.db.QueryRowContext(ctx, query, vehicleID).Scan(&likes)
	if err != nil {
		if err == sql.ErrNoRows {
			// Never liked; nothing to remove
			return 0, nil
		}
		log.Printf("❌ RemoveLike: Error decrementing likes for vehicle=%d: %v", vehicleID, err)
		return 0, fmt.Errorf("failed to decrement likes: %w", err)
	}

	return likes, nil
}

// GetLikes returns a vehicle's like count; unknown vehicles report zero
func (r *EngagementRepository) GetLikes(ctx context.Context, vehicleID int64) (int64, error) {
	var likes int64
	err := r.db.QueryRowContext(ctx,
		`SELECT likes FROM vehicle_likes WHERE vehicle_id = $1`, vehicleID).Scan(&likes)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to fetch likes: %w", err)
	}
	return likes, nil
}

// GetEngagementConfig loads the engagement settings document, falling back to
// the hardcoded defaults when absent or malformed
func (r *EngagementRepository) GetEngagementConfig(ctx context.Context) (models.EngagementConfig, error) {
	var raw []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT data FROM site_settings WHERE key = $1`, engagementConfigKey).Scan(&raw)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.DefaultEngagementConfig(), nil
		}
		return models.EngagementConfig{}, fmt.Errorf("failed to load engagement config: %w", err)
	}

	config := models.DefaultEngagementConfig()
	if err := json.Unmarshal(raw, &config); err != nil {
		log.Printf("⚠️ GetEngagementConfig: Malformed settings document, using defaults: %v", err)
		return models.DefaultEngagementConfig(), nil
	}

	return config, nil
}

// SaveEngagementConfig upserts the engagement settings document
func (r *EngagementRepository) SaveEngagementConfig(ctx context.Context, config models.EngagementConfig) error {
	raw, err := json.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to encode engagement config: %w", err)
	}

	query := `
		INSERT INTO site_settings (key, data, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key)
		DO UPDATE SET data = EXCLUDED.data, updated_at = now()
	`

	if _, err := r.db.ExecContext(ctx, query, engagementConfigKey, raw); err != nil {
		log.Printf("❌ SaveEngagementConfig: Error saving settings: %v", err)
		return fmt.Errorf("failed to save engagement config: %w", err)
	}

	log.Printf("✅ SaveEngagementConfig: Settings saved")
	return nil
}
