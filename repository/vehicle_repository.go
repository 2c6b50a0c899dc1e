package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"gcwab-store/models"
)

// ErrVehicleNotFound is returned when a vehicle is not found
var ErrVehicleNotFound = errors.New("vehicle not found")

// VehicleRepository handles database operations for vehicle listings
type VehicleRepository struct {
	db *sql.DB
}

// NewVehicleRepository creates a new VehicleRepository
func NewVehicleRepository(database *sql.DB) *VehicleRepository {
	return &VehicleRepository{db: database}
}

// Ensure VehicleRepository implements VehicleRepositoryInterface
var _ VehicleRepositoryInterface = (*VehicleRepository)(nil)

const vehicleColumns = `id, name, model, year, type, transmission, condition, engine, trim, price,
	papers, exterior, interior, description, images, video_url, external_link, specs,
	created_at, updated_at`

func scanVehicle(row interface{ Scan(...interface{}) error }) (*models.Vehicle, error) {
	var v models.Vehicle
	var images, specs []byte
	var createdAt, updatedAt time.Time

	err := row.Scan(
		&v.ID,
		&v.Name,
		&v.Model,
		&v.Year,
		&v.Type,
		&v.Transmission,
		&v.Condition,
		&v.Engine,
		&v.Trim,
		&v.Price,
		&v.Papers,
		&v.Exterior,
		&v.Interior,
		&v.Description,
		&images,
		&v.VideoURL,
		&v.ExternalLink,
		&specs,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	v.CreatedAt = createdAt.Format(time.RFC3339)
	v.UpdatedAt = updatedAt.Format(time.RFC3339)

	if err := json.Unmarshal(images, &v.Images); err != nil {
		return nil, fmt.Errorf("failed to decode vehicle images: %w", err)
	}
	if err := json.Unmarshal(specs, &v.Specs); err != nil {
		return nil, fmt.Errorf("failed to decode vehicle specs: %w", err)
	}

	return &v, nil
}

// List retrieves all vehicles, newest first
func (r *VehicleRepository) List(ctx context.Context) ([]models.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		log.Printf("❌ List: Error querying vehicles: %v", err)
		return nil, fmt.Errorf("failed to query vehicles: %w", err)
	}
	defer rows.Close()

	var vehicles []models.Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			log.Printf("❌ List: Error scanning vehicle: %v", err)
			continue
		}
		vehicles = append(vehicles, *v)
	}

	if err := rows.Err(); err != nil {
		log.Printf("❌ List: Error iterating vehicles: %v", err)
		return nil, fmt.Errorf("failed to iterate vehicles: %w", err)
	}

	return vehicles, nil
}

// GetByID retrieves a single vehicle
func (r *VehicleRepository) GetByID(ctx context.Context, id int64) (*models.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1`

	v, err := scanVehicle(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrVehicleNotFound
		}
		log.Printf("❌ GetByID: Error fetching vehicle id=%d: %v", id, err)
		return nil, fmt.Errorf("failed to fetch vehicle: %w", err)
	}

	return v, nil
}

// Create inserts a new vehicle listing
func (r *VehicleRepository) Create(ctx context.Context, req *models.SaveVehicleRequest) (*models.Vehicle, error) {
	log.Printf("🚗 Create: Creating vehicle name=%s model=%s", req.Name, req.Model)

	images, specs, err := encodeVehicleJSON(req)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO vehicles (name, model, year, type, transmission, condition, engine, trim, price,
			papers, exterior, interior, description, images, video_url, external_link, specs)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING ` + vehicleColumns

	created, err := scanVehicle(r.db.QueryRowContext(ctx, query,
		req.Name, req.Model, req.Year, req.Type, req.Transmission, req.Condition,
		req.Engine, req.Trim, req.Price, req.Papers, req.Exterior, req.Interior,
		req.Description, images, req.VideoURL, req.ExternalLink, specs,
	))
	if err != nil {
		log.Printf("❌ Create: Error creating vehicle: %v", err)
		return nil, fmt.Errorf("failed to create vehicle: %w", err)
	}

	log.Printf("✅ Create: Successfully created vehicle id=%d", created.ID)
	return created, nil
}

// Update replaces a vehicle listing's fields
func (r *VehicleRepository) Update(ctx context.Context, id int64, req *models.SaveVehicleRequest) (*models.Vehicle, error) {
	log.Printf("🚗 Update: Updating vehicle id=%d", id)

	images, specs, err := encodeVehicleJSON(req)
	if err != nil {
		return nil, err
	}

	query := `
		UPDATE vehicles
		SET name = $1, model = $2, year = $3, type = $4, transmission = $5, condition = $6,
		    engine = $7, trim = $8, price = $9, papers = $10, exterior = $11, interior = $12,
		    description = $13, images = $14, video_url = $15, external_link = $16, specs = $17,
		    updated_at = now()
		WHERE id = $18
		RETURNING ` + vehicleColumns

	updated, err := scanVehicle(r.db.QueryRowContext(ctx, query,
		req.Name, req.Model, req.Year, req.Type, req.Transmission, req.Condition,
		req.Engine, req.Trim, req.Price, req.Papers, req.Exterior, req.Interior,
		req.Description, images, req.VideoURL, req.ExternalLink, specs, id,
	))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrVehicleNotFound
		}
		log.Printf("❌ Update: Error updating vehicle id=%d: %v", id, err)
		return nil, fmt.Errorf("failed to update vehicle: %w", err)
	}

	log.Printf("✅ Update: Successfully updated vehicle id=%d", id)
	return updated, nil
}

// Delete removes a vehicle listing and its like counter
func (r *VehicleRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `DELETE FROM vehicles WHERE id = $1`, id)
	if err != nil {
		log.Printf("❌ Delete: Error deleting vehicle id=%d: %v", id, err)
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return ErrVehicleNotFound
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM vehicle_likes WHERE vehicle_id = $1`, id); err != nil {
		log.Printf("❌ Delete: Error deleting like counter for vehicle id=%d: %v", id, err)
		return fmt.Errorf("failed to delete vehicle likes: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Printf("✅ Delete: Successfully deleted vehicle id=%d", id)
	return nil
}

func encodeVehicleJSON(req *models.SaveVehicleRequest) (images, specs []byte, err error) {
	if images, err = json.Marshal(emptyIfNilStrings(req.Images)); err != nil {
		return nil, nil, fmt.Errorf("failed to encode vehicle images: %w", err)
	}
	if specs, err = json.Marshal(emptyIfNilStrings(req.Specs)); err != nil {
		return nil, nil, fmt.Errorf("failed to encode vehicle specs: %w", err)
	}
	return images, specs, nil
}
