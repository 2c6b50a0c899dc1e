package repository

import (
	"context"

	"gcwab-store/models"
)

// CartSnapshotRepositoryInterface defines the contract for durable cart snapshots
type CartSnapshotRepositoryInterface interface {
	Load(ctx context.Context, key string) (*models.CartSnapshot, error)
	Save(ctx context.Context, key string, snapshot *models.CartSnapshot) error
	Clear(ctx context.Context, key string) error
}

// ProductRepositoryInterface defines the contract for fashion catalog operations
type ProductRepositoryInterface interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) (*models.Product, error)
	Update(ctx context.Context, id int64, product *models.Product) (*models.Product, error)
	Delete(ctx context.Context, id int64) error
}

// VehicleRepositoryInterface defines the contract for vehicle listing operations
type VehicleRepositoryInterface interface {
	List(ctx context.Context) ([]models.Vehicle, error)
	GetByID(ctx context.Context, id int64) (*models.Vehicle, error)
	Create(ctx context.Context, req *models.SaveVehicleRequest) (*models.Vehicle, error)
	Update(ctx context.Context, id int64, req *models.SaveVehicleRequest) (*models.Vehicle, error)
	Delete(ctx context.Context, id int64) error
}

// ChatRepositoryInterface defines the contract for live chat operations
type ChatRepositoryInterface interface {
	ListConversations(ctx context.Context) ([]models.Conversation, error)
	GetMessages(ctx context.Context, conversationID string, markRead bool) ([]models.ChatMessage, error)
	AppendMessage(ctx context.Context, conversationID string, req *models.PostMessageRequest) (*models.ChatMessage, error)
	DeleteConversation(ctx context.Context, conversationID string) error
}

// EngagementRepositoryInterface defines the contract for likes and engagement settings
type EngagementRepositoryInterface interface {
	AddLike(ctx context.Context, vehicleID int64) (int64, error)
	RemoveLike(ctx context.Context, vehicleID int64) (int64, error)
	GetLikes(ctx context.Context, vehicleID int64) (int64, error)
	GetEngagementConfig(ctx context.Context) (models.EngagementConfig, error)
	SaveEngagementConfig(ctx context.Context, config models.EngagementConfig) error
}
