package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"gcwab-store/models"
)

// ErrConversationNotFound is returned when a conversation is not found
var ErrConversationNotFound = errors.New("conversation not found")

// SenderAdmin is the sender value used by shop staff; messages from any other
// sender count towards the conversation's unread counter
const SenderAdmin = "admin"

// ChatRepository handles database operations for the live chat
type ChatRepository struct {
	db *sql.DB
}

// NewChatRepository creates a new ChatRepository
func NewChatRepository(database *sql.DB) *ChatRepository {
	return &ChatRepository{db: database}
}

// Ensure ChatRepository implements ChatRepositoryInterface
var _ ChatRepositoryInterface = (*ChatRepository)(nil)

// ListConversations retrieves all conversations, most recently active first
func (r *ChatRepository) ListConversations(ctx context.Context) ([]models.Conversation, error) {
	query := `
		SELECT id, user_name, unread_count, created_at, updated_at
		FROM conversations
		ORDER BY updated_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		log.Printf("❌ ListConversations: Error querying conversations: %v", err)
		return nil, fmt.Errorf("failed to query conversations: %w", err)
	}
	defer rows.Close()

	var conversations []models.Conversation
	for rows.Next() {
		var c models.Conversation
		var createdAt, updatedAt time.Time
		if err := rows.Scan(&c.ID, &c.UserName, &c.UnreadCount, &createdAt, &updatedAt); err != nil {
			log.Printf("❌ ListConversations: Error scanning conversation: %v", err)
			continue
		}
		c.CreatedAt = createdAt.Format(time.RFC3339)
		c.UpdatedAt = updatedAt.Format(time.RFC3339)
		conversations = append(conversations, c)
	}

	if err := rows.Err(); err != nil {
		log.Printf("❌ ListConversations: Error iterating conversations: %v", err)
		return nil, fmt.Errorf("failed to iterate conversations: %w", err)
	}

	return conversations, nil
}

// GetMessages retrieves a conversation's messages ascending by creation time.
// When markRead is set (an admin is reading), the unread counter resets.
func (r *ChatRepository) GetMessages(ctx context.Context, conversationID string, markRead bool) ([]models.ChatMessage, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM conversations WHERE id = $1)`, conversationID).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("failed to check conversation: %w", err)
	}
	if !exists {
		return nil, ErrConversationNotFound
	}

	query := `
		SELECT id, conversation_id, sender, body, created_at
		FROM messages
		WHERE conversation_id = $1
		ORDER BY created_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, conversationID)
	if err != nil {
		log.Printf("❌ GetMessages: Error querying messages: %v", err)
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	defer rows.Close()

	var messages []models.ChatMessage
	for rows.Next() {
		var m models.ChatMessage
		var createdAt time.Time
		if err := rows.Scan(&m.ID, &m.ConversationID, &m.Sender, &m.Body, &createdAt); err != nil {
			log.Printf("❌ GetMessages: Error scanning message: %v", err)
			continue
		}
		m.CreatedAt = createdAt.Format(time.RFC3339)
		messages = append(messages, m)
	}

	if err := rows.Err(); err != nil {
		log.Printf("❌ GetMessages: Error iterating messages: %v", err)
		return nil, fmt.Errorf("failed to iterate messages: %w", err)
	}

	if markRead {
		if _, err := r.db.ExecContext(ctx,
			`UPDATE conversations SET unread_count = 0 WHERE id = $1`, conversationID); err != nil {
			// Read still succeeded; the counter resets on the next read
			log.Printf("⚠️ GetMessages: Failed to reset unread counter: %v", err)
		}
	}

	return messages, nil
}

// AppendMessage appends a message, upserting the conversation and bumping its
// activity timestamp. Customer messages increment the unread counter.
func (r *ChatRepository) AppendMessage(ctx context.Context, conversationID string, req *models.PostMessageRequest) (*models.ChatMessage, error) {
	log.Printf("💬 AppendMessage: conversation=%s sender=%s", conversationID, req.Sender)

	if strings.TrimSpace(req.Body) == "" {
		return nil, fmt.Errorf("message body cannot be empty")
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Printf("❌ AppendMessage: Error starting transaction: %v", err)
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	unreadDelta := 1
	if req.Sender == SenderAdmin {
		unreadDelta = 0
	}

	queryConversation := `
		INSERT INTO conversations (id, user_name, unread_count, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (id)
		DO UPDATE SET
			unread_count = conversations.unread_count + EXCLUDED.unread_count,
			user_name = CASE WHEN EXCLUDED.user_name <> '' THEN EXCLUDED.user_name ELSE conversations.user_name END,
			updated_at = now()
	`
	if _, err := tx.ExecContext(ctx, queryConversation, conversationID, req.UserName, unreadDelta); err != nil {
		log.Printf("❌ AppendMessage: Error upserting conversation: %v", err)
		return nil, fmt.Errorf("failed to upsert conversation: %w", err)
	}

	queryMessage := `
		INSERT INTO messages (id, conversation_id, sender, body)
		VALUES ($1, $2, $3, $4)
		RETURNING id, conversation_id, sender, body, created_at
	`

	var message models.ChatMessage
	var createdAt time.Time
	err = tx.QueryRowContext(ctx, queryMessage, uuid.NewString(), conversationID, req.Sender, req.Body).Scan(
		&message.ID,
		&message.ConversationID,
		&message.Sender,
		&message.Body,
		&createdAt,
	)
	if err != nil {
		log.Printf("❌ AppendMessage: Error inserting message: %v", err)
		return nil, fmt.Errorf("failed to insert message: %w", err)
	}
	message.CreatedAt = createdAt.Format(time.RFC3339)

	if err := tx.Commit(); err != nil {
		log.Printf("❌ AppendMessage: Error committing transaction: %v", err)
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Printf("✅ AppendMessage: Successfully appended message id=%s", message.ID)
	return &message, nil
}

// DeleteConversation removes a conversation; messages cascade
func (r *ChatRepository) DeleteConversation(ctx context.Context, conversationID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM conversations WHERE id = $1`, conversationID)
	if err != nil {
		log.Printf("❌ DeleteConversation: Error deleting conversation %s: %v", conversationID, err)
		return fmt.Errorf("failed to delete conversation: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return ErrConversationNotFound
	}

	log.Printf("✅ DeleteConversation: Successfully deleted conversation %s", conversationID)
	return nil
}
