package models

// Conversation represents a live-chat conversation between a customer and the shop
type Conversation struct {
	ID          string `json:"id"`
	UserName    string `json:"userName"`
	UnreadCount int    `json:"unreadCount"` // messages not yet read by an admin
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// ChatMessage represents one message inside a conversation
type ChatMessage struct {
	ID             string `json:"id"`
	ConversationID string `json:"conversationId"`
	Sender         string `json:"sender"` // "customer" or "admin"
	Body           string `json:"body"`
	CreatedAt      string `json:"createdAt"`
}

// PostMessageRequest represents the request body for posting a chat message
// Example: {"sender": "customer", "userName": "Ada", "body": "Is the Camry still available?"}
type PostMessageRequest struct {
	Sender   string `json:"sender"`
	UserName string `json:"userName,omitempty"`
	Body     string `json:"body"`
}

// ConversationListResponse represents the admin view of all conversations
type ConversationListResponse struct {
	Conversations []Conversation `json:"conversations"`
}

// MessageListResponse represents the messages of one conversation, ascending by time
type MessageListResponse struct {
	Messages []ChatMessage `json:"messages"`
}
