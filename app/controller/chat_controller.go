package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"gcwab-store/models"
	"gcwab-store/repository"
)

// ChatController handles HTTP requests for the live chat
type ChatController struct {
	repository repository.ChatRepositoryInterface
	admin      *AdminGate
}

// NewChatController creates a new ChatController
func NewChatController(repo repository.ChatRepositoryInterface, admin *AdminGate) *ChatController {
	return &ChatController{
		repository: repo,
		admin:      admin,
	}
}

// conversationIDFromPath extracts the conversation ID from paths like
// /chat/{id}/messages or /admin/chat/{id}
func conversationIDFromPath(path, prefix, suffix string) (string, error) {
	id := strings.TrimPrefix(path, prefix)
	id = strings.TrimSuffix(id, suffix)
	id = strings.Trim(id, "/")
	if id == "" || strings.Contains(id, "/") {
		return "", fmt.Errorf("no conversation ID in path %q", path)
	}
	return id, nil
}

// ListConversations handles GET /admin/chat
// Conversations are ordered by last activity, most recent first
func (c *ChatController) ListConversations(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 ListConversations: Received %s request to %s", r.Method, r.URL.Path)

	if !c.admin.Authorize(w, r) {
		return
	}

	conversations, err := c.repository.ListConversations(r.Context())
	if err != nil {
		log.Printf("❌ ListConversations: Error fetching conversations: %v", err)
		http.Error(w, fmt.Sprintf("Failed to fetch conversations: %v", err), http.StatusInternalServerError)
		return
	}

	response := models.ConversationListResponse{Conversations: conversations}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("❌ ListConversations: Error encoding response: %v", err)
	}
}

// GetMessages handles GET /chat/{conversationID}/messages
// When the reader is an admin, the conversation's unread counter resets
func (c *ChatController) GetMessages(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 GetMessages: Received %s request to %s", r.Method, r.URL.Path)

	conversationID, err := conversationIDFromPath(r.URL.Path, "/chat/", "/messages")
	if err != nil {
		http.Error(w, "Invalid conversation ID", http.StatusBadRequest)
		return
	}

	markRead := c.admin.IsAdmin(r)

	messages, err := c.repository.GetMessages(r.Context(), conversationID, markRead)
	if err != nil {
		if errors.Is(err, repository.ErrConversationNotFound) {
			http.Error(w, "Conversation not found", http.StatusNotFound)
			return
		}
		log.Printf("❌ GetMessages: Error fetching messages for %s: %v", conversationID, err)
		http.Error(w, fmt.Sprintf("Failed to fetch messages: %v", err), http.StatusInternalServerError)
		return
	}

	response := models.MessageListResponse{Messages: messages}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("❌ GetMessages: Error encoding response: %v", err)
	}
}

// PostMessage handles POST /chat/{conversationID}/messages
// Creates the conversation on first message; customer messages bump the
// unread counter, admin replies do not
func (c *ChatController) PostMessage(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 PostMessage: Received %s request to %s", r.Method, r.URL.Path)

	conversationID, err := conversationIDFromPath(r.URL.Path, "/chat/", "/messages")
	if err != nil {
		http.Error(w, "Invalid conversation ID", http.StatusBadRequest)
		return
	}

	var req models.PostMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ PostMessage: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Body) == "" {
		http.Error(w, "body cannot be empty", http.StatusBadRequest)
		return
	}

	// Only admins may post as the admin sender
	if req.Sender == repository.SenderAdmin && !c.admin.IsAdmin(r) {
		log.Printf("❌ PostMessage: Non-admin attempted to post as admin in %s", conversationID)
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	message, err := c.repository.AppendMessage(r.Context(), conversationID, &req)
	if err != nil {
		log.Printf("❌ PostMessage: Error appending message to %s: %v", conversationID, err)
		http.Error(w, fmt.Sprintf("Failed to post message: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("💬 PostMessage: conversation=%s sender=%s message=%s", conversationID, req.Sender, message.ID)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(message); err != nil {
		log.Printf("❌ PostMessage: Error encoding response: %v", err)
	}
}

// DeleteConversation handles DELETE /admin/chat/{conversationID}
// Messages cascade with the conversation
func (c *ChatController) DeleteConversation(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 DeleteConversation: Received %s request to %s", r.Method, r.URL.Path)

	if !c.admin.Authorize(w, r) {
		return
	}

	conversationID, err := conversationIDFromPath(r.URL.Path, "/admin/chat/", "")
	if err != nil {
		http.Error(w, "Invalid conversation ID", http.StatusBadRequest)
		return
	}

	if err := c.repository.DeleteConversation(r.Context(), conversationID); err != nil {
		if errors.Is(err, repository.ErrConversationNotFound) {
			http.Error(w, "Conversation not found", http.StatusNotFound)
			return
		}
		log.Printf("❌ DeleteConversation: Error deleting %s: %v", conversationID, err)
		http.Error(w, fmt.Sprintf("Failed to delete conversation: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("✅ DeleteConversation: Deleted conversation %s", conversationID)
	w.WriteHeader(http.StatusNoContent)
}
