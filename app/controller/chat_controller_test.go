package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gcwab-store/models"
	"gcwab-store/repository"
)

// mockChatRepository is a hand-rolled mock of ChatRepositoryInterface
type mockChatRepository struct {
	conversations map[string][]models.ChatMessage
	markReadCalls []bool
	deleted       []string
}

func newMockChatRepository() *mockChatRepository {
	return &mockChatRepository{conversations: make(map[string][]models.ChatMessage)}
}

func (m *mockChatRepository) ListConversations(ctx context.Context) ([]models.Conversation, error) {
	var result []models.Conversation
	for id := range m.conversations {
		result = append(result, models.Conversation{ID: id})
	}
	return result, nil
}

func (m *mockChatRepository) GetMessages(ctx context.Context, conversationID string, markRead bool) ([]models.ChatMessage, error) {
	m.markReadCalls = append(m.markReadCalls, markRead)
	messages, ok := m.conversations[conversationID]
	if !ok {
		return nil, repository.ErrConversationNotFound
	}
	return messages, nil
}

func (m *mockChatRepository) AppendMessage(ctx context.Context, conversationID string, req *models.PostMessageRequest) (*models.ChatMessage, error) {
	message := models.ChatMessage{
		ID:             "msg-1",
		ConversationID: conversationID,
		Sender:         req.Sender,
		Body:           req.Body,
	}
	m.conversations[conversationID] = append(m.conversations[conversationID], message)
	return &message, nil
}

func (m *mockChatRepository) DeleteConversation(ctx context.Context, conversationID string) error {
	if _, ok := m.conversations[conversationID]; !ok {
		return repository.ErrConversationNotFound
	}
	delete(m.conversations, conversationID)
	m.deleted = append(m.deleted, conversationID)
	return nil
}

func postMessage(t *testing.T, controller *ChatController, conversationID string, req models.PostMessageRequest, adminID string) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(req)
	require.NoError(t, err)

	httpReq := httptest.NewRequest(http.MethodPost, "/chat/"+conversationID+"/messages", bytes.NewReader(body))
	if adminID != "" {
		httpReq.Header.Set("X-Admin-Id", adminID)
	}
	w := httptest.NewRecorder()
	controller.PostMessage(w, httpReq)
	return w
}

func TestPostMessageCreatesConversation(t *testing.T) {
	mock := newMockChatRepository()
	controller := NewChatController(mock, NewAdminGate("admin-1"))

	w := postMessage(t, controller, "conv-1", models.PostMessageRequest{
		Sender: "customer", UserName: "Ada", Body: "Is the Camry still available?",
	}, "")

	require.Equal(t, http.StatusCreated, w.Code)

	var message models.ChatMessage
	require.NoError(t, json.NewDecoder(w.Body).Decode(&message))
	assert.Equal(t, "conv-1", message.ConversationID)
	assert.Equal(t, "customer", message.Sender)
	assert.Len(t, mock.conversations["conv-1"], 1)
}

func TestPostMessageRejectsEmptyBody(t *testing.T) {
	controller := NewChatController(newMockChatRepository(), NewAdminGate("admin-1"))

	w := postMessage(t, controller, "conv-1", models.PostMessageRequest{
		Sender: "customer", Body: "   ",
	}, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPostMessageAsAdminRequiresAdminHeader(t *testing.T) {
	mock := newMockChatRepository()
	controller := NewChatController(mock, NewAdminGate("admin-1"))

	w := postMessage(t, controller, "conv-1", models.PostMessageRequest{
		Sender: repository.SenderAdmin, Body: "Yes, it is!",
	}, "")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, mock.conversations["conv-1"])

	w = postMessage(t, controller, "conv-1", models.PostMessageRequest{
		Sender: repository.SenderAdmin, Body: "Yes, it is!",
	}, "admin-1")
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestGetMessagesMarksReadOnlyForAdmins(t *testing.T) {
	mock := newMockChatRepository()
	mock.conversations["conv-1"] = []models.ChatMessage{{ID: "msg-1", Body: "hello"}}
	controller := NewChatController(mock, NewAdminGate("admin-1"))

	// Customer read
	w := httptest.NewRecorder()
	controller.GetMessages(w, httptest.NewRequest(http.MethodGet, "/chat/conv-1/messages", nil))
	require.Equal(t, http.StatusOK, w.Code)

	// Admin read
	req := httptest.NewRequest(http.MethodGet, "/chat/conv-1/messages", nil)
	req.Header.Set("X-Admin-Id", "admin-1")
	w = httptest.NewRecorder()
	controller.GetMessages(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, []bool{false, true}, mock.markReadCalls)
}

func TestGetMessagesUnknownConversation(t *testing.T) {
	controller := NewChatController(newMockChatRepository(), NewAdminGate("admin-1"))

	w := httptest.NewRecorder()
	controller.GetMessages(w, httptest.NewRequest(http.MethodGet, "/chat/missing/messages", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListConversationsRequiresAdmin(t *testing.T) {
	mock := newMockChatRepository()
	mock.conversations["conv-1"] = nil
	controller := NewChatController(mock, NewAdminGate("admin-1"))

	w := httptest.NewRecorder()
	controller.ListConversations(w, httptest.NewRequest(http.MethodGet, "/admin/chat", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/admin/chat", nil)
	req.Header.Set("X-Admin-Id", "admin-1")
	w = httptest.NewRecorder()
	controller.ListConversations(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var response models.ConversationListResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Len(t, response.Conversations, 1)
}

func TestDeleteConversation(t *testing.T) {
	mock := newMockChatRepository()
	mock.conversations["conv-1"] = []models.ChatMessage{{ID: "msg-1"}}
	controller := NewChatController(mock, NewAdminGate("admin-1"))

	req := httptest.NewRequest(http.MethodDelete, "/admin/chat/conv-1", nil)
	req.Header.Set("X-Admin-Id", "admin-1")
	w := httptest.NewRecorder()
	controller.DeleteConversation(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, []string{"conv-1"}, mock.deleted)
}
