package services

import (
	"testing"
	"time"

	"codelance_backend/internal/models"
	"codelance_backend/internal/policy"
	"codelance_backend/internal/services/dto"
	"codelance_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMessageServiceForTest() (*MessageServiceImpl, *stubMessageRepo, *stubUserRepo) {
	messageRepo := newStubMessageRepo()
	userRepo := newStubUserRepo()
	svc := NewMessageService(messageRepo, userRepo).(*MessageServiceImpl)
	return svc, messageRepo, userRepo
}

func msg(id, sender, receiver, content string, at time.Time, read bool) models.Message {
	return models.Message{
		BaseModel:  models.BaseModel{ID: id, CreatedAt: at},
		SenderID:   sender,
		ReceiverID: receiver,
		Content:    content,
		IsRead:     read,
	}
}

func TestBuildConversationsKeepsLatestPerPartner(t *testing.T) {
	t0 := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	// Newest first, as the repository returns them.
	messages := []models.Message{
		msg("m4", "alice", "carol", "see you", t0.Add(3*time.Hour), false),
		msg("m3", "bob", "alice", "ping", t0.Add(2*time.Hour), false),
		msg("m2", "carol", "alice", "hello", t0.Add(time.Hour), true),
		msg("m1", "alice", "bob", "hi", t0, true),
	}

	conversations := buildConversations("alice", messages)

	require.Len(t, conversations, 2)
	assert.Equal(t, "carol", conversations[0].UserID)
	assert.Equal(t, "see you", conversations[0].LastMessage)
	assert.Equal(t, "bob", conversations[1].UserID)
	assert.Equal(t, "ping", conversations[1].LastMessage)
}

func TestBuildConversationsReadFlag(t *testing.T) {
	t0 := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	// Own outgoing message counts as read even when the flag is false.
	sent := buildConversations("alice", []models.Message{
		msg("m1", "alice", "bob", "hi", t0, false),
	})
	require.Len(t, sent, 1)
	assert.True(t, sent[0].IsRead)

	unread := buildConversations("alice", []models.Message{
		msg("m2", "bob", "alice", "ping", t0, false),
	})
	require.Len(t, unread, 1)
	assert.False(t, unread[0].IsRead)

	read := buildConversations("alice", []models.Message{
		msg("m3", "bob", "alice", "ping", t0, true),
	})
	require.Len(t, read, 1)
	assert.True(t, read[0].IsRead)
}

func TestBuildConversationsEmpty(t *testing.T) {
	conversations := buildConversations("alice", nil)
	assert.NotNil(t, conversations)
	assert.Empty(t, conversations)
}

func TestSendMessageSetsSenderFromActor(t *testing.T) {
	svc, messageRepo, userRepo := newMessageServiceForTest()
	_ = userRepo.Create(nil, &models.User{BaseModel: models.BaseModel{ID: "bob"}, Username: "bob", Email: "bob@example.com"})

	actor := policy.Actor{UserID: "alice", Role: models.UserRoleClient}
	resp, err := svc.Send(nil, actor, &dto.CreateMessageRequest{ReceiverID: "bob", Content: "hi"})

	require.NoError(t, err)
	assert.Equal(t, "alice", resp.SenderID)
	assert.Equal(t, "bob", resp.ReceiverID)
	assert.False(t, resp.IsRead)
	assert.Len(t, messageRepo.messages, 1)
}

func TestSendMessageUnknownReceiver(t *testing.T) {
	svc, _, _ := newMessageServiceForTest()

	actor := policy.Actor{UserID: "alice", Role: models.UserRoleClient}
	_, err := svc.Send(nil, actor, &dto.CreateMessageRequest{ReceiverID: "ghost", Content: "hi"})

	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.HTTPCode)
}

func TestMarkReadOnlyReceiver(t *testing.T) {
	svc, messageRepo, _ := newMessageServiceForTest()

	m := msg("m1", "alice", "bob", "hi", time.Now(), false)
	messageRepo.messages = append(messageRepo.messages, &m)

	isRead := true
	req := &dto.UpdateMessageRequest{IsRead: &isRead}

	// The sender may not mark their own message read.
	_, err := svc.MarkRead(nil, policy.Actor{UserID: "alice", Role: models.UserRoleClient}, "m1", req)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrInsufficientPermissions))

	// The receiver may.
	resp, err := svc.MarkRead(nil, policy.Actor{UserID: "bob", Role: models.UserRoleDeveloper}, "m1", req)
	require.NoError(t, err)
	assert.True(t, resp.IsRead)
}

func TestMarkReadInvisibleToThirdParty(t *testing.T) {
	svc, messageRepo, _ := newMessageServiceForTest()

	m := msg("m1", "alice", "bob", "hi", time.Now(), false)
	messageRepo.messages = append(messageRepo.messages, &m)

	isRead := true
	_, err := svc.MarkRead(nil, policy.Actor{UserID: "carol", Role: models.UserRoleClient}, "m1", &dto.UpdateMessageRequest{IsRead: &isRead})

	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.HTTPCode, "other people's messages read as absent")
}

func TestListMessagesWithoutPartnerReturnsAll(t *testing.T) {
	svc, messageRepo, _ := newMessageServiceForTest()

	t0 := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	m1 := msg("m1", "alice", "bob", "hi", t0, false)
	m2 := msg("m2", "carol", "alice", "ping", t0.Add(time.Hour), false)
	m3 := msg("m3", "bob", "carol", "private", t0.Add(2*time.Hour), false)
	messageRepo.messages = append(messageRepo.messages, &m1, &m2, &m3)

	// Unfiltered: everything alice sent or received, nothing else.
	out, err := svc.List(nil, policy.Actor{UserID: "alice"}, "")
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "hi", out[0].Content)
	assert.Equal(t, "ping", out[1].Content)
}

func TestListMessagesPartnerFilter(t *testing.T) {
	svc, messageRepo, _ := newMessageServiceForTest()

	t0 := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	m1 := msg("m1", "alice", "bob", "hi", t0, false)
	m2 := msg("m2", "carol", "alice", "ping", t0.Add(time.Hour), false)
	messageRepo.messages = append(messageRepo.messages, &m1, &m2)

	out, err := svc.List(nil, policy.Actor{UserID: "alice"}, "bob")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "hi", out[0].Content)
}
