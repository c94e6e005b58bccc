package message

import (
	"context"
	"fmt"
	"time"

	messageRepo "tutorhub/database/repository/message"
	userRepo "tutorhub/database/repository/user"
	"tutorhub/models"
	"tutorhub/services/notification"
	"tutorhub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MessageService defines student/tutor messaging.
type MessageService interface {
	// SendMessage delivers a message to the recipient, opening the pair's
	// conversation on first contact.
	SendMessage(senderID, senderRole string, req models.SendMessageRequest) (*models.Message, error)
	ListConversations(userID string) ([]models.Conversation, error)
	ListMessages(userID, conversationID string, limit int64) ([]models.Message, error)
	MarkConversationRead(userID, conversationID string) error
}

// DefaultMessageService is the production implementation.
type DefaultMessageService struct {
	Repo     messageRepo.MessageRepository
	UserRepo userRepo.UserRepository
	Notif    notification.NotificationService
}

func (s *DefaultMessageService) SendMessage(senderID, senderRole string, req models.SendMessageRequest) (*models.Message, error) {
	if req.RecipientID == senderID {
		return nil, fmt.Errorf("cannot message yourself")
	}

	recipient, err := s.UserRepo.GetByID(req.RecipientID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recipient %s: %w", req.RecipientID, err)
	}

	// Threads are keyed student/tutor regardless of who writes first.
	var studentID, tutorID string
	switch {
	case senderRole == models.RoleStudent && recipient.Role == models.RoleTutor:
		studentID, tutorID = senderID, recipient.ID
	case senderRole == models.RoleTutor && recipient.Role == models.RoleStudent:
		studentID, tutorID = recipient.ID, senderID
	default:
		return nil, fmt.Errorf("messaging is only available between students and tutors")
	}

	conv, err := s.Repo.GetOrCreateConversation(&models.Conversation{
		ID:        uuid.NewString(),
		StudentID: studentID,
		TutorID:   tutorID,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open conversation: %w", err)
	}

	msg := &models.Message{
		ID:             uuid.NewString(),
		ConversationID: conv.ID,
		SenderID:       senderID,
		Body:           req.Body,
		CreatedAt:      time.Now(),
	}
	if err := s.Repo.CreateMessage(msg); err != nil {
		return nil, fmt.Errorf("failed to persist message: %w", err)
	}

	s.push(recipient.ID, conv.ID, req.Body)
	return msg, nil
}

func (s *DefaultMessageService) ListConversations(userID string) ([]models.Conversation, error) {
	convs, err := s.Repo.ListConversations(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}
	return convs, nil
}

func (s *DefaultMessageService) ListMessages(userID, conversationID string, limit int64) ([]models.Message, error) {
	conv, err := s.Repo.GetConversationByID(conversationID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch conversation %s: %w", conversationID, err)
	}
	if !conv.HasParticipant(userID) {
		return nil, fmt.Errorf("conversation is not visible to this account")
	}
	msgs, err := s.Repo.ListMessages(conversationID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return msgs, nil
}

func (s *DefaultMessageService) MarkConversationRead(userID, conversationID string) error {
	conv, err := s.Repo.GetConversationByID(conversationID)
	if err != nil {
		return fmt.Errorf("failed to fetch conversation %s: %w", conversationID, err)
	}
	if !conv.HasParticipant(userID) {
		return fmt.Errorf("conversation is not visible to this account")
	}
	return s.Repo.MarkRead(conversationID, userID)
}

func (s *DefaultMessageService) push(recipientID, conversationID, body string) {
	if s.Notif == nil {
		return
	}
	if len(body) > 80 {
		body = body[:80]
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Notif.SendPushNotification(ctx, recipientID, "New message", body,
		map[string]string{"conversationId": conversationID}); err != nil {
		utils.GetLogger().Warn("message push failed",
			zap.String("recipientID", recipientID), zap.Error(err))
	}
}
