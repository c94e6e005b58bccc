package messageRepo

import "tutorhub/models"

// MessageRepository defines persistence for conversations and messages.
type MessageRepository interface {
	// GetOrCreateConversation returns the thread for a student-tutor pair,
	// creating it on first contact.
	GetOrCreateConversation(conv *models.Conversation) (*models.Conversation, error)
	GetConversationByID(id string) (*models.Conversation, error)
	ListConversations(userID string) ([]models.Conversation, error)

	CreateMessage(msg *models.Message) error
	ListMessages(conversationID string, limit int64) ([]models.Message, error)
	MarkRead(conversationID, readerID string) error
}
