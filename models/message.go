package models

import "time"

// Conversation is a student/tutor message thread. One thread exists per
// student-tutor pair.
type Conversation struct {
	ID            string    `bson:"id" json:"id"`
	StudentID     string    `bson:"studentId" json:"studentId"`
	TutorID       string    `bson:"tutorId" json:"tutorId"`
	LastMessage   string    `bson:"lastMessage,omitempty" json:"lastMessage,omitempty"`
	LastMessageAt time.Time `bson:"lastMessageAt,omitzero" json:"lastMessageAt,omitzero"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt,omitzero"`
}

// HasParticipant reports whether the given account belongs to the thread.
func (c *Conversation) HasParticipant(userID string) bool {
	return c.StudentID == userID || c.TutorID == userID
}

// Message is one entry in a conversation.
type Message struct {
	ID             string    `bson:"id" json:"id"`
	ConversationID string    `bson:"conversationId" json:"conversationId"`
	SenderID       string    `bson:"senderId" json:"senderId"`
	Body           string    `bson:"body" json:"body"`
	Read           bool      `bson:"read" json:"read"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt,omitzero"`
}

// SendMessageRequest is the payload for sending a message.
type SendMessageRequest struct {
	RecipientID string `json:"recipientId" binding:"required"`
	Body        string `json:"body" binding:"required"`
}
