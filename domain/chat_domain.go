package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateConversation = "conversation created successfully"
	MessageSuccessGetConversations   = "conversations retrieved successfully"
	MessageSuccessGetMessages        = "messages retrieved successfully"
	MessageSuccessSendMessage        = "message sent successfully"

	MessageFailedCreateConversation = "failed to create conversation"
	MessageFailedGetConversations   = "failed to retrieve conversations"
	MessageFailedGetMessages        = "failed to retrieve messages"
	MessageFailedSendMessage        = "failed to send message"

	ErrConversationNotFound = errors.New("conversation not found")
	ErrAgentUnavailable     = errors.New("chat agent unavailable")
)

type (
	CreateConversationRequest struct {
		Title string `json:"title" validate:"omitempty,max=100"`
	}

	SendMessageRequest struct {
		Content string `json:"content" validate:"required"`
	}

	ConversationResponse struct {
		ID        string    `json:"id"`
		Title     string    `json:"title,omitempty"`
		CreatedAt time.Time `json:"created_at"`
	}

	MessageResponse struct {
		ID             string    `json:"id"`
		ConversationID string    `json:"conversation_id"`
		Role           string    `json:"role"`
		Content        string    `json:"content"`
		CreatedAt      time.Time `json:"created_at"`
	}
)
