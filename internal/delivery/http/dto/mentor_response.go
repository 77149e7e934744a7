package dto

import "careeriq/internal/domain/career"

type MentorSessionResponse struct {
	SessionID string             `json:"sessionId"`
	Message   career.ChatMessage `json:"message"`
}

type MentorTranscriptResponse struct {
	SessionID string               `json:"sessionId"`
	Messages  []career.ChatMessage `json:"messages"`
}
