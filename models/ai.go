package models

// AIContext is the rolling chat history kept per user in Redis.
type AIContext struct {
	Messages []AIMessage `json:"messages"`
}

// AIMessage is one chat turn.
type AIMessage struct {
	Role    string `json:"role"` // "user" or "model"
	Content string `json:"content"`
}

// ClassifyTaskRequest asks the AI to assign a category to a task.
type ClassifyTaskRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

// ClassifyTaskResponse carries the assigned category.
type ClassifyTaskResponse struct {
	Category string `json:"category"`
}

// ChatRequest is a user message to the assistant.
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// ChatResponse is the assistant's reply.
type ChatResponse struct {
	Reply string `json:"reply"`
}
