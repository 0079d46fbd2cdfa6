package intelligence

import (
	"context"
	"fmt"
	"strings"
	"time"

	taskRepo "flowdesk/database/repository/task"
	"flowdesk/models"
	"flowdesk/services/user"

	"github.com/go-redis/redis/v8"
)

const aiUsagePrefix = "ai:usage:"

// Categories the classifier is allowed to assign. Anything the model returns
// outside this set falls back to "other".
var taskCategories = []string{"development", "design", "meeting", "admin", "research", "other"}

// AIService defines the assistant operations: task classification and
// context-aware chat.
type AIService interface {
	ClassifyTask(ctx context.Context, userID string, req models.ClassifyTaskRequest) (*models.ClassifyTaskResponse, error)
	Chat(ctx context.Context, userID string, req models.ChatRequest) (*models.ChatResponse, error)
	ClearContext(ctx context.Context, userID string) error
}

// QuotaExceededError signals the user's daily AI call allowance is spent.
type QuotaExceededError struct {
	Limit int
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("daily AI call limit of %d reached", e.Limit)
}

// DefaultAIService is the production implementation: Gemini for generation,
// Redis for rolling chat context and per-day usage metering.
type DefaultAIService struct {
	Gemini  *GeminiClient
	Context *RedisContextStore
	Usage   *redis.Client
	Users   user.UserService
	Tasks   taskRepo.TaskRepository
}

// ClassifyTask asks the model to pick a category for a task.
func (s *DefaultAIService) ClassifyTask(ctx context.Context, userID string, req models.ClassifyTaskRequest) (*models.ClassifyTaskResponse, error) {
	if err := s.chargeQuota(ctx, userID); err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf(
		"Classify the following task into exactly one of these categories: %s.\n"+
			"Respond with the category name only.\n\nTitle: %s\nDescription: %s",
		strings.Join(taskCategories, ", "), req.Title, req.Description,
	)
	raw, err := s.Gemini.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	category := strings.ToLower(strings.TrimSpace(raw))
	if !validCategory(category) {
		category = "other"
	}
	return &models.ClassifyTaskResponse{Category: category}, nil
}

// Chat sends a user message to the assistant with the stored conversation
// context and the user's open tasks, then appends both turns back to the
// store.
func (s *DefaultAIService) Chat(ctx context.Context, userID string, req models.ChatRequest) (*models.ChatResponse, error) {
	if err := s.chargeQuota(ctx, userID); err != nil {
		return nil, err
	}

	aiCtx, err := s.Context.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load chat context: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("You are a productivity assistant for a task management workspace.\n")
	s.writeTaskContext(&sb, userID)
	for _, msg := range aiCtx.Messages {
		sb.WriteString(msg.Role)
		sb.WriteString(": ")
		sb.WriteString(msg.Content)
		sb.WriteString("\n")
	}
	sb.WriteString("user: ")
	sb.WriteString(req.Message)

	reply, err := s.Gemini.GenerateContent(ctx, sb.String())
	if err != nil {
		return nil, err
	}

	aiCtx.Messages = append(aiCtx.Messages,
		models.AIMessage{Role: "user", Content: req.Message},
		models.AIMessage{Role: "model", Content: reply},
	)
	if err := s.Context.Set(ctx, userID, aiCtx); err != nil {
		return nil, fmt.Errorf("failed to store chat context: %w", err)
	}
	return &models.ChatResponse{Reply: reply}, nil
}

// writeTaskContext appends the user's open tasks to the prompt so replies can
// reference real work items. Lookup failures degrade to a task-free prompt.
func (s *DefaultAIService) writeTaskContext(sb *strings.Builder, userID string) {
	if s.Tasks == nil {
		return
	}
	u, err := s.Users.GetUserByID(userID)
	if err != nil {
		return
	}
	tasks, err := s.Tasks.List(u.CompanyID, userID, models.TaskFilter{})
	if err != nil || len(tasks) == 0 {
		return
	}

	sb.WriteString("The user's current tasks:\n")
	for _, t := range tasks {
		if t.Status == models.TaskStatusDone {
			continue
		}
		sb.WriteString("- ")
		sb.WriteString(t.Title)
		sb.WriteString(" [")
		sb.WriteString(t.Status)
		if t.DueDate != nil {
			sb.WriteString(", due ")
			sb.WriteString(t.DueDate.Format("2006-01-02"))
		}
		sb.WriteString("]\n")
	}
}

// ClearContext drops the user's stored conversation.
func (s *DefaultAIService) ClearContext(ctx context.Context, userID string) error {
	return s.Context.Clear(ctx, userID)
}

// chargeQuota increments the user's daily counter and fails when the plan
// limit is exhausted. A zero limit means unlimited.
func (s *DefaultAIService) chargeQuota(ctx context.Context, userID string) error {
	u, err := s.Users.GetUserByID(userID)
	if err != nil {
		return err
	}
	limit := models.LimitsFor(u.Plan).MaxAICallsPerDay
	if limit <= 0 {
		return nil
	}

	key := aiUsagePrefix + userID + ":" + time.Now().UTC().Format("2006-01-02")
	count, err := s.Usage.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("failed to meter AI usage: %w", err)
	}
	if count == 1 {
		// Counter lives until the day rolls over.
		s.Usage.Expire(ctx, key, 48*time.Hour)
	}
	if count > int64(limit) {
		return &QuotaExceededError{Limit: limit}
	}
	return nil
}

func validCategory(c string) bool {
	for _, cat := range taskCategories {
		if c == cat {
			return true
		}
	}
	return false
}
