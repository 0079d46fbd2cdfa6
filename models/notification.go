package models

// ReminderPayload is the asynq payload for a scheduled due-task reminder.
type ReminderPayload struct {
	ReminderID string `json:"reminderId"`
	UserID     string `json:"userId"`
	TaskID     string `json:"taskId"`
	Title      string `json:"title"`
	Body       string `json:"body"`
	FireDate   string `json:"fireDate"`
}
