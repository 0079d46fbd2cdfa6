package handlers

import (
	"flowdesk/services/analytics"
	"flowdesk/services/billing"
	"flowdesk/services/intelligence"
	"flowdesk/services/meeting"
	"flowdesk/services/project"
	"flowdesk/services/task"
	"flowdesk/services/timer"
	"flowdesk/services/user"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	User      *UserHandler
	Task      *TaskHandler
	Project   *ProjectHandler
	Meeting   *MeetingHandler
	Timer     *TimerHandler
	AI        *AIHandler
	Analytics *AnalyticsHandler
	Billing   *BillingHandler
}

// NewHandlerBundle wires handlers to their services.
func NewHandlerBundle(
	userSvc user.UserService,
	taskSvc task.TaskService,
	projectSvc project.ProjectService,
	meetingSvc meeting.MeetingService,
	timerSvc timer.TimerService,
	aiSvc intelligence.AIService,
	analyticsSvc analytics.AnalyticsService,
	billingSvc billing.BillingService,
) *HandlerBundle {
	return &HandlerBundle{
		User:      &UserHandler{UserService: userSvc},
		Task:      &TaskHandler{TaskService: taskSvc},
		Project:   &ProjectHandler{ProjectService: projectSvc, UserService: userSvc},
		Meeting:   &MeetingHandler{MeetingService: meetingSvc},
		Timer:     &TimerHandler{TimerService: timerSvc},
		AI:        &AIHandler{AIService: aiSvc},
		Analytics: &AnalyticsHandler{AnalyticsService: analyticsSvc},
		Billing:   &BillingHandler{BillingService: billingSvc},
	}
}
