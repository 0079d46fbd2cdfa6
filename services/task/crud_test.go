package task

import (
	"fmt"
	"testing"
	"time"

	"flowdesk/models"
)

type fakeTaskRepo struct {
	tasks map[string]*models.Task
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: make(map[string]*models.Task)}
}

func (r *fakeTaskRepo) GetByID(companyID, id string) (*models.Task, error) {
	t, ok := r.tasks[id]
	if !ok || t.CompanyID != companyID {
		return nil, fmt.Errorf("task %s not found", id)
	}
	copied := *t
	return &copied, nil
}

func (r *fakeTaskRepo) List(companyID, userID string, filter models.TaskFilter) ([]models.Task, error) {
	var out []models.Task
	for _, t := range r.tasks {
		if t.CompanyID == companyID && t.UserID == userID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *fakeTaskRepo) Create(t *models.Task) error {
	r.tasks[t.ID] = t
	return nil
}

func (r *fakeTaskRepo) Update(t *models.Task) error {
	if _, ok := r.tasks[t.ID]; !ok {
		return fmt.Errorf("task %s not found", t.ID)
	}
	r.tasks[t.ID] = t
	return nil
}

func (r *fakeTaskRepo) Delete(companyID, id string) error {
	delete(r.tasks, id)
	return nil
}

func (r *fakeTaskRepo) CountByProject(companyID, projectID string) (int64, error) {
	var n int64
	for _, t := range r.tasks {
		if t.CompanyID == companyID && t.ProjectID == projectID && t.Status != models.TaskStatusDone {
			n++
		}
	}
	return n, nil
}

type fakeEventRepo struct {
	events []models.Event
}

func (r *fakeEventRepo) Record(e *models.Event) error {
	r.events = append(r.events, *e)
	return nil
}

func (r *fakeEventRepo) ListByCompany(companyID string, start, end time.Time) ([]models.Event, error) {
	return r.events, nil
}

type fakeScheduler struct {
	scheduled []models.Task
}

func (s *fakeScheduler) ScheduleDueReminder(t models.Task) error {
	s.scheduled = append(s.scheduled, t)
	return nil
}

func newTestService() (*DefaultTaskService, *fakeTaskRepo, *fakeEventRepo, *fakeScheduler) {
	repo := newFakeTaskRepo()
	events := &fakeEventRepo{}
	scheduler := &fakeScheduler{}
	return &DefaultTaskService{Repo: repo, Events: events, Reminders: scheduler}, repo, events, scheduler
}

func TestCreateTask_Defaults(t *testing.T) {
	svc, _, events, _ := newTestService()

	created, err := svc.CreateTask(&models.Task{
		CompanyID: "c1",
		UserID:    "u1",
		Title:     "write report",
	})
	if err != nil {
		t.Fatalf("CreateTask returned error: %v", err)
	}
	if created.ID == "" {
		t.Error("expected a generated task ID")
	}
	if created.Status != models.TaskStatusTodo {
		t.Errorf("expected default status %q, got %q", models.TaskStatusTodo, created.Status)
	}
	if created.Priority != models.TaskPriorityMedium {
		t.Errorf("expected default priority %q, got %q", models.TaskPriorityMedium, created.Priority)
	}
	if len(events.events) != 1 || events.events[0].Type != "task.created" {
		t.Errorf("expected one task.created event, got %v", events.events)
	}
}

func TestCreateTask_RequiresTitleAndScope(t *testing.T) {
	svc, _, _, _ := newTestService()

	if _, err := svc.CreateTask(&models.Task{CompanyID: "c1", UserID: "u1"}); err == nil {
		t.Error("expected error for missing title")
	}
	if _, err := svc.CreateTask(&models.Task{Title: "orphan"}); err == nil {
		t.Error("expected error for missing company/user scope")
	}
}

func TestCreateTask_SchedulesReminderForFutureDueDate(t *testing.T) {
	svc, _, _, scheduler := newTestService()

	due := time.Now().Add(2 * time.Hour)
	if _, err := svc.CreateTask(&models.Task{
		CompanyID: "c1", UserID: "u1", Title: "prep demo", DueDate: &due,
	}); err != nil {
		t.Fatalf("CreateTask returned error: %v", err)
	}
	if len(scheduler.scheduled) != 1 {
		t.Fatalf("expected one scheduled reminder, got %d", len(scheduler.scheduled))
	}

	past := time.Now().Add(-time.Hour)
	if _, err := svc.CreateTask(&models.Task{
		CompanyID: "c1", UserID: "u1", Title: "overdue already", DueDate: &past,
	}); err != nil {
		t.Fatalf("CreateTask returned error: %v", err)
	}
	if len(scheduler.scheduled) != 1 {
		t.Errorf("past due dates should not schedule reminders, got %d", len(scheduler.scheduled))
	}
}

func TestCompleteTask_RecordsLateConflict(t *testing.T) {
	svc, _, events, _ := newTestService()

	past := time.Now().Add(-time.Hour)
	created, err := svc.CreateTask(&models.Task{
		CompanyID: "c1", UserID: "u1", Title: "late one", DueDate: &past,
	})
	if err != nil {
		t.Fatalf("CreateTask returned error: %v", err)
	}

	if err := svc.CompleteTask("c1", created.ID); err != nil {
		t.Fatalf("CompleteTask returned error: %v", err)
	}

	got, err := svc.GetTask("c1", created.ID)
	if err != nil {
		t.Fatalf("GetTask returned error: %v", err)
	}
	if got.Status != models.TaskStatusDone {
		t.Errorf("expected status done, got %q", got.Status)
	}
	if got.CompletedAt == nil {
		t.Error("expected CompletedAt to be stamped")
	}

	last := events.events[len(events.events)-1]
	if last.Type != "task.completed" || last.Conflict != "completed_late" {
		t.Errorf("expected task.completed with completed_late conflict, got %+v", last)
	}
}

func TestCompleteTask_OnTimeHasNoConflict(t *testing.T) {
	svc, _, events, _ := newTestService()

	due := time.Now().Add(24 * time.Hour)
	created, err := svc.CreateTask(&models.Task{
		CompanyID: "c1", UserID: "u1", Title: "on time", DueDate: &due,
	})
	if err != nil {
		t.Fatalf("CreateTask returned error: %v", err)
	}

	if err := svc.CompleteTask("c1", created.ID); err != nil {
		t.Fatalf("CompleteTask returned error: %v", err)
	}

	last := events.events[len(events.events)-1]
	if last.Conflict != "" {
		t.Errorf("expected no conflict for on-time completion, got %q", last.Conflict)
	}
}
