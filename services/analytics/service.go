package analytics

import (
	"time"

	eventRepo "flowdesk/database/repository/event"
	"flowdesk/models"
	"flowdesk/utils"

	"go.uber.org/zap"
)

// AnalyticsService provides usage statistics, conflict reports, and dashboard
// summaries built from registered aggregators.
type AnalyticsService interface {
	RegisterAggregator(agg Aggregator)
	GetUsageStats(companyID string, start, end time.Time) (map[string]int, error)
	GetConflictReport(companyID string, start, end time.Time) (map[string]int, error)
	GetDashboardSummary(companyID string, start, end time.Time) (*models.DashboardSummary, error)
}

// DefaultAnalyticsService is the concrete implementation.
type DefaultAnalyticsService struct {
	Events      eventRepo.EventRepository
	calculator  MetricsCalculator
	aggregators []Aggregator
}

// NewDefaultAnalyticsService builds the service with the standard aggregators
// registered.
func NewDefaultAnalyticsService(events eventRepo.EventRepository) *DefaultAnalyticsService {
	svc := &DefaultAnalyticsService{Events: events}
	svc.RegisterAggregator(&EventAggregator{Events: events})
	svc.RegisterAggregator(&UserAggregator{Events: events})
	return svc
}

// RegisterAggregator adds an aggregator to the dashboard summary.
func (s *DefaultAnalyticsService) RegisterAggregator(agg Aggregator) {
	s.aggregators = append(s.aggregators, agg)
}

// GetUsageStats returns event counts by type for the window.
func (s *DefaultAnalyticsService) GetUsageStats(companyID string, start, end time.Time) (map[string]int, error) {
	events, err := s.Events.ListByCompany(companyID, start, end)
	if err != nil {
		return nil, err
	}
	return s.calculator.CalculateUsage(events), nil
}

// GetConflictReport returns conflict counts for the window.
func (s *DefaultAnalyticsService) GetConflictReport(companyID string, start, end time.Time) (map[string]int, error) {
	events, err := s.Events.ListByCompany(companyID, start, end)
	if err != nil {
		return nil, err
	}
	return s.calculator.CalculateConflicts(events), nil
}

// GetDashboardSummary gathers metrics from every registered aggregator. A
// failing aggregator is logged and skipped so one bad source does not blank
// the whole dashboard.
func (s *DefaultAnalyticsService) GetDashboardSummary(companyID string, start, end time.Time) (*models.DashboardSummary, error) {
	summary := &models.DashboardSummary{Metrics: make(map[string]map[string]int)}
	for _, agg := range s.aggregators {
		data, err := agg.Collect(companyID, start, end)
		if err != nil {
			utils.GetLogger().Warn("aggregator failed",
				zap.String("aggregator", agg.Name()), zap.Error(err))
			continue
		}
		summary.Metrics[agg.Name()] = data
	}
	return summary, nil
}
