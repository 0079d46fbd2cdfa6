package models

// Plan identifies the subscription tier of a user.
type Plan string

const (
	PlanFree Plan = "free"
	PlanPro  Plan = "pro"
)

// PlanLimits are the per-plan usage ceilings enforced by the gating
// middleware and the AI service.
type PlanLimits struct {
	MaxProjects      int `json:"maxProjects"`
	MaxAICallsPerDay int `json:"maxAiCallsPerDay"`
}

// SubscriptionStatus reports a user's current billing state.
type SubscriptionStatus struct {
	Plan           Plan   `json:"plan"`
	SubscriptionID string `json:"subscriptionId,omitempty"`
}

// LimitsFor returns the limits of a plan. Zero means unlimited.
func LimitsFor(p Plan) PlanLimits {
	switch p {
	case PlanPro:
		return PlanLimits{MaxProjects: 0, MaxAICallsPerDay: 0}
	default:
		return PlanLimits{MaxProjects: 3, MaxAICallsPerDay: 10}
	}
}
