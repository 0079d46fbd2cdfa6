package user

import (
	"flowdesk/models"

	userRepo "flowdesk/database/repository/user"
)

// UserService defines account management and authentication operations.
type UserService interface {
	Register(data models.UserRegistrationData) (*models.AuthResponse, error)
	Authenticate(email, password string) (*models.AuthResponse, error)
	GetUserByID(id string) (*models.User, error)
	UpdateWorkingHours(id string, wh models.WorkingHours) error
	UpdateFCMToken(id, token string) error
	Delete(id string) error
	RevokeAuthToken(id string) error
	// VerifyTokenHash checks a presented token against the stored hash.
	VerifyTokenHash(id, token string) (bool, error)
	SetPlan(id string, plan models.Plan, stripeID, subID string) error
}

// DefaultUserService is the concrete implementation backed by the user repo.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
