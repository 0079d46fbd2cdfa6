package user

import (
	"fmt"
	"time"

	"flowdesk/models"
	"flowdesk/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const authTokenTTL = 72 * time.Hour

// Register creates a new account on the free plan. A fresh company workspace
// is created when no companyId is supplied.
func (s *DefaultUserService) Register(data models.UserRegistrationData) (*models.AuthResponse, error) {
	if data.Email == "" || data.Password == "" || data.Name == "" {
		return nil, fmt.Errorf("all fields are required")
	}

	existing, err := s.Repo.GetByEmail(data.Email)
	if err != nil {
		utils.GetLogger().Error("Register: failed to check for existing user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, &DuplicateEmailError{Email: data.Email}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	companyID := data.CompanyID
	if companyID == "" {
		companyID = uuid.NewString()
	}

	usr := &models.User{
		ID:           uuid.NewString(),
		CompanyID:    companyID,
		Email:        data.Email,
		Name:         data.Name,
		PasswordHash: string(hash),
		Plan:         models.PlanFree,
	}
	if err := s.Repo.Create(usr); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.issueToken(usr)
}

// Authenticate verifies credentials and issues a fresh JWT. The token's hash
// is stored so it can be revoked server-side.
func (s *DefaultUserService) Authenticate(email, password string) (*models.AuthResponse, error) {
	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("authentication failed: %w", err)
	}
	if usr == nil {
		return nil, &InvalidCredentialsError{}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return nil, &InvalidCredentialsError{}
	}

	return s.issueToken(usr)
}

func (s *DefaultUserService) issueToken(usr *models.User) (*models.AuthResponse, error) {
	token, err := utils.GenerateToken(usr.ID, usr.CompanyID, authTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	if err := s.Repo.UpdateSetDocument(usr.ID, bson.M{"tokenHash": utils.HashToken(token)}); err != nil {
		return nil, fmt.Errorf("failed to store token hash: %w", err)
	}

	sanitized := *usr
	sanitized.PasswordHash = ""
	sanitized.TokenHash = ""
	return &models.AuthResponse{Token: token, User: sanitized}, nil
}

// RevokeAuthToken clears the stored token hash, invalidating outstanding tokens.
func (s *DefaultUserService) RevokeAuthToken(id string) error {
	if err := s.Repo.UpdateSetDocument(id, bson.M{"tokenHash": ""}); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// VerifyTokenHash checks a presented token against the stored hash.
func (s *DefaultUserService) VerifyTokenHash(id, token string) (bool, error) {
	usr, err := s.Repo.GetByID(id)
	if err != nil {
		return false, err
	}
	return usr.TokenHash != "" && usr.TokenHash == utils.HashToken(token), nil
}
