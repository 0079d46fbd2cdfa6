package models

import "time"

// User is a member of a company workspace.
type User struct {
	ID           string       `bson:"id" json:"id"`
	CompanyID    string       `bson:"companyId" json:"companyId"`
	Email        string       `bson:"email" json:"email"`
	Name         string       `bson:"name" json:"name"`
	PasswordHash string       `bson:"passwordHash" json:"-"`
	TokenHash    string       `bson:"tokenHash,omitempty" json:"-"`
	Plan         Plan         `bson:"plan" json:"plan"`
	StripeID     string       `bson:"stripeId,omitempty" json:"-"`
	SubID        string       `bson:"subId,omitempty" json:"-"`
	WorkingHours WorkingHours `bson:"workingHours,omitempty" json:"workingHours,omitempty"`
	FCMTokens    []string     `bson:"fcmTokens,omitempty" json:"-"`
	CreatedAt    time.Time    `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time    `bson:"updatedAt" json:"updatedAt"`
}

// UserRegistrationData is the payload accepted at registration.
type UserRegistrationData struct {
	Email     string `json:"email" binding:"required,email"`
	Name      string `json:"name" binding:"required"`
	Password  string `json:"password" binding:"required,min=8"`
	CompanyID string `json:"companyId"`
}

// AuthResponse is returned on successful authentication.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
