package models

import "time"

// Project groups tasks inside a company workspace.
type Project struct {
	ID        string    `bson:"id" json:"id"`
	CompanyID string    `bson:"companyId" json:"companyId"`
	OwnerID   string    `bson:"ownerId" json:"ownerId"`
	Name      string    `bson:"name" json:"name"`
	Color     string    `bson:"color,omitempty" json:"color,omitempty"`
	Archived  bool      `bson:"archived" json:"archived"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
