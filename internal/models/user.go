package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is user role
type Role string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

// IsAdmin reports whether the role grants administrative capabilities.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// User is user entity. Email acts as the natural key, the stored
// object id is secondary.
type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email       string             `bson:"email" json:"email"`
	DisplayName string             `bson:"displayName,omitempty" json:"displayName,omitempty"`
	Role        Role               `bson:"role,omitempty" json:"role,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
