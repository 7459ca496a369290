// internal/domain/models/profile.go
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Profile role values. Only admins may use this dashboard; the other roles
// exist so class member lists can label people correctly.
const (
	RoleAdmin   = "admin"
	RoleTutor   = "tutor"
	RoleStudent = "student"
	RoleParent  = "parent"
)

// Profile account status values.
const (
	StatusActive   = "active"
	StatusDisabled = "disabled"
)

// RoleName maps a role value to its display label. Unknown roles fall back
// to the raw value so a mistyped document is still visible in the UI.
func RoleName(role string) string {
	switch role {
	case RoleAdmin:
		return "Administrator"
	case RoleTutor:
		return "Tutor"
	case RoleStudent:
		return "Student"
	case RoleParent:
		return "Parent"
	default:
		return role
	}
}

// Profile is a user account record.
type Profile struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	PhoneNumber  string             `bson:"phone_number,omitempty" json:"phoneNumber,omitempty"`
	Role         string             `bson:"role,omitempty" json:"role,omitempty"`
	Email        string             `bson:"email,omitempty" json:"email,omitempty"`
	PasswordHash string             `bson:"password_hash,omitempty" json:"-"`
	Status       string             `bson:"status,omitempty" json:"status,omitempty"`
	AvatarURL    string             `bson:"avatar_url,omitempty" json:"avatarUrl,omitempty"`
	Address      string             `bson:"address,omitempty" json:"address,omitempty"`
	BirthDate    FlexTime           `bson:"birth_date,omitempty" json:"birthDate,omitempty"`
	CreatedAt    FlexTime           `bson:"created_at,omitempty" json:"createdAt,omitempty"`
	UpdatedAt    FlexTime           `bson:"updated_at,omitempty" json:"updatedAt,omitempty"`
}

// Disabled reports whether the account has been disabled.
func (p Profile) Disabled() bool {
	return p.Status == StatusDisabled
}
