// internal/domain/models/notification.go
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification type values.
const (
	NotifyGeneral  = "notification"
	NotifyClass    = "class"
	NotifyExam     = "exam"
	NotifyHomework = "homework"
)

// Notification is a message shown to users, optionally deep-linking to the
// document it is about via DocumentType/DocumentID.
//
// RecipientID nil means the notification is broadcast to all users.
// DocumentID is kept as a plain string: it is only ever used to build a
// link path, and older documents carry ids from other systems.
type Notification struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Title        string              `bson:"title" json:"title"`
	Body         string              `bson:"body" json:"body"`
	Type         string              `bson:"type,omitempty" json:"type,omitempty"`
	DocumentType string              `bson:"document_type,omitempty" json:"documentType,omitempty"`
	DocumentID   string              `bson:"document_id,omitempty" json:"documentId,omitempty"`
	CreatedAt    FlexTime            `bson:"created_at,omitempty" json:"createdAt,omitempty"`
	IsRead       bool                `bson:"is_read,omitempty" json:"isRead,omitempty"`
	RecipientID  *primitive.ObjectID `bson:"recipient_id,omitempty" json:"recipientId,omitempty"`
}

// Broadcast reports whether the notification targets all users.
func (n Notification) Broadcast() bool {
	return n.RecipientID == nil
}
