// internal/domain/models/lesson.go
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Lesson status values. Transitions are not enforced anywhere; documents
// may carry any of these (or nothing, which renders as scheduled).
const (
	LessonScheduled = "scheduled"
	LessonCompleted = "completed"
	LessonCancelled = "cancelled"
)

// Lesson is a single class session.
//
// HomeworkIDs reference homework documents; ids whose documents have been
// deleted are dropped at resolution time rather than surfaced as errors.
type Lesson struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	ClassID     primitive.ObjectID   `bson:"class_id" json:"classId"`
	StartTime   FlexTime             `bson:"start_time,omitempty" json:"startTime,omitempty"`
	EndTime     FlexTime             `bson:"end_time,omitempty" json:"endTime,omitempty"`
	Content     string               `bson:"content,omitempty" json:"content,omitempty"`
	Note        string               `bson:"note,omitempty" json:"note,omitempty"`
	HomeworkIDs []primitive.ObjectID `bson:"homework_ids,omitempty" json:"homeworkIds,omitempty"`
	Status      string               `bson:"status,omitempty" json:"status,omitempty"`
	Materials   []Material           `bson:"materials,omitempty" json:"materials,omitempty"`
	CreatedAt   FlexTime             `bson:"created_at,omitempty" json:"createdAt,omitempty"`
}
