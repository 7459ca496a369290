// internal/domain/models/homework.go
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Homework is an assignment attached to a class and (usually) the lesson it
// was given in. Neither reference is enforced at write time; a dangling
// class or lesson id renders as "not found" on the detail pages.
type Homework struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ClassID      primitive.ObjectID `bson:"class_id" json:"classId"`
	LessonID     primitive.ObjectID `bson:"lesson_id,omitempty" json:"lessonId,omitempty"`
	Title        string             `bson:"title" json:"title"`
	DueDate      FlexTime           `bson:"due_date,omitempty" json:"dueDate,omitempty"`
	Status       string             `bson:"status,omitempty" json:"status,omitempty"`
	Score        *float64           `bson:"score,omitempty" json:"score,omitempty"`
	Feedback     string             `bson:"feedback,omitempty" json:"feedback,omitempty"`
	Materials    []Material         `bson:"materials,omitempty" json:"materials,omitempty"`
	StudentWorks []Material         `bson:"student_works,omitempty" json:"studentWorks,omitempty"`
	SubmittedAt  FlexTime           `bson:"submitted_at,omitempty" json:"submittedAt,omitempty"`
	CreatedAt    FlexTime           `bson:"created_at,omitempty" json:"createdAt,omitempty"`
}
