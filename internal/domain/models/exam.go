// internal/domain/models/exam.go
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Exam/homework workflow status values. The intended flow is
// pending → submitted → graded, but any value may be written directly;
// the stores preserve whatever the document carries.
const (
	WorkPending   = "pending"
	WorkSubmitted = "submitted"
	WorkGraded    = "graded"
	WorkCancelled = "cancelled"
)

// Exam is a test attached to a class. Materials (the exam papers) and
// StudentWorks (what was handed in) are two separately-typed attachment
// lists on the same document.
type Exam struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ClassID      primitive.ObjectID `bson:"class_id" json:"classId"`
	Title        string             `bson:"title" json:"title"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	StartTime    FlexTime           `bson:"start_time,omitempty" json:"startTime,omitempty"`
	EndTime      FlexTime           `bson:"end_time,omitempty" json:"endTime,omitempty"`
	Status       string             `bson:"status,omitempty" json:"status,omitempty"`
	Score        *float64           `bson:"score,omitempty" json:"score,omitempty"`
	Feedback     string             `bson:"feedback,omitempty" json:"feedback,omitempty"`
	Materials    []Material         `bson:"materials,omitempty" json:"materials,omitempty"`
	StudentWorks []Material         `bson:"student_works,omitempty" json:"studentWorks,omitempty"`
	SubmittedAt  FlexTime           `bson:"submitted_at,omitempty" json:"submittedAt,omitempty"`
	CreatedAt    FlexTime           `bson:"created_at,omitempty" json:"createdAt,omitempty"`
}
