// internal/domain/models/class.go
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ClassSchedule is one weekly slot on a class timetable.
// Day is an index 0–6 (0 = Monday … 6 = Sunday).
type ClassSchedule struct {
	Day       int    `bson:"day" json:"day"`
	StartTime string `bson:"start_time" json:"startTime"`
	EndTime   string `bson:"end_time" json:"endTime"`
}

// Class represents one tutoring class.
//
// Members holds profile ids with no teacher/student distinction at this
// level; a member's role is only known after resolving their profile.
// Nothing enforces that the referenced profiles still exist — a dangling
// member id is rendered with placeholder values, never treated as an error.
type Class struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name        string               `bson:"name" json:"name"`
	Description string               `bson:"description,omitempty" json:"description,omitempty"`
	Tuition     int64                `bson:"tuition,omitempty" json:"tuition,omitempty"`
	Members     []primitive.ObjectID `bson:"members,omitempty" json:"members,omitempty"`
	Schedules   []ClassSchedule      `bson:"schedules,omitempty" json:"schedules,omitempty"`
	CreatedAt   FlexTime             `bson:"created_at,omitempty" json:"createdAt,omitempty"`
}
