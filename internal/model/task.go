package model

import "time"

// Task is a dated to-do item (assignment, revision, errand) created from a
// chat message.
type Task struct {
	ID       string
	UserID   string
	Title    string
	Type     EventType
	DueAt    time.Time
	CourseID string // optional, resolved from a course phrase

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Schedule is a calendar event with a concrete start (and optional end) time.
type Schedule struct {
	ID           string
	UserID       string
	Title        string
	Type         EventType
	StartAt      time.Time
	EndAt        *time.Time
	Location     string
	CourseID     string
	CalendarLink string // external calendar mirror, empty when not mirrored

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Course is a study course a user can reference by name in chat.
type Course struct {
	ID     string
	UserID string
	Name   string
	Code   string
}
