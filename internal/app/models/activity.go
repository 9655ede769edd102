package models

import (
	"time"

	"storyai-service/internal/pkg/constvars"
	"storyai-service/internal/pkg/dto/responses"

	"go.mongodb.org/mongo-driver/bson"
)

// Activity is one routine entry in a user's weekly timetable. StartTime and
// EndTime are "HH:MM" clock strings; an end before the start means the
// activity wraps past midnight.
type Activity struct {
	ID          string    `json:"id,omitempty" bson:"_id,omitempty"`
	UserID      string    `json:"user_id" bson:"user_id"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Category    string    `json:"category" bson:"category"`
	Days        []string  `json:"days" bson:"days"`
	StartTime   string    `json:"start_time" bson:"start_time"`
	EndTime     string    `json:"end_time" bson:"end_time"`
	Completed   bool      `json:"completed" bson:"completed"`
	Derived     bool      `json:"derived" bson:"derived"`
	CreatedAt   time.Time `json:"created_at,omitempty" bson:"created_at,omitempty"`
	UpdatedAt   time.Time `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}

// IsExempt reports whether the activity skips conflict checking entirely.
func (a Activity) IsExempt() bool {
	return a.Category == constvars.CategorySleep || a.Category == constvars.CategoryRest
}

func (a Activity) ConvertToBsonM() bson.M {
	return bson.M{
		"title":       a.Title,
		"description": a.Description,
		"category":    a.Category,
		"days":        a.Days,
		"start_time":  a.StartTime,
		"end_time":    a.EndTime,
		"completed":   a.Completed,
		"derived":     a.Derived,
		"updated_at":  a.UpdatedAt,
	}
}

func (a Activity) ConvertIntoResponse() responses.Activity {
	return responses.Activity{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		Category:    a.Category,
		Days:        a.Days,
		StartTime:   a.StartTime,
		EndTime:     a.EndTime,
		Completed:   a.Completed,
		Derived:     a.Derived,
	}
}
