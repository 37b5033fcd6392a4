package model

import "time"

// InterviewStatus tracks where an interview sits in the review pipeline
type InterviewStatus string

const (
	StatusPendingUpload InterviewStatus = "pending_upload"
	StatusTranscribing  InterviewStatus = "transcribing"
	StatusAnalyzing     InterviewStatus = "analyzing"
	StatusCompleted     InterviewStatus = "completed"
)

// Interview is one recorded interview owned by a user
type Interview struct {
	ID        string          `json:"id" bson:"_id,omitempty"`
	UserID    string          `json:"userId" bson:"userId"`
	Title     string          `json:"title,omitempty" bson:"title,omitempty"`
	Company   string          `json:"company,omitempty" bson:"company,omitempty"`
	Position  string          `json:"position,omitempty" bson:"position,omitempty"`
	Status    InterviewStatus `json:"status" bson:"status"`
	Date      string          `json:"date,omitempty" bson:"date,omitempty"`
	CreatedAt time.Time       `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt" bson:"updatedAt"`
}

// InterviewMeta is the lightweight attribution slice of an interview the
// insight engine consumes: labeling only, never ranking logic beyond recency
type InterviewMeta struct {
	ID      string `json:"id" bson:"_id"`
	Title   string `json:"title,omitempty" bson:"title,omitempty"`
	Company string `json:"company,omitempty" bson:"company,omitempty"`
	Date    string `json:"date,omitempty" bson:"date,omitempty"`
}

// Meta projects the interview down to its attribution fields
func (i *Interview) Meta() InterviewMeta {
	return InterviewMeta{ID: i.ID, Title: i.Title, Company: i.Company, Date: i.Date}
}

// InterviewUpdate carries the mutable fields for a PATCH; nil means unchanged
type InterviewUpdate struct {
	Title    *string          `json:"title,omitempty"`
	Company  *string          `json:"company,omitempty"`
	Position *string          `json:"position,omitempty"`
	Status   *InterviewStatus `json:"status,omitempty"`
	Date     *string          `json:"date,omitempty"`
}
