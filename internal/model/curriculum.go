package model

import "time"

// Curriculum is one saved course curriculum.
type Curriculum struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Subject   string    `json:"subject"`
	Audience  string    `json:"audience"`
	Duration  string    `json:"duration"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateCurriculumRequest is the payload for saving a generated curriculum.
// Fields are pointers so that an absent field fails "required" while an
// empty string is still accepted.
type CreateCurriculumRequest struct {
	Title    *string `json:"title" binding:"required"`
	Subject  *string `json:"subject" binding:"required"`
	Audience *string `json:"audience" binding:"required"`
	Duration *string `json:"duration" binding:"required"`
	Content  *string `json:"content" binding:"required"`
}

// ToCurriculum converts a bound request into an unsaved Curriculum.
func (r *CreateCurriculumRequest) ToCurriculum() *Curriculum {
	return &Curriculum{
		Title:    deref(r.Title),
		Subject:  deref(r.Subject),
		Audience: deref(r.Audience),
		Duration: deref(r.Duration),
		Content:  deref(r.Content),
	}
}

// CreateCurriculumResponse is returned after a curriculum is saved.
type CreateCurriculumResponse struct {
	ID int64 `json:"id"`
}

// DeleteCurriculumResponse acknowledges a delete, including deletes of unknown ids.
type DeleteCurriculumResponse struct {
	Success bool `json:"success"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
