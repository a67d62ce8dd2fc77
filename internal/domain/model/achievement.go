package model

import "time"

type Achievement struct {
	ID                int64     `json:"id"`
	Title             string    `json:"title"`
	Level             string    `json:"level"`
	Year              int       `json:"year"`
	ExtracurricularID int64     `json:"extracurricular_id"`
	Description       string    `json:"description"`
	ImagePublicID     string    `json:"image_public_id,omitempty"`
	ImageURL          string    `json:"image_url,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}
