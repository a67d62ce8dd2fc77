package dto

type ExtracurricularRequest struct {
	Slug          string `json:"slug"`
	Name          string `json:"name"`
	Category      string `json:"category"`
	Description   string `json:"description"`
	Schedule      string `json:"schedule"`
	Coach         string `json:"coach"`
	ImagePublicID string `json:"image_public_id"`
	ImageURL      string `json:"image_url"`
	IsActive      *bool  `json:"is_active"`
}

type AchievementRequest struct {
	Title             string `json:"title"`
	Level             string `json:"level"`
	Year              int    `json:"year"`
	ExtracurricularID int64  `json:"extracurricular_id"`
	Description       string `json:"description"`
	ImagePublicID     string `json:"image_public_id"`
	ImageURL          string `json:"image_url"`
}
