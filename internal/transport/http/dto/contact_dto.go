package dto

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

type ContactSubmitResponse struct {
	ID int64 `json:"id"`
	OK bool  `json:"ok"`
}
