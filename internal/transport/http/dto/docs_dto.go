package dto

type DocumentDownloadResponse struct {
	URL string `json:"url"`
}
