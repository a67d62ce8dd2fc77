package dto

type MediaDestroyRequest struct {
	PublicID string `json:"publicId"`
}

// MediaConfigResponse tells upload clients which cloud and unsigned
// preset to target when bypassing the proxy.
type MediaConfigResponse struct {
	CloudName    string `json:"cloud_name"`
	UploadPreset string `json:"upload_preset"`
	Folder       string `json:"folder"`
}
