package dto

// Base64UploadRequest is the JSON alternative to a multipart upload.
// Either base64 or data may carry the payload, optionally with a
// data:image/...;base64, prefix.
type Base64UploadRequest struct {
	Base64   string `json:"base64"`
	Data     string `json:"data"`
	FileName string `json:"fileName"`
}

type UploadResponse struct {
	URL      string `json:"url"`
	Pathname string `json:"pathname"`
}
