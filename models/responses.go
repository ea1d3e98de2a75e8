package models

// MessageResponse is the body of every error response and of operations
// that only report an outcome.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}

// ProfileResponse is returned by a successful profile update.
type ProfileResponse struct {
	Message string     `json:"message"`
	User    PublicUser `json:"user"`
}

// UploadResponse is returned by the single-file dataset upload.
type UploadResponse struct {
	Message string     `json:"message"`
	File    StoredFile `json:"file"`
}

// BatchUploadResponse is returned by the multi-file dataset upload.
type BatchUploadResponse struct {
	Message string       `json:"message"`
	Files   []StoredFile `json:"files"`
	Length  int          `json:"length"`
}
