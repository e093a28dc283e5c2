package dto

type UploadResponse struct {
	URL  string `json:"url"`
	Path string `json:"path"`
}

type DeleteUploadRequest struct {
	Bucket string `json:"bucket" validate:"required"`
	Path   string `json:"path" validate:"required"`
}

type BucketListResponse struct {
	Buckets []string `json:"buckets"`
}

type ObjectInfoResponse struct {
	Path         string `json:"path"`
	Size         int64  `json:"size"`
	LastModified string `json:"last_modified"`
}

type ObjectListResponse struct {
	Bucket  string               `json:"bucket"`
	Objects []ObjectInfoResponse `json:"objects"`
	Total   int                  `json:"total"`
}
