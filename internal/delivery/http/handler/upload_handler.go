package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"health-directory-api/internal/delivery/dto"
	"health-directory-api/internal/service"
	"health-directory-api/pkg/response"
	"health-directory-api/pkg/validator"

	"github.com/gorilla/mux"
)

// maxUploadMemory bounds how much of a multipart body is buffered in memory.
const maxUploadMemory = 16 << 20

type UploadHandler struct {
	storageService service.StorageService
	validator      *validator.CustomValidator
}

func NewUploadHandler(storageService service.StorageService, validator *validator.CustomValidator) *UploadHandler {
	return &UploadHandler{
		storageService: storageService,
		validator:      validator,
	}
}

// Upload accepts a multipart form with a "file" part plus "bucket" and
// "folder" fields. Banner callers raise the size cap through "max_size_mb".
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid multipart form", nil)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "File is required", nil)
		return
	}
	defer file.Close()

	maxSizeMB := int64(0)
	if raw := r.FormValue("max_size_mb"); raw != "" {
		maxSizeMB, err = strconv.ParseInt(raw, 10, 64)
		if err != nil || maxSizeMB < 1 || maxSizeMB > 10 {
			response.Error(w, http.StatusBadRequest, "Invalid max_size_mb value", nil)
			return
		}
	}

	result, err := h.storageService.Upload(r.Context(), service.UploadInput{
		Bucket:      r.FormValue("bucket"),
		Folder:      r.FormValue("folder"),
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		MaxSizeMB:   maxSizeMB,
		Content:     file,
	})
	if err != nil {
		switch err {
		case service.ErrNotAnImage:
			response.Error(w, http.StatusBadRequest, "File must be an image", nil)
		case service.ErrFileTooLarge:
			response.Error(w, http.StatusBadRequest, "File exceeds the maximum allowed size", nil)
		case service.ErrInvalidBucket:
			response.Error(w, http.StatusBadRequest, "Bucket is not recognized", nil)
		case service.ErrInvalidPath:
			response.Error(w, http.StatusBadRequest, "Invalid folder name", nil)
		default:
			response.InternalServerError(w, "Failed to upload file")
		}
		return
	}

	response.Success(w, http.StatusCreated, "File uploaded successfully", &dto.UploadResponse{
		URL:  result.URL,
		Path: result.Path,
	})
}

func (h *UploadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req dto.DeleteUploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.storageService.Delete(r.Context(), req.Bucket, req.Path); err != nil {
		switch err {
		case service.ErrObjectNotFound:
			response.NotFound(w, "Object not found")
		case service.ErrInvalidBucket:
			response.Error(w, http.StatusBadRequest, "Bucket is not recognized", nil)
		case service.ErrInvalidPath:
			response.Error(w, http.StatusBadRequest, "Invalid object path", nil)
		default:
			response.InternalServerError(w, "Failed to delete file")
		}
		return
	}

	response.Success(w, http.StatusOK, "File deleted successfully", nil)
}

func (h *UploadHandler) ListBuckets(w http.ResponseWriter, r *http.Request) {
	buckets := h.storageService.ListBuckets(r.Context())

	response.Success(w, http.StatusOK, "Buckets retrieved successfully", &dto.BucketListResponse{
		Buckets: buckets,
	})
}

func (h *UploadHandler) ListObjects(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bucket := vars["bucket"]

	objects, err := h.storageService.ListObjects(r.Context(), bucket)
	if err != nil {
		if err == service.ErrInvalidBucket {
			response.NotFound(w, "Bucket not found")
			return
		}
		response.InternalServerError(w, "Failed to list objects")
		return
	}

	infos := make([]dto.ObjectInfoResponse, len(objects))
	for i, obj := range objects {
		infos[i] = dto.ObjectInfoResponse{
			Path:         obj.Path,
			Size:         obj.Size,
			LastModified: obj.LastModified.Format(time.RFC3339),
		}
	}

	response.Success(w, http.StatusOK, "Objects retrieved successfully", &dto.ObjectListResponse{
		Bucket:  bucket,
		Objects: infos,
		Total:   len(infos),
	})
}
