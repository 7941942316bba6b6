package handlers

import (
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/clinicstack/clinic-manager/internal/audit"
	"github.com/clinicstack/clinic-manager/internal/httperr"
	"github.com/clinicstack/clinic-manager/internal/httpresp"
	"github.com/clinicstack/clinic-manager/internal/infra/repository"
	"github.com/clinicstack/clinic-manager/internal/middleware"
	"github.com/clinicstack/clinic-manager/internal/models"
	"github.com/clinicstack/clinic-manager/internal/storage"
)

const maxUploadBytes = 20 << 20 // 20 MiB

// ======================================================
// HANDLER
// ======================================================

type FileHandler struct {
	store *repository.GormStore
	blobs *storage.BlobStore
	audit *audit.Dispatcher
}

func NewFileHandler(
	store *repository.GormStore,
	blobs *storage.BlobStore,
	auditDispatcher *audit.Dispatcher,
) *FileHandler {
	return &FileHandler{
		store: store,
		blobs: blobs,
		audit: auditDispatcher,
	}
}

// ======================================================
// UPLOAD
// ======================================================

// Upload stores the blob first and creates the FileRecord only after the
// upload succeeded; a failed upload leaves no record behind.
func (h *FileHandler) Upload(c *gin.Context) {
	scope := middleware.Scope(c)
	patientID := c.Param("id")

	if _, err := h.store.GetPatient(c.Request.Context(), scope, patientID); err != nil {
		httperr.NotFound(c, "patient_not_found", "Patient not found.")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "file_required", "A file is required.")
		return
	}
	if fileHeader.Size > maxUploadBytes {
		httperr.BadRequest(c, "file_too_large", "File exceeds the upload limit.")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_file", "Could not read the file.")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		httperr.Internal(c, "failed_to_read_file", "Could not read the file.")
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	path := storage.ReportPath(patientID, fileHeader.Filename, time.Now())

	if err := h.blobs.Put(c.Request.Context(), path, data, contentType); err != nil {
		httperr.Internal(c, "failed_to_upload_file", "Could not upload the file.")
		return
	}

	record := &models.FileRecord{
		PatientID: patientID,
		Type:      fileType(contentType),
		Name:      fileHeader.Filename,
		S3Path:    path,
		Meta: map[string]string{
			"content_type": contentType,
		},
	}

	if visitID := c.PostForm("visit_id"); visitID != "" {
		record.VisitID = &visitID
	}

	if err := h.store.CreateFileRecord(c.Request.Context(), scope, record); err != nil {
		httperr.Internal(c, "failed_to_save_file_record", "Could not save the file record.")
		return
	}

	h.audit.Dispatch(audit.Event{
		WorkspaceID: scope.WorkspaceID,
		UserID:      scope.UserID,
		Action:      "file_uploaded",
		Entity:      "file_record",
		EntityID:    record.ID,
	})

	c.JSON(http.StatusCreated, record)
}

func fileType(contentType string) string {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return "IMAGE"
	case contentType == "application/pdf":
		return "PDF"
	default:
		return "OTHER"
	}
}

// ======================================================
// LIST BY PATIENT
// ======================================================

func (h *FileHandler) ListByPatient(c *gin.Context) {
	scope := middleware.Scope(c)

	files, err := h.store.ListFilesByPatient(c.Request.Context(), scope, c.Param("id"))
	if err != nil {
		httperr.Internal(c, "failed_to_list_files", "Could not list files.")
		return
	}

	httpresp.List(c, files)
}

// ======================================================
// SIGNED URL
// ======================================================

func (h *FileHandler) SignedURL(c *gin.Context) {
	scope := middleware.Scope(c)

	record, err := h.store.GetFileRecord(c.Request.Context(), scope, c.Param("id"))
	if err != nil {
		httperr.NotFound(c, "file_not_found", "File not found.")
		return
	}

	url, err := h.blobs.SignedURL(c.Request.Context(), record.S3Path)
	if err != nil {
		httperr.Internal(c, "failed_to_sign_url", "Could not sign the file url.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
