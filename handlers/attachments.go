package handlers

import (
	"io"
	"log"
	"net/http"
	"path"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/sitetools/ops-core/responses"
	"github.com/sitetools/ops-core/storages"
)

const maxUploadBytes = 20 << 20 // 20 MiB

func bucketFromPath(r *http.Request) (string, bool) {
	bucket := r.PathValue("bucket")
	switch bucket {
	case BucketLogos, BucketDocuments:
		return bucket, true
	}
	return "", false
}

// ListAttachments - objects in one logical bucket.
func (h *Set) ListAttachments(w http.ResponseWriter, r *http.Request) {
	bucket, ok := bucketFromPath(r)
	if !ok {
		responses.WriteSimpleErrorJSON(w, http.StatusNotFound, "unknown bucket")
		return
	}
	refs, err := h.Storage.ListObjects(r.Context(), bucket)
	if err != nil {
		log.Printf("[ERROR] attachment list: %v", err)
		responses.WriteSimpleErrorJSON(w, http.StatusInternalServerError, "failed to list attachments")
		return
	}
	responses.EncodeWriteJSON(w, http.StatusOK, refs)
}

// UploadAttachment stores the request body under a fresh object name.
// The original filename only contributes its extension.
func (h *Set) UploadAttachment(w http.ResponseWriter, r *http.Request) {
	bucket, ok := bucketFromPath(r)
	if !ok {
		responses.WriteSimpleErrorJSON(w, http.StatusNotFound, "unknown bucket")
		return
	}
	data, err := io.ReadAll(io.LimitReader(r.Body, maxUploadBytes+1))
	if err != nil {
		responses.WriteSimpleErrorJSON(w, http.StatusBadRequest, "failed to read upload")
		return
	}
	if len(data) > maxUploadBytes {
		responses.WriteSimpleErrorJSON(w, http.StatusRequestEntityTooLarge, "upload too large")
		return
	}
	objectName := uuid.NewString() + path.Ext(r.URL.Query().Get("filename"))
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	if err = h.Storage.Upload(r.Context(), bucket, objectName, data, contentType); err != nil {
		log.Printf("[ERROR] attachment upload: %v", err)
		responses.WriteSimpleErrorJSON(w, http.StatusInternalServerError, "upload failed, please retry")
		return
	}
	responses.EncodeWriteJSON(w, http.StatusCreated, map[string]string{"object": objectName})
}

func (h *Set) RemoveAttachment(w http.ResponseWriter, r *http.Request) {
	bucket, ok := bucketFromPath(r)
	if !ok {
		responses.WriteSimpleErrorJSON(w, http.StatusNotFound, "unknown bucket")
		return
	}
	objectName := r.PathValue("object")
	if objectName == "" {
		responses.WriteSimpleErrorJSON(w, http.StatusBadRequest, "object name required")
		return
	}
	if err := h.Storage.Remove(r.Context(), bucket, objectName); err != nil {
		log.Printf("[ERROR] attachment remove: %v", err)
		responses.WriteSimpleErrorJSON(w, http.StatusInternalServerError, "delete failed, please retry")
		return
	}
	responses.EncodeWriteJSON(w, http.StatusOK, responses.Message{Type: "ok", Message: "removed"})
}

// SignAttachmentURL returns a time-limited download URL. Optional `ttl`
// query param in seconds, default storages.DefaultSignTTL.
func (h *Set) SignAttachmentURL(w http.ResponseWriter, r *http.Request) {
	bucket, ok := bucketFromPath(r)
	if !ok {
		responses.WriteSimpleErrorJSON(w, http.StatusNotFound, "unknown bucket")
		return
	}
	objectName := r.PathValue("object")
	if objectName == "" {
		responses.WriteSimpleErrorJSON(w, http.StatusBadRequest, "object name required")
		return
	}
	ttl := storages.DefaultSignTTL
	if rawTTL := r.URL.Query().Get("ttl"); rawTTL != "" {
		seconds, err := strconv.Atoi(rawTTL)
		if err != nil || seconds <= 0 {
			responses.WriteSimpleErrorJSON(w, http.StatusBadRequest, "invalid ttl")
			return
		}
		ttl = time.Duration(seconds) * time.Second
	}
	url, err := h.Storage.GetSignedURL(r.Context(), bucket, objectName, ttl)
	if err != nil {
		log.Printf("[ERROR] attachment sign: %v", err)
		responses.WriteSimpleErrorJSON(w, http.StatusInternalServerError, "failed to sign URL, please retry")
		return
	}
	responses.EncodeWriteJSON(w, http.StatusOK, map[string]string{"url": url})
}
