package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/bengkelpos/backend/api/middleware"
	"github.com/bengkelpos/backend/api/responses"
	"github.com/bengkelpos/backend/internal/activity"
	"github.com/bengkelpos/backend/pkg/config"
	"github.com/bengkelpos/backend/pkg/db/models"
	pkgerrors "github.com/bengkelpos/backend/pkg/errors"
	"github.com/bengkelpos/backend/pkg/logger"
	"github.com/bengkelpos/backend/pkg/storage"
)

var productImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// UploadProductImage stores a product image and returns its public URL.
// The content type is checked before anything touches the bucket.
func UploadProductImage(store storage.Uploader, cfg config.StorageConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "storage client unavailable"))
			return
		}

		if err := r.ParseMultipartForm(int64(cfg.MaxUploadMB) << 20); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid multipart form"))
			return
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "file is required"))
			return
		}
		defer file.Close()

		contentType := header.Header.Get("Content-Type")
		if !productImageTypes[contentType] {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "Only JPEG, PNG, and WebP images are allowed"))
			return
		}

		name := fmt.Sprintf("%d.webp", time.Now().UnixMilli())
		url, err := store.Upload(r.Context(), cfg.ProductImageBucket, name, contentType, file, true)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"url": url, "fileName": name})
	}
}

// UploadReceipt stores a PDF receipt and returns its public URL.
func UploadReceipt(store storage.Uploader, cfg config.StorageConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "storage client unavailable"))
			return
		}

		if err := r.ParseMultipartForm(int64(cfg.MaxUploadMB) << 20); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid multipart form"))
			return
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "file is required"))
			return
		}
		defer file.Close()

		contentType := header.Header.Get("Content-Type")
		if contentType != "application/pdf" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "Only PDF files are allowed"))
			return
		}

		name := fmt.Sprintf("receipt_%d.pdf", time.Now().UnixMilli())
		url, err := store.Upload(r.Context(), cfg.ReceiptBucket, name, contentType, file, true)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"url": url, "fileName": name})
	}
}

// StorageURL resolves the public URL of a stored object.
func StorageURL(store storage.Uploader, cfg config.StorageConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "storage client unavailable"))
			return
		}

		fileName := strings.TrimSpace(r.URL.Query().Get("fileName"))
		if fileName == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "fileName is required"))
			return
		}
		bucket := strings.TrimSpace(r.URL.Query().Get("bucket"))
		if bucket == "" {
			bucket = cfg.ProductImageBucket
		}

		responses.WriteSuccess(w, map[string]string{"url": store.PublicURL(bucket, fileName)})
	}
}

// StorageDelete removes a stored object and records the action.
func StorageDelete(store storage.Uploader, cfg config.StorageConfig, recorder activity.Logger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "storage client unavailable"))
			return
		}

		fileName := strings.TrimSpace(chi.URLParam(r, "fileName"))
		if fileName == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "fileName is required"))
			return
		}
		bucket := strings.TrimSpace(r.URL.Query().Get("bucket"))
		if bucket == "" {
			bucket = cfg.ProductImageBucket
		}

		if err := store.Remove(r.Context(), bucket, fileName); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if recorder != nil {
			recorder.Log(r.Context(), middleware.UsernameFromContext(r.Context()),
				models.ActionDeleteFile, fmt.Sprintf("Deleted file %s from %s", fileName, bucket))
		}

		responses.WriteMessage(w, "File deleted successfully")
	}
}
