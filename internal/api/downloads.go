package api

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"

	"fullwoodjoz/visitus/internal/dataset"
	"fullwoodjoz/visitus/internal/services"
)

// ListFiles handles GET /api/v1/admin/files
func (h *Handlers) ListFiles() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		files, err := dataset.ListFiles(h.deps.Cfg.DataDir)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Could not list data files")
			return
		}
		if files == nil {
			files = []string{}
		}
		respondWithSuccess(w, http.StatusOK, &files)
	}
}

// DownloadFile handles GET /api/v1/admin/files/{name}: one tenant file as a
// raw CSV blob.
func (h *Handlers) DownloadFile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		if name != filepath.Base(name) || strings.HasPrefix(name, ".") {
			respondWithError(w, http.StatusBadRequest, "Invalid file name")
			return
		}

		path := filepath.Join(h.deps.Cfg.DataDir, name)
		if _, err := os.Stat(path); err != nil {
			respondWithError(w, http.StatusNotFound, "No such data file")
			return
		}

		h.deps.Metrics.DatasetDownloadsTotal.WithLabelValues("csv").Inc()

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
		http.ServeFile(w, r, path)
	}
}

// ExportXLSXHandler handles GET /api/v1/admin/export/xlsx: the merged
// dataset as a workbook.
func (h *Handlers) ExportXLSXHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, err := h.deps.Services.Datasets.Merged()
		if err != nil {
			h.respondDatasetError(w, err)
			return
		}

		blob, err := services.ExportXLSX(t)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Could not build workbook")
			return
		}

		h.deps.Metrics.DatasetDownloadsTotal.WithLabelValues("xlsx").Inc()

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="visitors.xlsx"`)
		_, _ = w.Write(blob)
	}
}
