package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"fullwoodjoz/visitus/internal/auth"
	"fullwoodjoz/visitus/internal/config"
	"fullwoodjoz/visitus/internal/dataset"
	"fullwoodjoz/visitus/internal/models/dtos"
	"fullwoodjoz/visitus/internal/services"
)

// ListDatasets handles GET /api/v1/datasets
func (h *Handlers) ListDatasets() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		files, mergeOption, err := h.deps.Services.Datasets.ListOptions()
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Could not list datasets")
			return
		}
		if files == nil {
			files = []string{}
		}
		resp := dtos.DatasetListResponse{Files: files, MergeOption: mergeOption}
		respondWithSuccess(w, http.StatusOK, &resp)
	}
}

// GetDataset handles GET /api/v1/datasets/{name}. Non-admins only see their
// own tenant; the merged view is admin-only.
func (h *Handlers) GetDataset() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := auth.GetUserClaims(r.Context())
		name := chi.URLParam(r, "name")

		if !h.canReadDataset(claims, name) {
			respondWithError(w, http.StatusForbidden, "Forbidden")
			return
		}

		t, err := h.deps.Services.Datasets.ByName(name)
		if err != nil {
			h.respondDatasetError(w, err)
			return
		}

		resp := dtos.TableFrom(t)
		respondWithSuccess(w, http.StatusOK, &resp)
	}
}

// MapViewHandler handles GET /api/v1/map?dataset=...&column=...&values=a,b&max_per_row=4
func (h *Handlers) MapViewHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := auth.GetUserClaims(r.Context())

		name := r.URL.Query().Get("dataset")
		if name == "" {
			if claims != nil && !claims.IsAdmin() {
				name = claims.TenantID()
			} else {
				name = services.MergeAllOption
			}
		}
		if !h.canReadDataset(claims, name) {
			respondWithError(w, http.StatusForbidden, "Forbidden")
			return
		}

		column := r.URL.Query().Get("column")
		if column == "" {
			column = "product"
		}

		var selected []string
		if raw := r.URL.Query().Get("values"); raw != "" {
			selected = strings.Split(raw, ",")
		}

		maxPerRow := 0
		if raw := r.URL.Query().Get("max_per_row"); raw != "" {
			if n, err := strconv.Atoi(raw); err == nil {
				maxPerRow = n
			}
		}

		t, err := h.deps.Services.Datasets.ByName(name)
		if err != nil {
			h.respondDatasetError(w, err)
			return
		}

		view, err := services.BuildMapView(t, column, selected, nil, maxPerRow)
		if err != nil {
			if errors.Is(err, dataset.ErrPaletteExhausted) {
				respondWithError(w, http.StatusBadRequest, err.Error())
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Could not build map view")
			return
		}
		respondWithSuccess(w, http.StatusOK, view)
	}
}

// Analytics handles GET /api/v1/analytics?dataset=...
func (h *Handlers) Analytics() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := auth.GetUserClaims(r.Context())

		name := r.URL.Query().Get("dataset")
		if name == "" && claims != nil {
			name = claims.TenantID()
		}
		if !h.canReadDataset(claims, name) {
			respondWithError(w, http.StatusForbidden, "Forbidden")
			return
		}

		t, err := h.deps.Services.Datasets.ByName(name)
		if err != nil {
			h.respondDatasetError(w, err)
			return
		}

		resp := services.VisitCounts(t)
		respondWithSuccess(w, http.StatusOK, &resp)
	}
}

func (h *Handlers) canReadDataset(claims auth.UserClaims, name string) bool {
	if claims == nil {
		return false
	}
	if claims.IsAdmin() {
		return true
	}
	return name == claims.TenantID()
}

func (h *Handlers) respondDatasetError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrNoDataset):
		respondWithError(w, http.StatusNotFound, "No data available")
	case errors.Is(err, config.ErrUnknownTenant):
		respondWithError(w, http.StatusNotFound, "Unknown tenant")
	default:
		respondWithError(w, http.StatusInternalServerError, "Could not load dataset")
	}
}
