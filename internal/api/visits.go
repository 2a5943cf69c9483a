package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"fullwoodjoz/visitus/internal/auth"
	"fullwoodjoz/visitus/internal/config"
	"fullwoodjoz/visitus/internal/models/dtos"
	"fullwoodjoz/visitus/internal/services"
	"fullwoodjoz/visitus/internal/store"
)

// SubmitVisit handles POST /api/v1/visits. The tenant comes from the
// caller's claims, never from the payload.
func (h *Handlers) SubmitVisit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			respondWithError(w, http.StatusUnauthorized, "Unauthorized: missing claims")
			return
		}

		var req dtos.VisitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid visit payload")
			return
		}

		rec, err := h.deps.Services.Visits.SubmitVisit(r.Context(), claims.TenantID(), req)
		if err != nil {
			switch {
			case errors.Is(err, config.ErrUnknownTenant):
				respondWithError(w, http.StatusNotFound, "Unknown tenant")
			case errors.Is(err, services.ErrNotASubmitter):
				respondWithError(w, http.StatusForbidden, "Salesperson not allowed for this tenant")
			case errors.Is(err, services.ErrInvalidSelection):
				respondWithError(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, services.ErrGeocodeFailed):
				respondWithError(w, http.StatusUnprocessableEntity, "Address could not be geocoded; visit not recorded")
			case errors.Is(err, store.ErrDatasetMissing):
				respondWithError(w, http.StatusNotFound, "No dataset file for this tenant")
			default:
				respondWithError(w, http.StatusBadGateway, "Upstream failure; please resubmit")
			}
			return
		}

		resp := dtos.VisitResponse{
			Tenant: claims.TenantID(),
			Farm:   rec.Farm,
			Dept:   rec.Dept,
			Lat:    rec.Lat,
			Lon:    rec.Lon,
		}
		respondWithSuccess(w, http.StatusCreated, &resp)
	}
}
