package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"fullwoodjoz/visitus/internal/geo"
	"fullwoodjoz/visitus/internal/models/dtos"
)

// LookupCities handles GET /api/v1/postal/{code}/cities. A malformed code
// still answers 200 with the in-band marker so the form can render it.
func (h *Handlers) LookupCities() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := chi.URLParam(r, "code")

		cities, err := h.deps.Services.Postal.LookupCityNames(r.Context(), code)
		if err != nil {
			h.deps.Metrics.PostalLookupsTotal.WithLabelValues("error").Inc()
			respondWithError(w, http.StatusBadGateway, "Postal lookup failed; please retry")
			return
		}

		outcome := "ok"
		if len(cities) == 1 && cities[0] == geo.BadPostalCodeMarker {
			outcome = "invalid"
		}
		h.deps.Metrics.PostalLookupsTotal.WithLabelValues(outcome).Inc()

		resp := dtos.CityLookupResponse{PostalCode: code, Cities: cities}
		respondWithSuccess(w, http.StatusOK, &resp)
	}
}
