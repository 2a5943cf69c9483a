package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fullwoodjoz/visitus/internal/common"
	"fullwoodjoz/visitus/internal/config"
	"fullwoodjoz/visitus/internal/constants"
	"fullwoodjoz/visitus/internal/geo"
	"fullwoodjoz/visitus/internal/logging"
	"fullwoodjoz/visitus/internal/metrics"
	"fullwoodjoz/visitus/internal/models/dtos"
	"fullwoodjoz/visitus/internal/store"
)

var (
	// ErrNotASubmitter: the salesperson is not on the tenant's allowed list.
	ErrNotASubmitter = errors.New("salesperson not allowed for tenant")

	// ErrInvalidSelection: eqt, brand or product outside the closed lists.
	ErrInvalidSelection = errors.New("selection outside the allowed list")

	// ErrGeocodeFailed: the address had no candidate; the record is not
	// persisted.
	ErrGeocodeFailed = errors.New("address could not be geocoded")
)

const (
	visitDateFormat = "02/01/2006 15:04"
	geocodeCacheTTL = 24 * time.Hour
)

// VisitService implements the submission flow: validate the form, geocode
// the address, append to the tenant's dataset.
type VisitService struct {
	store    *store.Store
	geocoder geo.Geocoder
	tenants  *config.TenantRegistry
	datasets *DatasetService
	cache    common.CacheInterface
	metrics  *metrics.MetricsRegistry
}

func NewVisitService(st *store.Store, geocoder geo.Geocoder, tenants *config.TenantRegistry, datasets *DatasetService, cache common.CacheInterface, metricsReg *metrics.MetricsRegistry) *VisitService {
	return &VisitService{
		store:    st,
		geocoder: geocoder,
		tenants:  tenants,
		datasets: datasets,
		cache:    cache,
		metrics:  metricsReg,
	}
}

// SubmitVisit validates and records one visit. The record is appended only
// when both coordinates resolve; a geocode miss blocks the write.
func (s *VisitService) SubmitVisit(ctx context.Context, tenantID string, req dtos.VisitRequest) (*store.VisitorRecord, error) {
	if _, err := s.tenants.Get(tenantID); err != nil {
		return nil, err
	}
	if !s.tenants.IsSubmitter(tenantID, req.Sales) {
		return nil, fmt.Errorf("%w: %s", ErrNotASubmitter, req.Sales)
	}
	if err := validateSelections(req); err != nil {
		return nil, err
	}

	dept := req.Zip
	if len(dept) > 2 {
		dept = dept[:2]
	}

	point, err := s.geocode(ctx, formatAddress(req))
	if err != nil {
		if errors.Is(err, geo.ErrNotFound) {
			s.metrics.GeocodeRequestsTotal.WithLabelValues("not_found").Inc()
			return nil, fmt.Errorf("%w: %s", ErrGeocodeFailed, formatAddress(req))
		}
		s.metrics.GeocodeRequestsTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	s.metrics.GeocodeRequestsTotal.WithLabelValues("ok").Inc()

	rec := store.VisitorRecord{
		Date:    time.Now().Format(visitDateFormat),
		Sales:   req.Sales,
		Farm:    req.Farm,
		Name:    req.Name,
		Address: req.Address,
		Zip:     req.Zip,
		Dept:    dept,
		City:    req.City,
		Mobile:  req.Mobile,
		Cows:    req.Cows,
		Eqt:     req.Eqt,
		Brand:   req.Brand,
		Product: store.JoinProducts(req.Product),
		Lat:     point.Lat,
		Lon:     point.Lon,
	}

	if err := s.store.Append(ctx, tenantID, rec); err != nil {
		return nil, err
	}

	s.metrics.VisitsRecordedTotal.WithLabelValues(tenantID).Inc()
	s.datasets.Invalidate(tenantID)

	logging.Info("Visit recorded",
		"tenant", tenantID,
		"sales", req.Sales,
		"farm", req.Farm,
		"dept", dept,
	)
	return &rec, nil
}

// geocode resolves an address, caching hits so resubmissions of the same
// farm do not hammer the upstream service.
func (s *VisitService) geocode(ctx context.Context, address string) (geo.Point, error) {
	key := "geocode:" + address
	if val, found := s.cache.Get(key); found {
		if p, ok := val.(geo.Point); ok {
			s.metrics.CacheHitsTotal.WithLabelValues("geocode").Inc()
			return p, nil
		}
	}
	s.metrics.CacheMissesTotal.WithLabelValues("geocode").Inc()

	p, err := s.geocoder.Geocode(ctx, address, "")
	if err != nil {
		return geo.Point{}, err
	}
	s.cache.Set(key, p, geocodeCacheTTL)
	return p, nil
}

// formatAddress builds the geocoder query the way the form always has:
// street when given, then zip and city.
func formatAddress(req dtos.VisitRequest) string {
	if req.Address != "" {
		return fmt.Sprintf("%s, %s, %s", req.Address, req.Zip, req.City)
	}
	return fmt.Sprintf("%s, %s", req.Zip, req.City)
}

func validateSelections(req dtos.VisitRequest) error {
	if !constants.InList(constants.EqtList, req.Eqt) {
		return fmt.Errorf("%w: eqt %q", ErrInvalidSelection, req.Eqt)
	}
	if !constants.InList(constants.BrandList, req.Brand) {
		return fmt.Errorf("%w: brand %q", ErrInvalidSelection, req.Brand)
	}
	if len(req.Product) == 0 {
		return fmt.Errorf("%w: no product selected", ErrInvalidSelection)
	}
	for _, p := range req.Product {
		if !constants.InList(constants.ProdList, p) {
			return fmt.Errorf("%w: product %q", ErrInvalidSelection, p)
		}
	}
	return nil
}
