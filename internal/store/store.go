// Package store is the append-only per-tenant visitor record store. One CSV
// file per tenant, header fixed at file creation, appends reuse the file's
// existing column order.
package store

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/jszwec/csvutil"

	"fullwoodjoz/visitus/internal/config"
	"fullwoodjoz/visitus/internal/dataset"
)

// ErrDatasetMissing is returned when a tenant's dataset file does not exist.
// Files are provisioned out of band; the store never creates one implicitly.
var ErrDatasetMissing = errors.New("tenant dataset file does not exist")

// ProductSeparator joins the multi-select product field into one CSV cell.
const ProductSeparator = "|"

// VisitorRecord is one logged farm visit.
type VisitorRecord struct {
	Date    string  `csv:"date"`
	Sales   string  `csv:"sales"`
	Farm    string  `csv:"farm"`
	Name    string  `csv:"name"`
	Address string  `csv:"address"`
	Zip     string  `csv:"zip"`
	Dept    string  `csv:"dept"`
	City    string  `csv:"city"`
	Mobile  string  `csv:"mobile"`
	Cows    string  `csv:"cows"`
	Eqt     string  `csv:"eqt"`
	Brand   string  `csv:"brand"`
	Product string  `csv:"product"`
	Lat     float64 `csv:"lat"`
	Lon     float64 `csv:"lon"`
}

// JoinProducts flattens a product multi-selection for storage.
func JoinProducts(products []string) string {
	return strings.Join(products, ProductSeparator)
}

// SplitProducts undoes JoinProducts. Empty input yields nil.
func SplitProducts(cell string) []string {
	if cell == "" {
		return nil
	}
	return strings.Split(cell, ProductSeparator)
}

// fields maps the record to its cell values by column name, so a row can be
// written in whatever column order the tenant file already uses.
func (r *VisitorRecord) fields() map[string]string {
	return map[string]string{
		"date":    r.Date,
		"sales":   r.Sales,
		"farm":    r.Farm,
		"name":    r.Name,
		"address": r.Address,
		"zip":     r.Zip,
		"dept":    r.Dept,
		"city":    r.City,
		"mobile":  r.Mobile,
		"cows":    r.Cows,
		"eqt":     r.Eqt,
		"brand":   r.Brand,
		"product": r.Product,
		"lat":     strconv.FormatFloat(r.Lat, 'f', -1, 64),
		"lon":     strconv.FormatFloat(r.Lon, 'f', -1, 64),
	}
}

// Store resolves tenants to their dataset files and serializes writers per
// tenant file. The single-writer discipline is a deliberate improvement over
// the historical read-modify-write behavior; a successful append is visible
// to every subsequent read.
type Store struct {
	dataDir string
	tenants *config.TenantRegistry

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewStore(dataDir string, tenants *config.TenantRegistry) *Store {
	return &Store{
		dataDir: dataDir,
		tenants: tenants,
		locks:   make(map[string]*sync.Mutex),
	}
}

func (s *Store) lockFor(tenantID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	if l, ok := s.locks[tenantID]; ok {
		return l
	}
	l := &sync.Mutex{}
	s.locks[tenantID] = l
	return l
}

// Path returns the dataset file path for a tenant.
func (s *Store) Path(tenantID string) (string, error) {
	t, err := s.tenants.Get(tenantID)
	if err != nil {
		return "", err
	}
	return filepath.Join(s.dataDir, t.DatasetFile), nil
}

// Append writes one record to the tenant's dataset file, reusing the file's
// header order. A missing file is ErrDatasetMissing, not a create.
func (s *Store) Append(ctx context.Context, tenantID string, rec VisitorRecord) error {
	path, err := s.Path(tenantID)
	if err != nil {
		return err
	}

	l := s.lockFor(tenantID)
	l.Lock()
	defer l.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	header, err := readHeader(path)
	if err != nil {
		return err
	}

	cells := rec.fields()
	row := make([]string, len(header))
	for i, col := range header {
		row[i] = cells[col]
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open dataset for append: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = dataset.Delimiter
	if err := w.Write(row); err != nil {
		return fmt.Errorf("append visitor record: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("append visitor record: %w", err)
	}
	return nil
}

// Load returns the tenant's table snapshot, fresh from disk.
func (s *Store) Load(tenantID string) (*dataset.Table, error) {
	path, err := s.Path(tenantID)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrDatasetMissing, tenantID)
		}
		return nil, err
	}
	return dataset.Load(path)
}

// Records decodes the tenant's file into typed visitor records.
func (s *Store) Records(tenantID string) ([]VisitorRecord, error) {
	path, err := s.Path(tenantID)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrDatasetMissing, tenantID)
		}
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = dataset.Delimiter
	dec, err := csvutil.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("decode dataset %s: %w", tenantID, err)
	}
	dec.DisallowMissingColumns = false

	var records []VisitorRecord
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("decode dataset %s: %w", tenantID, err)
	}
	return records, nil
}

func readHeader(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrDatasetMissing, path)
		}
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = dataset.Delimiter
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read dataset header: %w", err)
	}
	return header, nil
}
