package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"fullwoodjoz/visitus/internal/config"
)

func testRegistry() *config.TenantRegistry {
	return config.NewTenantRegistry([]config.Tenant{
		{ID: "fjm", Name: "FJM", DatasetFile: "visitors_fjm.csv", Submitters: []string{"Yann"}},
	})
}

func sampleRecord() VisitorRecord {
	return VisitorRecord{
		Date:    "12/03/2026 14:30",
		Sales:   "Yann",
		Farm:    "GAEC du Pont",
		Name:    "Dupont",
		Address: "12 rue des Vignes",
		Zip:     "33520",
		Dept:    "33",
		City:    "Bruges",
		Mobile:  "0600000000",
		Cows:    "120",
		Eqt:     "Robot",
		Brand:   "Lely",
		Product: JoinProducts([]string{"Nano", "Moov"}),
		Lat:     44.8378,
		Lon:     -0.5792,
	}
}

func TestAppendMissingFile(t *testing.T) {
	s := NewStore(t.TempDir(), testRegistry())

	err := s.Append(context.Background(), "fjm", sampleRecord())
	if !errors.Is(err, ErrDatasetMissing) {
		t.Fatalf("expected ErrDatasetMissing, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	s := NewStore(t.TempDir(), testRegistry())

	if _, err := s.Load("fjm"); !errors.Is(err, ErrDatasetMissing) {
		t.Fatalf("expected ErrDatasetMissing, got %v", err)
	}
}

func TestAppendVisibleToSubsequentLoad(t *testing.T) {
	dir := t.TempDir()
	header := "date;sales;farm;name;address;zip;dept;city;mobile;cows;eqt;brand;product;lat;lon\n"
	if err := os.WriteFile(filepath.Join(dir, "visitors_fjm.csv"), []byte(header), 0o644); err != nil {
		t.Fatal(err)
	}

	s := NewStore(dir, testRegistry())
	if err := s.Append(context.Background(), "fjm", sampleRecord()); err != nil {
		t.Fatalf("Append: %v", err)
	}

	table, err := s.Load("fjm")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(table.Rows) != 1 {
		t.Fatalf("expected 1 row after append, got %d", len(table.Rows))
	}
	row := table.Rows[0]
	if row["farm"] != "GAEC du Pont" || row["dept"] != "33" {
		t.Fatalf("row round-trip mismatch: %v", row)
	}
	if row["product"] != "Nano|Moov" {
		t.Fatalf("product cell = %q, want joined selection", row["product"])
	}
}

func TestAppendReusesExistingHeaderOrder(t *testing.T) {
	dir := t.TempDir()
	// Legacy file with a non-canonical column order.
	header := "farm;sales;lat;lon\n"
	path := filepath.Join(dir, "visitors_fjm.csv")
	if err := os.WriteFile(path, []byte(header), 0o644); err != nil {
		t.Fatal(err)
	}

	s := NewStore(dir, testRegistry())
	if err := s.Append(context.Background(), "fjm", sampleRecord()); err != nil {
		t.Fatalf("Append: %v", err)
	}

	table, err := s.Load("fjm")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := table.Columns[0]; got != "farm" {
		t.Fatalf("header rewritten, first column = %q", got)
	}
	if table.Rows[0]["farm"] != "GAEC du Pont" || table.Rows[0]["sales"] != "Yann" {
		t.Fatalf("cells not aligned with legacy header: %v", table.Rows[0])
	}
}

func TestRecordsDecodesTypedRows(t *testing.T) {
	dir := t.TempDir()
	content := "date;sales;farm;name;address;zip;dept;city;mobile;cows;eqt;brand;product;lat;lon\n" +
		"12/03/2026 14:30;Yann;GAEC du Pont;Dupont;12 rue des Vignes;33520;33;Bruges;0600000000;120;Robot;Lely;Nano|Moov;44.8378;-0.5792\n"
	if err := os.WriteFile(filepath.Join(dir, "visitors_fjm.csv"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s := NewStore(dir, testRegistry())
	records, err := s.Records("fjm")
	if err != nil {
		t.Fatalf("Records: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	rec := records[0]
	if rec.Lat != 44.8378 || rec.Lon != -0.5792 {
		t.Fatalf("coordinates not decoded: %+v", rec)
	}
	got := SplitProducts(rec.Product)
	if len(got) != 2 || got[0] != "Nano" || got[1] != "Moov" {
		t.Fatalf("products = %v, want [Nano Moov]", got)
	}
}

func TestSplitProductsEmpty(t *testing.T) {
	if got := SplitProducts(""); got != nil {
		t.Fatalf("SplitProducts(\"\") = %v, want nil", got)
	}
}
