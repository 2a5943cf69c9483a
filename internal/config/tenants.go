package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrUnknownTenant is returned when a tenant id is not present in the registry.
var ErrUnknownTenant = errors.New("unknown tenant")

// Tenant describes one organization: where its dataset lives, its branding
// asset and which salespeople may submit visits under it.
type Tenant struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	DatasetFile string   `yaml:"dataset_file"`
	Logo        string   `yaml:"logo"`
	Submitters  []string `yaml:"submitters"`
}

// TenantRegistry is the startup-loaded tenant table. Lookup by id returns an
// explicit ErrUnknownTenant rather than a zero value.
type TenantRegistry struct {
	tenants map[string]Tenant
	order   []string
}

type tenantsFile struct {
	Tenants []Tenant `yaml:"tenants"`
}

// LoadTenants reads the YAML tenant registry at path.
func LoadTenants(path string) (*TenantRegistry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tenant registry: %w", err)
	}

	var f tenantsFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse tenant registry: %w", err)
	}

	reg := &TenantRegistry{tenants: make(map[string]Tenant, len(f.Tenants))}
	for _, t := range f.Tenants {
		if t.ID == "" {
			return nil, fmt.Errorf("tenant registry: entry without id")
		}
		if t.DatasetFile == "" {
			return nil, fmt.Errorf("tenant registry: tenant %q without dataset_file", t.ID)
		}
		if _, dup := reg.tenants[t.ID]; dup {
			return nil, fmt.Errorf("tenant registry: duplicate tenant %q", t.ID)
		}
		reg.tenants[t.ID] = t
		reg.order = append(reg.order, t.ID)
	}
	return reg, nil
}

// NewTenantRegistry builds a registry from an in-memory list. Used by tests
// and by tools that do not read the YAML file.
func NewTenantRegistry(tenants []Tenant) *TenantRegistry {
	reg := &TenantRegistry{tenants: make(map[string]Tenant, len(tenants))}
	for _, t := range tenants {
		reg.tenants[t.ID] = t
		reg.order = append(reg.order, t.ID)
	}
	return reg
}

// Get returns the tenant for id.
func (r *TenantRegistry) Get(id string) (Tenant, error) {
	t, ok := r.tenants[id]
	if !ok {
		return Tenant{}, fmt.Errorf("%w: %s", ErrUnknownTenant, id)
	}
	return t, nil
}

// All returns tenants in registry file order.
func (r *TenantRegistry) All() []Tenant {
	out := make([]Tenant, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.tenants[id])
	}
	return out
}

// IsSubmitter reports whether name is on the tenant's allowed submitter list.
func (r *TenantRegistry) IsSubmitter(tenantID, name string) bool {
	t, ok := r.tenants[tenantID]
	if !ok {
		return false
	}
	for _, s := range t.Submitters {
		if s == name {
			return true
		}
	}
	return false
}
