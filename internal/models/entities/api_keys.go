package entities

// ApiKey is one automation credential, scoped to a tenant.
type ApiKey struct {
	ID       string `db:"id"`
	TenantID string `db:"tenant_id"`
	Status   bool   `db:"status"`
}
