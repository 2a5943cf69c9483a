package constants

// Raw SQL for the sqlx-backed API key store.
const (
	GetStatusByApiKey = `SELECT id, tenant_id, status FROM api_keys WHERE id = $1`
	InsertApiKey      = `INSERT INTO api_keys (id, tenant_id, status) VALUES ($1, $2, true) RETURNING id`
)
