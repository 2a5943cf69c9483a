package constants

// Role of an account within its tenant.
type Role string

const (
	RoleSubmitter Role = "SUBMITTER"
	RoleAdmin     Role = "ADMIN"
)

func (r Role) String() string { return string(r) }
