package gorm

import (
	"time"

	"fullwoodjoz/visitus/internal/constants"
)

// Account is a login for the dashboard: a salesperson or an admin, bound to
// one tenant.
type Account struct {
	ID           string         `gorm:"column:id;primaryKey"`
	Username     string         `gorm:"column:username;uniqueIndex"`
	PasswordHash string         `gorm:"column:password_hash"`
	TenantID     string         `gorm:"column:tenant_id;index"`
	Role         constants.Role `gorm:"column:role"`
	IsActive     bool           `gorm:"column:is_active;default:true"`
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

func (Account) TableName() string {
	return "accounts"
}
