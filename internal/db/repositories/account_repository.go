package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	gormModels "fullwoodjoz/visitus/internal/models/gorm"
)

// ErrAccountNotFound is returned for unknown usernames and ids.
var ErrAccountNotFound = errors.New("account not found")

type AccountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// GetByUsername resolves a login name to an active account.
func (r *AccountRepository) GetByUsername(ctx context.Context, username string) (*gormModels.Account, error) {
	var account gormModels.Account
	err := r.db.WithContext(ctx).
		Where("username = ? AND is_active = ?", username, true).
		First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("fetch account %q: %w", username, err)
	}
	return &account, nil
}

// Create inserts a new account; the id is generated here.
func (r *AccountRepository) Create(ctx context.Context, account *gormModels.Account) error {
	if account.ID == "" {
		account.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(account).Error; err != nil {
		return fmt.Errorf("create account %q: %w", account.Username, err)
	}
	return nil
}

// ListByTenant returns a tenant's accounts in creation order.
func (r *AccountRepository) ListByTenant(ctx context.Context, tenantID string) ([]gormModels.Account, error) {
	var accounts []gormModels.Account
	err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at").
		Find(&accounts).Error
	if err != nil {
		return nil, fmt.Errorf("list accounts for tenant %q: %w", tenantID, err)
	}
	return accounts, nil
}
