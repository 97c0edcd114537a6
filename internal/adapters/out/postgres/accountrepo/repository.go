package accountrepo

import (
	"context"
	"errors"

	"workshop/internal/core/domain/model/account"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAccountRepository implements AccountRepository using GORM.
// The caller's transaction handle is passed in; this repository never opens
// a transaction of its own, so the composite base-plus-extension write is
// atomic within the ambient unit of work.
type GormAccountRepository struct {
	db *gorm.DB
}

// NewGormAccountRepository creates a new GORM account repository bound to the
// given connection or transaction.
func NewGormAccountRepository(db *gorm.DB) *GormAccountRepository {
	return &GormAccountRepository{db: db}
}

// Add saves a new account: the base row first, then the role extension.
func (r *GormAccountRepository) Add(ctx context.Context, aggregate *account.Account) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return translateWriteError("accounts.insert", err)
	}

	switch aggregate.Role() {
	case account.RoleCustomer:
		ext := CustomerDTO{
			AccountID: dto.ID,
			Address:   aggregate.Address(),
			Phone:     aggregate.Phone(),
		}
		if err := r.db.WithContext(ctx).Create(&ext).Error; err != nil {
			return translateWriteError("customers.insert", err)
		}
	case account.RoleEmployee:
		ext := EmployeeDTO{AccountID: dto.ID}
		if err := r.db.WithContext(ctx).Create(&ext).Error; err != nil {
			return translateWriteError("employees.insert", err)
		}
	default:
		return errs.NewValueIsInvalidError("role")
	}

	return nil
}

// Update saves changes to an existing account across both rows.
func (r *GormAccountRepository) Update(ctx context.Context, aggregate *account.Account) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return translateWriteError("accounts.update", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("account", dto.ID)
	}

	if aggregate.Role() == account.RoleCustomer {
		ext := CustomerDTO{
			AccountID: dto.ID,
			Address:   aggregate.Address(),
			Phone:     aggregate.Phone(),
		}
		if err := r.db.WithContext(ctx).Save(&ext).Error; err != nil {
			return translateWriteError("customers.update", err)
		}
	}

	return nil
}

// Get retrieves an account by identifier, composing the base row with its
// role extension.
func (r *GormAccountRepository) Get(ctx context.Context, id kernel.AccountID) (*account.Account, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AccountDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("account", id.String())
		}
		return nil, errs.NewStorageError("accounts.select", err)
	}

	return r.compose(ctx, dto)
}

// GetByEmail retrieves an account by its unique email address.
func (r *GormAccountRepository) GetByEmail(ctx context.Context, email string) (*account.Account, error) {
	if email == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}

	var dto AccountDTO
	if err := r.db.WithContext(ctx).First(&dto, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("account", email)
		}
		return nil, errs.NewStorageError("accounts.select", err)
	}

	return r.compose(ctx, dto)
}

// GetAllByRole retrieves all accounts carrying the given role tag, sorted by
// identifier for consistent output.
func (r *GormAccountRepository) GetAllByRole(ctx context.Context, role account.Role) ([]*account.Account, error) {
	if err := role.Validate(); err != nil {
		return nil, err
	}

	var dtos []AccountDTO
	if err := r.db.WithContext(ctx).
		Where("role = ?", role.String()).
		Order("id").
		Find(&dtos).Error; err != nil {
		return nil, errs.NewStorageError("accounts.select", err)
	}

	accounts := make([]*account.Account, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := r.compose(ctx, dto)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, aggregate)
	}

	return accounts, nil
}

// Delete removes the account and its role extension, extension first so the
// base row never becomes an orphan parent.
func (r *GormAccountRepository) Delete(ctx context.Context, id kernel.AccountID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).
		Delete(&CustomerDTO{}, "account_id = ?", id.String()).Error; err != nil {
		return errs.NewStorageError("customers.delete", err)
	}
	if err := r.db.WithContext(ctx).
		Delete(&EmployeeDTO{}, "account_id = ?", id.String()).Error; err != nil {
		return errs.NewStorageError("employees.delete", err)
	}

	result := r.db.WithContext(ctx).Delete(&AccountDTO{}, "id = ?", id.String())
	if result.Error != nil {
		return errs.NewStorageError("accounts.delete", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("account", id.String())
	}

	return nil
}

func (r *GormAccountRepository) compose(ctx context.Context, dto AccountDTO) (*account.Account, error) {
	if dto.Role != account.RoleCustomer.String() {
		return toDomain(dto, nil)
	}

	var ext CustomerDTO
	if err := r.db.WithContext(ctx).First(&ext, "account_id = ?", dto.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Legacy rows may miss the extension; the aggregate still loads.
			return toDomain(dto, nil)
		}
		return nil, errs.NewStorageError("customers.select", err)
	}

	return toDomain(dto, &ext)
}

// translateWriteError maps duplicate-key violations to ConflictError and
// wraps everything else as a StorageError.
func translateWriteError(op string, err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.NewConflictErrorWithCause("email", err)
	}
	return errs.NewStorageError(op, err)
}
