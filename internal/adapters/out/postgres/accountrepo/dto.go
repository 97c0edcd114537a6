// Package accountrepo persists the account aggregate. An account is stored
// split: the base row lives in the accounts table and the role extension in
// the customers or employees table. The split never leaks past this package;
// callers read and write whole aggregates.
package accountrepo

import (
	"workshop/internal/core/domain/model/account"
	"workshop/internal/core/domain/model/kernel"
)

// AccountDTO is the base row shared by every role.
type AccountDTO struct {
	ID           string `gorm:"type:varchar(36);primaryKey"`
	Name         string `gorm:"type:varchar(255);not null"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex"`
	Password     string `gorm:"type:varchar(255);not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	Role         string `gorm:"type:varchar(16);not null;index"`
}

// TableName overrides GORM's default naming to use "accounts".
func (AccountDTO) TableName() string {
	return "accounts"
}

// CustomerDTO is the customer role extension, keyed by the account it
// extends.
type CustomerDTO struct {
	AccountID string `gorm:"type:varchar(36);primaryKey"`
	Address   string `gorm:"type:varchar(255);not null"`
	Phone     string `gorm:"type:varchar(16);not null"`
}

// TableName overrides GORM's default naming to use "customers".
func (CustomerDTO) TableName() string {
	return "customers"
}

// EmployeeDTO is the employee role extension. It carries no fields beyond
// the key; the row's existence is what marks the account as staff.
type EmployeeDTO struct {
	AccountID string `gorm:"type:varchar(36);primaryKey"`
}

// TableName overrides GORM's default naming to use "employees".
func (EmployeeDTO) TableName() string {
	return "employees"
}

func fromDomain(aggregate *account.Account) AccountDTO {
	return AccountDTO{
		ID:           aggregate.ID().String(),
		Name:         aggregate.Name(),
		Email:        aggregate.Email(),
		Password:     aggregate.Password(),
		PasswordHash: aggregate.PasswordHash(),
		Role:         aggregate.Role().String(),
	}
}

func toDomain(dto AccountDTO, ext *CustomerDTO) (*account.Account, error) {
	id, err := kernel.AccountIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	role, err := account.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	address, phone := "", ""
	if ext != nil {
		address = ext.Address
		phone = ext.Phone
	}

	return account.RestoreAccount(id, dto.Name, dto.Email, dto.Password, dto.PasswordHash, role, address, phone)
}
