package economy

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Balance is one row of economy_balances.
type Balance struct {
	Actor     string    `gorm:"column:actor;primaryKey;size:64"`
	Amount    float64   `gorm:"column:amount;not null;default:0"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName overrides the table name.
func (Balance) TableName() string {
	return "economy_balances"
}

// Ledger keeps balances in the database.
type Ledger struct {
	db *gorm.DB
}

// NewLedger creates a ledger on db.
func NewLedger(db *gorm.DB) *Ledger {
	return &Ledger{db: db}
}

// Migrate creates the balances table.
func (l *Ledger) Migrate() error {
	return l.db.AutoMigrate(&Balance{})
}

func (l *Ledger) Name() string { return ProviderLedger }

// Deposit adds amount to the balance of actor, creating it when missing.
func (l *Ledger) Deposit(ctx context.Context, actor string, amount float64) error {
	if !validAmount(amount) {
		return fmt.Errorf("%w: %v", ErrInvalidAmount, amount)
	}
	if amount == 0 {
		return nil
	}

	row := Balance{Actor: actor, Amount: amount, UpdatedAt: time.Now()}
	err := l.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "actor"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"amount":     gorm.Expr("amount + ?", amount),
			"updated_at": row.UpdatedAt,
		}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to deposit for %s: %w", actor, err)
	}
	return nil
}

// Balance returns the balance of actor, zero when unknown.
func (l *Ledger) Balance(ctx context.Context, actor string) (float64, error) {
	var row Balance
	err := l.db.WithContext(ctx).Where("actor = ?", actor).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read balance of %s: %w", actor, err)
	}
	return row.Amount, nil
}
