package economy

import (
	"context"
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Provider names.
const (
	ProviderLedger = "ledger"
	ProviderLog    = "log"
)

var (
	// ErrUnknownProvider is returned by New for names outside the supported set.
	ErrUnknownProvider = errors.New("unknown economy provider")
	// ErrInvalidAmount rejects negative or non-finite deposits.
	ErrInvalidAmount = errors.New("invalid deposit amount")
)

// Provider credits an actor.
type Provider interface {
	Name() string
	Deposit(ctx context.Context, actor string, amount float64) error
}

// New builds the named provider. The ledger provider needs db.
func New(name string, db *gorm.DB, logger *zap.Logger) (Provider, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	switch name {
	case ProviderLedger:
		if db == nil {
			return nil, fmt.Errorf("economy provider %s requires a database", name)
		}
		return NewLedger(db), nil
	case ProviderLog:
		return NewLog(logger), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, name)
	}
}

func validAmount(amount float64) bool {
	return amount >= 0 && !math.IsInf(amount, 1)
}

type logProvider struct {
	logger *zap.Logger
}

// NewLog returns the provider that only logs deposits.
func NewLog(logger *zap.Logger) Provider {
	return &logProvider{logger: logger}
}

func (p *logProvider) Name() string { return ProviderLog }

func (p *logProvider) Deposit(_ context.Context, actor string, amount float64) error {
	if !validAmount(amount) {
		return fmt.Errorf("%w: %v", ErrInvalidAmount, amount)
	}
	p.logger.Info("Deposit", zap.String("actor", actor), zap.Float64("amount", amount))
	return nil
}
