package economy_test

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"

	"spawner-loot/core/database"
	"spawner-loot/feature/economy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	return db
}

func TestNew(t *testing.T) {
	db := setupDB(t)

	p, err := economy.New(economy.ProviderLog, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, economy.ProviderLog, p.Name())

	p, err = economy.New(economy.ProviderLedger, db, nil)
	require.NoError(t, err)
	assert.Equal(t, economy.ProviderLedger, p.Name())

	_, err = economy.New(economy.ProviderLedger, nil, nil)
	assert.Error(t, err)

	_, err = economy.New("vault", db, nil)
	assert.True(t, errors.Is(err, economy.ErrUnknownProvider))
}

func TestLedger(t *testing.T) {
	ctx := context.Background()
	ledger := economy.NewLedger(setupDB(t))
	require.NoError(t, ledger.Migrate())

	balance, err := ledger.Balance(ctx, "alice")
	require.NoError(t, err)
	assert.Zero(t, balance)

	require.NoError(t, ledger.Deposit(ctx, "alice", 10.5))
	require.NoError(t, ledger.Deposit(ctx, "alice", 2))
	require.NoError(t, ledger.Deposit(ctx, "alice", 0))
	require.NoError(t, ledger.Deposit(ctx, "bob", 1))

	balance, err = ledger.Balance(ctx, "alice")
	require.NoError(t, err)
	assert.InDelta(t, 12.5, balance, 1e-9)

	for _, bad := range []float64{-1, math.NaN(), math.Inf(1)} {
		assert.True(t, errors.Is(ledger.Deposit(ctx, "alice", bad), economy.ErrInvalidAmount))
	}
}

func TestLedgerConcurrentDeposits(t *testing.T) {
	ctx := context.Background()
	ledger := economy.NewLedger(setupDB(t))
	require.NoError(t, ledger.Migrate())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, ledger.Deposit(ctx, "alice", 1))
		}()
	}
	wg.Wait()

	balance, err := ledger.Balance(ctx, "alice")
	require.NoError(t, err)
	assert.InDelta(t, 20.0, balance, 1e-9)
}

func TestLogProvider(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	p := economy.NewLog(zap.New(core))

	require.NoError(t, p.Deposit(context.Background(), "alice", 3))
	assert.Error(t, p.Deposit(context.Background(), "alice", -3))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "alice", entries[0].ContextMap()["actor"])
}
