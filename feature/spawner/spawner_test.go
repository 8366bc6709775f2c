package spawner_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"spawner-loot/core/catalog"
	"spawner-loot/core/database"
	"spawner-loot/core/guard"
	"spawner-loot/core/siphon"
	"spawner-loot/core/storage"
	"spawner-loot/feature/economy"
	"spawner-loot/feature/spawner"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testCatalog = `
kinds:
  BONE: {price: 0.5}
  ARROW: {price: 0.25}
  ENDER_PEARL: {max_stack: 16, price: 4}
  IRON_SWORD: {max_stack: 1}
`

type failingEconomy struct{ calls int }

func (f *failingEconomy) Name() string { return "failing" }

func (f *failingEconomy) Deposit(context.Context, string, float64) error {
	f.calls++
	return errors.New("bank offline")
}

type fixture struct {
	svc      *spawner.Service
	db       *gorm.DB
	repo     *spawner.Repository
	ledger   *economy.Ledger
	cooldown *guard.Cooldown
	sched    *siphon.Scheduler
}

type option func(*spawner.Deps)

func withEconomy(p economy.Provider) option {
	return func(d *spawner.Deps) { d.Economy = p }
}

func withStorage(c storage.Client) option {
	return func(d *spawner.Deps) {
		d.Storage = c
		d.Bucket = "loot"
	}
}

func setup(t *testing.T, opts ...option) *fixture {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	repo := spawner.NewRepository(db)
	require.NoError(t, repo.Migrate())
	ledger := economy.NewLedger(db)
	require.NoError(t, ledger.Migrate())

	cat := catalog.NewService(catalog.StaticSource([]byte(testCatalog)), nil)
	_, err = cat.Reload(context.Background())
	require.NoError(t, err)

	f := &fixture{
		db:       db,
		repo:     repo,
		ledger:   ledger,
		cooldown: guard.NewCooldown(0),
		sched:    siphon.New(siphon.Config{Interval: time.Hour, Workers: 2}, nil),
	}
	deps := spawner.Deps{
		Catalog:     cat,
		Economy:     ledger,
		Repository:  repo,
		Cooldown:    f.cooldown,
		Scheduler:   f.sched,
		SiphonBatch: 64,
	}
	for _, o := range opts {
		o(&deps)
	}
	f.svc = spawner.NewService(deps)
	t.Cleanup(f.sched.Stop)
	return f
}
