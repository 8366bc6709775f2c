package spawner_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"spawner-loot/core/loot"
	"spawner-loot/feature/spawner"
	"spawner-loot/feature/spawner/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func TestRepositorySaveReplacesEntries(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	rec := models.SpawnerRecord{ID: "sp-1", Kind: "SKELETON"}

	require.NoError(t, f.repo.Save(ctx, rec, []loot.Entry{
		{Signature: bone, Count: 5},
		{Signature: arrow, Count: math.MaxUint64},
	}))
	require.NoError(t, f.repo.Save(ctx, rec, []loot.Entry{{Signature: bone, Count: 7}}))

	got, entries, err := f.repo.Load(ctx, "sp-1")
	require.NoError(t, err)
	assert.Equal(t, "SKELETON", got.Kind)
	assert.Equal(t, []loot.Entry{{Signature: bone, Count: 7}}, entries)

	var rows int64
	require.NoError(t, f.db.Model(&models.LootRecord{}).Count(&rows).Error)
	assert.Equal(t, int64(1), rows)

	require.NoError(t, f.repo.Save(ctx, rec, nil))
	_, entries, err = f.repo.Load(ctx, "sp-1")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRepositoryUint64Counts(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	require.NoError(t, f.repo.Save(ctx, models.SpawnerRecord{ID: "sp-1", Kind: "SKELETON"},
		[]loot.Entry{{Signature: arrow, Count: math.MaxUint64}}))

	_, entries, err := f.repo.Load(ctx, "sp-1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, uint64(math.MaxUint64), entries[0].Count)
}

func TestRepositoryListAndDelete(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	for _, id := range []string{"b", "a"} {
		require.NoError(t, f.repo.Save(ctx, models.SpawnerRecord{ID: id, Kind: "ZOMBIE"}, []loot.Entry{{Signature: bone, Count: 1}}))
	}

	recs, err := f.repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "a", recs[0].ID)

	require.NoError(t, f.repo.Delete(ctx, "a"))
	require.NoError(t, f.repo.Delete(ctx, "a"))
	_, _, err = f.repo.Load(ctx, "a")
	assert.True(t, errors.Is(err, spawner.ErrNotFound))
}

func TestRepositorySaveRollsBack(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{})
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `spawners`").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM `spawner_loot`").WillReturnError(errors.New("lock wait timeout"))
	mock.ExpectRollback()

	repo := spawner.NewRepository(db)
	err = repo.Save(context.Background(), models.SpawnerRecord{ID: "sp-1", Kind: "SKELETON"}, []loot.Entry{{Signature: bone, Count: 1}})
	assert.ErrorContains(t, err, "lock wait timeout")
	assert.NoError(t, mock.ExpectationsWereMet())
}
