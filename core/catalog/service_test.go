package catalog_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"spawner-loot/core/catalog"
	"spawner-loot/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type countingSource struct {
	data  []byte
	err   error
	loads atomic.Int32
	gate  chan struct{}
}

func (s *countingSource) Load(context.Context) ([]byte, error) {
	s.loads.Add(1)
	if s.gate != nil {
		<-s.gate
	}
	return s.data, s.err
}

func (s *countingSource) String() string { return "counting" }

func TestServiceReload(t *testing.T) {
	svc := catalog.NewService(catalog.StaticSource([]byte(sample)), nil)
	assert.True(t, svc.Loaded().IsZero())
	assert.False(t, svc.Known("BONE"))

	c, err := svc.Reload(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())
	assert.True(t, svc.Known("BONE"))
	assert.Equal(t, 16, svc.MaxStack("ENDER_PEARL"))
	assert.False(t, svc.Loaded().IsZero())
	assert.Same(t, c, svc.Current())
}

func TestServiceReloadKeepsPreviousOnFailure(t *testing.T) {
	src := &countingSource{data: []byte(sample)}
	svc := catalog.NewService(src, nil)
	_, err := svc.Reload(context.Background())
	require.NoError(t, err)

	src.data = []byte("kinds: [")
	_, err = svc.Reload(context.Background())
	assert.Error(t, err)
	assert.True(t, svc.Known("BONE"))

	src.err = errors.New("unreachable")
	_, err = svc.Reload(context.Background())
	assert.Error(t, err)
	assert.Equal(t, 3, svc.Current().Len())
}

func TestServiceReloadSharesConcurrentLoads(t *testing.T) {
	src := &countingSource{data: []byte(sample), gate: make(chan struct{})}
	svc := catalog.NewService(src, nil)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Reload(context.Background())
			assert.NoError(t, err)
		}()
	}
	assert.Eventually(t, func() bool { return src.loads.Load() == 1 }, time.Second, time.Millisecond)
	close(src.gate)
	wg.Wait()
	assert.LessOrEqual(t, src.loads.Load(), int32(5))
	assert.True(t, svc.Known("BONE"))
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	data, err := catalog.FileSource(path).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, sample, string(data))

	_, err = catalog.FileSource(filepath.Join(t.TempDir(), "missing.yaml")).Load(context.Background())
	assert.Error(t, err)
}

func TestStorageSource(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "loot", "catalog/items.yaml", mock.Anything).
		Return(io.NopCloser(bytes.NewReader([]byte(sample))), nil).Once()

	svc := catalog.NewService(catalog.StorageSource(client, "loot", "catalog/items.yaml"), nil)
	_, err := svc.Reload(context.Background())
	require.NoError(t, err)
	assert.True(t, svc.Known("ENDER_PEARL"))
	client.AssertExpectations(t)

	failing := new(mocks.Client)
	failing.On("GetObject", mock.Anything, "loot", "catalog/items.yaml", minio.GetObjectOptions{}).
		Return(nil, errors.New("no such key"))
	_, err = catalog.StorageSource(failing, "loot", "catalog/items.yaml").Load(context.Background())
	assert.ErrorContains(t, err, "no such key")
}
