package checks

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"spawner-loot/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const object = "catalog/items.yaml"

func TestCheckCatalog(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("ListObjects", mock.Anything, "loot", mock.Anything).Return(mocks.Listing())

		report, err := CheckCatalog(ctx, mockClient, "loot", object)
		require.NoError(t, err)
		assert.False(t, report.Present)
		assert.False(t, report.Valid)
		mockClient.AssertNotCalled(t, "GetObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Valid", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("ListObjects", mock.Anything, "loot", mock.Anything).Return(mocks.Listing(minio.ObjectInfo{Key: object}))
		mockClient.On("GetObject", mock.Anything, "loot", object, mock.Anything).
			Return(io.NopCloser(bytes.NewReader([]byte("kinds:\n  BONE: {price: 1}\n  ARROW: {}\n"))), nil)

		report, err := CheckCatalog(ctx, mockClient, "loot", object)
		require.NoError(t, err)
		assert.True(t, report.Present)
		assert.True(t, report.Valid)
		assert.Equal(t, 2, report.Kinds)
		assert.Empty(t, report.Error)
	})

	t.Run("Invalid", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("ListObjects", mock.Anything, "loot", mock.Anything).Return(mocks.Listing(minio.ObjectInfo{Key: object}))
		mockClient.On("GetObject", mock.Anything, "loot", object, mock.Anything).
			Return(io.NopCloser(bytes.NewReader([]byte("kinds:\n  BONE: {max_stack: -1}\n"))), nil)

		report, err := CheckCatalog(ctx, mockClient, "loot", object)
		require.NoError(t, err)
		assert.True(t, report.Present)
		assert.False(t, report.Valid)
		assert.NotEmpty(t, report.Error)
	})

	t.Run("Prefix Match Is Not Presence", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("ListObjects", mock.Anything, "loot", mock.Anything).
			Return(mocks.Listing(minio.ObjectInfo{Key: object + ".bak"}))

		report, err := CheckCatalog(ctx, mockClient, "loot", object)
		require.NoError(t, err)
		assert.False(t, report.Present)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("ListObjects", mock.Anything, "loot", mock.Anything).Return(mocks.Listing(minio.ObjectInfo{Key: object}))
		mockClient.On("GetObject", mock.Anything, "loot", object, mock.Anything).Return(nil, errors.New("timeout"))

		_, err := CheckCatalog(ctx, mockClient, "loot", object)
		assert.ErrorContains(t, err, "timeout")
	})
}
