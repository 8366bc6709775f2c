package checks

import (
	"context"
	"errors"
	"testing"

	"spawner-loot/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestCheckStructure(t *testing.T) {
	t.Run("Bucket Missing", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "loot").Return(false, nil)

		_, err := CheckStructure(context.Background(), mockClient, "loot")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "does not exist")
	})

	t.Run("All Missing", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "loot").Return(true, nil)
		mockClient.On("ListObjects", mock.Anything, "loot", mock.Anything).Return(mocks.Listing())

		missing, err := CheckStructure(context.Background(), mockClient, "loot")
		assert.NoError(t, err)
		assert.Equal(t, RequiredFolders, missing)
	})

	t.Run("All Present", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "loot").Return(true, nil)
		for _, folder := range RequiredFolders {
			prefix := folder + "/"
			mockClient.On("ListObjects", mock.Anything, "loot", mock.MatchedBy(func(opts minio.ListObjectsOptions) bool {
				return opts.Prefix == prefix
			})).Return(mocks.Keys(prefix + "a.json"))
		}

		missing, err := CheckStructure(context.Background(), mockClient, "loot")
		assert.NoError(t, err)
		assert.Empty(t, missing)
	})

	t.Run("Listing Error Counts As Missing", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "loot").Return(true, nil)
		mockClient.On("ListObjects", mock.Anything, "loot", mock.Anything).
			Return(mocks.Listing(minio.ObjectInfo{Err: errors.New("denied")}))

		missing, err := CheckStructure(context.Background(), mockClient, "loot")
		assert.NoError(t, err)
		assert.Len(t, missing, len(RequiredFolders))
	})
}

func TestFixStructure(t *testing.T) {
	logger := zap.NewNop()

	t.Run("Creates Placeholders", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("PutObject", mock.Anything, "loot", "snapshots/", mock.Anything, int64(0), mock.Anything).Return(minio.UploadInfo{}, nil)

		err := FixStructure(context.Background(), mockClient, "loot", logger, []string{"snapshots"})
		assert.NoError(t, err)
		mockClient.AssertNumberOfCalls(t, "PutObject", 1)
	})

	t.Run("Stops On Error", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("PutObject", mock.Anything, "loot", mock.Anything, mock.Anything, int64(0), mock.Anything).Return(minio.UploadInfo{}, errors.New("read only"))

		err := FixStructure(context.Background(), mockClient, "loot", logger, []string{"catalog", "snapshots"})
		assert.ErrorContains(t, err, "catalog")
		mockClient.AssertNumberOfCalls(t, "PutObject", 1)
	})
}
