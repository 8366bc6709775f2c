package integrity

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"spawner-loot/core/storage/mocks"
	"spawner-loot/feature/spawner/models"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupTestApp(t *testing.T) (*fiber.App, *mocks.Client, *Service) {
	app := fiber.New()
	mockClient := new(mocks.Client)
	svc := NewService(mockClient, "test-bucket", catalogObject, setupDB(t), nil)
	NewHandler(svc).RegisterRoutes(app)
	return app, mockClient, svc
}

func decode(t *testing.T, app *fiber.App, path string) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil), 2000)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestHandleStructureCheck(t *testing.T) {
	app, mockClient, _ := setupTestApp(t)
	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
	mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return(mocks.Listing())

	status, body := decode(t, app, "/integrity/structure")
	assert.Equal(t, 200, status)
	assert.Equal(t, "checked", body["status"])
	assert.NotEmpty(t, body["missing"])
}

func TestHandleStructureFix(t *testing.T) {
	app, mockClient, _ := setupTestApp(t)
	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
	mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return(mocks.Listing())
	mockClient.On("PutObject", mock.Anything, "test-bucket", mock.Anything, mock.Anything, int64(0), mock.Anything).Return(minio.UploadInfo{}, nil)

	status, body := decode(t, app, "/integrity/structure?fix=true")
	assert.Equal(t, 200, status)
	assert.Equal(t, "fixed", body["status"])
	mockClient.AssertNumberOfCalls(t, "PutObject", 2)
}

func TestHandleStructureError(t *testing.T) {
	app, mockClient, _ := setupTestApp(t)
	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(false, assert.AnError)

	status, body := decode(t, app, "/integrity/structure")
	assert.Equal(t, 500, status)
	assert.NotEmpty(t, body["error"])
}

func TestHandleCatalogCheck(t *testing.T) {
	app, mockClient, _ := setupTestApp(t)
	mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return(mocks.Listing())

	status, body := decode(t, app, "/integrity/catalog")
	assert.Equal(t, 200, status)
	assert.Equal(t, catalogObject, body["object"])
	assert.Equal(t, false, body["present"])
}

func TestHandleCatalogCheckNoStorage(t *testing.T) {
	app := fiber.New()
	NewHandler(NewService(nil, "", catalogObject, nil, nil)).RegisterRoutes(app)

	status, _ := decode(t, app, "/integrity/catalog")
	assert.Equal(t, 503, status)
}

func TestHandleSchemaCheck(t *testing.T) {
	app, _, _ := setupTestApp(t)

	status, body := decode(t, app, "/integrity/schema")
	assert.Equal(t, 200, status)
	assert.Equal(t, true, body["matched"])
}

func TestHandleLootCheck(t *testing.T) {
	app, _, svc := setupTestApp(t)
	require.NoError(t, svc.db.Create(&models.LootRecord{SpawnerID: "gone", Signature: "BONE", Kind: "BONE", Count: "1"}).Error)

	status, body := decode(t, app, "/integrity/loot")
	assert.Equal(t, 200, status)
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, []any{"gone"}, body["orphans"])
}

func TestHandleIntegrityCheck(t *testing.T) {
	app, mockClient, _ := setupTestApp(t)
	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(false, assert.AnError)
	mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return(mocks.Listing())

	status, body := decode(t, app, "/integrity")
	assert.Equal(t, 200, status)
	for _, key := range []string{"structure", "catalog", "schema", "loot", "snapshots"} {
		assert.Contains(t, body, key)
	}
}

func TestHandleSnapshotCheck(t *testing.T) {
	app, mockClient, svc := setupTestApp(t)
	require.NoError(t, svc.db.Create(&models.SpawnerRecord{ID: "sp-1", Kind: "ZOMBIE"}).Error)
	mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return(mocks.Listing())

	status, body := decode(t, app, "/integrity/snapshots")
	assert.Equal(t, 200, status)
	assert.Equal(t, []any{"sp-1"}, body["missing"])
}
