package controllers_test

import (
	"bytes"
	"context"
	"database/sql"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/kyobegeorge57/falcon-finance/config"
	"github.com/kyobegeorge57/falcon-finance/controllers"
	"github.com/kyobegeorge57/falcon-finance/uploads"
)

func DbMock(t *testing.T) (*sql.DB, *gorm.DB, sqlmock.Sqlmock) {
	sqldb, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	gormdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn: sqldb,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		t.Fatal(err)
	}
	return sqldb, gormdb, mock
}

func testEnv(t *testing.T, db *gorm.DB) *controllers.Env {
	return &controllers.Env{
		DB: db,
		Cfg: &config.Config{
			Server: config.ServerConfig{
				SecretKey:         "test-secret",
				ExpirationMinutes: 5,
			},
		},
		Uploads: &uploads.Store{Root: t.TempDir()},
	}
}

// formRequest builds the multipart POST the browser forms produce.
func formRequest(t *testing.T, fields map[string]string) *http.Request {
	return fileFormRequest(t, fields, "", "", nil)
}

// fileFormRequest additionally attaches one uploaded file when
// fileField is non-empty.
func fileFormRequest(t *testing.T, fields map[string]string, fileField, filename string, fileData []byte) *http.Request {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if fileField != "" {
		part, err := writer.CreateFormFile(fileField, filename)
		require.NoError(t, err)
		_, err = part.Write(fileData)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req, err := http.NewRequest(http.MethodPost, "/", body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

// brokenUploads returns an upload store whose root is a plain file,
// so every save fails before touching the database.
func brokenUploads(t *testing.T) *uploads.Store {
	blocked := filepath.Join(t.TempDir(), "blocked")
	require.NoError(t, os.WriteFile(blocked, []byte("plain file"), 0o644))
	return &uploads.Store{Root: blocked}
}

// fakeSessionCache records revocation marks in memory.
type fakeSessionCache struct {
	revoked map[string]time.Duration
}

func (f *fakeSessionCache) Exists(ctx context.Context, keys ...string) *redis.IntCmd {
	var hits int64
	for _, key := range keys {
		if _, ok := f.revoked[key]; ok {
			hits++
		}
	}
	return redis.NewIntResult(hits, nil)
}

func (f *fakeSessionCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	if f.revoked == nil {
		f.revoked = map[string]time.Duration{}
	}
	f.revoked[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func flashMessage(w *httptest.ResponseRecorder) string {
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "flash" {
			value, _ := url.QueryUnescape(cookie.Value)
			return value
		}
	}
	return ""
}
