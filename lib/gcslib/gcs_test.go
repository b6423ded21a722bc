package gcslib

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type uploadServer struct {
	mu       sync.Mutex
	requests []string
	bodies   []string
}

func (u *uploadServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	u.mu.Lock()
	u.requests = append(u.requests, r.Method+" "+r.URL.Path)
	u.bodies = append(u.bodies, string(body))
	u.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"bucket":"bucket","name":"anonymized.csv"}`))
}

func (u *uploadServer) Requests() []string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.requests
}

func newTestClient(t *testing.T) (GCSClient, *uploadServer) {
	handler := &uploadServer{}
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	t.Setenv("STORAGE_EMULATOR_HOST", strings.TrimPrefix(server.URL, "http://"))

	client, err := NewGCSClient(context.Background(), "", "")
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, client.Close()) })
	return client, handler
}

func TestGCSClient_UploadFile(t *testing.T) {
	client, server := newTestClient(t)

	fp := filepath.Join(t.TempDir(), "anonymized.csv")
	require.NoError(t, os.WriteFile(fp, []byte("Gender,Departure Date\nFemale,1/2022\n"), 0o644))

	assert.NoError(t, client.UploadFile(context.Background(), "bucket", "anonymized.csv", fp))
	requests := server.Requests()
	require.Len(t, requests, 1)
	assert.Equal(t, "POST /upload/storage/v1/b/bucket/o", requests[0])
	assert.Contains(t, server.bodies[0], "Female,1/2022")
}

func TestGCSClient_UploadFile_ReadError(t *testing.T) {
	client, server := newTestClient(t)

	// Opening a directory works but reading from it fails, so the copy errors before anything is written.
	err := client.UploadFile(context.Background(), "bucket", "anonymized.csv", t.TempDir())
	assert.ErrorContains(t, err, "failed to write file to GCS")

	// The upload is abandoned instead of committing an empty object.
	assert.Empty(t, server.Requests())
}

func TestGCSClient_UploadFile_MissingFile(t *testing.T) {
	client, server := newTestClient(t)

	err := client.UploadFile(context.Background(), "bucket", "anonymized.csv", filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorContains(t, err, "failed to open file")
	assert.Empty(t, server.Requests())
}
