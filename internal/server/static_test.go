package server

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/watchingglass/fortune/internal/fortune"
)

func TestStaticAssets(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.png"), []byte("png"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}

	attempts := NewAttempts(fortune.NewQuiz(fortune.DefaultCatalog()), NewMemoryStore())
	h := NewHandler(testLogger(), attempts, dir, nil)

	rec := get(h, "/a.png")
	if rec.Code != http.StatusOK || rec.Body.String() != "png" {
		t.Errorf("GET /a.png: status = %d, body = %q", rec.Code, rec.Body.String())
	}
	for _, path := range []string{"/image.png", "/sub", "/../go.mod"} {
		if rec := get(h, path); rec.Code != http.StatusNotFound {
			t.Errorf("GET %s: status = %d, want 404", path, rec.Code)
		}
	}
}
