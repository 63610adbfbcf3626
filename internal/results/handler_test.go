package results

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func downloadMux(h *DownloadHandler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/downloads/{token}", h.Get)
	return mux
}

func TestDownload(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := NewStore(time.Minute)
	const contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	token := store.Put("Payments_2026-01-04.xlsx", contentType, []byte("workbook-bytes"))

	mux := downloadMux(NewDownloadHandler(store, logger))

	req := httptest.NewRequest(http.MethodGet, "/v1/downloads/"+token, nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "workbook-bytes", rr.Body.String())
	assert.Equal(t, `attachment; filename="Payments_2026-01-04.xlsx"`, rr.Header().Get("Content-Disposition"))
	assert.Equal(t, contentType, rr.Header().Get("Content-Type"))
}

func TestDownloadUnknownToken(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := NewStore(time.Minute)

	mux := downloadMux(NewDownloadHandler(store, logger))

	req := httptest.NewRequest(http.MethodGet, "/v1/downloads/no-such-token", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "no analysis available")
}
