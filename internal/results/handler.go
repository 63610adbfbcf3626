package results

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/chaotic-justice/payrecon/internal/domain/common"
)

// DownloadHandler serves stored workbooks by token.
type DownloadHandler struct {
	store  *Store
	logger *slog.Logger
}

// NewDownloadHandler constructs a download handler over store.
func NewDownloadHandler(store *Store, logger *slog.Logger) *DownloadHandler {
	return &DownloadHandler{store: store, logger: logger}
}

// Get handles GET /v1/downloads/{token}.
func (h *DownloadHandler) Get(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("token")
	entry, ok := h.store.Get(token)
	if !ok {
		common.WriteError(h.logger, w,
			fmt.Errorf("%w: no analysis available for this token; upload a file first", common.ErrNotFound))
		return
	}

	w.Header().Set("Content-Type", entry.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", entry.Filename))
	if _, err := w.Write(entry.Data); err != nil {
		h.logger.Error("failed to write download response", slog.Any("error", err))
	}
}
