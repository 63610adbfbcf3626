// Package handler implements the sales upload HTTP handler.
package handler

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/chaotic-justice/payrecon/internal/domain/common"
	"github.com/chaotic-justice/payrecon/internal/domain/sales/service"
)

// fieldSales is the multipart field carrying the export, fixed by the
// upload form contract.
const fieldSales = "file"

// SalesHandler serves the sales-validation endpoint.
type SalesHandler struct {
	svc            *service.Service
	logger         *slog.Logger
	maxUploadBytes int64
}

// NewSalesHandler constructs a new handler.
func NewSalesHandler(svc *service.Service, logger *slog.Logger, maxUploadBytes int64) *SalesHandler {
	return &SalesHandler{svc: svc, logger: logger, maxUploadBytes: maxUploadBytes}
}

// Process handles POST /v1/sales.
func (h *SalesHandler) Process(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		common.WriteError(h.logger, w, fmt.Errorf("%w: parsing upload: %v", common.ErrBadRequest, err))
		return
	}
	defer func() {
		if err := r.MultipartForm.RemoveAll(); err != nil {
			h.logger.Warn("failed to clean up multipart temp files", "error", err)
		}
	}()

	headers := r.MultipartForm.File[fieldSales]
	if len(headers) == 0 {
		common.WriteError(h.logger, w, common.ErrMissingSales)
		return
	}

	f, err := headers[0].Open()
	if err != nil {
		common.WriteError(h.logger, w, fmt.Errorf("%w: reading sales export: %v", common.ErrBadRequest, err))
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		common.WriteError(h.logger, w, fmt.Errorf("%w: reading sales export: %v", common.ErrBadRequest, err))
		return
	}

	res, err := h.svc.Process(r.Context(), &service.InputFile{Name: headers[0].Filename, Data: data})
	if err != nil {
		common.WriteError(h.logger, w, err)
		return
	}
	common.WriteJSON(h.logger, w, http.StatusOK, res)
}
