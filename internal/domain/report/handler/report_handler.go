// Package handler implements the report upload HTTP handlers.
package handler

import (
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/chaotic-justice/payrecon/internal/domain/common"
	"github.com/chaotic-justice/payrecon/internal/domain/report/service"
)

// Multipart field names, fixed by the upload form contract.
const (
	fieldReports = "files"
	fieldMapping = "store_file"
)

// ReportHandler serves the two report-processing endpoints.
type ReportHandler struct {
	svc            *service.Service
	logger         *slog.Logger
	maxFiles       int
	maxUploadBytes int64
}

// NewReportHandler constructs a new handler.
func NewReportHandler(svc *service.Service, logger *slog.Logger, maxFiles int, maxUploadBytes int64) *ReportHandler {
	return &ReportHandler{
		svc:            svc,
		logger:         logger,
		maxFiles:       maxFiles,
		maxUploadBytes: maxUploadBytes,
	}
}

// ProcessPayments handles POST /v1/reports/payments (text-line reports).
func (h *ReportHandler) ProcessPayments(w http.ResponseWriter, r *http.Request) {
	h.process(w, r, service.VariantPayments)
}

// ProcessCostco handles POST /v1/reports/costco (structured remittances).
func (h *ReportHandler) ProcessCostco(w http.ResponseWriter, r *http.Request) {
	h.process(w, r, service.VariantCostco)
}

func (h *ReportHandler) process(w http.ResponseWriter, r *http.Request, variant service.Variant) {
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

	// The file-count contract is checked before any content is read.
	reportHeaders := r.MultipartForm.File[fieldReports]
	if len(reportHeaders) > h.maxFiles {
		common.WriteError(h.logger, w,
			fmt.Errorf("%w: got %d, limit is %d", common.ErrTooManyFiles, len(reportHeaders), h.maxFiles))
		return
	}

	mapping, err := h.readMapping(r)
	if err != nil {
		common.WriteError(h.logger, w, err)
		return
	}

	files := make([]service.InputFile, 0, len(reportHeaders))
	for _, fh := range reportHeaders {
		file, err := readPart(fh)
		if err != nil {
			common.WriteError(h.logger, w, fmt.Errorf("%w: reading %s: %v", common.ErrBadRequest, fh.Filename, err))
			return
		}
		files = append(files, file)
	}

	res, err := h.svc.Process(r.Context(), variant, mapping, files)
	if err != nil {
		common.WriteError(h.logger, w, err)
		return
	}
	common.WriteJSON(h.logger, w, http.StatusOK, res)
}

func (h *ReportHandler) readMapping(r *http.Request) (*service.InputFile, error) {
	headers := r.MultipartForm.File[fieldMapping]
	if len(headers) == 0 {
		return nil, common.ErrMissingMapping
	}
	file, err := readPart(headers[0])
	if err != nil {
		return nil, fmt.Errorf("%w: reading store mapping: %v", common.ErrBadRequest, err)
	}
	return &file, nil
}

func readPart(fh *multipart.FileHeader) (service.InputFile, error) {
	f, err := fh.Open()
	if err != nil {
		return service.InputFile{}, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return service.InputFile{}, err
	}
	return service.InputFile{Name: fh.Filename, Data: data}, nil
}
