package api

import (
	"bytes"
	"context"
	"net/http"
	"strconv"

	"github.com/okian/grapplerank/internal/adapters/export"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportDependencies defines the workbook export operation.
type ExportDependencies interface {
	Export(ctx context.Context) (export.View, error)
}

// ExportHandler streams the dashboard as a workbook.
type ExportHandler struct {
	deps ExportDependencies
}

// NewExportHandler creates a new export handler.
func NewExportHandler(deps ExportDependencies) *ExportHandler {
	return &ExportHandler{deps: deps}
}

// HandleExport handles GET /export.xlsx. The workbook is rendered to memory
// first so failures still produce a JSON error.
func (h *ExportHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	const op = "api.export"
	view, err := h.deps.Export(r.Context())
	if err != nil {
		writeServiceError(w, r, op, err)
		return
	}
	var buf bytes.Buffer
	if err := export.Write(&buf, view); err != nil {
		writeError(w, r, http.StatusInternalServerError, "export_failed", NewKind(op, ErrExport, err.Error()))
		return
	}
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="grapplerank.xlsx"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
