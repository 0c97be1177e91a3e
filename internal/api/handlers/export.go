package handlers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jeichenberger88/golf-tracker/internal/api/response"
	"github.com/jeichenberger88/golf-tracker/internal/export"
	"github.com/jeichenberger88/golf-tracker/internal/storage/models"
)

// RoundLister loads all rounds for export.
type RoundLister interface {
	ListRounds(ctx context.Context) ([]*models.Round, error)
}

// ExportHandler streams round exports as file downloads.
type ExportHandler struct {
	service RoundLister
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(service RoundLister) *ExportHandler {
	return &ExportHandler{service: service}
}

// ExportRounds writes all rounds as a CSV or JSON download. The format
// is chosen with ?format=csv|json and defaults to CSV.
func (h *ExportHandler) ExportRounds(w http.ResponseWriter, r *http.Request) {
	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		response.BadRequest(w, err)
		return
	}

	rounds, err := h.service.ListRounds(r.Context())
	if err != nil {
		response.InternalError(w, err)
		return
	}

	filename := fmt.Sprintf("rounds-%s.%s", time.Now().Format("2006-01-02"), format)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	switch format {
	case export.FormatCSV:
		w.Header().Set("Content-Type", "text/csv")
	case export.FormatJSON:
		w.Header().Set("Content-Type", "application/json")
	}

	if err := export.WriteRounds(w, rounds, format); err != nil {
		// Headers are already written; nothing useful left to send.
		log.Printf("export rounds: %v", err)
	}
}
