package exporting

import (
	"bytes"
	"context"
	"encoding/csv"
	"strconv"
	"time"

	"go.uber.org/zap"

	"fitcenter-backend/internal/repository"
	"fitcenter-backend/internal/repository/sheets"
	"fitcenter-backend/pkg/apperrors"
)

var feedbackHeader = []string{"id", "name", "email", "type", "rating", "message", "date", "status"}

// Service builds CSV export payloads and, when a sink is configured,
// mirrors the same rows into a spreadsheet. The mirror is best-effort:
// a sink failure never fails the export itself.
type Service struct {
	feedback repository.FeedbackStore
	sink     sheets.ExportSink
	logger   *zap.Logger
}

func NewService(feedback repository.FeedbackStore, sink sheets.ExportSink, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{feedback: feedback, sink: sink, logger: logger}
}

// FeedbackCSV renders the full feedback collection as CSV.
func (s *Service) FeedbackCSV(ctx context.Context) ([]byte, error) {
	items, err := s.feedback.List(ctx, repository.FeedbackFilter{})
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(feedbackHeader); err != nil {
		return nil, apperrors.Internal(err)
	}

	sinkRows := make([][]interface{}, 0, len(items))
	for _, fb := range items {
		row := []string{
			fb.ID.Hex(),
			fb.Name,
			fb.Email,
			fb.Type,
			strconv.Itoa(fb.Rating),
			fb.Message,
			fb.Date.Format(time.RFC3339),
			fb.Status,
		}
		if err := w.Write(row); err != nil {
			return nil, apperrors.Internal(err)
		}

		sinkRow := make([]interface{}, len(row))
		for i, v := range row {
			sinkRow[i] = v
		}
		sinkRows = append(sinkRows, sinkRow)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, apperrors.Internal(err)
	}

	s.mirror(ctx, "FeedbackExport!A1", sinkRows)
	return buf.Bytes(), nil
}

func (s *Service) mirror(ctx context.Context, sheetRange string, rows [][]interface{}) {
	if s.sink == nil || len(rows) == 0 {
		return
	}
	if err := s.sink.AppendRows(ctx, sheetRange, rows); err != nil {
		s.logger.Error("sheet mirror failed", zap.String("range", sheetRange), zap.Error(err))
	}
}
