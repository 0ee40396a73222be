package service

import (
	"context"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/splitzee/splitzee/internal/calculator"
	"github.com/splitzee/splitzee/internal/export"
	"github.com/splitzee/splitzee/internal/metrics"
	"github.com/splitzee/splitzee/internal/models"
	"github.com/splitzee/splitzee/pkg/api"
)

var _ api.SplitServiceHandler = (*SplitService)(nil)

// SplitService implements the Connect SplitService.
// It is stateless: splits are computed per request and never stored.
type SplitService struct {
	metrics *metrics.Metrics
}

// NewSplitService creates a new SplitService. m may be nil.
func NewSplitService(m *metrics.Metrics) *SplitService {
	return &SplitService{metrics: m}
}

// calculate parses the strategy and runs the split engine.
// An empty strategy means an equal split.
func (s *SplitService) calculate(req *api.CalculateSplitRequest) (models.SplitResult, error) {
	strategy := models.SplitEqual
	if strings.TrimSpace(req.Strategy) != "" {
		parsed, err := calculator.ParseStrategy(req.Strategy)
		if err != nil {
			return models.SplitResult{}, connect.NewError(connect.CodeInvalidArgument, err)
		}
		strategy = parsed
	}

	result, err := calculator.Calculate(req.Total, strategy, participantsFromAPI(req.Participants), req.Notes)
	if err != nil {
		s.metrics.SplitRejected(string(strategy))
		return models.SplitResult{}, connect.NewError(connect.CodeInvalidArgument, err)
	}
	s.metrics.SplitCalculated(string(strategy))
	return result, nil
}

// CalculateSplit divides a bill among participants.
func (s *SplitService) CalculateSplit(ctx context.Context, req *connect.Request[api.CalculateSplitRequest]) (*connect.Response[api.CalculateSplitResponse], error) {
	slog.Info("CalculateSplit request received",
		"total", req.Msg.Total,
		"strategy", req.Msg.Strategy,
		"participants_count", len(req.Msg.Participants),
	)

	result, err := s.calculate(req.Msg)
	if err != nil {
		slog.Error("CalculateSplit failed", "error", err)
		return nil, err
	}

	for _, p := range result.Participants {
		slog.Debug("Participant share", "name", p.Name, "amount", p.Amount)
	}

	return connect.NewResponse(&api.CalculateSplitResponse{
		Total:        result.Total,
		Strategy:     string(result.Strategy),
		Participants: participantsToAPI(result.Participants),
		Notes:        result.Notes,
	}), nil
}

// ExportSplit computes a split and returns it as CSV and as share text.
func (s *SplitService) ExportSplit(ctx context.Context, req *connect.Request[api.ExportSplitRequest]) (*connect.Response[api.ExportSplitResponse], error) {
	slog.Info("ExportSplit request received", "participants_count", len(req.Msg.Participants))

	result, err := s.calculate(&req.Msg.CalculateSplitRequest)
	if err != nil {
		slog.Error("ExportSplit failed", "error", err)
		return nil, err
	}

	csv, err := export.SplitCSV(result.Participants)
	if err != nil {
		slog.Error("ExportSplit CSV failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	return connect.NewResponse(&api.ExportSplitResponse{
		Filename:  export.SplitFilename,
		CSV:       csv,
		ShareText: export.ShareText(result),
	}), nil
}
