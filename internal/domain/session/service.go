package session

import "log/slog"

// Service drives the session for a presentation layer: it applies the pure
// State transitions and logs outcomes. Execution is single-user and
// synchronous; there is no locking because there are no concurrent callers.
type Service struct {
	logger *slog.Logger
	state  State
}

// NewService creates a service over an empty session.
func NewService(logger *slog.Logger) *Service {
	return &Service{logger: logger, state: NewState()}
}

// State returns the current immutable state.
func (s *Service) State() State { return s.state }

// LoadBatch applies one upload action and logs every per-file outcome.
func (s *Service) LoadBatch(files []File) (BatchResult, error) {
	next, result, err := s.state.WithBatch(files)
	if err != nil {
		s.logger.Warn("batch rejected", "batchID", result.ID, "files", len(files), "error", err)
		return result, err
	}

	for _, outcome := range result.Outcomes {
		if outcome.Err != nil {
			s.logger.Warn("file rejected", "batchID", result.ID, "file", outcome.FileName, "error", outcome.Err)
			continue
		}
		s.logger.Info("file loaded", "batchID", result.ID, "file", outcome.FileName, "sheets", outcome.Sheets)
	}

	s.state = next
	return result, nil
}

// Select replaces the active selection.
func (s *Service) Select(sel Selection) {
	s.state = s.state.WithSelection(sel)
}

// Clear resets the session.
func (s *Service) Clear() {
	s.state = s.state.Cleared()
	s.logger.Info("session cleared")
}
