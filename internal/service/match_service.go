package service

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/udaan-api/internal/dto"
	"github.com/noah-isme/udaan-api/internal/eligibility"
	"github.com/noah-isme/udaan-api/internal/models"
	appErrors "github.com/noah-isme/udaan-api/pkg/errors"
)

type catalogReader interface {
	Records() ([]models.Scholarship, error)
	Find(id string) (*models.Scholarship, error)
}

// MatchService runs the eligibility filter over the loaded catalog and keeps
// the latest completed view per client.
type MatchService struct {
	catalog   catalogReader
	validator *validator.Validate
	metrics   *MetricsService
	logger    *zap.Logger

	seq    atomic.Uint64
	mu     sync.Mutex
	latest map[string]dto.MatchResult
}

// NewMatchService constructs a MatchService.
func NewMatchService(catalog catalogReader, validate *validator.Validate, metrics *MetricsService, logger *zap.Logger) *MatchService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MatchService{
		catalog:   catalog,
		validator: validate,
		metrics:   metrics,
		logger:    logger,
		latest:    make(map[string]dto.MatchResult),
	}
}

// Match filters the catalog with the given criteria. The result becomes the
// client's latest view unless a newer submission already completed.
func (s *MatchService) Match(ctx context.Context, clientID string, criteria models.FilterCriteria) (*dto.MatchResult, error) {
	if err := s.validate(criteria); err != nil {
		return nil, err
	}
	// The sequence is taken at submission so a slow older run cannot
	// overwrite a newer one that finished first.
	seq := s.seq.Add(1)

	records, err := s.catalog.Records()
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	matched := eligibility.Filter(records, criteria)
	result := dto.MatchResult{
		Criteria:     criteria,
		Scholarships: matched,
		Total:        len(records),
		Matching:     len(matched),
		Sequence:     seq,
		CompletedAt:  time.Now().UTC(),
	}
	s.metrics.RecordMatch(len(matched))
	s.remember(clientID, result)
	return &result, nil
}

func (s *MatchService) remember(clientID string, result dto.MatchResult) {
	if clientID == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if current, ok := s.latest[clientID]; ok && current.Sequence > result.Sequence {
		s.logger.Debug("discarding superseded match result",
			zap.String("client_id", clientID),
			zap.Uint64("sequence", result.Sequence),
			zap.Uint64("latest_sequence", current.Sequence))
		return
	}
	s.latest[clientID] = result
}

// Latest returns the client's most recent completed view.
func (s *MatchService) Latest(clientID string) (*dto.MatchResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result, ok := s.latest[clientID]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "no match results for this client")
	}
	return &result, nil
}

// Check explains one scholarship against the criteria.
func (s *MatchService) Check(ctx context.Context, id string, criteria models.FilterCriteria) (*dto.EligibilityCheck, error) {
	if err := s.validate(criteria); err != nil {
		return nil, err
	}
	record, err := s.catalog.Find(id)
	if err != nil {
		return nil, err
	}
	checks := eligibility.Explain(record.Eligibility, criteria)
	return &dto.EligibilityCheck{
		ScholarshipID: record.ID,
		Name:          record.Name,
		Eligible:      eligibility.Match(record.Eligibility, criteria),
		Checks:        checks,
		IncomeLimit:   record.Eligibility.IncomeLimit,
	}, nil
}

func (s *MatchService) validate(criteria models.FilterCriteria) error {
	if err := s.validator.Struct(criteria); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid criteria")
	}
	return nil
}
