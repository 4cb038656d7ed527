package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/noah-isme/udaan-api/internal/dto"
	"github.com/noah-isme/udaan-api/internal/eligibility"
	"github.com/noah-isme/udaan-api/internal/models"
	"github.com/noah-isme/udaan-api/pkg/database"
	appErrors "github.com/noah-isme/udaan-api/pkg/errors"
)

const (
	catalogCacheKey = "catalog:scholarships"

	// Cache-allowed and store-only fetches coalesce separately so a Refresh
	// never joins a flight that may answer from the cache.
	catalogFlightCache = "catalog:cache"
	catalogFlightStore = "catalog:store"

	catalogSourceStore = "store"
	catalogSourceCache = "cache"
)

type scholarshipLister interface {
	ListAll(ctx context.Context) ([]models.ScholarshipRow, error)
}

// CatalogConfig tunes catalog loading.
type CatalogConfig struct {
	CacheTTL         time.Duration
	RefreshInterval  time.Duration
	FetchTimeout     time.Duration
	KeepStaleOnError bool
}

// cachedCatalog is the snapshot written to Redis after a store read.
type cachedCatalog struct {
	Records  []models.Scholarship `json:"records"`
	Invalid  int                  `json:"invalid"`
	LoadedAt time.Time            `json:"loaded_at"`
}

// CatalogService holds the scholarship list in memory. The list is replaced
// wholesale on every successful fetch and is never mutated in place.
type CatalogService struct {
	repo    scholarshipLister
	cache   *CacheService
	metrics *MetricsService
	logger  *zap.Logger
	cfg     CatalogConfig
	group   singleflight.Group

	mu       sync.RWMutex
	state    models.CatalogStatus
	records  []models.Scholarship
	invalid  int
	stale    bool
	source   string
	loadedAt time.Time
	lastErr  *appErrors.Error
	// storeReads counts completed store reads; a cached snapshot read before
	// the latest one is discarded.
	storeReads uint64
}

// NewCatalogService constructs the catalog in the loading state.
func NewCatalogService(repo scholarshipLister, cache *CacheService, metrics *MetricsService, logger *zap.Logger, cfg CatalogConfig) *CatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = 10 * time.Second
	}
	return &CatalogService{
		repo:    repo,
		cache:   cache,
		metrics: metrics,
		logger:  logger,
		cfg:     cfg,
		state:   models.CatalogStatusLoading,
		records: []models.Scholarship{},
	}
}

// Load performs the startup fetch. A cached snapshot is used when available.
func (s *CatalogService) Load(ctx context.Context) error {
	return s.fetch(ctx, true, false)
}

// Refresh re-reads the store, bypassing and then rewriting the cache.
func (s *CatalogService) Refresh(ctx context.Context) error {
	return s.fetch(ctx, false, false)
}

// Run refreshes the catalog every RefreshInterval until ctx is cancelled.
// Background refreshes keep the current list visible while they run.
func (s *CatalogService) Run(ctx context.Context) {
	if s.cfg.RefreshInterval <= 0 {
		return
	}
	ticker := time.NewTicker(s.cfg.RefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.fetch(ctx, false, true); err != nil {
				s.logger.Warn("background catalog refresh failed", zap.Error(err))
			}
		}
	}
}

// fetch coalesces concurrent callers of the same mode into one read.
func (s *CatalogService) fetch(ctx context.Context, useCache, quiet bool) error {
	key := catalogFlightStore
	if useCache {
		key = catalogFlightCache
	}
	ch := s.group.DoChan(key, func() (interface{}, error) {
		return nil, s.load(context.WithoutCancel(ctx), useCache, quiet)
	})
	select {
	case <-ctx.Done():
		return ctx.Err()
	case res := <-ch:
		return res.Err
	}
}

func (s *CatalogService) load(ctx context.Context, useCache, quiet bool) error {
	if !quiet {
		s.mu.Lock()
		s.state = models.CatalogStatusLoading
		s.mu.Unlock()
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.FetchTimeout)
	defer cancel()

	if useCache {
		seen := s.storeReadCount()
		var cached cachedCatalog
		if hit, err := s.cache.Get(ctx, catalogCacheKey, &cached); err == nil && hit && cached.Records != nil {
			if !s.install(cached.Records, cached.Invalid, cached.LoadedAt, catalogSourceCache, seen) {
				s.logger.Debug("cached catalog superseded by a store read")
				_, err := s.Records()
				return err
			}
			return nil
		}
	}

	rows, err := s.repo.ListAll(ctx)
	if err != nil {
		appErr := classifyFetchError(err)
		if !s.cfg.KeepStaleOnError {
			// A later Load must not resurrect records the store stopped serving.
			_ = s.cache.Invalidate(context.WithoutCancel(ctx), catalogCacheKey)
		}
		s.fail(appErr)
		return appErr
	}

	records, invalid := s.decode(rows)
	loadedAt := time.Now().UTC()
	s.install(records, invalid, loadedAt, catalogSourceStore, 0)
	_ = s.cache.Set(ctx, catalogCacheKey, cachedCatalog{Records: records, Invalid: invalid, LoadedAt: loadedAt}, s.cfg.CacheTTL)
	return nil
}

func (s *CatalogService) decode(rows []models.ScholarshipRow) ([]models.Scholarship, int) {
	records := make([]models.Scholarship, 0, len(rows))
	invalid := 0
	for _, row := range rows {
		rule, err := eligibility.DecodeRule(row.Eligibility)
		if err != nil {
			invalid++
			s.logger.Warn("dropping scholarship with invalid eligibility",
				zap.String("scholarship_id", row.ID),
				zap.String("name", row.Name),
				zap.Error(err))
			continue
		}
		benefits := []string(row.Benefits)
		if benefits == nil {
			benefits = []string{}
		}
		records = append(records, models.Scholarship{
			ID:                  row.ID,
			Name:                row.Name,
			Provider:            row.Provider,
			Amount:              row.Amount,
			Description:         row.Description,
			Eligibility:         rule,
			ApplicationDeadline: row.ApplicationDeadline,
			Benefits:            benefits,
			WebsiteURL:          row.WebsiteURL,
			CreatedAt:           row.CreatedAt,
		})
	}
	return records, invalid
}

func (s *CatalogService) storeReadCount() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.storeReads
}

// install replaces the list. A cached snapshot is only installed when no
// store read completed after seen was taken.
func (s *CatalogService) install(records []models.Scholarship, invalid int, loadedAt time.Time, source string, seen uint64) bool {
	s.mu.Lock()
	if source == catalogSourceCache && s.storeReads != seen {
		s.mu.Unlock()
		return false
	}
	if source == catalogSourceStore {
		s.storeReads++
	}
	s.state = models.CatalogStatusReady
	s.records = records
	s.invalid = invalid
	s.stale = false
	s.source = source
	s.loadedAt = loadedAt
	s.lastErr = nil
	s.mu.Unlock()

	s.metrics.RecordCatalogRefresh(source, len(records), invalid)
	s.logger.Info("scholarship catalog loaded",
		zap.Int("records", len(records)),
		zap.Int("invalid_records", invalid),
		zap.String("source", source))
	return true
}

func (s *CatalogService) fail(appErr *appErrors.Error) {
	s.mu.Lock()
	s.storeReads++
	s.lastErr = appErr
	if s.cfg.KeepStaleOnError && !s.loadedAt.IsZero() {
		s.state = models.CatalogStatusReady
		s.stale = true
	} else {
		s.state = models.CatalogStatusError
		s.records = []models.Scholarship{}
		s.invalid = 0
		s.stale = false
	}
	keptStale := s.stale
	records := len(s.records)
	s.mu.Unlock()

	outcome := "error"
	if appErr.Code == appErrors.ErrSchemaMissing.Code {
		outcome = "schema_missing"
	}
	s.metrics.RecordCatalogRefresh(outcome, records, 0)
	s.logger.Error("scholarship catalog fetch failed",
		zap.String("code", appErr.Code),
		zap.Bool("kept_stale", keptStale),
		zap.Error(appErr.Err))
}

// Records returns the loaded list. It fails with CATALOG_LOADING while a
// fetch is outstanding and with the fetch error after a failed load.
func (s *CatalogService) Records() ([]models.Scholarship, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	switch s.state {
	case models.CatalogStatusLoading:
		return nil, appErrors.ErrCatalogLoading
	case models.CatalogStatusError:
		if s.lastErr != nil {
			return nil, s.lastErr
		}
		return nil, appErrors.ErrFetchFailed
	}
	out := make([]models.Scholarship, len(s.records))
	copy(out, s.records)
	return out, nil
}

// Find returns one loaded scholarship.
func (s *CatalogService) Find(id string) (*models.Scholarship, error) {
	records, err := s.Records()
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].ID == id {
			return &records[i], nil
		}
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, "scholarship not found")
}

// Ready reports whether the list can be filtered.
func (s *CatalogService) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state == models.CatalogStatusReady
}

// Status describes the current catalog state.
func (s *CatalogService) Status() dto.CatalogStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	status := dto.CatalogStatus{
		State:          string(s.state),
		Records:        len(s.records),
		InvalidRecords: s.invalid,
		Stale:          s.stale,
		Source:         s.source,
	}
	if !s.loadedAt.IsZero() {
		loadedAt := s.loadedAt
		status.LoadedAt = &loadedAt
	}
	if s.lastErr != nil {
		status.LastError = s.lastErr.Message
		status.LastErrorCode = s.lastErr.Code
	}
	return status
}

func classifyFetchError(err error) *appErrors.Error {
	if database.IsUndefinedTable(err) {
		return appErrors.Wrap(err, appErrors.ErrSchemaMissing.Code, appErrors.ErrSchemaMissing.Status, appErrors.ErrSchemaMissing.Message)
	}
	return appErrors.Wrap(err, appErrors.ErrFetchFailed.Code, appErrors.ErrFetchFailed.Status, appErrors.ErrFetchFailed.Message)
}
