package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pgmarco11/crypto-strategy-hub-api/internal/domain/models"
	domrepo "github.com/pgmarco11/crypto-strategy-hub-api/internal/domain/repository"
	applogger "github.com/pgmarco11/crypto-strategy-hub-api/pkg/logger"
)

// fileDoc is the on-disk layout: a single JSON document holding the whole
// collection, pretty-printed so it stays human-readable and diff-friendly.
type fileDoc struct {
	Portfolios []models.Portfolio `json:"portfolios"`
}

// FileStore implements PortfolioRepository over a single JSON file. The
// in-memory collection is authoritative; the file is a passive mirror read
// once at construction and rewritten wholesale on every mutation. A mutex
// serializes the mutate-then-persist sequence so concurrent requests cannot
// produce lost updates.
type FileStore struct {
	path    string
	logger  *applogger.Logger
	metrics domrepo.Metrics

	mu         sync.RWMutex
	portfolios []models.Portfolio
}

// NewFileStore loads the collection from path. A missing or unparseable file
// is logged and treated as an empty collection, never a startup failure.
func NewFileStore(path string, l *applogger.Logger, m domrepo.Metrics) *FileStore {
	s := &FileStore{
		path:    path,
		logger:  l,
		metrics: m,
	}
	s.load()
	return s
}

func (s *FileStore) load() {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Info("portfolio file not found, starting empty", applogger.String("path", s.path))
		} else {
			s.logger.Warn("portfolio file unreadable, starting empty",
				applogger.String("path", s.path), applogger.Error(err))
		}
		return
	}

	var doc fileDoc
	if err := json.Unmarshal(b, &doc); err != nil {
		s.logger.Warn("portfolio file corrupt, starting empty",
			applogger.String("path", s.path), applogger.Error(err))
		return
	}

	s.portfolios = doc.Portfolios
	s.recordCount()
	s.logger.Info("portfolios loaded", applogger.Int("count", len(s.portfolios)))
}

// persist rewrites the whole file. Caller must hold the write lock. The write
// goes through a temp file and rename so a crash mid-write cannot truncate
// the existing file.
func (s *FileStore) persist() error {
	doc := fileDoc{Portfolios: s.portfolios}
	if doc.Portfolios == nil {
		doc.Portfolios = []models.Portfolio{}
	}

	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		s.recordPersistError()
		return fmt.Errorf("marshal portfolios: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".portfolios-*.json")
	if err != nil {
		s.recordPersistError()
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		s.recordPersistError()
		return fmt.Errorf("write portfolios: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		s.recordPersistError()
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		s.recordPersistError()
		return fmt.Errorf("replace portfolio file: %w", err)
	}

	return nil
}

func (s *FileStore) recordPersistError() {
	if s.metrics != nil {
		s.metrics.RecordPersistError()
	}
}

func (s *FileStore) recordCount() {
	if s.metrics != nil {
		s.metrics.RecordPortfolioCount(len(s.portfolios))
	}
}

// All returns a copy of the collection in insertion order.
func (s *FileStore) All() []models.Portfolio {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Portfolio, len(s.portfolios))
	for i, p := range s.portfolios {
		out[i] = p.Clone()
	}
	return out
}

// Get returns the first record with the given id.
func (s *FileStore) Get(id string) (models.Portfolio, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return s.portfolios[i].Clone(), true
	}
	return nil, false
}

// Insert appends the record and persists. The in-memory state keeps the new
// record even when the write fails; the error tells the caller persistence
// did not happen.
func (s *FileStore) Insert(p models.Portfolio) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.portfolios = append(s.portfolios, p.Clone())
	s.recordCount()
	return s.persist()
}

// Update shallow-merges every top-level patch key over the first record with
// the given id and persists.
func (s *FileStore) Update(id string, patch models.Portfolio) (models.Portfolio, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, false, nil
	}

	s.portfolios[i].Merge(patch)
	updated := s.portfolios[i].Clone()
	return updated, true, s.persist()
}

// UpdateFields updates only the patchable keys (analysis, coins, values) on
// the first record with the given id and persists.
func (s *FileStore) UpdateFields(id string, patch models.Portfolio) (models.Portfolio, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, false, nil
	}

	s.portfolios[i].ApplyFields(patch)
	updated := s.portfolios[i].Clone()
	return updated, true, s.persist()
}

// Remove deletes the first record with the given id and persists.
func (s *FileStore) Remove(id string) (models.Portfolio, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, false, nil
	}

	removed := s.portfolios[i]
	s.portfolios = append(s.portfolios[:i], s.portfolios[i+1:]...)
	s.recordCount()
	return removed, true, s.persist()
}

// indexOf returns the index of the first record with the given id, or -1.
// Caller must hold at least the read lock.
func (s *FileStore) indexOf(id string) int {
	for i, p := range s.portfolios {
		if p.ID() == id {
			return i
		}
	}
	return -1
}

var _ domrepo.PortfolioRepository = (*FileStore)(nil)
