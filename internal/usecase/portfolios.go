package usecase

import (
	"github.com/pgmarco11/crypto-strategy-hub-api/internal/domain/models"
	domrepo "github.com/pgmarco11/crypto-strategy-hub-api/internal/domain/repository"
	xhttp "github.com/pgmarco11/crypto-strategy-hub-api/pkg/http"
	applogger "github.com/pgmarco11/crypto-strategy-hub-api/pkg/logger"
)

// PortfolioService exposes the CRUD operations over the repository and maps
// outcomes onto the API error taxonomy.
type PortfolioService struct {
	repo   domrepo.PortfolioRepository
	logger *applogger.Logger
}

func NewPortfolioService(repo domrepo.PortfolioRepository, l *applogger.Logger) *PortfolioService {
	return &PortfolioService{repo: repo, logger: l}
}

// List returns every portfolio in insertion order.
func (s *PortfolioService) List() []models.Portfolio {
	return s.repo.All()
}

// Get returns the first portfolio with the given id.
func (s *PortfolioService) Get(id string) (models.Portfolio, error) {
	p, ok := s.repo.Get(id)
	if !ok {
		return nil, xhttp.NotFoundErrorf("portfolio %q not found", id)
	}
	return p, nil
}

// Create appends the record. The id is whatever the client supplied;
// duplicates are accepted, an empty id is accepted.
func (s *PortfolioService) Create(p models.Portfolio) (models.Portfolio, error) {
	if err := s.repo.Insert(p); err != nil {
		s.logger.Error("portfolio persist failed", applogger.Error(err))
		return nil, xhttp.InternalError("failed to save portfolio").WithError(err)
	}
	return p, nil
}

// Replace shallow-merges the patch over the record.
func (s *PortfolioService) Replace(id string, patch models.Portfolio) (models.Portfolio, error) {
	updated, ok, err := s.repo.Update(id, patch)
	if !ok {
		return nil, xhttp.NotFoundErrorf("portfolio %q not found", id)
	}
	if err != nil {
		s.logger.Error("portfolio persist failed", applogger.String("id", id), applogger.Error(err))
		return nil, xhttp.InternalError("failed to save portfolio").WithError(err)
	}
	return updated, nil
}

// Patch updates only the analysis, coins and values keys.
func (s *PortfolioService) Patch(id string, patch models.Portfolio) (models.Portfolio, error) {
	updated, ok, err := s.repo.UpdateFields(id, patch)
	if !ok {
		return nil, xhttp.NotFoundErrorf("portfolio %q not found", id)
	}
	if err != nil {
		s.logger.Error("portfolio persist failed", applogger.String("id", id), applogger.Error(err))
		return nil, xhttp.InternalError("failed to save portfolio").WithError(err)
	}
	return updated, nil
}

// Delete removes the first record with the given id.
func (s *PortfolioService) Delete(id string) error {
	_, ok, err := s.repo.Remove(id)
	if !ok {
		return xhttp.NotFoundErrorf("portfolio %q not found", id)
	}
	if err != nil {
		s.logger.Error("portfolio persist failed", applogger.String("id", id), applogger.Error(err))
		return xhttp.InternalError("failed to save portfolio").WithError(err)
	}
	return nil
}
