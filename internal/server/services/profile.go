package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/farmconnect/internal/server/models"
	"github.com/dmitrijs2005/farmconnect/internal/server/repositories/repomanager"
)

// ProfileService stores farmer profiles. Submissions are not validated and
// the password column keeps whatever text was submitted (see models.Profile).
// Profiles are write-only from this system's point of view: nothing updates
// or deletes them.
type ProfileService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewProfileService constructs a ProfileService using the repository manager.
func NewProfileService(db *sql.DB, m repomanager.RepositoryManager) *ProfileService {
	return &ProfileService{db: db, repomanager: m}
}

// SubmitProfile inserts one profile row.
func (s *ProfileService) SubmitProfile(ctx context.Context, profile *models.Profile) error {
	repo := s.repomanager.Profiles(s.db)
	if err := repo.Add(ctx, profile); err != nil {
		return fmt.Errorf("error submitting profile: %w", err)
	}
	return nil
}
