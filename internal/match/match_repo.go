package match

import (
	"context"

	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/baskettime/internal/ownership"
)

// MatchRepository defines the match data operations. Every method is scoped to ownerID.
type MatchRepository interface {
	ListMatches(ctx context.Context, ownerID uint) ([]Match, error)
	GetMatch(ctx context.Context, ownerID uint, id string) (*Match, error)
	// SaveMatch creates the match or overwrites every field and player of the existing one.
	SaveMatch(ctx context.Context, ownerID uint, in *Input) (*Match, error)
	DeleteMatch(ctx context.Context, ownerID uint, id string) error
	ClearMatches(ctx context.Context, ownerID uint) error
}

type gormMatchRepository struct {
	store *ownership.Repository[Match, MatchPlayer]
}

// NewGormMatchRepository creates a new GORM-based match repository
func NewGormMatchRepository(db *gorm.DB) MatchRepository {
	return &gormMatchRepository{store: ownership.New(db, matchSchema)}
}

func (r *gormMatchRepository) ListMatches(ctx context.Context, ownerID uint) ([]Match, error) {
	return r.store.List(ctx, ownerID)
}

func (r *gormMatchRepository) GetMatch(ctx context.Context, ownerID uint, id string) (*Match, error) {
	return r.store.Get(ctx, ownerID, id)
}

func (r *gormMatchRepository) SaveMatch(ctx context.Context, ownerID uint, in *Input) (*Match, error) {
	return r.store.Upsert(ctx, ownerID, in.ID, func(m *Match, _ bool) ([]MatchPlayer, bool) {
		m.Name = in.Name
		m.DateISO = in.DateISO
		m.MatchSeconds = in.MatchSeconds
		m.TeamID = in.TeamID
		m.TeamNameAtTime = in.TeamNameAtTime
		return in.Players, true
	})
}

func (r *gormMatchRepository) DeleteMatch(ctx context.Context, ownerID uint, id string) error {
	return r.store.Delete(ctx, ownerID, id)
}

func (r *gormMatchRepository) ClearMatches(ctx context.Context, ownerID uint) error {
	return r.store.DeleteAll(ctx, ownerID)
}
