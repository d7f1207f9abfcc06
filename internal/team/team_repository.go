package team

import (
	"context"

	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/baskettime/internal/ownership"
)

// TeamRepository defines the team data operations. Every method is scoped to ownerID.
type TeamRepository interface {
	ListTeams(ctx context.Context, ownerID uint) ([]Team, error)
	GetTeam(ctx context.Context, ownerID uint, id string) (*Team, error)
	CreateTeam(ctx context.Context, ownerID uint, id, name string, players []TeamPlayer) (*Team, error)
	// UpdateTeam sets name when non-nil and replaces the roster when players is non-nil.
	UpdateTeam(ctx context.Context, ownerID uint, id string, name *string, players []TeamPlayer) (*Team, error)
	DeleteTeam(ctx context.Context, ownerID uint, id string) error
}

type teamRepository struct {
	store *ownership.Repository[Team, TeamPlayer]
}

// NewTeamRepository creates a new instance of TeamRepository
func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &teamRepository{store: ownership.New(db, teamSchema)}
}

func (r *teamRepository) ListTeams(ctx context.Context, ownerID uint) ([]Team, error) {
	return r.store.List(ctx, ownerID)
}

func (r *teamRepository) GetTeam(ctx context.Context, ownerID uint, id string) (*Team, error) {
	return r.store.Get(ctx, ownerID, id)
}

func (r *teamRepository) CreateTeam(ctx context.Context, ownerID uint, id, name string, players []TeamPlayer) (*Team, error) {
	return r.store.Create(ctx, ownerID, id, func(t *Team, _ bool) ([]TeamPlayer, bool) {
		t.Name = name
		return players, true
	})
}

func (r *teamRepository) UpdateTeam(ctx context.Context, ownerID uint, id string, name *string, players []TeamPlayer) (*Team, error) {
	return r.store.Update(ctx, ownerID, id, func(t *Team, _ bool) ([]TeamPlayer, bool) {
		if name != nil {
			t.Name = *name
		}
		return players, players != nil
	})
}

func (r *teamRepository) DeleteTeam(ctx context.Context, ownerID uint, id string) error {
	return r.store.Delete(ctx, ownerID, id)
}
