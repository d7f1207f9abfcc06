// internal/team/team_model.go
package team

import (
	"time"

	"github.com/DhavalSuthar-24/baskettime/internal/ownership"
)

const (
	// MaxPlayers caps a roster; entries beyond it are dropped on save.
	MaxPlayers  = 20
	DefaultName = "Lag"
)

// Team is a named roster owned by one user. (user_id, id) is the primary key,
// so two accounts may use the same team id without seeing each other's rows.
type Team struct {
	UserID    uint         `gorm:"primaryKey;autoIncrement:false"`
	ID        string       `gorm:"primaryKey;size:64"`
	Name      string       `gorm:"size:200;not null"`
	CreatedAt time.Time    `gorm:"index"`
	UpdatedAt time.Time
	Players   []TeamPlayer `gorm:"-"`
}

// TeamPlayer is one roster entry. Position is the zero-based display order.
type TeamPlayer struct {
	ID       uint   `gorm:"primaryKey"`
	UserID   uint   `gorm:"not null;index:idx_team_players_owner_team"`
	TeamID   string `gorm:"size:64;not null;index:idx_team_players_owner_team"`
	Position int    `gorm:"not null"`
	PlayerID string `gorm:"size:64;not null"`
	Name     string `gorm:"size:200;not null"`
}

var teamSchema = ownership.Schema[Team, TeamPlayer]{
	Resource:  "Team",
	ChildKey:  "team_id",
	ListOrder: "created_at ASC, id ASC",
	NewParent: func(ownerID uint, id string) Team {
		return Team{UserID: ownerID, ID: id}
	},
	ParentID:      func(t *Team) string { return t.ID },
	Attach:        func(t *Team, players []TeamPlayer) { t.Players = players },
	ChildParentID: func(p *TeamPlayer) string { return p.TeamID },
	Bind: func(p *TeamPlayer, ownerID uint, teamID string, position int) {
		p.ID = 0
		p.UserID = ownerID
		p.TeamID = teamID
		p.Position = position
	},
}

type PlayerResponse struct {
	ID   string `json:"id" example:"p1"`
	Name string `json:"name" example:"Eva"`
}

type Response struct {
	ID      string           `json:"id" example:"t1740000000000"`
	Name    string           `json:"name" example:"A-lag"`
	Players []PlayerResponse `json:"players"`
}

type ListResponse struct {
	Teams []Response `json:"teams"`
}

// SaveTeamRequest documents the accepted body; handlers read the raw object so that absent fields stay absent.
type SaveTeamRequest struct {
	Name    string           `json:"name,omitempty" example:"A-lag"`
	Players []PlayerResponse `json:"players,omitempty"`
}

func (t *Team) ToResponse() Response {
	players := make([]PlayerResponse, 0, len(t.Players))
	for _, p := range t.Players {
		players = append(players, PlayerResponse{ID: p.PlayerID, Name: p.Name})
	}
	return Response{ID: t.ID, Name: t.Name, Players: players}
}

func ToListResponse(teams []Team) ListResponse {
	out := ListResponse{Teams: make([]Response, 0, len(teams))}
	for i := range teams {
		out.Teams = append(out.Teams, teams[i].ToResponse())
	}
	return out
}
