package match

import (
	"time"

	"github.com/DhavalSuthar-24/baskettime/internal/ownership"
)

const DefaultName = "Match"

// Match is one recorded game. TeamID and TeamNameAtTime are a snapshot taken when the match
// was saved, not a reference: renaming or deleting the team leaves them unchanged.
type Match struct {
	UserID         uint          `gorm:"primaryKey;autoIncrement:false"`
	ID             string        `gorm:"primaryKey;size:120"`
	Name           string        `gorm:"size:200;not null"`
	DateISO        string        `gorm:"size:64"`
	MatchSeconds   int           `gorm:"not null;default:0"`
	TeamID         string        `gorm:"size:64"`
	TeamNameAtTime string        `gorm:"size:200"`
	CreatedAt      time.Time     `gorm:"index"`
	UpdatedAt      time.Time
	Players        []MatchPlayer `gorm:"-"`
}

// MatchPlayer holds one player's counters for a match.
type MatchPlayer struct {
	ID               uint   `gorm:"primaryKey"`
	UserID           uint   `gorm:"not null;index:idx_match_players_owner_match"`
	MatchID          string `gorm:"size:120;not null;index:idx_match_players_owner_match"`
	Position         int    `gorm:"not null"`
	PlayerID         string `gorm:"size:64;not null"`
	PlayerNameAtTime string `gorm:"size:200;not null"`
	SecondsOnCourt   int    `gorm:"not null;default:0"`
	Assists          int    `gorm:"not null;default:0"`
	Fouls            int    `gorm:"not null;default:0"`
	Goals            int    `gorm:"not null;default:0"`
}

var matchSchema = ownership.Schema[Match, MatchPlayer]{
	Resource: "Match",
	ChildKey: "match_id",
	// most recent first
	ListOrder: "created_at DESC, id DESC",
	NewParent: func(ownerID uint, id string) Match {
		return Match{UserID: ownerID, ID: id}
	},
	ParentID:      func(m *Match) string { return m.ID },
	Attach:        func(m *Match, players []MatchPlayer) { m.Players = players },
	ChildParentID: func(p *MatchPlayer) string { return p.MatchID },
	Bind: func(p *MatchPlayer, ownerID uint, matchID string, position int) {
		p.ID = 0
		p.UserID = ownerID
		p.MatchID = matchID
		p.Position = position
	},
}

type PlayerResponse struct {
	PlayerID         string `json:"playerId" example:"p1"`
	PlayerNameAtTime string `json:"playerNameAtTime" example:"Eva"`
	SecondsOnCourt   int    `json:"secondsOnCourt" example:"600"`
	Assists          int    `json:"assists" example:"2"`
	Fouls            int    `json:"fouls" example:"1"`
	Goals            int    `json:"goals" example:"4"`
}

type Response struct {
	ID             string           `json:"id" example:"m1740000000000"`
	Name           string           `json:"name" example:"Hemma mot IK"`
	DateISO        string           `json:"dateISO" example:"2025-03-01"`
	MatchSeconds   int              `json:"matchSeconds" example:"2400"`
	TeamID         string           `json:"teamId" example:"t1740000000000"`
	TeamNameAtTime string           `json:"teamNameAtTime" example:"A-lag"`
	Players        []PlayerResponse `json:"players"`
}

type ListResponse struct {
	Matches []Response `json:"matches"`
}

// SaveMatchRequest documents the accepted body. snake_case aliases are also accepted for
// dateISO, matchSeconds, teamId and teamNameAtTime.
type SaveMatchRequest struct {
	ID             string           `json:"id" example:"m1740000000000"`
	Name           string           `json:"name,omitempty" example:"Hemma mot IK"`
	DateISO        string           `json:"dateISO,omitempty" example:"2025-03-01"`
	MatchSeconds   int              `json:"matchSeconds,omitempty" example:"2400"`
	TeamID         string           `json:"teamId,omitempty" example:"t1740000000000"`
	TeamNameAtTime string           `json:"teamNameAtTime,omitempty" example:"A-lag"`
	Players        []PlayerResponse `json:"players,omitempty"`
}

func (m *Match) ToResponse() Response {
	players := make([]PlayerResponse, 0, len(m.Players))
	for _, p := range m.Players {
		players = append(players, PlayerResponse{
			PlayerID:         p.PlayerID,
			PlayerNameAtTime: p.PlayerNameAtTime,
			SecondsOnCourt:   p.SecondsOnCourt,
			Assists:          p.Assists,
			Fouls:            p.Fouls,
			Goals:            p.Goals,
		})
	}
	return Response{
		ID:             m.ID,
		Name:           m.Name,
		DateISO:        m.DateISO,
		MatchSeconds:   m.MatchSeconds,
		TeamID:         m.TeamID,
		TeamNameAtTime: m.TeamNameAtTime,
		Players:        players,
	}
}

func ToListResponse(matches []Match) ListResponse {
	out := ListResponse{Matches: make([]Response, 0, len(matches))}
	for i := range matches {
		out.Matches = append(out.Matches, matches[i].ToResponse())
	}
	return out
}
