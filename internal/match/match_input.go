package match

import (
	"github.com/DhavalSuthar-24/baskettime/internal/common"
)

// aliases lists the accepted spellings of each match field, preferred first.
var aliases = map[string][]string{
	"id":             {"id"},
	"name":           {"name"},
	"dateISO":        {"dateISO", "date_iso"},
	"matchSeconds":   {"matchSeconds", "match_seconds"},
	"teamId":         {"teamId", "team_id"},
	"teamNameAtTime": {"teamNameAtTime", "team_name_at_time"},
	"players":        {"players"},
}

// lookup returns the value of the first alias of field that holds a non-empty value.
func lookup(body map[string]interface{}, field string) interface{} {
	for _, key := range aliases[field] {
		v, ok := body[key]
		if !ok || v == nil {
			continue
		}
		if s, isString := v.(string); isString && s == "" {
			continue
		}
		return v
	}
	return nil
}

// Input is a normalized match save request.
type Input struct {
	ID             string
	Name           string
	DateISO        string
	MatchSeconds   int
	TeamID         string
	TeamNameAtTime string
	Players        []MatchPlayer
}

// ParseInput normalizes a decoded request body. A missing or blank id is InvalidInput.
func ParseInput(body map[string]interface{}) (*Input, error) {
	in := &Input{ID: common.ScalarString(lookup(body, "id"))}
	if in.ID == "" {
		return nil, common.InvalidInput("Match id required")
	}

	in.Name = common.ScalarString(lookup(body, "name"))
	if in.Name == "" {
		in.Name = DefaultName
	}
	in.DateISO = common.ScalarString(lookup(body, "dateISO"))
	in.MatchSeconds = common.NonNegativeInt(lookup(body, "matchSeconds"))
	in.TeamID = common.ScalarString(lookup(body, "teamId"))
	in.TeamNameAtTime = common.ScalarString(lookup(body, "teamNameAtTime"))
	in.Players = CoercePlayers(lookup(body, "players"))
	return in, nil
}

// CoercePlayers turns a decoded "players" value into stat rows. Entries that are not objects are skipped;
// placeholders are numbered by the entry's index in the input.
func CoercePlayers(raw interface{}) []MatchPlayer {
	entries, _ := raw.([]interface{})

	players := make([]MatchPlayer, 0, len(entries))
	for i, entry := range entries {
		obj, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		id := common.ScalarString(obj["playerId"])
		if id == "" {
			id = common.PlaceholderPlayerID(i)
		}
		name := common.ScalarString(obj["playerNameAtTime"])
		if name == "" {
			name = common.PlaceholderPlayerName(i)
		}
		players = append(players, MatchPlayer{
			PlayerID:         id,
			PlayerNameAtTime: name,
			SecondsOnCourt:   common.NonNegativeInt(obj["secondsOnCourt"]),
			Assists:          common.NonNegativeInt(obj["assists"]),
			Fouls:            common.NonNegativeInt(obj["fouls"]),
			Goals:            common.NonNegativeInt(obj["goals"]),
		})
	}
	return players
}
