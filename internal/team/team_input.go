package team

import (
	"strconv"
	"sync/atomic"
	"time"

	"github.com/DhavalSuthar-24/baskettime/internal/common"
)

var lastIDMillis atomic.Int64

// NewID returns "t" + epoch milliseconds, bumped past the last id handed out by this process.
func NewID(now time.Time) string {
	ms := now.UnixMilli()
	for {
		last := lastIDMillis.Load()
		next := ms
		if next <= last {
			next = last + 1
		}
		if lastIDMillis.CompareAndSwap(last, next) {
			return "t" + strconv.FormatInt(next, 10)
		}
	}
}

// CoerceName trims name, falling back when the result is blank.
func CoerceName(v interface{}, fallback string) string {
	if name := common.ScalarString(v); name != "" {
		return name
	}
	return fallback
}

// CoercePlayers turns a decoded "players" value into at most MaxPlayers roster entries.
// Object entries read "id" and "name"; any other entry is taken as the player's name.
// Missing or blank values get positional placeholders.
func CoercePlayers(raw interface{}) []TeamPlayer {
	entries, _ := raw.([]interface{})
	if len(entries) > MaxPlayers {
		entries = entries[:MaxPlayers]
	}

	players := make([]TeamPlayer, 0, len(entries))
	for i, entry := range entries {
		var id, name string
		if obj, ok := entry.(map[string]interface{}); ok {
			id = common.ScalarString(obj["id"])
			name = common.ScalarString(obj["name"])
		} else {
			name = common.ScalarString(entry)
		}
		if id == "" {
			id = common.PlaceholderPlayerID(i)
		}
		if name == "" {
			name = common.PlaceholderPlayerName(i)
		}
		players = append(players, TeamPlayer{PlayerID: id, Name: name})
	}
	return players
}
