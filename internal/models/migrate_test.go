package models

import (
	"testing"

	"github.com/bmizerany/assert"

	"github.com/DhavalSuthar-24/baskettime/internal/testutil"
)

func TestAutoMigrate(t *testing.T) {
	db := testutil.NewDB(t)
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("AutoMigrate: %v", err)
	}
	for _, table := range []string{"users", "teams", "team_players", "matches", "match_players"} {
		assert.T(t, db.Migrator().HasTable(table), table)
	}
	// running twice is a no-op
	assert.Equal(t, nil, AutoMigrate(db))
}
