// internal/models/migrate.go
package models

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/baskettime/internal/match"
	"github.com/DhavalSuthar-24/baskettime/internal/team"
	"github.com/DhavalSuthar-24/baskettime/internal/user"
)

// All lists every persisted model in migration order.
func All() []interface{} {
	return []interface{}{
		&user.User{},
		&team.Team{}, &team.TeamPlayer{},
		&match.Match{}, &match.MatchPlayer{},
	}
}

// AutoMigrate creates or updates the tables of every model.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(All()...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}
