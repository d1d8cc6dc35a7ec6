// Package seed creates default data after migrations have run.
package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

var defaultGroups = []struct {
	Title       string
	Slug        string
	Description string
}{
	{"General", "general", "Posts that fit nowhere else"},
	{"Announcements", "announcements", "Site news and announcements"},
}

// CreateDefaultData inserts the starter groups if they are missing. It is
// safe to run on every startup.
func CreateDefaultData(ctx context.Context, db *pgxpool.Pool, lgr zerolog.Logger) error {
	for _, g := range defaultGroups {
		tag, err := db.Exec(ctx, `
			INSERT INTO groups (title, slug, description)
			VALUES ($1, $2, $3)
			ON CONFLICT (slug) DO NOTHING`,
			g.Title, g.Slug, g.Description)
		if err != nil {
			return fmt.Errorf("failed to seed group %s: %w", g.Slug, err)
		}
		if tag.RowsAffected() > 0 {
			lgr.Info().Str("slug", g.Slug).Msg("Seeded default group")
		}
	}
	return nil
}
