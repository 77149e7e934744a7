// Package seeder copies the embedded fixture datasets into the Postgres
// catalog tables.
package seeder

import (
	"context"

	"careeriq/internal/database"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}
