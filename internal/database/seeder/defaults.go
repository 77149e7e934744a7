package seeder

import "careeriq/internal/fixtures"

// Defaults seeds every catalog table from c.
func Defaults(c *fixtures.Catalog) []Seeder {
	return []Seeder{
		ProfileSeeder{Catalog: c},
		SkillsSeeder{Catalog: c},
		NotificationsSeeder{Catalog: c},
		FeedSeeder{Catalog: c},
		JobsSeeder{Catalog: c},
		SessionsSeeder{Catalog: c},
		TrainingSeeder{Catalog: c},
	}
}
