package seeder

import (
	"context"
	"encoding/json"

	"careeriq/internal/database"
	"careeriq/internal/fixtures"
)

type ProfileSeeder struct{ Catalog *fixtures.Catalog }

func (ProfileSeeder) Name() string { return "profile" }

func (s ProfileSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "profile", "id", "full_name", "email", "profile_image_url"); err != nil {
		return err
	}
	p := s.Catalog.Profile()
	_, err := db.Exec(ctx,
		`INSERT INTO profile (id, full_name, email, profile_image_url) VALUES (1, $1, $2, $3)
		 ON CONFLICT (id) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			email = EXCLUDED.email,
			profile_image_url = EXCLUDED.profile_image_url`,
		p.FullName, p.Email, p.ProfileImageURL,
	)
	return err
}

type SkillsSeeder struct{ Catalog *fixtures.Catalog }

func (SkillsSeeder) Name() string { return "skills" }

func (s SkillsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "skills", "position", "name", "progress"); err != nil {
		return err
	}
	return database.WithTx(ctx, db, func(tx database.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM skills`); err != nil {
			return err
		}
		for i, sk := range s.Catalog.Skills() {
			if _, err := tx.Exec(ctx,
				`INSERT INTO skills (position, name, progress) VALUES ($1, $2, $3)`,
				i, sk.Name, sk.Progress,
			); err != nil {
				return err
			}
		}
		return nil
	})
}

type NotificationsSeeder struct{ Catalog *fixtures.Catalog }

func (NotificationsSeeder) Name() string { return "notifications" }

func (s NotificationsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "notifications", "id", "message", "timestamp", "read"); err != nil {
		return err
	}
	return database.WithTx(ctx, db, func(tx database.Tx) error {
		for _, n := range s.Catalog.Notifications() {
			if _, err := tx.Exec(ctx,
				`INSERT INTO notifications (id, message, timestamp, read) VALUES ($1, $2, $3, $4)
				 ON CONFLICT (id) DO UPDATE SET
					message = EXCLUDED.message,
					timestamp = EXCLUDED.timestamp,
					read = EXCLUDED.read`,
				n.ID, n.Message, n.Timestamp, n.Read,
			); err != nil {
				return err
			}
		}
		return nil
	})
}

type FeedSeeder struct{ Catalog *fixtures.Catalog }

func (FeedSeeder) Name() string { return "feed_items" }

func (s FeedSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "feed_items", "id", "type", "title", "description", "author", "action_text"); err != nil {
		return err
	}
	return database.WithTx(ctx, db, func(tx database.Tx) error {
		for _, f := range s.Catalog.FeedItems() {
			if _, err := tx.Exec(ctx,
				`INSERT INTO feed_items (id, type, title, description, author, action_text)
				 VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6)
				 ON CONFLICT (id) DO UPDATE SET
					type = EXCLUDED.type,
					title = EXCLUDED.title,
					description = EXCLUDED.description,
					author = EXCLUDED.author,
					action_text = EXCLUDED.action_text`,
				f.ID, string(f.Type), f.Title, f.Description, f.Author, f.ActionText,
			); err != nil {
				return err
			}
		}
		return nil
	})
}

type JobsSeeder struct{ Catalog *fixtures.Catalog }

func (JobsSeeder) Name() string { return "jobs" }

func (s JobsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "jobs", "id", "title", "department", "location", "description", "required_skills", "experience_level"); err != nil {
		return err
	}
	return database.WithTx(ctx, db, func(tx database.Tx) error {
		for _, j := range s.Catalog.Jobs() {
			if _, err := tx.Exec(ctx,
				`INSERT INTO jobs (id, title, department, location, description, required_skills, experience_level)
				 VALUES ($1, $2, $3, $4, $5, $6, $7)
				 ON CONFLICT (id) DO UPDATE SET
					title = EXCLUDED.title,
					department = EXCLUDED.department,
					location = EXCLUDED.location,
					description = EXCLUDED.description,
					required_skills = EXCLUDED.required_skills,
					experience_level = EXCLUDED.experience_level`,
				j.ID, j.Title, j.Department, j.Location, j.Description, j.RequiredSkills, string(j.ExperienceLevel),
			); err != nil {
				return err
			}
		}
		return nil
	})
}

type SessionsSeeder struct{ Catalog *fixtures.Catalog }

func (SessionsSeeder) Name() string { return "learning_sessions" }

func (s SessionsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "learning_sessions", "id", "topic", "host", "description", "date_time", "skill_tags", "participants"); err != nil {
		return err
	}
	return database.WithTx(ctx, db, func(tx database.Tx) error {
		for _, ls := range s.Catalog.Sessions() {
			host, err := json.Marshal(ls.Host)
			if err != nil {
				return err
			}
			participants, err := json.Marshal(ls.Participants)
			if err != nil {
				return err
			}
			if _, err := tx.Exec(ctx,
				`INSERT INTO learning_sessions (id, topic, host, description, date_time, skill_tags, participants)
				 VALUES ($1, $2, $3::jsonb, $4, $5, $6, $7::jsonb)
				 ON CONFLICT (id) DO UPDATE SET
					topic = EXCLUDED.topic,
					host = EXCLUDED.host,
					description = EXCLUDED.description,
					date_time = EXCLUDED.date_time,
					skill_tags = EXCLUDED.skill_tags,
					participants = EXCLUDED.participants`,
				ls.ID, ls.Topic, string(host), ls.Description, ls.DateTime, ls.SkillTags, string(participants),
			); err != nil {
				return err
			}
		}
		return nil
	})
}

type TrainingSeeder struct{ Catalog *fixtures.Catalog }

func (TrainingSeeder) Name() string { return "training_resources" }

func (s TrainingSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "training_resources", "id", "title", "type", "url", "duration"); err != nil {
		return err
	}
	return database.WithTx(ctx, db, func(tx database.Tx) error {
		for _, r := range s.Catalog.TrainingResources() {
			if _, err := tx.Exec(ctx,
				`INSERT INTO training_resources (id, title, type, url, duration) VALUES ($1, $2, $3, $4, $5)
				 ON CONFLICT (id) DO UPDATE SET
					title = EXCLUDED.title,
					type = EXCLUDED.type,
					url = EXCLUDED.url,
					duration = EXCLUDED.duration`,
				r.ID, r.Title, string(r.Type), r.URL, r.Duration,
			); err != nil {
				return err
			}
		}
		return nil
	})
}
