package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"careeriq/internal/database"
	"careeriq/internal/domain/career"
)

// PostgresCatalog reads the catalog tables written by the seed command.
type PostgresCatalog struct {
	db database.DB
}

func NewPostgresCatalog(db database.DB) *PostgresCatalog {
	return &PostgresCatalog{db: db}
}

func (r *PostgresCatalog) Profile(ctx context.Context) (career.User, error) {
	var u career.User
	err := r.db.QueryRow(ctx,
		`SELECT full_name, email, profile_image_url FROM profile WHERE id = 1`,
	).Scan(&u.FullName, &u.Email, &u.ProfileImageURL)
	if err != nil {
		return career.User{}, err
	}
	return u, nil
}

func (r *PostgresCatalog) Skills(ctx context.Context) ([]career.Skill, error) {
	return queryAll(ctx, r.db,
		`SELECT name, progress FROM skills ORDER BY position ASC`,
		func(rows database.Rows) (career.Skill, error) {
			var s career.Skill
			err := rows.Scan(&s.Name, &s.Progress)
			return s, err
		},
	)
}

func (r *PostgresCatalog) Notifications(ctx context.Context) ([]career.Notification, error) {
	return queryAll(ctx, r.db,
		`SELECT id, message, timestamp, read FROM notifications ORDER BY id ASC`,
		func(rows database.Rows) (career.Notification, error) {
			var n career.Notification
			err := rows.Scan(&n.ID, &n.Message, &n.Timestamp, &n.Read)
			return n, err
		},
	)
}

func (r *PostgresCatalog) FeedItems(ctx context.Context) ([]career.FeedItem, error) {
	return queryAll(ctx, r.db,
		`SELECT id, type, title, description, COALESCE(author, ''), action_text FROM feed_items ORDER BY id ASC`,
		func(rows database.Rows) (career.FeedItem, error) {
			var f career.FeedItem
			var typ string
			err := rows.Scan(&f.ID, &typ, &f.Title, &f.Description, &f.Author, &f.ActionText)
			f.Type = career.FeedItemType(typ)
			return f, err
		},
	)
}

func (r *PostgresCatalog) Jobs(ctx context.Context) ([]career.Job, error) {
	return queryAll(ctx, r.db,
		`SELECT id, title, department, location, description, required_skills, experience_level
		 FROM jobs ORDER BY id ASC`,
		func(rows database.Rows) (career.Job, error) {
			var j career.Job
			var level string
			err := rows.Scan(&j.ID, &j.Title, &j.Department, &j.Location, &j.Description, &j.RequiredSkills, &level)
			j.ExperienceLevel = career.ExperienceLevel(level)
			return j, err
		},
	)
}

func (r *PostgresCatalog) Sessions(ctx context.Context) ([]career.LearningSession, error) {
	return queryAll(ctx, r.db,
		`SELECT id, topic, host, description, date_time, skill_tags, participants
		 FROM learning_sessions ORDER BY id ASC`,
		func(rows database.Rows) (career.LearningSession, error) {
			var s career.LearningSession
			var host, participants []byte
			if err := rows.Scan(&s.ID, &s.Topic, &host, &s.Description, &s.DateTime, &s.SkillTags, &participants); err != nil {
				return s, err
			}
			if err := json.Unmarshal(host, &s.Host); err != nil {
				return s, fmt.Errorf("session %d host: %w", s.ID, err)
			}
			if err := json.Unmarshal(participants, &s.Participants); err != nil {
				return s, fmt.Errorf("session %d participants: %w", s.ID, err)
			}
			return s, nil
		},
	)
}

func (r *PostgresCatalog) TrainingResources(ctx context.Context) ([]career.TrainingResource, error) {
	return queryAll(ctx, r.db,
		`SELECT id, title, type, url, duration FROM training_resources ORDER BY id ASC`,
		func(rows database.Rows) (career.TrainingResource, error) {
			var t career.TrainingResource
			var typ string
			err := rows.Scan(&t.ID, &t.Title, &typ, &t.URL, &t.Duration)
			t.Type = career.TrainingType(typ)
			return t, err
		},
	)
}

func queryAll[T any](ctx context.Context, db database.DB, query string, scan func(database.Rows) (T, error)) ([]T, error) {
	rows, err := db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
