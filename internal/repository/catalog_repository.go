package repository

import (
	"context"

	"careeriq/internal/domain/career"
	"careeriq/internal/fixtures"
)

// Catalog is the read-only source of the datasets the dashboard works from.
// Implementations hand out copies; callers may not write through them.
type Catalog interface {
	Profile(ctx context.Context) (career.User, error)
	Skills(ctx context.Context) ([]career.Skill, error)
	Notifications(ctx context.Context) ([]career.Notification, error)
	FeedItems(ctx context.Context) ([]career.FeedItem, error)
	Jobs(ctx context.Context) ([]career.Job, error)
	Sessions(ctx context.Context) ([]career.LearningSession, error)
	TrainingResources(ctx context.Context) ([]career.TrainingResource, error)
}

type FixtureCatalog struct {
	data *fixtures.Catalog
}

func NewFixtureCatalog(data *fixtures.Catalog) *FixtureCatalog {
	return &FixtureCatalog{data: data}
}

func (r *FixtureCatalog) Profile(context.Context) (career.User, error) {
	return r.data.Profile(), nil
}

func (r *FixtureCatalog) Skills(context.Context) ([]career.Skill, error) {
	return r.data.Skills(), nil
}

func (r *FixtureCatalog) Notifications(context.Context) ([]career.Notification, error) {
	return r.data.Notifications(), nil
}

func (r *FixtureCatalog) FeedItems(context.Context) ([]career.FeedItem, error) {
	return r.data.FeedItems(), nil
}

func (r *FixtureCatalog) Jobs(context.Context) ([]career.Job, error) {
	return r.data.Jobs(), nil
}

func (r *FixtureCatalog) Sessions(context.Context) ([]career.LearningSession, error) {
	return r.data.Sessions(), nil
}

func (r *FixtureCatalog) TrainingResources(context.Context) ([]career.TrainingResource, error) {
	return r.data.TrainingResources(), nil
}

// SkillNames lists the names of the catalog skills in order.
func SkillNames(ctx context.Context, c Catalog) ([]string, error) {
	skills, err := c.Skills(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		out = append(out, s.Name)
	}
	return out, nil
}
