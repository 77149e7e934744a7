// Package fixtures holds the static sample datasets that stand in for a real
// backend. The data is embedded at build time and only ever handed out as
// copies.
package fixtures

import (
	"bytes"
	_ "embed"
	"fmt"

	"careeriq/internal/domain/career"

	"gopkg.in/yaml.v3"
)

//go:embed data.yaml
var data []byte

type document struct {
	Profile       career.User               `yaml:"profile"`
	FeedItems     []career.FeedItem         `yaml:"feedItems"`
	Skills        []career.Skill            `yaml:"skills"`
	Notifications []career.Notification     `yaml:"notifications"`
	Jobs          []career.Job              `yaml:"jobs"`
	Sessions      []career.LearningSession  `yaml:"sessions"`
	Training      []career.TrainingResource `yaml:"training"`
}

type Catalog struct {
	doc document
}

// Load parses the embedded datasets.
func Load() (*Catalog, error) {
	return Parse(data)
}

// MustLoad is Load for package initialisation and tests.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

func Parse(b []byte) (*Catalog, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(b))
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}
	for _, s := range doc.Skills {
		if !s.Valid() {
			return nil, fmt.Errorf("fixture skill %q: progress %d out of range", s.Name, s.Progress)
		}
	}
	return &Catalog{doc: doc}, nil
}

func (c *Catalog) Profile() career.User {
	return c.doc.Profile
}

func (c *Catalog) Skills() []career.Skill {
	return append([]career.Skill(nil), c.doc.Skills...)
}

func (c *Catalog) Notifications() []career.Notification {
	return append([]career.Notification(nil), c.doc.Notifications...)
}

func (c *Catalog) FeedItems() []career.FeedItem {
	return append([]career.FeedItem(nil), c.doc.FeedItems...)
}

func (c *Catalog) Jobs() []career.Job {
	out := make([]career.Job, 0, len(c.doc.Jobs))
	for _, j := range c.doc.Jobs {
		j.RequiredSkills = append([]string(nil), j.RequiredSkills...)
		out = append(out, j)
	}
	return out
}

func (c *Catalog) Sessions() []career.LearningSession {
	out := make([]career.LearningSession, 0, len(c.doc.Sessions))
	for _, s := range c.doc.Sessions {
		s.SkillTags = append([]string(nil), s.SkillTags...)
		s.Participants = append([]career.SessionParticipant(nil), s.Participants...)
		s.RecommendationReason = nil
		out = append(out, s)
	}
	return out
}

func (c *Catalog) TrainingResources() []career.TrainingResource {
	out := make([]career.TrainingResource, 0, len(c.doc.Training))
	for _, t := range c.doc.Training {
		t.RecommendationReason = nil
		out = append(out, t)
	}
	return out
}
