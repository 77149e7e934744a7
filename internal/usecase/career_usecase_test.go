package usecase

import (
	"context"
	"errors"
	"testing"

	"careeriq/internal/ai/aitest"
	"careeriq/internal/domain/career"
	"careeriq/internal/fixtures"
	"careeriq/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m, goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start"))
}

var testModels = ModelNames{Default: "flash", Analysis: "pro"}

type brokenCatalog struct{ repository.Catalog }

func (brokenCatalog) Jobs(context.Context) ([]career.Job, error) {
	return nil, errors.New("db down")
}

func (brokenCatalog) Sessions(context.Context) ([]career.LearningSession, error) {
	return nil, errors.New("db down")
}

func newCareer(model *aitest.Model) *CareerUsecase {
	catalog := repository.NewFixtureCatalog(fixtures.MustLoad())
	if model == nil {
		return NewCareerUsecase(catalog, nil, testModels, nil)
	}
	return NewCareerUsecase(catalog, model, testModels, nil)
}

func TestCareer_UnavailableWithoutModel(t *testing.T) {
	uc := newCareer(nil)
	ctx := context.Background()
	skills := []string{"Go"}

	_, err := uc.MatchJobs(ctx, "Go", 3)
	assert.ErrorIs(t, err, ErrAIUnavailable)
	_, err = uc.SuggestLearningSessions(ctx, skills)
	assert.ErrorIs(t, err, ErrAIUnavailable)
	_, err = uc.RankLearningSessions(ctx, skills)
	assert.ErrorIs(t, err, ErrAIUnavailable)
	_, err = uc.GenerateRoadmap(ctx, "Frontend Developer", "Senior Product Manager")
	assert.ErrorIs(t, err, ErrAIUnavailable)
	_, err = uc.RecommendTraining(ctx, skills, "Move into product")
	assert.ErrorIs(t, err, ErrAIUnavailable)
	_, err = uc.AnalyzeSkillGap(ctx, skills, "Senior PM")
	assert.ErrorIs(t, err, ErrAIUnavailable)
	assert.Equal(t, "AI services are currently unavailable.", err.Error())
}

func TestCareer_GenerateRoadmap(t *testing.T) {
	raw := `[
		{"step":1,"title":"Learn PM fundamentals","description":"Take a course.","duration":"1-2 Months"},
		{"step":2,"title":"Shadow a PM","description":"Pair with the growth PM.","duration":"2 Months"},
		{"step":3,"title":"Own a feature","description":"Drive a small launch.","duration":"3 Months"},
		{"step":4,"title":"Apply internally","description":"Target the Growth PM role.","duration":"1 Month"}
	]`
	fake := &aitest.Model{Responses: map[string]string{OpRoadmap: raw}}
	uc := newCareer(fake)

	steps, err := uc.GenerateRoadmap(context.Background(), "Frontend Developer", "Senior Product Manager")
	require.NoError(t, err)
	require.Len(t, steps, 4)
	for i, s := range steps {
		assert.Equal(t, i+1, s.Step)
	}
	assert.Equal(t, "Shadow a PM", steps[1].Title)
	assert.Equal(t, "1 Month", steps[3].Duration)

	reqs := fake.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "flash", reqs[0].Model)
	assert.Contains(t, reqs[0].Prompt, "Frontend Developer")
	assert.Contains(t, reqs[0].Prompt, "Senior Product Manager")
	require.NotNil(t, reqs[0].Schema)
}

func TestCareer_GenerateRoadmapRequiresBothRoles(t *testing.T) {
	fake := &aitest.Model{}
	uc := newCareer(fake)

	_, err := uc.GenerateRoadmap(context.Background(), "Frontend Developer", "  ")
	assert.ErrorIs(t, err, ErrRolesRequired)
	assert.Empty(t, fake.Requests())
}

func TestCareer_MatchJobsKeepsModelOrderAndScores(t *testing.T) {
	raw := `[
		{"id":2,"title":"Product Manager, Growth","department":"Product","location":"New York, NY","description":"d","requiredSkills":["Product Management"],"experienceLevel":"Mid","matchPercentage":40,"matchReason":"Some overlap."},
		{"id":1,"title":"Senior Full-Stack Engineer","department":"Engineering","location":"Remote","description":"d","requiredSkills":["React"],"experienceLevel":"Senior","matchPercentage":92,"matchReason":"Strong React match."}
	]`
	fake := &aitest.Model{Responses: map[string]string{OpJobMatch: raw}}
	uc := newCareer(fake)

	got, err := uc.MatchJobs(context.Background(), "React, TypeScript, Node.js", 5)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 2, got[0].ID)
	assert.Equal(t, float64(40), got[0].MatchPercentage)
	assert.Equal(t, 1, got[1].ID)
	assert.Equal(t, float64(92), got[1].MatchPercentage)
	assert.Equal(t, "Strong React match.", got[1].MatchReason)

	reqs := fake.Requests()
	require.Len(t, reqs, 1)
	assert.Contains(t, reqs[0].Prompt, "React, TypeScript, Node.js")
	assert.Contains(t, reqs[0].Prompt, "Junior Frontend Developer")
}

func TestCareer_MatchJobsValidation(t *testing.T) {
	fake := &aitest.Model{}
	uc := newCareer(fake)

	_, err := uc.MatchJobs(context.Background(), " ", 3)
	assert.ErrorIs(t, err, ErrSkillsRequired)
	_, err = uc.MatchJobs(context.Background(), "Go", -1)
	assert.ErrorIs(t, err, ErrInvalidExperience)
	assert.Empty(t, fake.Requests())
}

func TestCareer_SessionReasonsOnlyForRecommended(t *testing.T) {
	raw := `[
		{"id":4,"topic":"Building Accessible Web Components","recommendationReason":"Extends your frontend skills."},
		{"id":99,"topic":"Invented Session","recommendationReason":"Does not exist."},
		{"id":2,"topic":"Effective Public Speaking","recommendationReason":"Your weakest skill."}
	]`
	fake := &aitest.Model{Responses: map[string]string{OpLearningSessions: raw}}
	uc := newCareer(fake)
	ctx := context.Background()

	suggested, err := uc.SuggestLearningSessions(ctx, []string{"React & TypeScript"})
	require.NoError(t, err)
	require.Len(t, suggested, 2)
	assert.Equal(t, 2, suggested[0].ID)
	assert.Equal(t, 4, suggested[1].ID)
	assert.Equal(t, "Effective Public Speaking for Technical Presentations", suggested[0].Topic)
	require.NotNil(t, suggested[0].RecommendationReason)
	assert.Equal(t, "Your weakest skill.", *suggested[0].RecommendationReason)

	ranked, err := uc.RankLearningSessions(ctx, []string{"React & TypeScript"})
	require.NoError(t, err)
	require.Len(t, ranked, 4)

	ids := make([]int, 0, len(ranked))
	for _, s := range ranked {
		ids = append(ids, s.ID)
		if s.ID == 2 || s.ID == 4 {
			assert.NotNil(t, s.RecommendationReason, "session %d", s.ID)
		} else {
			assert.Nil(t, s.RecommendationReason, "session %d", s.ID)
		}
	}
	assert.Equal(t, []int{2, 4, 1, 3}, ids)
	assert.Len(t, fake.Requests(), 2)
}

func TestCareer_RecommendTrainingTrustsModel(t *testing.T) {
	raw := `[
		{"id":5,"title":"AI for Product Managers","type":"Course","url":"#","duration":"15 hours","recommendationReason":"Matches your goal."},
		{"id":42,"title":"Not In Catalog","recommendationReason":"Model picked it."}
	]`
	fake := &aitest.Model{Responses: map[string]string{OpTraining: raw}}
	uc := newCareer(fake)

	got, err := uc.RecommendTraining(context.Background(), []string{"Project Management"}, "Move into AI product management")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 42, got[1].ID)
	require.NotNil(t, got[0].RecommendationReason)
	assert.Equal(t, "Matches your goal.", *got[0].RecommendationReason)
	assert.Contains(t, fake.Requests()[0].Prompt, "Move into AI product management")
}

func TestCareer_AnalyzeSkillGapUsesAnalysisModel(t *testing.T) {
	raw := `{"matchingSkills":["Project Management"],"missingSkills":["SQL","A/B Testing"],"actionableSuggestions":["Take a SQL course.","Run an experiment."]}`
	fake := &aitest.Model{Responses: map[string]string{OpSkillGap: raw}}
	uc := newCareer(fake)

	got, err := uc.AnalyzeSkillGap(context.Background(), []string{"Project Management"}, "Senior PM with SQL")
	require.NoError(t, err)
	assert.Equal(t, []string{"SQL", "A/B Testing"}, got.MissingSkills)
	assert.Len(t, got.ActionableSuggestions, 2)
	assert.Equal(t, "pro", fake.Requests()[0].Model)

	_, err = uc.AnalyzeSkillGap(context.Background(), nil, "")
	assert.ErrorIs(t, err, ErrRoleDescRequired)
}

func TestCareer_FailuresBecomeOperationErrors(t *testing.T) {
	ctx := context.Background()
	skills := []string{"Go"}

	cases := []struct {
		name string
		op   string
		run  func(*CareerUsecase) error
		want error
	}{
		{"job match", OpJobMatch, func(u *CareerUsecase) error { _, err := u.MatchJobs(ctx, "Go", 1); return err }, ErrJobMatchFailed},
		{"sessions", OpLearningSessions, func(u *CareerUsecase) error { _, err := u.SuggestLearningSessions(ctx, skills); return err }, ErrSessionsFailed},
		{"ranked sessions", OpLearningSessions, func(u *CareerUsecase) error { _, err := u.RankLearningSessions(ctx, skills); return err }, ErrSessionsFailed},
		{"roadmap", OpRoadmap, func(u *CareerUsecase) error { _, err := u.GenerateRoadmap(ctx, "a", "b"); return err }, ErrRoadmapFailed},
		{"training", OpTraining, func(u *CareerUsecase) error { _, err := u.RecommendTraining(ctx, skills, "g"); return err }, ErrTrainingFailed},
		{"skill gap", OpSkillGap, func(u *CareerUsecase) error { _, err := u.AnalyzeSkillGap(ctx, skills, "r"); return err }, ErrSkillGapFailed},
	}

	for _, tc := range cases {
		t.Run(tc.name+"/provider error", func(t *testing.T) {
			fake := &aitest.Model{Errors: map[string]error{tc.op: errors.New("status 503: secret upstream detail")}}
			err := tc.run(newCareer(fake))
			assert.ErrorIs(t, err, tc.want)
			assert.NotContains(t, err.Error(), "secret upstream detail")
			assert.Len(t, fake.Requests(), 1)
		})
		t.Run(tc.name+"/malformed payload", func(t *testing.T) {
			fake := &aitest.Model{Responses: map[string]string{tc.op: "Sure! Here is what I found:"}}
			err := tc.run(newCareer(fake))
			assert.ErrorIs(t, err, tc.want)
		})
		t.Run(tc.name+"/wrong shape", func(t *testing.T) {
			fake := &aitest.Model{Responses: map[string]string{tc.op: `[{"unexpected":true}]`}}
			err := tc.run(newCareer(fake))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestCareer_CatalogFailure(t *testing.T) {
	fake := &aitest.Model{}
	uc := NewCareerUsecase(brokenCatalog{}, fake, testModels, nil)

	_, err := uc.MatchJobs(context.Background(), "Go", 1)
	assert.ErrorIs(t, err, ErrCatalogUnavailable)
	_, err = uc.RankLearningSessions(context.Background(), nil)
	assert.ErrorIs(t, err, ErrCatalogUnavailable)
	assert.Empty(t, fake.Requests())
}

func TestCareer_DefaultSkills(t *testing.T) {
	got, err := newCareer(&aitest.Model{}).DefaultSkills(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"React & TypeScript", "Project Management", "UI/UX Design Principles", "Public Speaking"}, got)
}

func TestCareer_IntegralFloatIDsAreAccepted(t *testing.T) {
	fake := &aitest.Model{Responses: map[string]string{
		OpLearningSessions: `[{"id":1.0,"topic":"x","recommendationReason":"r"}]`,
		OpRoadmap:          `[{"step":1.0,"title":"t","description":"d","duration":"1 Month"}]`,
		OpJobMatch:         `[{"id":2.0,"title":"Product Manager, Growth","matchPercentage":55.5,"matchReason":"ok"}]`,
	}}
	uc := newCareer(fake)
	ctx := context.Background()

	sessions, err := uc.SuggestLearningSessions(ctx, []string{"Go"})
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, 1, sessions[0].ID)

	steps, err := uc.GenerateRoadmap(ctx, "Frontend Developer", "Product Manager")
	require.NoError(t, err)
	require.Len(t, steps, 1)
	assert.Equal(t, 1, steps[0].Step)

	jobs, err := uc.MatchJobs(ctx, "Go", 3)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, 2, jobs[0].ID)
	assert.Equal(t, 55.5, jobs[0].MatchPercentage)
}
