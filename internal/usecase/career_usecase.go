package usecase

import (
	"context"
	"errors"
	"strings"

	"careeriq/internal/ai"
	"careeriq/internal/domain/career"
	"careeriq/internal/prompt"
	"careeriq/internal/repository"

	"go.uber.org/zap"
)

// These texts are shown to the user verbatim.
var (
	ErrAIUnavailable     = errors.New("AI services are currently unavailable.")
	ErrJobMatchFailed    = errors.New("Failed to get job matches from AI.")
	ErrSessionsFailed    = errors.New("Failed to get AI-powered session recommendations.")
	ErrRoadmapFailed     = errors.New("Failed to generate AI-powered career roadmap.")
	ErrTrainingFailed    = errors.New("Failed to get AI-powered training recommendations.")
	ErrSkillGapFailed    = errors.New("Failed to perform AI-powered skill gap analysis.")
	ErrRolesRequired     = errors.New("Please fill in both your current and target roles.")
	ErrSkillsRequired    = errors.New("Please enter at least one skill.")
	ErrInvalidExperience = errors.New("Years of experience cannot be negative.")
	ErrGoalsRequired     = errors.New("Please describe your career goals.")
	ErrRoleDescRequired  = errors.New("Please provide a target role description.")
)

var ErrCatalogUnavailable = errors.New("catalog unavailable")

const (
	OpJobMatch         = "job_match"
	OpLearningSessions = "learning_sessions"
	OpRoadmap          = "roadmap"
	OpTraining         = "training"
	OpSkillGap         = "skill_gap"
)

// ModelNames picks the provider model per operation class.
type ModelNames struct {
	Default  string
	Analysis string
}

type CareerUsecase struct {
	catalog repository.Catalog
	model   ai.Model
	models  ModelNames
	log     *zap.Logger
}

// NewCareerUsecase wires the orchestration operations. A nil model keeps the
// service up with every AI operation failing fast with ErrAIUnavailable.
func NewCareerUsecase(catalog repository.Catalog, model ai.Model, models ModelNames, log *zap.Logger) *CareerUsecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &CareerUsecase{catalog: catalog, model: model, models: models, log: log}
}

func (u *CareerUsecase) Available() bool {
	return u.model != nil
}

// MatchJobs scores every catalog job for the given skills. The list comes back
// in the order the model returned it, with scores untouched.
func (u *CareerUsecase) MatchJobs(ctx context.Context, skills string, years int) ([]career.MatchedJob, error) {
	if strings.TrimSpace(skills) == "" {
		return nil, ErrSkillsRequired
	}
	if years < 0 {
		return nil, ErrInvalidExperience
	}
	if !u.Available() {
		return nil, ErrAIUnavailable
	}

	jobs, err := u.catalog.Jobs(ctx)
	if err != nil {
		return nil, u.catalogFailure(OpJobMatch, err)
	}

	return invoke[[]career.MatchedJob](ctx, u, ai.Request{
		Op:     OpJobMatch,
		Model:  u.models.Default,
		Prompt: prompt.JobMatch(skills, years, jobs),
		Schema: prompt.JobMatchSchema(),
	}, ErrJobMatchFailed)
}

// SuggestLearningSessions returns only the catalog sessions the model picked,
// each with its reason, in catalog order.
func (u *CareerUsecase) SuggestLearningSessions(ctx context.Context, skills []string) ([]career.LearningSession, error) {
	if !u.Available() {
		return nil, ErrAIUnavailable
	}

	sessions, err := u.catalog.Sessions(ctx)
	if err != nil {
		return nil, u.catalogFailure(OpLearningSessions, err)
	}
	return u.suggestSessions(ctx, skills, sessions)
}

// RankLearningSessions returns the whole catalog with recommended sessions
// first, as the peer learning view shows it.
func (u *CareerUsecase) RankLearningSessions(ctx context.Context, skills []string) ([]career.LearningSession, error) {
	if !u.Available() {
		return nil, ErrAIUnavailable
	}

	sessions, err := u.catalog.Sessions(ctx)
	if err != nil {
		return nil, u.catalogFailure(OpLearningSessions, err)
	}

	recommended, err := u.suggestSessions(ctx, skills, sessions)
	if err != nil {
		return nil, err
	}
	return career.RankSessions(sessions, recommended), nil
}

func (u *CareerUsecase) suggestSessions(ctx context.Context, skills []string, sessions []career.LearningSession) ([]career.LearningSession, error) {
	recs, err := invoke[[]career.SessionRecommendation](ctx, u, ai.Request{
		Op:     OpLearningSessions,
		Model:  u.models.Default,
		Prompt: prompt.LearningSessions(skills, sessions),
		Schema: prompt.LearningSessionSchema(),
	}, ErrSessionsFailed)
	if err != nil {
		return nil, err
	}
	return career.ReconcileSessions(sessions, recs), nil
}

func (u *CareerUsecase) GenerateRoadmap(ctx context.Context, currentRole, targetRole string) ([]career.RoadmapStep, error) {
	if strings.TrimSpace(currentRole) == "" || strings.TrimSpace(targetRole) == "" {
		return nil, ErrRolesRequired
	}
	if !u.Available() {
		return nil, ErrAIUnavailable
	}

	return invoke[[]career.RoadmapStep](ctx, u, ai.Request{
		Op:     OpRoadmap,
		Model:  u.models.Default,
		Prompt: prompt.Roadmap(currentRole, targetRole),
		Schema: prompt.RoadmapSchema(),
	}, ErrRoadmapFailed)
}

// RecommendTraining returns the model's picks from the training catalog
// without checking them against it.
func (u *CareerUsecase) RecommendTraining(ctx context.Context, skills []string, goals string) ([]career.TrainingResource, error) {
	if strings.TrimSpace(goals) == "" {
		return nil, ErrGoalsRequired
	}
	if !u.Available() {
		return nil, ErrAIUnavailable
	}

	catalog, err := u.catalog.TrainingResources(ctx)
	if err != nil {
		return nil, u.catalogFailure(OpTraining, err)
	}

	recs, err := invoke[[]career.TrainingResource](ctx, u, ai.Request{
		Op:     OpTraining,
		Model:  u.models.Default,
		Prompt: prompt.Training(skills, goals, catalog),
		Schema: prompt.TrainingSchema(),
	}, ErrTrainingFailed)
	if err != nil {
		return nil, err
	}
	return career.TrustTrainingRecommendations(recs), nil
}

func (u *CareerUsecase) AnalyzeSkillGap(ctx context.Context, skills []string, targetRoleDescription string) (career.SkillGapAnalysis, error) {
	if strings.TrimSpace(targetRoleDescription) == "" {
		return career.SkillGapAnalysis{}, ErrRoleDescRequired
	}
	if !u.Available() {
		return career.SkillGapAnalysis{}, ErrAIUnavailable
	}

	return invoke[career.SkillGapAnalysis](ctx, u, ai.Request{
		Op:     OpSkillGap,
		Model:  u.models.Analysis,
		Prompt: prompt.SkillGap(skills, targetRoleDescription),
		Schema: prompt.SkillGapSchema(),
	}, ErrSkillGapFailed)
}

// DefaultSkills is the skill list the views fall back to when the caller
// sends none.
func (u *CareerUsecase) DefaultSkills(ctx context.Context) ([]string, error) {
	names, err := repository.SkillNames(ctx, u.catalog)
	if err != nil {
		return nil, u.catalogFailure("skills", err)
	}
	return names, nil
}

// invoke makes exactly one model call and decodes its payload. Whatever goes
// wrong, the caller only ever sees failure.
func invoke[T any](ctx context.Context, u *CareerUsecase, req ai.Request, failure error) (T, error) {
	var zero T

	raw, err := u.model.Generate(ctx, req)
	if err != nil {
		u.log.Error("model call failed", zap.String("op", req.Op), zap.String("model", req.Model), zap.Error(err))
		return zero, failure
	}

	out, err := ai.Decode[T](raw, req.Schema)
	if err != nil {
		u.log.Error("model response rejected",
			zap.String("op", req.Op),
			zap.String("model", req.Model),
			zap.Int("response_bytes", len(raw)),
			zap.Error(err),
		)
		return zero, failure
	}
	return out, nil
}

func (u *CareerUsecase) catalogFailure(op string, err error) error {
	u.log.Error("catalog read failed", zap.String("op", op), zap.Error(err))
	return ErrCatalogUnavailable
}
