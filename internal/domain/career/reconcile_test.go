package career

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionsFixture() []LearningSession {
	return []LearningSession{
		{ID: 1, Topic: "React", Host: SessionParticipant{Name: "Jane Doe"}, SkillTags: []string{"React"}, DateTime: "2024-11-15T14:00:00Z"},
		{ID: 2, Topic: "Public Speaking", Host: SessionParticipant{Name: "John Smith"}, SkillTags: []string{"Public Speaking"}},
		{ID: 3, Topic: "Figma", Host: SessionParticipant{Name: "Emily White"}, SkillTags: []string{"Figma"}},
		{ID: 4, Topic: "Accessibility", Host: SessionParticipant{Name: "Michael Brown"}, SkillTags: []string{"HTML"}},
	}
}

func ids(in []LearningSession) []int {
	out := make([]int, 0, len(in))
	for _, s := range in {
		out = append(out, s.ID)
	}
	return out
}

func TestReconcileSessions_KeepsOnlyReturnedIDs(t *testing.T) {
	all := sessionsFixture()
	got := ReconcileSessions(all, []SessionRecommendation{
		{ID: 3, Topic: "Figma", RecommendationReason: "pairs with UI/UX"},
		{ID: 1, Topic: "React", RecommendationReason: "matches React"},
	})

	require.Len(t, got, 2)
	assert.Equal(t, []int{1, 3}, ids(got))
	require.NotNil(t, got[0].RecommendationReason)
	assert.Equal(t, "matches React", *got[0].RecommendationReason)
	assert.Equal(t, "pairs with UI/UX", *got[1].RecommendationReason)
}

func TestReconcileSessions_NeverInventsRecords(t *testing.T) {
	got := ReconcileSessions(sessionsFixture(), []SessionRecommendation{
		{ID: 99, Topic: "Invented", RecommendationReason: "not in catalog"},
		{ID: 2, Topic: "Renamed by model", RecommendationReason: "speaking"},
	})

	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ID)
	assert.Equal(t, "Public Speaking", got[0].Topic, "fixture fields win over model output")
	assert.Equal(t, "John Smith", got[0].Host.Name)
}

func TestReconcileSessions_DoesNotMutateFixture(t *testing.T) {
	all := sessionsFixture()
	got := ReconcileSessions(all, []SessionRecommendation{{ID: 1, RecommendationReason: "r"}})
	got[0].SkillTags[0] = "changed"

	assert.Nil(t, all[0].RecommendationReason)
	assert.Equal(t, "React", all[0].SkillTags[0])
}

func TestRankSessions_ReasonIffRecommended(t *testing.T) {
	all := sessionsFixture()
	recommended := ReconcileSessions(all, []SessionRecommendation{
		{ID: 4, RecommendationReason: "html"},
		{ID: 2, RecommendationReason: "talks"},
	})

	got := RankSessions(all, recommended)

	require.Len(t, got, 4)
	assert.Equal(t, []int{2, 4, 1, 3}, ids(got), "recommended first, stable within groups")
	for _, s := range got {
		switch s.ID {
		case 2, 4:
			assert.NotNil(t, s.RecommendationReason, "session %d", s.ID)
		default:
			assert.Nil(t, s.RecommendationReason, "session %d", s.ID)
		}
	}
}

func TestRankSessions_NoRecommendationsKeepsOrder(t *testing.T) {
	got := RankSessions(sessionsFixture(), nil)
	assert.Equal(t, []int{1, 2, 3, 4}, ids(got))
	for _, s := range got {
		assert.Nil(t, s.RecommendationReason)
	}
}

func TestTrustTrainingRecommendations_ReturnsModelListUnchanged(t *testing.T) {
	reason := "good fit"
	recs := []TrainingResource{
		{ID: 5, Title: "AI for Product Managers", RecommendationReason: &reason},
		{ID: 42, Title: "Invented by model", RecommendationReason: &reason},
	}

	got := TrustTrainingRecommendations(recs)

	assert.Equal(t, recs, got)
	assert.Equal(t, 42, got[1].ID, "training path trusts ids the catalog does not have")
}

func TestSkill_Valid(t *testing.T) {
	assert.True(t, Skill{Progress: 0}.Valid())
	assert.True(t, Skill{Progress: 100}.Valid())
	assert.False(t, Skill{Progress: -1}.Valid())
	assert.False(t, Skill{Progress: 101}.Valid())
}
