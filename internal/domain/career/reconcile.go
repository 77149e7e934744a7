package career

import "sort"

// SessionRecommendation is the partial record the model returns for a
// learning session: an id, its topic and the reason it was picked.
type SessionRecommendation struct {
	ID                   int    `json:"id"`
	Topic                string `json:"topic"`
	RecommendationReason string `json:"recommendationReason"`
}

// ReconcileSessions keeps the authoritative sessions whose id the model
// returned and attaches the model's reason. Fixture order is kept; ids that
// do not exist in all are dropped.
func ReconcileSessions(all []LearningSession, recs []SessionRecommendation) []LearningSession {
	reasons := make(map[int]string, len(recs))
	for _, r := range recs {
		reasons[r.ID] = r.RecommendationReason
	}

	out := make([]LearningSession, 0, len(reasons))
	for _, s := range all {
		reason, ok := reasons[s.ID]
		if !ok {
			continue
		}
		out = append(out, withSessionReason(s, &reason))
	}
	return out
}

// RankSessions merges recommended sessions back onto the full list: every
// session in all is returned, carrying a reason only when it appears in
// recommended, with recommended sessions first. The sort is stable.
func RankSessions(all []LearningSession, recommended []LearningSession) []LearningSession {
	reasons := make(map[int]*string, len(recommended))
	for _, r := range recommended {
		if r.RecommendationReason == nil {
			continue
		}
		reason := *r.RecommendationReason
		reasons[r.ID] = &reason
	}

	out := make([]LearningSession, 0, len(all))
	for _, s := range all {
		out = append(out, withSessionReason(s, reasons[s.ID]))
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RecommendationReason != nil && out[j].RecommendationReason == nil
	})
	return out
}

// TrustTrainingRecommendations returns the model's filtered list as is. Unlike
// sessions, training picks are not checked against the catalog.
func TrustTrainingRecommendations(recs []TrainingResource) []TrainingResource {
	out := make([]TrainingResource, len(recs))
	copy(out, recs)
	return out
}

func withSessionReason(s LearningSession, reason *string) LearningSession {
	s.SkillTags = append([]string(nil), s.SkillTags...)
	s.Participants = append([]SessionParticipant(nil), s.Participants...)
	s.RecommendationReason = reason
	return s
}
