package career

type Skill struct {
	Name     string `json:"name" yaml:"name"`
	Progress int    `json:"progress" yaml:"progress"`
}

// Valid reports whether progress is within 0-100.
func (s Skill) Valid() bool {
	return s.Progress >= 0 && s.Progress <= 100
}

type ExperienceLevel string

const (
	ExperienceEntry  ExperienceLevel = "Entry"
	ExperienceMid    ExperienceLevel = "Mid"
	ExperienceSenior ExperienceLevel = "Senior"
)

type Job struct {
	ID              int             `json:"id" yaml:"id"`
	Title           string          `json:"title" yaml:"title"`
	Department      string          `json:"department" yaml:"department"`
	Location        string          `json:"location" yaml:"location"`
	Description     string          `json:"description" yaml:"description"`
	RequiredSkills  []string        `json:"requiredSkills" yaml:"requiredSkills"`
	ExperienceLevel ExperienceLevel `json:"experienceLevel" yaml:"experienceLevel"`
}

// MatchedJob carries the model-authored score and reason. Neither is ever
// computed locally.
type MatchedJob struct {
	Job
	MatchPercentage float64 `json:"matchPercentage"`
	MatchReason     string  `json:"matchReason"`
}

type SessionParticipant struct {
	Name            string `json:"name" yaml:"name"`
	ProfileImageURL string `json:"profileImageUrl" yaml:"profileImageUrl"`
}

type LearningSession struct {
	ID           int                  `json:"id" yaml:"id"`
	Topic        string               `json:"topic" yaml:"topic"`
	Host         SessionParticipant   `json:"host" yaml:"host"`
	Description  string               `json:"description" yaml:"description"`
	DateTime     string               `json:"dateTime" yaml:"dateTime"`
	SkillTags    []string             `json:"skillTags" yaml:"skillTags"`
	Participants []SessionParticipant `json:"participants" yaml:"participants"`

	// RecommendationReason is nil unless the session was selected by the model.
	RecommendationReason *string `json:"recommendationReason,omitempty" yaml:"-"`
}

type RoadmapStep struct {
	Step        int    `json:"step"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
}

type TrainingType string

const (
	TrainingCourse        TrainingType = "Course"
	TrainingBook          TrainingType = "Book"
	TrainingWorkshop      TrainingType = "Workshop"
	TrainingCertification TrainingType = "Certification"
)

type TrainingResource struct {
	ID                   int          `json:"id" yaml:"id"`
	Title                string       `json:"title" yaml:"title"`
	Type                 TrainingType `json:"type" yaml:"type"`
	URL                  string       `json:"url" yaml:"url"`
	Duration             string       `json:"duration" yaml:"duration"`
	RecommendationReason *string      `json:"recommendationReason,omitempty" yaml:"-"`
}

type SkillGapAnalysis struct {
	MatchingSkills        []string `json:"matchingSkills"`
	MissingSkills         []string `json:"missingSkills"`
	ActionableSuggestions []string `json:"actionableSuggestions"`
}

type Sender string

const (
	SenderUser Sender = "user"
	SenderAI   Sender = "ai"
)

type ChatMessage struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Sender    Sender `json:"sender"`
	Streaming bool   `json:"streaming,omitempty"`
}

type User struct {
	FullName        string `json:"fullName" yaml:"fullName"`
	Email           string `json:"email" yaml:"email"`
	ProfileImageURL string `json:"profileImageUrl" yaml:"profileImageUrl"`
}

type Notification struct {
	ID        int    `json:"id" yaml:"id"`
	Message   string `json:"message" yaml:"message"`
	Timestamp string `json:"timestamp" yaml:"timestamp"`
	Read      bool   `json:"read" yaml:"read"`
}

type FeedItemType string

const (
	FeedMentor   FeedItemType = "mentor"
	FeedJob      FeedItemType = "job"
	FeedSkill    FeedItemType = "skill"
	FeedLearning FeedItemType = "learning"
)

type FeedItem struct {
	ID          int          `json:"id" yaml:"id"`
	Type        FeedItemType `json:"type" yaml:"type"`
	Title       string       `json:"title" yaml:"title"`
	Description string       `json:"description" yaml:"description"`
	Author      string       `json:"author,omitempty" yaml:"author"`
	ActionText  string       `json:"actionText" yaml:"actionText"`
}

type NotificationPreferences struct {
	JobMatches    bool `json:"jobMatches"`
	PeerSessions  bool `json:"peerSessions"`
	WeeklySummary bool `json:"weeklySummary"`
}
