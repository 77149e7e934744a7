package fixtures

import (
	"testing"

	"careeriq/internal/domain/career"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmbeddedDatasets(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	assert.Len(t, c.Jobs(), 5)
	assert.Len(t, c.Sessions(), 4)
	assert.Len(t, c.TrainingResources(), 6)
	assert.Len(t, c.Skills(), 4)
	assert.Len(t, c.Notifications(), 3)
	assert.Len(t, c.FeedItems(), 4)
	assert.Equal(t, "john.doe@company.com", c.Profile().Email)

	jobs := c.Jobs()
	assert.Equal(t, "Product Manager, Growth", jobs[1].Title)
	assert.Equal(t, career.ExperienceEntry, jobs[4].ExperienceLevel)

	sessions := c.Sessions()
	require.Len(t, sessions[2].Participants, 4)
	assert.Equal(t, "Alice", sessions[2].Participants[0].Name)
	assert.Equal(t, "https://picsum.photos/id/64/50/50", sessions[3].Participants[0].ProfileImageURL)

	training := c.TrainingResources()
	assert.Equal(t, "#", training[0].URL)
	assert.Equal(t, career.TrainingCertification, training[2].Type)
}

func TestCatalog_AccessorsReturnCopies(t *testing.T) {
	c := MustLoad()

	jobs := c.Jobs()
	jobs[0].RequiredSkills[0] = "COBOL"
	jobs[0].Title = "changed"
	assert.Equal(t, "React", c.Jobs()[0].RequiredSkills[0])
	assert.Equal(t, "Senior Full-Stack Engineer", c.Jobs()[0].Title)

	sessions := c.Sessions()
	sessions[0].SkillTags[0] = "changed"
	sessions[0].Participants[0].Name = "changed"
	assert.Equal(t, "React", c.Sessions()[0].SkillTags[0])
	assert.Equal(t, "Alice", c.Sessions()[0].Participants[0].Name)
}

func TestParse_RejectsOutOfRangeProgress(t *testing.T) {
	_, err := Parse([]byte("skills:\n  - {name: Go, progress: 120}\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}
