// Package prompt builds the natural-language instructions sent to the model
// and declares the response shape each operation expects back.
//
// Every builder is a pure function of its arguments.
package prompt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"careeriq/internal/domain/career"
)

// MentorSystemInstruction frames the conversational model as the CareerIQ mentor.
const MentorSystemInstruction = "You are CareerIQ's AI Mentor. You are a friendly, professional, and insightful career coach. " +
	"Your goal is to provide users with personalized career advice, help them identify skill gaps, suggest learning resources, " +
	"and prepare them for job applications and interviews. Keep your responses encouraging and actionable."

// MentorGreeting is the first message shown when a mentor session starts.
const MentorGreeting = "Hello! I'm your AI Career Mentor. How can I help you with your career development today? " +
	"Feel free to ask about resume tips, interview preparation, or skill development."

func JobMatch(userSkills string, userExperience int, jobs []career.Job) string {
	return fmt.Sprintf(`
As an expert HR recruitment specialist, analyze the candidate's profile against the provided jobs.
For each job, provide a "matchPercentage" (0-100) and a brief "matchReason".
Consider skills and experience level ('Entry' 0-2 yrs, 'Mid' 3-5 yrs, 'Senior' 5+ yrs).
Return a JSON array of all jobs, sorted from highest to lowest matchPercentage.

Candidate:
- Skills: %s
- Experience: %d years

Jobs:
%s
`, userSkills, userExperience, indentJSON(jobs))
}

func LearningSessions(userSkills []string, sessions []career.LearningSession) string {
	return fmt.Sprintf(`
Analyze the user's skills and recommend relevant sessions from the list.
If a session is a good fit, include it and add a "recommendationReason".
Return a JSON array of recommended sessions only, sorted by relevance.

User Skills:
- %s

Available Sessions:
%s
`, strings.Join(userSkills, "\n- "), indentJSON(sessions))
}

func Roadmap(currentRole, targetRole string) string {
	return fmt.Sprintf(`
Create a realistic, step-by-step career roadmap for a professional wanting to move from a "%s" position to a "%s" position.
The roadmap should consist of 4-6 distinct steps. For each step, provide a clear title, a detailed description of the actions to take, and an estimated duration.
Return a JSON array of these steps.
`, currentRole, targetRole)
}

func Training(userSkills []string, careerGoals string, catalog []career.TrainingResource) string {
	return fmt.Sprintf(`
Based on the user's current skills and career goals, recommend 3-4 highly relevant training resources from the provided catalog.
For each recommendation, add a "recommendationReason" explaining why it's a good fit.
Return a JSON array of recommended resources only.

User Skills: %s
Career Goals: "%s"

Available Training Catalog:
%s
`, strings.Join(userSkills, ", "), careerGoals, indentJSON(catalog))
}

func SkillGap(userSkills []string, targetRoleDescription string) string {
	return fmt.Sprintf(`
Perform a skill gap analysis for a user aspiring to a target role.
- Identify "matchingSkills" from the user's list that are relevant to the role.
- Identify "missingSkills" that are required for the role but not in the user's list.
- Provide a list of "actionableSuggestions" (2-3 items) for how to bridge the gap.
Return a single JSON object with these three keys.

User's Skills: %s

Target Role Description: "%s"
`, strings.Join(userSkills, ", "), targetRoleDescription)
}

// indentJSON serializes a fixture list verbatim, without HTML escaping. The
// inputs are plain data structs, so encoding cannot fail.
func indentJSON(v any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "[]"
	}
	return strings.TrimRight(buf.String(), "\n")
}
