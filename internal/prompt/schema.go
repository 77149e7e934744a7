package prompt

import "google.golang.org/genai"

// Response shapes are advisory to the provider. They are checked after the
// fact by ai.Decode, never trusted blindly. Ordering rules live in the prompt
// text only.

func JobMatchSchema() *genai.Schema {
	return arrayOf(&genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"id":              {Type: genai.TypeInteger},
			"title":           {Type: genai.TypeString},
			"department":      {Type: genai.TypeString},
			"location":        {Type: genai.TypeString},
			"description":     {Type: genai.TypeString},
			"requiredSkills":  arrayOf(&genai.Schema{Type: genai.TypeString}),
			"experienceLevel": {Type: genai.TypeString},
			"matchPercentage": {Type: genai.TypeNumber, Description: "Score from 0-100."},
			"matchReason":     {Type: genai.TypeString, Description: "Brief explanation of the score."},
		},
		Required: []string{"id", "title", "matchPercentage", "matchReason"},
	})
}

func LearningSessionSchema() *genai.Schema {
	return arrayOf(&genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"id":                   {Type: genai.TypeInteger},
			"topic":                {Type: genai.TypeString},
			"recommendationReason": {Type: genai.TypeString, Description: "Why this session is recommended."},
		},
		Required: []string{"id", "topic", "recommendationReason"},
	})
}

func RoadmapSchema() *genai.Schema {
	return arrayOf(&genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"step":        {Type: genai.TypeInteger},
			"title":       {Type: genai.TypeString},
			"description": {Type: genai.TypeString},
			"duration":    {Type: genai.TypeString},
		},
		Required: []string{"step", "title", "description", "duration"},
	})
}

func TrainingSchema() *genai.Schema {
	return arrayOf(&genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"id":                   {Type: genai.TypeInteger},
			"title":                {Type: genai.TypeString},
			"type":                 {Type: genai.TypeString},
			"url":                  {Type: genai.TypeString},
			"duration":             {Type: genai.TypeString},
			"recommendationReason": {Type: genai.TypeString},
		},
		Required: []string{"id", "title", "recommendationReason"},
	})
}

func SkillGapSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"matchingSkills":        arrayOf(&genai.Schema{Type: genai.TypeString}),
			"missingSkills":         arrayOf(&genai.Schema{Type: genai.TypeString}),
			"actionableSuggestions": arrayOf(&genai.Schema{Type: genai.TypeString}),
		},
		Required: []string{"matchingSkills", "missingSkills", "actionableSuggestions"},
	}
}

func arrayOf(items *genai.Schema) *genai.Schema {
	return &genai.Schema{Type: genai.TypeArray, Items: items}
}
