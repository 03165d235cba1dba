package flows

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staffhub-utils/pkg/models"
	"staffhub-utils/pkg/utils"
)

func TestFitScoreEmptyTechStackIsPerfectFit(t *testing.T) {
	gen := &fakeGenerator{}
	svc := newTestService(gen)

	for _, skills := range [][]string{{}, {"X"}} {
		result, err := svc.CalculateFitScore(context.Background(), &models.FitScoreRequest{
			ProjectTechStack: []string{},
			StaffSkills:      skills,
		})
		require.NoError(t, err)
		assert.Equal(t, 100.0, result.FitScore)
		assert.Equal(t, "No specific tech stack defined for the project.", result.Explanation)
		assert.Empty(t, result.MatchingSkills)
		assert.Empty(t, result.MissingSkills)
	}

	assert.Zero(t, gen.calls, "degenerate inputs must not reach the model")
}

func TestFitScoreNoSkillsIsZeroFit(t *testing.T) {
	gen := &fakeGenerator{}
	svc := newTestService(gen)

	required := []string{"React", "AWS"}
	result, err := svc.CalculateFitScore(context.Background(), &models.FitScoreRequest{
		ProjectTechStack: required,
		StaffSkills:      []string{},
	})
	require.NoError(t, err)

	assert.Equal(t, 0.0, result.FitScore)
	assert.Equal(t, "Staff member has no skills listed.", result.Explanation)
	assert.Empty(t, result.MatchingSkills)
	assert.Equal(t, required, result.MissingSkills)
	assert.Zero(t, gen.calls, "degenerate inputs must not reach the model")
}

func TestFitScoreEmptyTechStackWinsOverEmptySkills(t *testing.T) {
	gen := &fakeGenerator{}
	svc := newTestService(gen)

	result, err := svc.CalculateFitScore(context.Background(), &models.FitScoreRequest{
		ProjectTechStack: []string{},
		StaffSkills:      []string{},
	})
	require.NoError(t, err)

	assert.Equal(t, 100.0, result.FitScore)
	assert.Zero(t, gen.calls)
}

func TestFitScoreModelPath(t *testing.T) {
	gen := &fakeGenerator{
		response: `{"fit_score": 50, "explanation": "Partial fit.", "matching_skills": ["Go"], "missing_skills": ["Rust"]}`,
	}
	svc := newTestService(gen)

	result, err := svc.CalculateFitScore(context.Background(), &models.FitScoreRequest{
		ProjectTechStack: []string{"Go", "Rust"},
		StaffSkills:      []string{"Go"},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, gen.calls)
	assert.Equal(t, 50.0, result.FitScore)
	assert.Equal(t, []string{"Go"}, result.MatchingSkills)
	assert.Equal(t, []string{"Rust"}, result.MissingSkills)

	require.NotNil(t, gen.lastPrompt)
	assert.Contains(t, gen.lastPrompt.Text, "- Go")
	assert.Contains(t, gen.lastPrompt.Text, "- Rust")
	assert.Contains(t, gen.lastPrompt.Text, "fit score")
}

func TestFitScoreArithmeticConsistency(t *testing.T) {
	gen := &fakeGenerator{
		response: `{"fit_score": 67, "explanation": "Good fit, matching on 2 of 3 key technologies.", "matching_skills": ["React", "AWS"], "missing_skills": ["Node.js"]}`,
	}
	svc := newTestService(gen)

	required := []string{"React", "Node.js", "AWS"}
	candidate := []string{"React", "AWS", "Go"}
	result, err := svc.CalculateFitScore(context.Background(), &models.FitScoreRequest{
		ProjectTechStack: required,
		StaffSkills:      candidate,
	})
	require.NoError(t, err)

	for _, skill := range result.MatchingSkills {
		assert.Contains(t, required, skill)
		assert.Contains(t, candidate, skill)
	}
	for _, skill := range result.MissingSkills {
		assert.Contains(t, required, skill)
		assert.NotContains(t, result.MatchingSkills, skill)
	}
	assert.Len(t, result.MatchingSkills, len(required)-len(result.MissingSkills))

	expected := 100.0 * float64(len(result.MatchingSkills)) / float64(len(required))
	assert.InDelta(t, expected, result.FitScore, 1.0)
}

func TestFitScoreOutOfRangeScoreRejected(t *testing.T) {
	gen := &fakeGenerator{
		response: `{"fit_score": 480, "explanation": "confused", "matching_skills": [], "missing_skills": []}`,
	}
	svc := newTestService(gen)

	_, err := svc.CalculateFitScore(context.Background(), &models.FitScoreRequest{
		ProjectTechStack: []string{"Go"},
		StaffSkills:      []string{"Go"},
	})
	require.Error(t, err)
	assert.True(t, utils.IsLLMError(err))
}
