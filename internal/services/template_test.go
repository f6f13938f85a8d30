package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndGetTemplate(t *testing.T) {
	svc := NewTemplateService(setupTestDB(t))

	created, err := svc.CreateTemplate(TemplateInput{
		Role:       "Software Engineer",
		Questions:  []string{"Tell me about yourself", "Describe a hard bug"},
		Tips:       []string{"Use the STAR method", "Mention concrete numbers"},
		Difficulty: "Intermediate",
		Duration:   "30 min",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := svc.GetTemplate(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Software Engineer", got.Role)
	assert.Equal(t, []string{"Tell me about yourself", "Describe a hard bug"}, got.Questions)
	assert.Equal(t, []string{"Use the STAR method", "Mention concrete numbers"}, got.Tips)
	assert.Equal(t, "Intermediate", got.Difficulty)
}

func TestListTemplatesKeepsCatalogOrder(t *testing.T) {
	svc := NewTemplateService(setupTestDB(t))

	roles := []string{"Software Engineer", "Data Analyst", "Product Manager"}
	for _, role := range roles {
		_, err := svc.CreateTemplate(TemplateInput{
			Role:      role,
			Questions: []string{"q1"},
		})
		require.NoError(t, err)
	}

	list, err := svc.ListTemplates()
	require.NoError(t, err)
	require.Len(t, list, 3)
	for i, role := range roles {
		assert.Equal(t, role, list[i].Role)
	}
}

func TestQuestionOrderSurvivesRoundTrip(t *testing.T) {
	svc := NewTemplateService(setupTestDB(t))

	questions := []string{"q-one", "q-two", "q-three", "q-four", "q-five"}
	created, err := svc.CreateTemplate(TemplateInput{Role: "SE", Questions: questions})
	require.NoError(t, err)

	got, err := svc.GetTemplate(created.ID)
	require.NoError(t, err)
	assert.Equal(t, questions, got.Questions)
}

func TestUpdateTemplateRewritesChildren(t *testing.T) {
	svc := NewTemplateService(setupTestDB(t))

	created, err := svc.CreateTemplate(TemplateInput{
		Role:      "Software Engineer",
		Questions: []string{"old q1", "old q2"},
		Tips:      []string{"old tip"},
	})
	require.NoError(t, err)

	updated, err := svc.UpdateTemplate(created.ID, TemplateInput{
		Role:       "Senior Software Engineer",
		Questions:  []string{"new q1", "new q2", "new q3"},
		Tips:       []string{"new tip one", "new tip two"},
		Difficulty: "Advanced",
	})
	require.NoError(t, err)
	assert.Equal(t, "Senior Software Engineer", updated.Role)
	assert.Equal(t, []string{"new q1", "new q2", "new q3"}, updated.Questions)
	assert.Equal(t, []string{"new tip one", "new tip two"}, updated.Tips)
	assert.Equal(t, "Advanced", updated.Difficulty)
}

func TestUpdateMissingTemplate(t *testing.T) {
	svc := NewTemplateService(setupTestDB(t))
	_, err := svc.UpdateTemplate("missing", TemplateInput{Role: "SE", Questions: []string{"q"}})
	assert.Error(t, err)
}

func TestDeleteTemplate(t *testing.T) {
	svc := NewTemplateService(setupTestDB(t))

	created, err := svc.CreateTemplate(TemplateInput{Role: "SE", Questions: []string{"q"}})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTemplate(created.ID))
	_, err = svc.GetTemplate(created.ID)
	assert.Error(t, err)

	assert.Error(t, svc.DeleteTemplate(created.ID))
}

func TestCreateTemplateRequiresQuestions(t *testing.T) {
	svc := NewTemplateService(setupTestDB(t))
	_, err := svc.CreateTemplate(TemplateInput{Role: "SE"})
	assert.Error(t, err)
}
