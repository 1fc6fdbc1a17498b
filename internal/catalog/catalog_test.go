package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anbusan19/wealth-empire-sub001/internal/model"
)

func TestCatalog_FifteenStableIDs(t *testing.T) {
	qs := Questions()
	require.Len(t, qs, 15)
	for i, q := range qs {
		assert.Equal(t, i+1, q.ID, "ids must be 1..15 in order")
		assert.NotEmpty(t, q.Text)
	}
}

func TestCatalog_FiveCategoriesInOrder(t *testing.T) {
	assert.Equal(t, []model.Category{
		model.CategoryLegal,
		model.CategoryTax,
		model.CategoryIP,
		model.CategoryCerts,
		model.CategoryFinance,
	}, Categories())

	for _, c := range Categories() {
		assert.Len(t, ByCategory(c), 3, "category %s", c)
	}
}

func TestCatalog_OptionsOnlyOnDropdowns(t *testing.T) {
	for _, q := range Questions() {
		if q.Type == model.QuestionTypeDropdown {
			assert.GreaterOrEqual(t, len(q.Options), 2, "question %d", q.ID)
		} else {
			assert.Empty(t, q.Options, "question %d", q.ID)
		}
	}
}

func TestCatalog_FollowUpsWellFormed(t *testing.T) {
	for _, q := range Questions() {
		if q.FollowUp == nil {
			continue
		}
		fu := q.FollowUp
		assert.NotEmpty(t, fu.Condition, "question %d", q.ID)
		assert.NotEmpty(t, fu.Text, "question %d", q.ID)
		assert.Contains(t, []model.QuestionType{model.QuestionTypeText, model.QuestionTypeNumber}, fu.Type)
		assert.Contains(t, []model.FollowUpKind{model.FollowUpIdentifier, model.FollowUpCount, model.FollowUpDetail}, fu.Kind)
		if fu.Kind == model.FollowUpCount {
			assert.Equal(t, model.QuestionTypeNumber, fu.Type, "question %d", q.ID)
		}
	}
}

func TestCatalog_ByID(t *testing.T) {
	q := ByID(7)
	require.NotNil(t, q)
	assert.Equal(t, model.CategoryIP, q.Category)
	assert.Equal(t, model.QuestionTypeDropdown, q.Type)

	assert.Nil(t, ByID(0))
	assert.Nil(t, ByID(16))
}
