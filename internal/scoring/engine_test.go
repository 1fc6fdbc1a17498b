package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anbusan19/wealth-empire-sub001/internal/catalog"
	"github.com/anbusan19/wealth-empire-sub001/internal/model"
)

// fullyCompliant answers every yes/no question "Yes" and picks the top
// option of every dropdown.
func fullyCompliant() model.AnswerSet {
	answers := model.AnswerSet{}
	for _, q := range catalog.Questions() {
		switch q.Type {
		case model.QuestionTypeYesNo:
			answers[q.ID] = model.AnswerYes
		case model.QuestionTypeDropdown:
			answers[q.ID] = q.Options[0]
		}
	}
	return answers
}

// fullyNonCompliant answers every yes/no question "No" and picks the bottom
// option of every dropdown.
func fullyNonCompliant() model.AnswerSet {
	answers := model.AnswerSet{}
	for _, q := range catalog.Questions() {
		switch q.Type {
		case model.QuestionTypeYesNo:
			answers[q.ID] = model.AnswerNo
		case model.QuestionTypeDropdown:
			answers[q.ID] = q.Options[len(q.Options)-1]
		}
	}
	return answers
}

func highSeverityIDs() []int {
	var ids []int
	for _, q := range catalog.Questions() {
		if q.HighSeverity() {
			ids = append(ids, q.ID)
		}
	}
	return ids
}

func TestCompute_AllCompliant(t *testing.T) {
	result := Compute(fullyCompliant(), nil)

	assert.Equal(t, 100, result.OverallScore)
	require.Len(t, result.CategoryScores, 5)
	for _, cs := range result.CategoryScores {
		assert.Equal(t, 100, cs.Score)
		assert.Equal(t, model.StatusExcellent, cs.Status)
		assert.NotEmpty(t, cs.Insights)
	}
	assert.Len(t, result.Strengths, 15)
	assert.Empty(t, result.RedFlags)
	assert.Empty(t, result.RiskForecast.Risks)
	assert.Equal(t, ForecastPeriod, result.RiskForecast.Period)
}

func TestCompute_AllNonCompliant(t *testing.T) {
	result := Compute(fullyNonCompliant(), model.FollowUpAnswerSet{5: "3", 11: "FSSAI"})

	assert.Less(t, result.OverallScore, 20)
	assert.GreaterOrEqual(t, result.OverallScore, 0)

	// Every question is non-compliant, so every question flags
	assert.Len(t, result.RedFlags, 15)
	assert.Empty(t, result.Strengths)

	// One forecast entry per high-severity question
	require.Len(t, result.RiskForecast.Risks, len(highSeverityIDs()))

	// Probability tiers descend
	risks := result.RiskForecast.Risks
	for i := 1; i < len(risks); i++ {
		assert.GreaterOrEqual(t, risks[i-1].Probability.Rank(), risks[i].Probability.Rank())
	}
}

func TestCompute_EmptyInput_Totality(t *testing.T) {
	result := Compute(model.AnswerSet{}, model.FollowUpAnswerSet{})

	// Absence is never rewarded: identical to answering everything worst-case
	worst := Compute(fullyNonCompliant(), nil)
	assert.Equal(t, worst.OverallScore, result.OverallScore)

	require.Len(t, result.CategoryScores, 5)
	flagTexts := make(map[string]bool)
	for _, f := range result.RedFlags {
		flagTexts[f] = true
	}
	for _, id := range highSeverityIDs() {
		assert.True(t, flagTexts[insightRules[id].RedFlag],
			"expected red flag for unanswered high-severity question %d", id)
	}
	assert.Len(t, result.RiskForecast.Risks, len(highSeverityIDs()))
}

func TestCompute_Deterministic(t *testing.T) {
	answers := fullyNonCompliant()
	answers[2] = model.AnswerNotSure
	answers[7] = "Not applicable"
	followUps := model.FollowUpAnswerSet{5: "2"}

	first := Compute(answers, followUps)
	second := Compute(answers, followUps)
	assert.Equal(t, first, second)
}

func TestCompute_Bounds(t *testing.T) {
	inputs := []model.AnswerSet{
		{},
		fullyCompliant(),
		fullyNonCompliant(),
		{1: "garbage", 3: "also garbage", 7: ""},
	}
	for _, answers := range inputs {
		result := Compute(answers, nil)
		assert.GreaterOrEqual(t, result.OverallScore, 0)
		assert.LessOrEqual(t, result.OverallScore, 100)
		for _, cs := range result.CategoryScores {
			assert.GreaterOrEqual(t, cs.Score, 0)
			assert.LessOrEqual(t, cs.Score, 100)
		}
	}
}

func TestCompute_Monotonicity(t *testing.T) {
	categoryScore := func(r model.ComplianceResult, c model.Category) int {
		for _, cs := range r.CategoryScores {
			if cs.Category == c {
				return cs.Score
			}
		}
		t.Fatalf("category %s missing", c)
		return 0
	}

	for _, q := range catalog.Questions() {
		var ladder []string
		switch q.Type {
		case model.QuestionTypeYesNo:
			ladder = []string{model.AnswerNo, model.AnswerNotSure, model.AnswerYes}
		case model.QuestionTypeDropdown:
			// options are ranked best-first
			for i := len(q.Options) - 1; i >= 0; i-- {
				ladder = append(ladder, q.Options[i])
			}
		}

		answers := fullyNonCompliant()
		prev := -1
		prevCat := -1
		for _, step := range ladder {
			answers[q.ID] = step
			result := Compute(answers, nil)
			if prev >= 0 {
				assert.GreaterOrEqual(t, result.OverallScore, prev,
					"overall dropped when improving question %d to %q", q.ID, step)
				assert.GreaterOrEqual(t, categoryScore(result, q.Category), prevCat,
					"category dropped when improving question %d to %q", q.ID, step)
			}
			prev = result.OverallScore
			prevCat = categoryScore(result, q.Category)
		}
	}
}

func TestCompute_SeverityLinkage(t *testing.T) {
	for _, q := range catalog.Questions() {
		if !q.HighSeverity() {
			continue
		}

		answers := fullyCompliant()
		switch q.Type {
		case model.QuestionTypeYesNo:
			answers[q.ID] = model.AnswerNo
		case model.QuestionTypeDropdown:
			answers[q.ID] = q.Options[len(q.Options)-1]
		}

		result := Compute(answers, nil)
		require.Len(t, result.RedFlags, 1, "question %d", q.ID)
		assert.Equal(t, insightRules[q.ID].RedFlag, result.RedFlags[0])
		require.Len(t, result.RiskForecast.Risks, 1, "question %d", q.ID)
		assert.Equal(t, riskTable[q.ID], result.RiskForecast.Risks[0])
	}
}

func TestCompute_SingleRedFlag_Incorporation(t *testing.T) {
	answers := fullyCompliant()
	answers[1] = model.AnswerNo

	result := Compute(answers, nil)

	require.Len(t, result.RedFlags, 1)
	assert.Equal(t, "Company is not incorporated", result.RedFlags[0])
	require.Len(t, result.RiskForecast.Risks, 1)
	assert.Equal(t, "Regulatory non-compliance exposure", result.RiskForecast.Risks[0].Type)
	assert.Equal(t, model.ProbabilityHigh, result.RiskForecast.Risks[0].Probability)

	for _, cs := range result.CategoryScores {
		if cs.Category == model.CategoryLegal {
			assert.Less(t, cs.Score, 100)
		} else {
			assert.Equal(t, 100, cs.Score, "category %s should stay at maximum", cs.Category)
		}
	}
}

func TestCompute_OrderingStability(t *testing.T) {
	answers := fullyNonCompliant()
	first := Compute(answers, nil)
	second := Compute(answers, nil)

	assert.Equal(t, first.RedFlags, second.RedFlags)
	assert.Equal(t, first.Strengths, second.Strengths)
	assert.Equal(t, first.RiskForecast.Risks, second.RiskForecast.Risks)

	// Red flags follow category catalog order then question id
	var wantFlags []string
	for _, c := range catalog.Categories() {
		for _, q := range catalog.ByCategory(c) {
			wantFlags = append(wantFlags, insightRules[q.ID].RedFlag)
		}
	}
	assert.Equal(t, wantFlags, first.RedFlags)
}

func TestCompute_NotSureStrictlyBetween(t *testing.T) {
	for _, q := range catalog.Questions() {
		if q.Type != model.QuestionTypeYesNo {
			continue
		}

		score := func(answer string) int {
			answers := fullyCompliant()
			answers[q.ID] = answer
			return Compute(answers, nil).OverallScore
		}

		no, notSure, yes := score(model.AnswerNo), score(model.AnswerNotSure), score(model.AnswerYes)
		assert.Greater(t, notSure, no, "question %d", q.ID)
		assert.Less(t, notSure, yes, "question %d", q.ID)
	}
}

func TestCompute_MalformedAnswersDegrade(t *testing.T) {
	answers := fullyCompliant()
	answers[1] = "maybe?"
	answers[7] = "some option that does not exist"

	result := Compute(answers, nil)
	worst := Compute(model.AnswerSet{}, nil)

	// Malformed answers land in the same bucket as unanswered ones
	single := func(id int) int {
		a := fullyCompliant()
		delete(a, id)
		return Compute(a, nil).OverallScore
	}
	combined := fullyCompliant()
	delete(combined, 1)
	delete(combined, 7)
	assert.Equal(t, Compute(combined, nil).OverallScore, result.OverallScore)
	assert.Less(t, result.OverallScore, single(1))
	assert.Greater(t, result.OverallScore, worst.OverallScore)
}

func TestMatchedFollowUps(t *testing.T) {
	answers := model.AnswerSet{
		1: model.AnswerYes, // condition "Yes" → CIN matches
		5: model.AnswerYes, // condition "No" → count does not match
	}
	followUps := model.FollowUpAnswerSet{
		1:  "U72900KA2019PTC123456",
		5:  "3",
		9:  "no follow-up defined for this question",
		99: "unknown id",
	}

	matched := MatchedFollowUps(answers, followUps)
	assert.Equal(t, model.FollowUpAnswerSet{1: "U72900KA2019PTC123456"}, matched)
}
