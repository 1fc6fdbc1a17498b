// Package scoring converts a finished questionnaire into a compliance
// report: an overall score, per-category breakdowns, ranked strengths and
// red flags, a risk forecast and remediation recommendations. Everything is
// driven by declarative rule tables keyed by question id, so the rules stay
// auditable independent of any UI.
//
// Compute is a pure function over its two arguments and the static catalog:
// no I/O, no clock, no randomness. It is total — any answer set, including
// an empty one, produces a well-formed result, with missing or unrecognized
// answers scored as the least-favorable bucket.
package scoring

import (
	"math"
	"sort"

	"github.com/anbusan19/wealth-empire-sub001/internal/catalog"
	"github.com/anbusan19/wealth-empire-sub001/internal/model"
)

// ForecastPeriod is the fixed horizon of the risk forecast
const ForecastPeriod = "6 months"

// evaluation is the scored outcome of a single question
type evaluation struct {
	credit   int
	strength bool
	redFlag  bool
}

// evaluate applies the per-question-type credit rule. An absent or
// unrecognized answer falls into the least-favorable bucket; absence is
// never rewarded.
func evaluate(q *model.Question, answer string, ok bool) evaluation {
	switch q.Type {
	case model.QuestionTypeYesNo:
		noCredit, notSureCredit := creditNoRegular, creditNotSureRegular
		if q.HighSeverity() {
			noCredit, notSureCredit = creditNoSevere, creditNotSureSevere
		}
		if !ok {
			return evaluation{credit: noCredit, redFlag: true}
		}
		switch answer {
		case model.AnswerYes:
			return evaluation{credit: creditYes, strength: true}
		case model.AnswerNotSure:
			return evaluation{credit: notSureCredit}
		default: // "No" and anything unrecognized
			return evaluation{credit: noCredit, redFlag: true}
		}

	case model.QuestionTypeDropdown:
		rank := len(q.Options) - 1
		if ok {
			for i, opt := range q.Options {
				if opt == answer {
					rank = i
					break
				}
			}
		}
		credit := dropdownCredits[len(dropdownCredits)-1]
		if rank < len(dropdownCredits) {
			credit = dropdownCredits[rank]
		}
		return evaluation{
			credit:   credit,
			strength: rank == 0,
			redFlag:  rank == len(q.Options)-1,
		}

	default:
		// text/number questions are informational and never gate a score
		return evaluation{credit: creditYes}
	}
}

// Compute maps an answer set and its follow-ups to a ComplianceResult.
// Follow-up entries whose parent answer does not match the follow-up
// condition are ignored; the rest are informational for downstream use and
// never change the score.
func Compute(answers model.AnswerSet, followUps model.FollowUpAnswerSet) model.ComplianceResult {
	type categoryAgg struct {
		sum, n int
	}
	agg := make(map[model.Category]*categoryAgg)

	var strengths, redFlags []string
	flagged := make(map[int]bool)

	for _, q := range catalog.Questions() {
		answer, ok := answers.Get(q.ID)
		ev := evaluate(&q, answer, ok)

		a := agg[q.Category]
		if a == nil {
			a = &categoryAgg{}
			agg[q.Category] = a
		}
		a.sum += ev.credit
		a.n++

		rule := insightRules[q.ID]
		if ev.strength && rule.Strength != "" {
			strengths = append(strengths, rule.Strength)
		}
		if ev.redFlag {
			flagged[q.ID] = true
			if rule.RedFlag != "" {
				redFlags = append(redFlags, rule.RedFlag)
			}
		}
	}

	var categoryScores []model.CategoryScore
	total := 0
	for _, c := range catalog.Categories() {
		a := agg[c]
		score := clamp(roundMean(a.sum, a.n))
		total += score
		categoryScores = append(categoryScores, model.CategoryScore{
			Category: c,
			Score:    score,
			Insights: insightFor(c, score),
			Status:   statusFor(score),
		})
	}
	overall := clamp(roundMean(total, len(categoryScores)))

	return model.ComplianceResult{
		OverallScore:   overall,
		CategoryScores: categoryScores,
		Strengths:      strengths,
		RedFlags:       redFlags,
		RiskForecast: model.RiskForecast{
			Period: ForecastPeriod,
			Risks:  forecast(flagged),
		},
	}
}

// forecast emits one risk per flagged question with a risk-table entry,
// ordered by probability tier descending, ties by question id ascending.
func forecast(flagged map[int]bool) []model.Risk {
	type entry struct {
		id   int
		risk model.Risk
	}
	var entries []entry
	for id := range flagged {
		if risk, ok := riskTable[id]; ok {
			entries = append(entries, entry{id: id, risk: risk})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		ri, rj := entries[i].risk.Probability.Rank(), entries[j].risk.Probability.Rank()
		if ri != rj {
			return ri > rj
		}
		return entries[i].id < entries[j].id
	})

	risks := make([]model.Risk, 0, len(entries))
	for _, e := range entries {
		risks = append(risks, e.risk)
	}
	return risks
}

// MatchedFollowUps filters a follow-up set down to entries whose parent
// answer satisfies the follow-up condition. Only these are meaningful for
// persistence and recommendations.
func MatchedFollowUps(answers model.AnswerSet, followUps model.FollowUpAnswerSet) model.FollowUpAnswerSet {
	matched := make(model.FollowUpAnswerSet)
	for id, v := range followUps {
		if v == "" {
			continue
		}
		q := catalog.ByID(id)
		if q == nil || q.FollowUp == nil {
			continue
		}
		if answer, ok := answers.Get(id); ok && answer == q.FollowUp.Condition {
			matched[id] = v
		}
	}
	return matched
}

func roundMean(sum, n int) int {
	if n == 0 {
		return 0
	}
	return int(math.Round(float64(sum) / float64(n)))
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
