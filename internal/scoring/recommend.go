package scoring

import (
	"github.com/anbusan19/wealth-empire-sub001/internal/catalog"
	"github.com/anbusan19/wealth-empire-sub001/internal/model"
)

// MaxRecommendations caps the remediation list shown to the user
const MaxRecommendations = 6

// recommendRule maps designated non-compliant answers on one question to a
// remediation service slug. Rules are listed in catalog order so the output
// ranking follows category order then question id.
type recommendRule struct {
	QuestionID int
	Triggers   []string
	Service    string
}

var recommendRules = []recommendRule{
	{QuestionID: 1, Triggers: []string{model.AnswerNo}, Service: "company-incorporation"},
	{QuestionID: 2, Triggers: []string{model.AnswerNo}, Service: "legal-documentation"},
	{QuestionID: 4, Triggers: []string{model.AnswerNo}, Service: "gst-registration"},
	{QuestionID: 5, Triggers: []string{model.AnswerNo}, Service: "gst-filing"},
	{QuestionID: 6, Triggers: []string{model.AnswerNo}, Service: "itr-filing"},
	{QuestionID: 7, Triggers: []string{"No, but planning to file", "No unique brand assets"}, Service: "trademark-registration"},
	{QuestionID: 8, Triggers: []string{model.AnswerNo}, Service: "ip-assignment"},
	{QuestionID: 9, Triggers: []string{model.AnswerNo}, Service: "nda-templates"},
	{QuestionID: 10, Triggers: []string{model.AnswerNo}, Service: "dpiit-recognition"},
	{QuestionID: 11, Triggers: []string{model.AnswerNo}, Service: "license-advisory"},
	{QuestionID: 13, Triggers: []string{model.AnswerNo}, Service: "virtual-cfo"},
	{QuestionID: 14, Triggers: []string{model.AnswerNo}, Service: "bookkeeping"},
}

// Recommend derives the ordered, de-duplicated remediation service list from
// an answer set. Like the engine, it treats a missing or unrecognized answer
// as the least-favorable one for that question.
func Recommend(answers model.AnswerSet) []string {
	var out []string
	seen := make(map[string]bool)

	for _, rule := range recommendRules {
		q := catalog.ByID(rule.QuestionID)
		if q == nil {
			continue
		}
		answer := normalize(q, answers)
		for _, trigger := range rule.Triggers {
			if answer == trigger {
				if !seen[rule.Service] {
					seen[rule.Service] = true
					out = append(out, rule.Service)
				}
				break
			}
		}
		if len(out) == MaxRecommendations {
			break
		}
	}
	return out
}

// normalize resolves an answer to a canonical catalog value, mapping absent
// or unrecognized input to the question's least-favorable answer.
func normalize(q *model.Question, answers model.AnswerSet) string {
	answer, ok := answers.Get(q.ID)
	switch q.Type {
	case model.QuestionTypeYesNo:
		if !ok || (answer != model.AnswerYes && answer != model.AnswerNotSure) {
			return model.AnswerNo
		}
		return answer
	case model.QuestionTypeDropdown:
		if ok {
			for _, opt := range q.Options {
				if opt == answer {
					return answer
				}
			}
		}
		return q.Options[len(q.Options)-1]
	default:
		return answer
	}
}
