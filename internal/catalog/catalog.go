// Package catalog holds the fixed compliance questionnaire: fifteen
// questions across five categories. The table is pure data — presentation
// concerns (icons, layout) are looked up by category name in the UI layer.
package catalog

import "github.com/anbusan19/wealth-empire-sub001/internal/model"

var questions = []model.Question{
	{
		ID:       1,
		Category: model.CategoryLegal,
		Type:     model.QuestionTypeYesNo,
		Text:     "Is your company incorporated (Private Limited, LLP, or OPC)?",
		Warning:  "Operating without incorporation exposes founders to unlimited personal liability and blocks institutional funding.",
		FollowUp: &model.FollowUp{
			Condition: model.AnswerYes,
			Text:      "Enter your Corporate Identification Number (CIN)",
			Type:      model.QuestionTypeText,
			Kind:      model.FollowUpIdentifier,
		},
	},
	{
		ID:       2,
		Category: model.CategoryLegal,
		Type:     model.QuestionTypeYesNo,
		Text:     "Are your founder agreements and ESOP documents signed and current?",
		Warning:  "Unsigned founder agreements are a leading cause of equity disputes surfacing during due diligence.",
	},
	{
		ID:       3,
		Category: model.CategoryLegal,
		Type:     model.QuestionTypeDropdown,
		Text:     "How is your cap table maintained?",
		Options: []string{
			"Professionally managed with legal review",
			"Maintained in-house, reviewed annually",
			"Informal spreadsheet",
			"No cap table",
		},
	},
	{
		ID:       4,
		Category: model.CategoryTax,
		Type:     model.QuestionTypeYesNo,
		Text:     "Is your company registered under GST?",
		Warning:  "Making taxable supplies without GST registration attracts penalties on the full tax due.",
		FollowUp: &model.FollowUp{
			Condition: model.AnswerYes,
			Text:      "Enter your GSTIN",
			Type:      model.QuestionTypeText,
			Kind:      model.FollowUpIdentifier,
		},
	},
	{
		ID:       5,
		Category: model.CategoryTax,
		Type:     model.QuestionTypeYesNo,
		Text:     "Have all GST returns been filed on time?",
		Warning:  "Each late GST return accrues daily late fees and interest on outstanding tax.",
		FollowUp: &model.FollowUp{
			Condition: model.AnswerNo,
			Text:      "How many filing periods have been missed?",
			Type:      model.QuestionTypeNumber,
			Kind:      model.FollowUpCount,
		},
	},
	{
		ID:       6,
		Category: model.CategoryTax,
		Type:     model.QuestionTypeYesNo,
		Text:     "Has the company filed its income tax return for the last financial year?",
		Warning:  "Missing the ITR deadline forfeits loss carry-forward and attracts late-filing fees.",
	},
	{
		ID:       7,
		Category: model.CategoryIP,
		Type:     model.QuestionTypeDropdown,
		Text:     "Have you filed a trademark for your brand?",
		Options: []string{
			"Yes, filed trademark",
			"No, but planning to file",
			"Not applicable",
			"No unique brand assets",
		},
		Warning: "An unprotected brand can be registered by a competitor, forcing a costly rebrand.",
	},
	{
		ID:       8,
		Category: model.CategoryIP,
		Type:     model.QuestionTypeYesNo,
		Text:     "Is all intellectual property formally assigned to the company?",
		Warning:  "IP held personally by founders or contractors clouds title to the company's core assets.",
	},
	{
		ID:       9,
		Category: model.CategoryIP,
		Type:     model.QuestionTypeYesNo,
		Text:     "Do employees and contractors sign NDAs with IP assignment clauses?",
	},
	{
		ID:       10,
		Category: model.CategoryCerts,
		Type:     model.QuestionTypeYesNo,
		Text:     "Does the company hold DPIIT startup recognition?",
		FollowUp: &model.FollowUp{
			Condition: model.AnswerYes,
			Text:      "Enter your DPIIT recognition number",
			Type:      model.QuestionTypeText,
			Kind:      model.FollowUpIdentifier,
		},
	},
	{
		ID:       11,
		Category: model.CategoryCerts,
		Type:     model.QuestionTypeYesNo,
		Text:     "Are all industry-specific licenses (FSSAI, RBI, SEBI, state trade) in place?",
		Warning:  "Trading without a mandatory industry license risks shutdown orders and fines.",
		FollowUp: &model.FollowUp{
			Condition: model.AnswerNo,
			Text:      "Which licenses are pending?",
			Type:      model.QuestionTypeText,
			Kind:      model.FollowUpDetail,
		},
	},
	{
		ID:       12,
		Category: model.CategoryCerts,
		Type:     model.QuestionTypeYesNo,
		Text:     "Are your quality certifications (ISO, SOC 2) current?",
	},
	{
		ID:       13,
		Category: model.CategoryFinance,
		Type:     model.QuestionTypeYesNo,
		Text:     "Are your financial statements audited annually?",
		Warning:  "Skipping the statutory audit draws penalties under the Companies Act and qualified opinions later.",
	},
	{
		ID:       14,
		Category: model.CategoryFinance,
		Type:     model.QuestionTypeYesNo,
		Text:     "Does the company operate a dedicated bank account with books kept separate from personal finances?",
		Warning:  "Commingled funds pierce the corporate veil and complicate every tax assessment.",
	},
	{
		ID:       15,
		Category: model.CategoryFinance,
		Type:     model.QuestionTypeDropdown,
		Text:     "How often do you review runway and burn rate?",
		Options: []string{
			"Monthly, with board reporting",
			"Quarterly",
			"Rarely",
			"Never",
		},
	},
}

var byID = func() map[int]*model.Question {
	m := make(map[int]*model.Question, len(questions))
	for i := range questions {
		m[questions[i].ID] = &questions[i]
	}
	return m
}()

// Questions returns the full catalog in id order
func Questions() []model.Question {
	return questions
}

// ByID returns the question with the given id, or nil
func ByID(id int) *model.Question {
	return byID[id]
}

// Categories returns the five categories in first-appearance order
func Categories() []model.Category {
	var out []model.Category
	seen := make(map[model.Category]bool)
	for i := range questions {
		if !seen[questions[i].Category] {
			seen[questions[i].Category] = true
			out = append(out, questions[i].Category)
		}
	}
	return out
}

// ByCategory returns the catalog questions for one category, id order
func ByCategory(c model.Category) []model.Question {
	var out []model.Question
	for i := range questions {
		if questions[i].Category == c {
			out = append(out, questions[i])
		}
	}
	return out
}
