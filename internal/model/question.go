package model

// QuestionType defines how a question is answered
type QuestionType string

const (
	QuestionTypeYesNo    QuestionType = "yesno"    // Yes / No / Not Sure
	QuestionTypeDropdown QuestionType = "dropdown" // One of a ranked option list
	QuestionTypeText     QuestionType = "text"     // Free text, informational
	QuestionTypeNumber   QuestionType = "number"   // Numeric string, informational
)

// Category is one of the five fixed compliance domains
type Category string

const (
	CategoryLegal   Category = "Company & Legal Structure"
	CategoryTax     Category = "Taxation & GST"
	CategoryIP      Category = "Intellectual Property (IP)"
	CategoryCerts   Category = "Certifications & Industry Licenses"
	CategoryFinance Category = "Financial Health & Risk"
)

// FollowUpKind tags what a follow-up collects, so downstream logic never
// has to pattern-match on the prompt copy
type FollowUpKind string

const (
	FollowUpIdentifier FollowUpKind = "identifier" // CIN, GSTIN, recognition number
	FollowUpCount      FollowUpKind = "count"      // e.g. missed filing periods
	FollowUpDetail     FollowUpKind = "detail"     // free-form elaboration
)

// FollowUp is a secondary prompt shown when the parent answer equals Condition
type FollowUp struct {
	Condition string       `json:"condition" bson:"condition"`
	Text      string       `json:"text" bson:"text"`
	Type      QuestionType `json:"type" bson:"type"`
	Kind      FollowUpKind `json:"kind" bson:"kind"`
}

// Question is one entry of the fixed compliance questionnaire catalog.
// Warning, when populated, marks the question high-severity: a negative
// answer produces both a red flag and a risk-forecast entry.
type Question struct {
	ID       int          `json:"id" bson:"id"`
	Category Category     `json:"category" bson:"category"`
	Type     QuestionType `json:"type" bson:"type"`
	Text     string       `json:"text" bson:"text"`
	Options  []string     `json:"options,omitempty" bson:"options,omitempty"`
	Warning  string       `json:"warning,omitempty" bson:"warning,omitempty"`
	FollowUp *FollowUp    `json:"followUp,omitempty" bson:"followUp,omitempty"`
}

// HighSeverity reports whether a negative answer carries an explicit warning
func (q *Question) HighSeverity() bool {
	return q.Warning != ""
}
