package model

// Canonical yes/no answer values
const (
	AnswerYes     = "Yes"
	AnswerNo      = "No"
	AnswerNotSure = "Not Sure"
)

// AnswerSet maps question id → answer value. Numeric answers are stored as
// numeric strings. A partially filled set is a valid state while the
// questionnaire is in progress; scoring treats missing ids as unanswered.
type AnswerSet map[int]string

// FollowUpAnswerSet maps question id → follow-up answer value, populated only
// for questions whose follow-up condition was satisfied.
type FollowUpAnswerSet map[int]string

// Get returns the answer for id and whether a non-empty answer exists
func (a AnswerSet) Get(id int) (string, bool) {
	v, ok := a[id]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
