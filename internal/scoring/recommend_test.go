package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/anbusan19/wealth-empire-sub001/internal/model"
)

func TestRecommend_AllCompliant(t *testing.T) {
	assert.Empty(t, Recommend(fullyCompliant()))
}

func TestRecommend_CappedAndOrdered(t *testing.T) {
	recs := Recommend(fullyNonCompliant())

	// Twelve rules could fire; the list caps at six, in catalog order
	assert.Equal(t, []string{
		"company-incorporation",
		"legal-documentation",
		"gst-registration",
		"gst-filing",
		"itr-filing",
		"trademark-registration",
	}, recs)
}

func TestRecommend_SingleGap(t *testing.T) {
	answers := fullyCompliant()
	answers[5] = model.AnswerNo

	assert.Equal(t, []string{"gst-filing"}, Recommend(answers))
}

func TestRecommend_TrademarkTriggers(t *testing.T) {
	answers := fullyCompliant()

	answers[7] = "No, but planning to file"
	assert.Equal(t, []string{"trademark-registration"}, Recommend(answers))

	answers[7] = "No unique brand assets"
	assert.Equal(t, []string{"trademark-registration"}, Recommend(answers))

	// "Not applicable" is not a gap
	answers[7] = "Not applicable"
	assert.Empty(t, Recommend(answers))
}

func TestRecommend_MissingAnswersCountAsNonCompliant(t *testing.T) {
	recs := Recommend(model.AnswerSet{})
	assert.Len(t, recs, MaxRecommendations)
	assert.Equal(t, "company-incorporation", recs[0])
}

func TestRecommend_Deduplicates(t *testing.T) {
	recs := Recommend(fullyNonCompliant())
	seen := make(map[string]bool)
	for _, r := range recs {
		assert.False(t, seen[r], "duplicate recommendation %q", r)
		seen[r] = true
	}
}
