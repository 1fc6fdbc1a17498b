package scoring

import "github.com/anbusan19/wealth-empire-sub001/internal/model"

// Credit values for yes/no questions. High-severity questions (those with a
// populated warning) zero out on "No"; the rest keep partial credit. "Not
// Sure" always lands strictly between the No and Yes credits.
const (
	creditYes            = 100
	creditNoSevere       = 0
	creditNotSureSevere  = 50
	creditNoRegular      = 40
	creditNotSureRegular = 70
)

// dropdownCredits maps option rank to credit. Every dropdown in the catalog
// carries four pre-ranked options; credit is monotone in rank.
var dropdownCredits = []int{100, 70, 50, 20}

// insightRule holds per-question narrative fragments. Strength is emitted for
// the compliant bucket, RedFlag for the non-compliant one; the middle buckets
// ("Not Sure", mid-ranked options) emit neither.
type insightRule struct {
	Strength string
	RedFlag  string
}

var insightRules = map[int]insightRule{
	1:  {Strength: "Company is formally incorporated", RedFlag: "Company is not incorporated"},
	2:  {Strength: "Founder agreements and ESOP documents are in order", RedFlag: "Founder agreements are missing or outdated"},
	3:  {Strength: "Cap table is professionally maintained", RedFlag: "No cap table is maintained"},
	4:  {Strength: "GST registration is active", RedFlag: "Company is not registered under GST"},
	5:  {Strength: "All GST returns filed on time", RedFlag: "GST returns have been missed or filed late"},
	6:  {Strength: "Income tax filings are current", RedFlag: "Last financial year's income tax return is unfiled"},
	7:  {Strength: "Trademark filed for the brand", RedFlag: "Brand has no trademark protection"},
	8:  {Strength: "All IP is assigned to the company", RedFlag: "IP is not formally assigned to the company"},
	9:  {Strength: "NDAs with IP assignment are standard practice", RedFlag: "No NDA or IP assignment practice with staff"},
	10: {Strength: "DPIIT startup recognition held", RedFlag: "No DPIIT startup recognition"},
	11: {Strength: "All industry licenses are in place", RedFlag: "Mandatory industry licenses are missing"},
	12: {Strength: "Quality certifications are current", RedFlag: "Quality certifications are lapsed or absent"},
	13: {Strength: "Financial statements are audited annually", RedFlag: "Financial statements are not audited"},
	14: {Strength: "Banking and books are cleanly separated", RedFlag: "Company funds are commingled with personal accounts"},
	15: {Strength: "Runway and burn reviewed monthly", RedFlag: "Runway and burn rate are never reviewed"},
}

// riskTable maps high-severity question ids to their forecast entry. Every
// catalog question with a populated warning has exactly one row here; a red
// flag on any of these ids emits the row into the forecast.
var riskTable = map[int]model.Risk{
	1: {
		Type:        "Regulatory non-compliance exposure",
		Penalty:     "Unlimited personal liability for business obligations and ineligibility for institutional funding",
		Probability: model.ProbabilityHigh,
	},
	2: {
		Type:        "Equity dispute exposure",
		Penalty:     "Deal-blocking diligence findings and founder litigation over unallocated equity",
		Probability: model.ProbabilityMedium,
	},
	4: {
		Type:        "GST non-registration penalty",
		Penalty:     "10% of tax due (minimum ₹10,000) plus interest on unregistered taxable supply",
		Probability: model.ProbabilityHigh,
	},
	5: {
		Type:        "GST late-filing penalty",
		Penalty:     "₹50 per day late fee per return plus 18% interest on outstanding tax",
		Probability: model.ProbabilityHigh,
	},
	6: {
		Type:        "Income tax penalty exposure",
		Penalty:     "Late-filing fee up to ₹10,000 and forfeiture of loss carry-forward",
		Probability: model.ProbabilityMedium,
	},
	7: {
		Type:        "Brand/IP dispute exposure",
		Penalty:     "Forced rebrand and infringement litigation if a third party registers the mark first",
		Probability: model.ProbabilityMedium,
	},
	8: {
		Type:        "IP ownership dispute exposure",
		Penalty:     "Clouded title to core IP, valuation discounts or broken deals in diligence",
		Probability: model.ProbabilityMedium,
	},
	11: {
		Type:        "License enforcement exposure",
		Penalty:     "Shutdown orders and fines for operating without mandatory licenses",
		Probability: model.ProbabilityHigh,
	},
	13: {
		Type:        "Audit non-compliance penalty",
		Penalty:     "Penalties up to ₹5 lakh under the Companies Act and qualified audit opinions",
		Probability: model.ProbabilityMedium,
	},
	14: {
		Type:        "Financial governance exposure",
		Penalty:     "Piercing of the corporate veil and protracted tax assessments over mixed funds",
		Probability: model.ProbabilityLow,
	},
}

// categoryInsights holds the qualitative narrative per category, picked by
// score band (>= 80 strong, >= 50 moderate, else weak).
type categoryNarrative struct {
	Strong   string
	Moderate string
	Weak     string
}

var categoryInsights = map[model.Category]categoryNarrative{
	model.CategoryLegal: {
		Strong:   "Legal structure is investor-ready: incorporation, founder documentation and cap table hygiene are all in place.",
		Moderate: "Core legal structure exists but documentation gaps would surface in due diligence.",
		Weak:     "Legal foundation is incomplete; incorporation and founder documentation need immediate attention.",
	},
	model.CategoryTax: {
		Strong:   "Tax posture is clean: GST and income tax registrations and filings are current.",
		Moderate: "Tax registrations exist but filing discipline is inconsistent; penalties are accruing exposure.",
		Weak:     "Serious tax compliance gaps; unregistered or unfiled positions compound monthly.",
	},
	model.CategoryIP: {
		Strong:   "Intellectual property is well protected: brand, assignments and confidentiality practices are covered.",
		Moderate: "Partial IP protection; unassigned IP or an unregistered brand leaves value exposed.",
		Weak:     "Intellectual property is largely unprotected and at risk of loss to third parties.",
	},
	model.CategoryCerts: {
		Strong:   "Certifications and licenses are in order, including startup recognition benefits.",
		Moderate: "Some certifications or licenses are pending; verify which are mandatory for your sector.",
		Weak:     "Mandatory licenses appear to be missing; operating exposure is significant.",
	},
	model.CategoryFinance: {
		Strong:   "Financial governance is strong: audits, clean banking and regular runway reviews.",
		Moderate: "Basic financial hygiene exists but audit or reporting discipline is incomplete.",
		Weak:     "Financial governance is weak; audits, banking separation and runway tracking need to be established.",
	},
}

// statusFor maps a category score to its qualitative label
func statusFor(score int) model.CategoryStatus {
	switch {
	case score >= 85:
		return model.StatusExcellent
	case score >= 60:
		return model.StatusGood
	case score >= 35:
		return model.StatusNeedsAttention
	default:
		return model.StatusCritical
	}
}

// insightFor picks the narrative band for a category score
func insightFor(c model.Category, score int) string {
	n := categoryInsights[c]
	switch {
	case score >= 80:
		return n.Strong
	case score >= 50:
		return n.Moderate
	default:
		return n.Weak
	}
}
