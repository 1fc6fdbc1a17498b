package model

// CompanyProfile is auxiliary registry data shown alongside a report.
// It is display-only and never consumed by the scoring engine.
type CompanyProfile struct {
	CIN            string `json:"cin" bson:"cin"`
	Name           string `json:"name" bson:"name"`
	Status         string `json:"status" bson:"status"`
	IncorporatedOn string `json:"incorporatedOn" bson:"incorporatedOn"`
	State          string `json:"state" bson:"state"`
	CompanyClass   string `json:"companyClass" bson:"companyClass"`
	Source         string `json:"source" bson:"source"` // "registry" or "mock"
}
