package model

import "time"

// Assessment is one completed health check persisted per user: the raw
// answer maps, the computed result, and the derived service recommendations.
type Assessment struct {
	ID              string            `json:"id" bson:"_id,omitempty"`
	UserID          string            `json:"userId" bson:"userId"`
	Answers         AnswerSet         `json:"answers" bson:"answers"`
	FollowUpAnswers FollowUpAnswerSet `json:"followUpAnswers,omitempty" bson:"followUpAnswers,omitempty"`
	Result          ComplianceResult  `json:"result" bson:"result"`
	Recommendations []string          `json:"recommendations" bson:"recommendations"`
	CreatedAt       time.Time         `json:"createdAt" bson:"createdAt"`
}
