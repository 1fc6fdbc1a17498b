package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/anbusan19/wealth-empire-sub001/internal/model"
	"github.com/anbusan19/wealth-empire-sub001/internal/scoring"
)

// Seeds one fully compliant demo assessment so the dashboard has data to
// show on a fresh install.
func main() {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}
	mongoDB := os.Getenv("MONGO_DB")
	if mongoDB == "" {
		mongoDB = "wealthempire"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	coll := client.Database(mongoDB).Collection("assessments")

	userID := "user_demo0001"

	answers := model.AnswerSet{
		1:  model.AnswerYes,
		2:  model.AnswerYes,
		3:  "Professionally managed with legal review",
		4:  model.AnswerYes,
		5:  model.AnswerNo,
		6:  model.AnswerYes,
		7:  "No, but planning to file",
		8:  model.AnswerYes,
		9:  model.AnswerYes,
		10: model.AnswerNo,
		11: model.AnswerYes,
		12: model.AnswerNotSure,
		13: model.AnswerYes,
		14: model.AnswerYes,
		15: "Monthly, with board reporting",
	}
	followUps := model.FollowUpAnswerSet{
		1: "U72900KA2019PTC123456",
		4: "29ABCDE1234F1Z5",
		5: "2",
	}

	assessment := model.Assessment{
		ID:              uuid.New().String(),
		UserID:          userID,
		Answers:         answers,
		FollowUpAnswers: scoring.MatchedFollowUps(answers, followUps),
		Result:          scoring.Compute(answers, followUps),
		Recommendations: scoring.Recommend(answers),
		CreatedAt:       time.Now(),
	}

	if _, err := coll.InsertOne(ctx, assessment); err != nil {
		log.Fatalf("Failed to insert assessment: %v", err)
	}

	fmt.Printf("Seeded demo assessment for '%s': overall score %d, %d red flags\n",
		userID, assessment.Result.OverallScore, len(assessment.Result.RedFlags))
}
