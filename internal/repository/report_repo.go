package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"interviewlens/internal/model"
)

// ReportRepo handles MongoDB operations for analysis reports
type ReportRepo interface {
	Save(ctx context.Context, report *model.AnalysisReport) error
	GetByInterview(ctx context.Context, interviewID string) (*model.AnalysisReport, error)
	GetByInterviews(ctx context.Context, interviewIDs []string) ([]*model.AnalysisReport, error)
	DeleteByInterview(ctx context.Context, interviewID string) error
}

type reportRepo struct {
	collection *mongo.Collection
}

// NewReportRepo creates a new report repository
func NewReportRepo(db *mongo.Database) ReportRepo {
	return &reportRepo{
		collection: db.Collection("analysis_reports"),
	}
}

func (r *reportRepo) Save(ctx context.Context, report *model.AnalysisReport) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"interviewId": report.InterviewID}, report, opts)
	return err
}

func (r *reportRepo) GetByInterview(ctx context.Context, interviewID string) (*model.AnalysisReport, error) {
	var report model.AnalysisReport
	err := r.collection.FindOne(ctx, bson.M{"interviewId": interviewID}).Decode(&report)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *reportRepo) GetByInterviews(ctx context.Context, interviewIDs []string) ([]*model.AnalysisReport, error) {
	if len(interviewIDs) == 0 {
		return nil, nil
	}
	cursor, err := r.collection.Find(ctx, bson.M{"interviewId": bson.M{"$in": interviewIDs}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reports []*model.AnalysisReport
	if err = cursor.All(ctx, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *reportRepo) DeleteByInterview(ctx context.Context, interviewID string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"interviewId": interviewID})
	return err
}
