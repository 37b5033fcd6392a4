package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"interviewlens/internal/model"
)

// InterviewRepo handles MongoDB operations for interviews
type InterviewRepo interface {
	Create(ctx context.Context, interview *model.Interview) error
	GetByID(ctx context.Context, userID, id string) (*model.Interview, error)
	ListByUser(ctx context.Context, userID string) ([]*model.Interview, error)
	Update(ctx context.Context, userID, id string, update *model.InterviewUpdate) (bool, error)
	Delete(ctx context.Context, userID, id string) (bool, error)
}

type interviewRepo struct {
	collection *mongo.Collection
}

// NewInterviewRepo creates a new interview repository
func NewInterviewRepo(db *mongo.Database) InterviewRepo {
	return &interviewRepo{
		collection: db.Collection("interviews"),
	}
}

func (r *interviewRepo) Create(ctx context.Context, interview *model.Interview) error {
	now := time.Now()
	if interview.CreatedAt.IsZero() {
		interview.CreatedAt = now
	}
	interview.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, interview)
	return err
}

func (r *interviewRepo) GetByID(ctx context.Context, userID, id string) (*model.Interview, error) {
	var interview model.Interview
	err := r.collection.FindOne(ctx, bson.M{"_id": id, "userId": userID}).Decode(&interview)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &interview, nil
}

func (r *interviewRepo) ListByUser(ctx context.Context, userID string) ([]*model.Interview, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var interviews []*model.Interview
	if err = cursor.All(ctx, &interviews); err != nil {
		return nil, err
	}
	return interviews, nil
}

func (r *interviewRepo) Update(ctx context.Context, userID, id string, update *model.InterviewUpdate) (bool, error) {
	set := bson.M{"updatedAt": time.Now()}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Company != nil {
		set["company"] = *update.Company
	}
	if update.Position != nil {
		set["position"] = *update.Position
	}
	if update.Status != nil {
		set["status"] = *update.Status
	}
	if update.Date != nil {
		set["date"] = *update.Date
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id, "userId": userID}, bson.M{"$set": set})
	if err != nil {
		return false, err
	}
	return result.MatchedCount > 0, nil
}

func (r *interviewRepo) Delete(ctx context.Context, userID, id string) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "userId": userID})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}
