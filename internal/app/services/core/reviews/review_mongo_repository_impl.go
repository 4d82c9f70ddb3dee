package reviews

import (
	"context"

	"caseflow-service/internal/app/contracts"
	"caseflow-service/internal/app/models"
	"caseflow-service/internal/pkg/constvars"
	"caseflow-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ReviewMongoRepository struct {
	Collection *mongo.Collection
}

func NewReviewMongoRepository(db *mongo.Client, dbName string) contracts.ReviewRepository {
	return &ReviewMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionReviews),
	}
}

func (r *ReviewMongoRepository) FindByCaseID(ctx context.Context, caseID string) (*models.DoctorReview, error) {
	var review models.DoctorReview
	err := r.Collection.FindOne(ctx, bson.M{"caseId": caseID}).Decode(&review)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &review, nil
}

func (r *ReviewMongoRepository) SaveReview(ctx context.Context, review *models.DoctorReview) error {
	filter := bson.M{"caseId": review.CaseID}
	_, err := r.Collection.ReplaceOne(ctx, filter, review, options.Replace().SetUpsert(true))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
