package intake

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

type IntakeMongoRepository struct {
	FundAppCollection *mongo.Collection
	InterimCollection *mongo.Collection
}

func NewIntakeMongoRepository(db *mongo.Client, dbName string) contracts.IntakeRepository {
	return &IntakeMongoRepository{
		FundAppCollection: db.Database(dbName).Collection(constvars.MongoCollectionFundApps),
		InterimCollection: db.Database(dbName).Collection(constvars.MongoCollectionInterims),
	}
}

func (r *IntakeMongoRepository) FindFundApplication(ctx context.Context, caseID string) (*models.IntakeFundApplication, error) {
	var fundApp models.IntakeFundApplication
	err := r.FundAppCollection.FindOne(ctx, bson.M{"caseId": caseID}).Decode(&fundApp)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &fundApp, nil
}

func (r *IntakeMongoRepository) FindInterimSummary(ctx context.Context, caseID string) (*models.IntakeInterimSummary, error) {
	var summary models.IntakeInterimSummary
	err := r.InterimCollection.FindOne(ctx, bson.M{"caseId": caseID}).Decode(&summary)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &summary, nil
}

func (r *IntakeMongoRepository) SaveFundApplication(ctx context.Context, fundApp *models.IntakeFundApplication) error {
	filter := bson.M{"caseId": fundApp.CaseID}
	_, err := r.FundAppCollection.ReplaceOne(ctx, filter, fundApp, options.Replace().SetUpsert(true))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *IntakeMongoRepository) SaveInterimSummary(ctx context.Context, summary *models.IntakeInterimSummary) error {
	filter := bson.M{"caseId": summary.CaseID}
	_, err := r.InterimCollection.ReplaceOne(ctx, filter, summary, options.Replace().SetUpsert(true))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
