package settlements

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

type SettlementMongoRepository struct {
	Collection *mongo.Collection
}

func NewSettlementMongoRepository(db *mongo.Client, dbName string) contracts.SettlementRepository {
	return &SettlementMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionSettlements),
	}
}

func (r *SettlementMongoRepository) FindByCaseID(ctx context.Context, caseID string) (*models.SettlementRecord, error) {
	var record models.SettlementRecord
	err := r.Collection.FindOne(ctx, bson.M{"caseId": caseID}).Decode(&record)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &record, nil
}

func (r *SettlementMongoRepository) SaveSettlement(ctx context.Context, record *models.SettlementRecord) error {
	filter := bson.M{"caseId": record.CaseID}
	_, err := r.Collection.ReplaceOne(ctx, filter, record, options.Replace().SetUpsert(true))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
