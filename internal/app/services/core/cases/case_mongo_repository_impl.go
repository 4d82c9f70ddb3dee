package cases

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

type CaseMongoRepository struct {
	Collection *mongo.Collection
}

func NewCaseMongoRepository(db *mongo.Client, dbName string) contracts.CaseRepository {
	return &CaseMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionCases),
	}
}

func (r *CaseMongoRepository) CreateCase(ctx context.Context, caseModel *models.Case) (string, error) {
	_, err := r.Collection.InsertOne(ctx, caseModel)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return caseModel.ID, nil
}

func (r *CaseMongoRepository) FindByID(ctx context.Context, caseID string) (*models.Case, error) {
	var caseModel models.Case
	err := r.Collection.FindOne(ctx, bson.M{"_id": caseID}).Decode(&caseModel)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &caseModel, nil
}

func (r *CaseMongoRepository) FindByCaseRef(ctx context.Context, caseRef string) (*models.Case, error) {
	var caseModel models.Case
	err := r.Collection.FindOne(ctx, bson.M{"caseRef": caseRef}).Decode(&caseModel)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &caseModel, nil
}

func (r *CaseMongoRepository) FindCases(ctx context.Context, status, hospitalID string) ([]models.Case, error) {
	filter := bson.M{}
	if status != "" {
		filter["caseStatus"] = status
	}
	if hospitalID != "" {
		filter["hospitalId"] = hospitalID
	}

	cursor, err := r.Collection.Find(ctx, filter, options.Find().SetSort(bson.M{"lastActionAt": -1}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var cases []models.Case
	if err := cursor.All(ctx, &cases); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return cases, nil
}

func (r *CaseMongoRepository) UpdateCase(ctx context.Context, caseModel *models.Case) error {
	filter := bson.M{"_id": caseModel.ID}
	_, err := r.Collection.ReplaceOne(ctx, filter, caseModel, options.Replace().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
