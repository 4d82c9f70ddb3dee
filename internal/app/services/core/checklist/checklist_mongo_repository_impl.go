package checklist

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

type ChecklistMongoRepository struct {
	Collection *mongo.Collection
}

func NewChecklistMongoRepository(db *mongo.Client, dbName string) contracts.ChecklistRepository {
	return &ChecklistMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionChecklists),
	}
}

func (r *ChecklistMongoRepository) FindEntriesByCaseID(ctx context.Context, caseID string) ([]models.DocumentChecklistEntry, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{"caseId": caseID}, options.Find().SetSort(bson.M{"createdAt": 1}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var entries []models.DocumentChecklistEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return entries, nil
}

func (r *ChecklistMongoRepository) FindEntryByID(ctx context.Context, docID string) (*models.DocumentChecklistEntry, error) {
	var entry models.DocumentChecklistEntry
	err := r.Collection.FindOne(ctx, bson.M{"_id": docID}).Decode(&entry)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &entry, nil
}

func (r *ChecklistMongoRepository) InsertEntries(ctx context.Context, entries []models.DocumentChecklistEntry) error {
	docs := make([]interface{}, 0, len(entries))
	for i := range entries {
		docs = append(docs, entries[i])
	}
	_, err := r.Collection.InsertMany(ctx, docs)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *ChecklistMongoRepository) UpdateEntry(ctx context.Context, entry *models.DocumentChecklistEntry) error {
	filter := bson.M{"_id": entry.ID}
	_, err := r.Collection.ReplaceOne(ctx, filter, entry, options.Replace().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
