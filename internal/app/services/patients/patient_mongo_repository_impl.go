package patients

import (
	"cataractcare-service/internal/app/contracts"
	"cataractcare-service/internal/pkg/constvars"
	"cataractcare-service/internal/pkg/exceptions"
	"cataractcare-service/internal/pkg/records"
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const mongoIDField = "_id"

type PatientMongoRepository struct {
	Collection *mongo.Collection
}

var (
	patientMongoRepositoryInstance contracts.PatientRepository
	oncePatientMongoRepository     sync.Once
)

// NewPatientMongoRepository stores one document per patient in the patients
// collection, with the PID as document _id and the record fields flat beside it.
func NewPatientMongoRepository(db *mongo.Client, dbName string) contracts.PatientRepository {
	oncePatientMongoRepository.Do(func() {
		patientMongoRepositoryInstance = &PatientMongoRepository{
			Collection: db.Database(dbName).Collection(constvars.MongoCollectionPatients),
		}
	})
	return patientMongoRepositoryInstance
}

func (r *PatientMongoRepository) FindByPID(ctx context.Context, pid string) (map[string]interface{}, bool, error) {
	var document bson.M
	err := r.Collection.FindOne(ctx, bson.M{mongoIDField: pid}).Decode(&document)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, false, nil
		}
		return nil, false, exceptions.ErrMongoDBFindDocument(err)
	}
	_, raw := splitDocument(document)
	return raw, true, nil
}

// FindAll returns every document keyed by its _id, the way the record store
// snapshot is keyed by PID.
func (r *PatientMongoRepository) FindAll(ctx context.Context) (map[string]map[string]interface{}, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	snapshot := make(map[string]map[string]interface{})
	for cursor.Next(ctx) {
		var document bson.M
		if err := cursor.Decode(&document); err != nil {
			return nil, exceptions.ErrMongoDBDecodeDocument(err)
		}
		key, raw := splitDocument(document)
		snapshot[key] = raw
	}
	if err := cursor.Err(); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return snapshot, nil
}

// Update merges patch into the document of pid, creating it when missing.
// The pid field always follows the key.
func (r *PatientMongoRepository) Update(ctx context.Context, pid string, patch map[string]interface{}) error {
	set := bson.M{}
	for field, value := range patch {
		if field == mongoIDField {
			continue
		}
		set[field] = value
	}
	set[records.FieldPID] = pid

	filter := bson.M{mongoIDField: pid}
	update := bson.M{"$set": set}

	_, err := r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

// splitDocument separates the _id from the record fields and turns driver
// types into plain Go values.
func splitDocument(document bson.M) (string, map[string]interface{}) {
	key := ""
	raw := make(map[string]interface{}, len(document))
	for field, value := range document {
		if field == mongoIDField {
			key = documentKey(value)
			continue
		}
		raw[field] = plainValue(value)
	}
	return key, raw
}

func documentKey(id interface{}) string {
	switch v := id.(type) {
	case string:
		return v
	case primitive.ObjectID:
		return v.Hex()
	default:
		return fmt.Sprint(v)
	}
}

func plainValue(value interface{}) interface{} {
	switch v := value.(type) {
	case primitive.A:
		items := make([]interface{}, len(v))
		for i, item := range v {
			items[i] = plainValue(item)
		}
		return items
	case bson.M:
		nested := make(map[string]interface{}, len(v))
		for field, item := range v {
			nested[field] = plainValue(item)
		}
		return nested
	case bson.D:
		nested := make(map[string]interface{}, len(v))
		for _, element := range v {
			nested[element.Key] = plainValue(element.Value)
		}
		return nested
	case primitive.DateTime:
		return v.Time().UTC().Format(constvars.TimestampLayout)
	case primitive.ObjectID:
		return v.Hex()
	default:
		return v
	}
}
