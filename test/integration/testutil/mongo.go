package testutil

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"offices/pkg/model"
)

const (
	DefaultMongoURI   = "mongodb://localhost:27017"
	ConnectionTimeout = 5 * time.Second
	OfficesCollection = "Offices"
)

// MongoHelper owns a throwaway database for one test.
type MongoHelper struct {
	Client   *mongo.Client
	Database *mongo.Database
	DBName   string
}

// NewMongoHelper connects to mongoURI and skips the test when the server is
// not reachable.
func NewMongoHelper(t *testing.T, mongoURI, dbName string) *MongoHelper {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), ConnectionTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(mongoURI).
		SetServerSelectionTimeout(ConnectionTimeout))
	if err != nil {
		t.Skipf("MongoDB not available at %s: %v", mongoURI, err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		t.Skipf("MongoDB not reachable at %s: %v", mongoURI, err)
	}

	return &MongoHelper{
		Client:   client,
		Database: client.Database(dbName),
		DBName:   dbName,
	}
}

// Close drops the test database and disconnects.
func (m *MongoHelper) Close(t *testing.T) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), ConnectionTimeout)
	defer cancel()

	if err := m.Database.Drop(ctx); err != nil {
		t.Logf("warning: failed to drop database %s: %v", m.DBName, err)
	}
	if err := m.Client.Disconnect(ctx); err != nil {
		t.Logf("warning: failed to disconnect from MongoDB: %v", err)
	}
}

func (m *MongoHelper) CountDocuments(t *testing.T) int64 {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), ConnectionTimeout)
	defer cancel()

	count, err := m.Database.Collection(OfficesCollection).CountDocuments(ctx, bson.M{})
	if err != nil {
		t.Fatalf("failed to count documents: %v", err)
	}
	return count
}

// FindOffice reads the stored document directly, bypassing the service.
func (m *MongoHelper) FindOffice(t *testing.T, id string) *model.Office {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), ConnectionTimeout)
	defer cancel()

	var office model.Office
	err := m.Database.Collection(OfficesCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&office)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil
	}
	if err != nil {
		t.Fatalf("failed to find office %s: %v", id, err)
	}
	return &office
}

// InsertOffice stores a document as-is, e.g. to seed a stale version.
func (m *MongoHelper) InsertOffice(t *testing.T, office *model.Office) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), ConnectionTimeout)
	defer cancel()

	if _, err := m.Database.Collection(OfficesCollection).InsertOne(ctx, office); err != nil {
		t.Fatalf("failed to insert office: %v", err)
	}
}
