package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	officeserrors "offices/internal/offices/errors"
	"offices/pkg/config"
	"offices/pkg/model"
)

const (
	fieldID      = "_id"
	fieldStatus  = "status"
	fieldVersion = "version"
)

// Predicate is an equality condition on a single document field.
type Predicate struct {
	Field string
	Value any
}

func ByID(id string) Predicate {
	return Predicate{Field: fieldID, Value: id}
}

func ByStatus(status model.OfficeStatus) Predicate {
	return Predicate{Field: fieldStatus, Value: status}
}

func (p Predicate) filter() bson.M {
	if p.Field == "" {
		return bson.M{}
	}
	return bson.M{p.Field: p.Value}
}

type OfficeRepository interface {
	Insert(ctx context.Context, office *model.Office) error
	Replace(ctx context.Context, office *model.Office) error
	FindAll(ctx context.Context) ([]*model.Office, error)
	FindBy(ctx context.Context, predicate Predicate) ([]*model.Office, error)
}

type mongoOfficeRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoOfficeRepository(cfg *config.Config) OfficeRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoOfficeRepository{
		cfg:        cfg,
		collection: db.Collection(cfg.CollectionName),
	}
}

// withTimeout bounds a single store call by the configured timeout, keeping a
// shorter caller deadline if one is already set.
func (r *mongoOfficeRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	deadline, hasDeadline := ctx.Deadline()
	if hasDeadline && time.Until(deadline) < timeout {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

func (r *mongoOfficeRepository) Insert(ctx context.Context, office *model.Office) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	if office.ID == "" {
		return fmt.Errorf("%w: office ID must be set before insert", officeserrors.ErrInvalidID)
	}

	stored := *office
	stored.Version = 1
	if _, err := r.collection.InsertOne(ctx, &stored); err != nil {
		return fmt.Errorf("%w: failed to insert office %s: %w", officeserrors.ErrStorage, office.ID, err)
	}

	office.Version = stored.Version
	return nil
}

// Replace swaps the stored document for office. The write only applies when
// the stored version still equals office.Version; a missing document is not
// an error.
func (r *mongoOfficeRepository) Replace(ctx context.Context, office *model.Office) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	expected := office.Version
	next := *office
	next.Version = expected + 1

	filter := bson.M{fieldID: office.ID, fieldVersion: expected}
	result, err := r.collection.ReplaceOne(ctx, filter, &next)
	if err != nil {
		return fmt.Errorf("%w: failed to replace office %s: %w", officeserrors.ErrStorage, office.ID, err)
	}

	if result.MatchedCount == 0 {
		count, err := r.collection.CountDocuments(ctx, ByID(office.ID).filter())
		if err != nil {
			return fmt.Errorf("%w: failed to check office %s: %w", officeserrors.ErrStorage, office.ID, err)
		}
		if count > 0 {
			return fmt.Errorf("%w: %s (expected version %d)", officeserrors.ErrConflict, office.ID, expected)
		}
		return nil
	}

	office.Version = next.Version
	return nil
}

func (r *mongoOfficeRepository) FindAll(ctx context.Context) ([]*model.Office, error) {
	return r.FindBy(ctx, Predicate{})
}

func (r *mongoOfficeRepository) FindBy(ctx context.Context, predicate Predicate) ([]*model.Office, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	cursor, err := r.collection.Find(ctx, predicate.filter())
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query offices: %w", officeserrors.ErrStorage, err)
	}
	defer cursor.Close(ctx)

	offices := make([]*model.Office, 0)
	if err = cursor.All(ctx, &offices); err != nil {
		return nil, fmt.Errorf("%w: failed to decode offices: %w", officeserrors.ErrStorage, err)
	}
	return offices, nil
}
