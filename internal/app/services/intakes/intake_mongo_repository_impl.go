package intakes

import (
	"context"
	"fmt"

	"intake-service/internal/app/models"
	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type IntakeMongoRepository struct {
	Collection *mongo.Collection
}

func NewIntakeMongoRepository(db *mongo.Client, dbName string) IntakeRepository {
	return &IntakeMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionIntakes),
	}
}

func (r *IntakeMongoRepository) InsertIntake(ctx context.Context, intake *models.IntakeSubmission) (string, error) {
	_, err := r.Collection.InsertOne(ctx, intake)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return intake.ID, nil
}

func (r *IntakeMongoRepository) FindIntakeByID(ctx context.Context, intakeID string) (*models.IntakeSubmission, error) {
	var intake models.IntakeSubmission
	err := r.Collection.FindOne(ctx, bson.M{"_id": intakeID}).Decode(&intake)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &intake, nil
}

func (r *IntakeMongoRepository) FindIntakes(ctx context.Context, status string, page, pageSize int) ([]models.IntakeSubmission, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))

	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var intakes []models.IntakeSubmission
	if err := cursor.All(ctx, &intakes); err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return intakes, nil
}

func (r *IntakeMongoRepository) FindIntakesByEmail(ctx context.Context, email string) ([]models.IntakeSubmission, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.Collection.Find(ctx, bson.M{"email": email}, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var intakes []models.IntakeSubmission
	if err := cursor.All(ctx, &intakes); err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return intakes, nil
}

func (r *IntakeMongoRepository) DeleteIntakeByID(ctx context.Context, intakeID string) error {
	result, err := r.Collection.DeleteOne(ctx, bson.M{"_id": intakeID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	if result.DeletedCount == 0 {
		return exceptions.ErrIntakeNotFound(fmt.Errorf("intake %s not found", intakeID))
	}
	return nil
}
