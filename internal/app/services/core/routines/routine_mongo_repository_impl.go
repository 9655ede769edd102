package routines

import (
	"context"
	"storyai-service/internal/app/contracts"
	"storyai-service/internal/app/models"
	"storyai-service/internal/pkg/constvars"
	"storyai-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type RoutineMongoRepository struct {
	Collection *mongo.Collection
}

func NewRoutineMongoRepository(db *mongo.Client, dbName string) contracts.RoutineRepository {
	return &RoutineMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionTimetable),
	}
}

func (r *RoutineMongoRepository) FindByUser(ctx context.Context, userID string) ([]models.Activity, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var activities []models.Activity
	if err := cursor.All(ctx, &activities); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return activities, nil
}

func (r *RoutineMongoRepository) FindByID(ctx context.Context, userID, activityID string) (*models.Activity, error) {
	var activity models.Activity
	filter := bson.M{"_id": activityID, "user_id": userID}
	err := r.Collection.FindOne(ctx, filter).Decode(&activity)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &activity, nil
}

func (r *RoutineMongoRepository) CreateActivity(ctx context.Context, activity *models.Activity) error {
	_, err := r.Collection.InsertOne(ctx, activity)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *RoutineMongoRepository) CreateActivities(ctx context.Context, activities []models.Activity) error {
	if len(activities) == 0 {
		return nil
	}
	documents := make([]interface{}, 0, len(activities))
	for _, activity := range activities {
		documents = append(documents, activity)
	}
	_, err := r.Collection.InsertMany(ctx, documents)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *RoutineMongoRepository) UpdateActivity(ctx context.Context, activity *models.Activity) error {
	filter := bson.M{"_id": activity.ID, "user_id": activity.UserID}
	update := bson.M{"$set": activity.ConvertToBsonM()}

	_, err := r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *RoutineMongoRepository) DeleteActivity(ctx context.Context, userID, activityID string) error {
	_, err := r.Collection.DeleteOne(ctx, bson.M{"_id": activityID, "user_id": userID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

func (r *RoutineMongoRepository) DeleteActivities(ctx context.Context, userID string, activityIDs []string) error {
	if len(activityIDs) == 0 {
		return nil
	}
	filter := bson.M{
		"_id":     bson.M{"$in": activityIDs},
		"user_id": userID,
	}
	_, err := r.Collection.DeleteMany(ctx, filter)
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

func (r *RoutineMongoRepository) DeleteByUser(ctx context.Context, userID string) error {
	_, err := r.Collection.DeleteMany(ctx, bson.M{"user_id": userID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
