package repository

import (
	"context"
	"errors"
	"os"

	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CategoriesRepo struct {
	MongoCollection *mongo.Collection
}

func GetCategoriesRepo(client *mongo.Client) *CategoriesRepo {
	return &CategoriesRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("categories"),
	}
}

// CreateCategory inserts a category. The (user_id, name) unique index turns
// a concurrent duplicate into ErrDuplicateKey instead of a second row.
func (r *CategoriesRepo) CreateCategory(ctx context.Context, category *model.Category) error {
	timer := utils.TrackDBOperation("insert", "categories")
	defer timer.ObserveDuration()

	if category.UserID == "" {
		utils.TrackError("database", "invalid_category_data")
		return errors.New("user ID is required")
	}

	if _, err := r.MongoCollection.InsertOne(ctx, category); err != nil {
		utils.TrackError("database", "category_creation_failed")
		return wrapDuplicateKey(err)
	}

	return nil
}

// GetCategory retrieves a category scoped to the user. Returns (nil, nil)
// when no category matches, whether it is missing or owned by someone else.
func (r *CategoriesRepo) GetCategory(ctx context.Context, categoryID, userID string) (*model.Category, error) {
	timer := utils.TrackDBOperation("find", "categories")
	defer timer.ObserveDuration()

	var category model.Category
	err := r.MongoCollection.FindOne(ctx,
		bson.M{"_id": categoryID, "user_id": userID}).Decode(&category)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		utils.TrackError("database", "category_lookup_error")
		return nil, err
	}
	return &category, nil
}

// GetCategoryByName retrieves a user's category by its name
func (r *CategoriesRepo) GetCategoryByName(ctx context.Context, name, userID string) (*model.Category, error) {
	timer := utils.TrackDBOperation("find", "categories")
	defer timer.ObserveDuration()

	var category model.Category
	err := r.MongoCollection.FindOne(ctx,
		bson.M{"name": name, "user_id": userID}).Decode(&category)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		utils.TrackError("database", "category_lookup_error")
		return nil, err
	}
	return &category, nil
}

// GetUserCategories retrieves all categories for a user, ordered by name
func (r *CategoriesRepo) GetUserCategories(ctx context.Context, userID string) ([]*model.Category, error) {
	timer := utils.TrackDBOperation("find", "categories")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	categories := make([]*model.Category, 0)
	if err = cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// DeleteCategory deletes a category scoped to the user and reports how many
// documents were removed. Clearing referencing notes is the caller's job.
func (r *CategoriesRepo) DeleteCategory(ctx context.Context, categoryID, userID string) (int64, error) {
	timer := utils.TrackDBOperation("delete", "categories")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx,
		bson.M{"_id": categoryID, "user_id": userID})
	if err != nil {
		utils.TrackError("database", "category_deletion_failed")
		return 0, err
	}

	return result.DeletedCount, nil
}
