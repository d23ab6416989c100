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

type NotesRepo struct {
	MongoCollection *mongo.Collection
}

func GetNotesRepo(client *mongo.Client) *NotesRepo {
	return &NotesRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("notes"),
	}
}

// CreateNote creates a new note
func (r *NotesRepo) CreateNote(ctx context.Context, note *model.Note) error {
	timer := utils.TrackDBOperation("insert", "notes")
	defer timer.ObserveDuration()

	if note.UserID == "" {
		utils.TrackError("database", "invalid_note_data")
		return errors.New("user ID is required")
	}

	if _, err := r.MongoCollection.InsertOne(ctx, note); err != nil {
		utils.TrackError("database", "note_creation_failed")
		return err
	}
	return nil
}

// GetUserNotes retrieves a user's notes, most recently updated first.
// An empty categoryID means no category filter.
func (r *NotesRepo) GetUserNotes(ctx context.Context, userID, categoryID string) ([]*model.Note, error) {
	timer := utils.TrackDBOperation("find", "notes")
	defer timer.ObserveDuration()

	filter := bson.M{"user_id": userID}
	if categoryID != "" {
		filter["category_id"] = categoryID
	}

	opts := options.Find().SetSort(bson.D{{Key: "updated_at", Value: -1}})

	cursor, err := r.MongoCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	notes := make([]*model.Note, 0)
	if err = cursor.All(ctx, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// GetNote retrieves a note scoped to the user. Returns (nil, nil) when no
// note matches, whether it is missing or owned by someone else.
func (r *NotesRepo) GetNote(ctx context.Context, noteID, userID string) (*model.Note, error) {
	timer := utils.TrackDBOperation("find", "notes")
	defer timer.ObserveDuration()

	var note model.Note
	err := r.MongoCollection.FindOne(ctx,
		bson.M{"_id": noteID, "user_id": userID}).Decode(&note)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		utils.TrackError("database", "note_lookup_error")
		return nil, err
	}
	return &note, nil
}

// UpdateNote overwrites a note's mutable fields, scoped to the user.
// Returns the number of matched documents.
func (r *NotesRepo) UpdateNote(ctx context.Context, note *model.Note) (int64, error) {
	timer := utils.TrackDBOperation("update", "notes")
	defer timer.ObserveDuration()

	filter := bson.M{
		"_id":     note.ID,
		"user_id": note.UserID,
	}

	update := bson.M{
		"$set": bson.M{
			"title":       note.Title,
			"content":     note.Content,
			"category_id": note.CategoryID,
			"updated_at":  note.UpdatedAt,
		},
	}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.TrackError("database", "note_update_failed")
		return 0, err
	}

	return result.MatchedCount, nil
}

// DeleteNote deletes a note scoped to the user and reports how many
// documents were removed.
func (r *NotesRepo) DeleteNote(ctx context.Context, noteID, userID string) (int64, error) {
	timer := utils.TrackDBOperation("delete", "notes")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx,
		bson.M{"_id": noteID, "user_id": userID})
	if err != nil {
		utils.TrackError("database", "note_deletion_failed")
		return 0, err
	}

	return result.DeletedCount, nil
}

// ClearCategory detaches all of a user's notes from a category. The notes
// survive with an empty category reference; updated_at is left alone since
// the note content did not change.
func (r *NotesRepo) ClearCategory(ctx context.Context, categoryID, userID string) (int64, error) {
	timer := utils.TrackDBOperation("update", "notes")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.UpdateMany(ctx,
		bson.M{"user_id": userID, "category_id": categoryID},
		bson.M{"$set": bson.M{"category_id": ""}})
	if err != nil {
		utils.TrackError("database", "note_category_clear_failed")
		return 0, err
	}

	return result.ModifiedCount, nil
}

// CountNotesByCategory returns, per category id, how many of the user's
// notes reference it.
func (r *NotesRepo) CountNotesByCategory(ctx context.Context, userID string) (map[string]int, error) {
	timer := utils.TrackDBOperation("aggregate", "notes")
	defer timer.ObserveDuration()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"user_id": userID, "category_id": bson.M{"$ne": ""}}}},
		{{Key: "$group", Value: bson.M{"_id": "$category_id", "count": bson.M{"$sum": 1}}}},
	}

	cursor, err := r.MongoCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []struct {
		CategoryID string `bson:"_id"`
		Count      int    `bson:"count"`
	}
	if err = cursor.All(ctx, &results); err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(results))
	for _, result := range results {
		counts[result.CategoryID] = result.Count
	}
	return counts, nil
}
