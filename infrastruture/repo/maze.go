package repo

import (
	"context"
	"errors"
	"time"

	dmn "github.com/beka-birhanu/mazegen-api/domain"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrMazeNotFound is returned when a maze ID has no stored document.
var ErrMazeNotFound = errors.New("maze not found")

// MazeRepo handles the persistence of saved mazes.
type MazeRepo struct {
	collection *mongo.Collection
}

// NewMazeRepo creates a new MazeRepo with the given MongoDB client, database name, and collection name.
func NewMazeRepo(client *mongo.Client, dbName, collectionName string) *MazeRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &MazeRepo{
		collection: collection,
	}
}

// Save inserts or updates a stored maze. The wall arrays are written
// verbatim; shape validation happens before a StoredMaze is constructed.
func (r *MazeRepo) Save(m *dmn.StoredMaze) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	filter := bson.M{"_id": m.ID}
	update := bson.M{
		"$set": bson.M{
			"ownerId":         m.OwnerID,
			"name":            m.Name,
			"width":           m.Width,
			"height":          m.Height,
			"seed":            m.Seed,
			"algorithm":       m.Algorithm,
			"verticalWalls":   m.VerticalWalls,
			"horizontalWalls": m.HorizontalWalls,
			"start":           m.Start,
			"goal":            m.Goal,
			"createdAt":       m.CreatedAt,
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := r.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return errors.New("unexpected error: " + err.Error())
	}

	return nil
}

// ByID retrieves a stored maze by its ID.
func (r *MazeRepo) ByID(id uuid.UUID) (*dmn.StoredMaze, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	filter := bson.M{"_id": id}
	var m dmn.StoredMaze
	if err := r.collection.FindOne(ctx, filter).Decode(&m); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrMazeNotFound
		}
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return &m, nil
}

// ByOwner retrieves all mazes saved by a user, newest first.
func (r *MazeRepo) ByOwner(ownerID uuid.UUID) ([]*dmn.StoredMaze, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	filter := bson.M{"ownerId": ownerID}
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, errors.New("unexpected error: " + err.Error())
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var mazes []*dmn.StoredMaze
	if err := cursor.All(ctx, &mazes); err != nil {
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return mazes, nil
}
