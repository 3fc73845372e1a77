package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/prajwalshetti/Project-matrimony/src/models"
)

type ConnectionRepository struct {
	coll *mongo.Collection
}

func NewConnectionRepository(db *mongo.Database) *ConnectionRepository {
	return &ConnectionRepository{coll: db.Collection("connections")}
}

func (r *ConnectionRepository) Insert(ctx context.Context, connection *models.Connection) error {
	_, err := r.coll.InsertOne(ctx, connection)
	return err
}

func (r *ConnectionRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Connection, error) {
	var connection models.Connection
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&connection)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &connection, nil
}

// FindByUsers matches the pair in either user1/user2 order.
func (r *ConnectionRepository) FindByUsers(ctx context.Context, a, b primitive.ObjectID) (*models.Connection, error) {
	filter := bson.M{
		"$or": []bson.M{
			{"user1": a, "user2": b},
			{"user1": b, "user2": a},
		},
	}

	var connection models.Connection
	err := r.coll.FindOne(ctx, filter).Decode(&connection)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &connection, nil
}

func (r *ConnectionRepository) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Connection, error) {
	filter := bson.M{
		"$or": []bson.M{
			{"user1": userID},
			{"user2": userID},
		},
	}
	opts := options.Find().SetSort(bson.M{"connectionDate": -1})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var connections []models.Connection
	if err := cursor.All(ctx, &connections); err != nil {
		return nil, err
	}
	return connections, nil
}

func (r *ConnectionRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
