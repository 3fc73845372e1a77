package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/prajwalshetti/Project-matrimony/src/models"
)

type RequestRepository struct {
	coll *mongo.Collection
}

func NewRequestRepository(db *mongo.Database) *RequestRepository {
	return &RequestRepository{coll: db.Collection("requests")}
}

func (r *RequestRepository) Insert(ctx context.Context, request *models.Request) error {
	_, err := r.coll.InsertOne(ctx, request)
	return err
}

func (r *RequestRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Request, error) {
	var request models.Request
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&request)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// FindPending looks for a pending request in the exact sender->receiver
// direction only.
func (r *RequestRepository) FindPending(ctx context.Context, senderID, receiverID primitive.ObjectID) (*models.Request, error) {
	filter := bson.M{
		"senderId":   senderID,
		"receiverId": receiverID,
		"status":     models.RequestStatusPending,
	}

	var request models.Request
	err := r.coll.FindOne(ctx, filter).Decode(&request)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// UpdateStatusIf is a conditional transition: the update only matches while
// the stored status equals from, so concurrent transitions cannot both win.
func (r *RequestRepository) UpdateStatusIf(ctx context.Context, id primitive.ObjectID, from, to models.RequestStatus, at time.Time) (bool, error) {
	result, err := r.coll.UpdateOne(
		ctx,
		bson.M{"_id": id, "status": from},
		bson.M{"$set": bson.M{"status": to, "updatedAt": at}},
	)
	if err != nil {
		return false, err
	}
	return result.MatchedCount == 1, nil
}

func (r *RequestRepository) ListByReceiver(ctx context.Context, receiverID primitive.ObjectID, status string) ([]models.Request, error) {
	filter := bson.M{"receiverId": receiverID}
	if status != "" {
		filter["status"] = status
	}
	return r.list(ctx, filter)
}

func (r *RequestRepository) ListBySender(ctx context.Context, senderID primitive.ObjectID, status string) ([]models.Request, error) {
	filter := bson.M{"senderId": senderID}
	if status != "" {
		filter["status"] = status
	}
	return r.list(ctx, filter)
}

func (r *RequestRepository) list(ctx context.Context, filter bson.M) ([]models.Request, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var requests []models.Request
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}
