package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/prajwalshetti/Project-matrimony/src/models"
)

// Store interfaces narrow the persistence layer to what the services need.
// Finders return (nil, nil) when the document does not exist.

type UserStore interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	SetProfileCompleted(ctx context.Context, id primitive.ObjectID, completed bool) error
}

type RequestStore interface {
	Insert(ctx context.Context, request *models.Request) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Request, error)
	FindPending(ctx context.Context, senderID, receiverID primitive.ObjectID) (*models.Request, error)
	// UpdateStatusIf transitions the request only if its current status
	// matches from; it reports whether a document was matched.
	UpdateStatusIf(ctx context.Context, id primitive.ObjectID, from, to models.RequestStatus, at time.Time) (bool, error)
	// Listings are sorted by creation time descending. An empty status means
	// no status filter.
	ListByReceiver(ctx context.Context, receiverID primitive.ObjectID, status string) ([]models.Request, error)
	ListBySender(ctx context.Context, senderID primitive.ObjectID, status string) ([]models.Request, error)
}

type ConnectionStore interface {
	Insert(ctx context.Context, connection *models.Connection) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Connection, error)
	// FindByUsers matches the unordered pair, i.e. either user1/user2 order.
	FindByUsers(ctx context.Context, a, b primitive.ObjectID) (*models.Connection, error)
	// ListByUser returns connections with the user on either side, sorted by
	// connection date descending.
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Connection, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}
