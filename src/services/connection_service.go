package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/prajwalshetti/Project-matrimony/src/models"
)

// ConnectionService serves the read paths over materialized connections and
// their removal. Removing a connection is permanent and does not touch the
// originating request, which stays accepted.
type ConnectionService struct {
	users       UserStore
	connections ConnectionStore
	now         func() time.Time
}

func NewConnectionService(users UserStore, connections ConnectionStore) *ConnectionService {
	return &ConnectionService{
		users:       users,
		connections: connections,
		now:         time.Now,
	}
}

// ConnectionSummary shows only the other party of a connection.
type ConnectionSummary struct {
	Id             primitive.ObjectID `json:"_id"`
	ConnectedUser  models.ProfileCard `json:"connectedUser"`
	ConnectionDate time.Time          `json:"connectionDate"`
	LastMessageAt  *time.Time         `json:"lastMessageAt,omitempty"`
}

// List returns the user's connections, newest first, each shaped to the
// other participant.
func (s *ConnectionService) List(ctx context.Context, userID primitive.ObjectID) ([]ConnectionSummary, error) {
	connections, err := s.connections.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	result := make([]ConnectionSummary, 0, len(connections))
	for _, connection := range connections {
		other, err := s.users.FindByID(ctx, connection.OtherUser(userID))
		if err != nil {
			return nil, err
		}
		item := ConnectionSummary{
			Id:             connection.Id,
			ConnectionDate: connection.ConnectionDate,
			LastMessageAt:  connection.LastMessageAt,
		}
		if other != nil {
			item.ConnectedUser = listingCard(other, now)
		}
		result = append(result, item)
	}
	return result, nil
}

// Get returns the full connection with both participants resolved, email
// included. Only a participant may view it.
func (s *ConnectionService) Get(ctx context.Context, connectionID, userID primitive.ObjectID) (*ConnectionDetail, error) {
	connection, err := s.connections.FindByID(ctx, connectionID)
	if err != nil {
		return nil, err
	}
	if connection == nil {
		return nil, NewNotFound("Connection not found")
	}
	if !connection.Involves(userID) {
		return nil, NewAuthorization("Not authorized to view this connection")
	}

	user1, err := s.users.FindByID(ctx, connection.User1)
	if err != nil {
		return nil, err
	}
	user2, err := s.users.FindByID(ctx, connection.User2)
	if err != nil {
		return nil, err
	}

	now := s.now()
	detail := &ConnectionDetail{
		Id:             connection.Id,
		RequestId:      connection.RequestId,
		ConnectionDate: connection.ConnectionDate,
		LastMessageAt:  connection.LastMessageAt,
	}
	if user1 != nil {
		detail.User1 = detailCard(user1, now)
	}
	if user2 != nil {
		detail.User2 = detailCard(user2, now)
	}
	return detail, nil
}

// Remove permanently deletes a connection. Either participant may remove it.
func (s *ConnectionService) Remove(ctx context.Context, connectionID, userID primitive.ObjectID) error {
	connection, err := s.connections.FindByID(ctx, connectionID)
	if err != nil {
		return err
	}
	if connection == nil {
		return NewNotFound("Connection not found")
	}
	if !connection.Involves(userID) {
		return NewAuthorization("Not authorized to remove this connection")
	}

	return s.connections.Delete(ctx, connectionID)
}
