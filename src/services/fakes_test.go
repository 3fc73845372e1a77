package services

import (
	"context"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/prajwalshetti/Project-matrimony/src/models"
)

// In-memory stores implementing the service store interfaces.

type fakeUserStore struct {
	users           map[primitive.ObjectID]*models.User
	completedWrites int
}

func newFakeUserStore(users ...*models.User) *fakeUserStore {
	s := &fakeUserStore{users: make(map[primitive.ObjectID]*models.User)}
	for _, u := range users {
		s.users[u.Id] = u
	}
	return s
}

func (s *fakeUserStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (s *fakeUserStore) SetProfileCompleted(_ context.Context, id primitive.ObjectID, completed bool) error {
	if user, ok := s.users[id]; ok {
		user.IsProfileCompleted = completed
	}
	s.completedWrites++
	return nil
}

type fakeRequestStore struct {
	requests []*models.Request
}

func (s *fakeRequestStore) Insert(_ context.Context, request *models.Request) error {
	copied := *request
	s.requests = append(s.requests, &copied)
	return nil
}

func (s *fakeRequestStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Request, error) {
	for _, request := range s.requests {
		if request.Id == id {
			copied := *request
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *fakeRequestStore) FindPending(_ context.Context, senderID, receiverID primitive.ObjectID) (*models.Request, error) {
	for _, request := range s.requests {
		if request.SenderId == senderID && request.ReceiverId == receiverID && request.Status == models.RequestStatusPending {
			copied := *request
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *fakeRequestStore) UpdateStatusIf(_ context.Context, id primitive.ObjectID, from, to models.RequestStatus, at time.Time) (bool, error) {
	for _, request := range s.requests {
		if request.Id == id && request.Status == from {
			request.Status = to
			request.UpdatedAt = at
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeRequestStore) ListByReceiver(_ context.Context, receiverID primitive.ObjectID, status string) ([]models.Request, error) {
	return s.list(func(r *models.Request) bool { return r.ReceiverId == receiverID }, status), nil
}

func (s *fakeRequestStore) ListBySender(_ context.Context, senderID primitive.ObjectID, status string) ([]models.Request, error) {
	return s.list(func(r *models.Request) bool { return r.SenderId == senderID }, status), nil
}

func (s *fakeRequestStore) list(match func(*models.Request) bool, status string) []models.Request {
	var result []models.Request
	for _, request := range s.requests {
		if !match(request) {
			continue
		}
		if status != "" && string(request.Status) != status {
			continue
		}
		result = append(result, *request)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result
}

type fakeConnectionStore struct {
	connections []*models.Connection
	insertErr   error
}

func (s *fakeConnectionStore) Insert(_ context.Context, connection *models.Connection) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	copied := *connection
	s.connections = append(s.connections, &copied)
	return nil
}

func (s *fakeConnectionStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Connection, error) {
	for _, connection := range s.connections {
		if connection.Id == id {
			copied := *connection
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *fakeConnectionStore) FindByUsers(_ context.Context, a, b primitive.ObjectID) (*models.Connection, error) {
	for _, connection := range s.connections {
		if (connection.User1 == a && connection.User2 == b) || (connection.User1 == b && connection.User2 == a) {
			copied := *connection
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *fakeConnectionStore) ListByUser(_ context.Context, userID primitive.ObjectID) ([]models.Connection, error) {
	var result []models.Connection
	for _, connection := range s.connections {
		if connection.Involves(userID) {
			result = append(result, *connection)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].ConnectionDate.After(result[j].ConnectionDate)
	})
	return result, nil
}

func (s *fakeConnectionStore) Delete(_ context.Context, id primitive.ObjectID) error {
	for i, connection := range s.connections {
		if connection.Id == id {
			s.connections = append(s.connections[:i], s.connections[i+1:]...)
			return nil
		}
	}
	return nil
}
