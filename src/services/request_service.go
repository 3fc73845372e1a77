package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/prajwalshetti/Project-matrimony/src/models"
)

// RequestService owns the connection-request lifecycle:
// pending -> accepted | rejected | cancelled, with no way out of a terminal
// state. Accepting a request materializes the Connection for the pair.
type RequestService struct {
	users       UserStore
	requests    RequestStore
	connections ConnectionStore
	now         func() time.Time
}

func NewRequestService(users UserStore, requests RequestStore, connections ConnectionStore) *RequestService {
	return &RequestService{
		users:       users,
		requests:    requests,
		connections: connections,
		now:         time.Now,
	}
}

// RequestDetail is a request with both parties resolved for display.
type RequestDetail struct {
	Id        primitive.ObjectID   `json:"_id"`
	Sender    models.ProfileCard   `json:"senderId"`
	Receiver  models.ProfileCard   `json:"receiverId"`
	Status    models.RequestStatus `json:"status"`
	Message   string               `json:"message"`
	CreatedAt time.Time            `json:"createdAt"`
}

// ReceivedRequest resolves the sender; the receiver is the caller.
type ReceivedRequest struct {
	Id         primitive.ObjectID   `json:"_id"`
	Sender     models.ProfileCard   `json:"senderId"`
	ReceiverId primitive.ObjectID   `json:"receiverId"`
	Status     models.RequestStatus `json:"status"`
	Message    string               `json:"message"`
	CreatedAt  time.Time            `json:"createdAt"`
}

// SentRequest resolves the receiver; the sender is the caller.
type SentRequest struct {
	Id        primitive.ObjectID   `json:"_id"`
	SenderId  primitive.ObjectID   `json:"senderId"`
	Receiver  models.ProfileCard   `json:"receiverId"`
	Status    models.RequestStatus `json:"status"`
	Message   string               `json:"message"`
	CreatedAt time.Time            `json:"createdAt"`
}

// ConnectionDetail is a connection with both participants resolved.
type ConnectionDetail struct {
	Id             primitive.ObjectID `json:"_id"`
	User1          models.ProfileCard `json:"user1"`
	User2          models.ProfileCard `json:"user2"`
	RequestId      primitive.ObjectID `json:"requestId,omitempty"`
	ConnectionDate time.Time          `json:"connectionDate"`
	LastMessageAt  *time.Time         `json:"lastMessageAt,omitempty"`
}

// Send creates a pending request from sender to receiver.
//
// Only the exact sender->receiver direction is checked for an existing
// pending request; a pending request in the opposite direction does not
// block, so both directions can be pending at once.
func (s *RequestService) Send(ctx context.Context, senderID, receiverID primitive.ObjectID, message string) (*RequestDetail, error) {
	if receiverID.IsZero() {
		return nil, NewValidation("Receiver ID is required")
	}
	if senderID == receiverID {
		return nil, NewValidation("Cannot send request to yourself")
	}
	if len(message) > models.MaxRequestMessageLength {
		return nil, NewValidation("Message must be 500 characters or less")
	}

	receiver, err := s.users.FindByID(ctx, receiverID)
	if err != nil {
		return nil, err
	}
	if receiver == nil {
		return nil, NewNotFound("User not found")
	}

	pending, err := s.requests.FindPending(ctx, senderID, receiverID)
	if err != nil {
		return nil, err
	}
	if pending != nil {
		return nil, NewConflict("Request already pending")
	}

	existing, err := s.connections.FindByUsers(ctx, senderID, receiverID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, NewConflict("Connection already exists")
	}

	sender, err := s.users.FindByID(ctx, senderID)
	if err != nil {
		return nil, err
	}
	if sender == nil {
		return nil, NewNotFound("User not found")
	}

	now := s.now()
	request := &models.Request{
		Id:         primitive.NewObjectID(),
		SenderId:   senderID,
		ReceiverId: receiverID,
		Status:     models.RequestStatusPending,
		Message:    message,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.requests.Insert(ctx, request); err != nil {
		return nil, err
	}

	return &RequestDetail{
		Id:        request.Id,
		Sender:    summaryCard(sender),
		Receiver:  summaryCard(receiver),
		Status:    request.Status,
		Message:   request.Message,
		CreatedAt: request.CreatedAt,
	}, nil
}

// Accept transitions a pending request to accepted and materializes the
// connection. The status update is conditional on the request still being
// pending; if the connection insert fails the request is rolled back so it
// is never left accepted without a connection.
func (s *RequestService) Accept(ctx context.Context, requestID, actingUserID primitive.ObjectID) (*ConnectionDetail, error) {
	request, err := s.requests.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, NewNotFound("Request not found")
	}
	if request.ReceiverId != actingUserID {
		return nil, NewAuthorization("Not authorized to accept this request")
	}
	if request.Status != models.RequestStatusPending {
		return nil, NewConflictf("Request is already %s", request.Status)
	}

	ok, err := s.requests.UpdateStatusIf(ctx, requestID, models.RequestStatusPending, models.RequestStatusAccepted, s.now())
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, s.staleTransition(ctx, requestID)
	}

	connection := &models.Connection{
		Id:             primitive.NewObjectID(),
		User1:          request.SenderId,
		User2:          request.ReceiverId,
		RequestId:      request.Id,
		ConnectionDate: s.now(),
	}
	if err := s.connections.Insert(ctx, connection); err != nil {
		_, _ = s.requests.UpdateStatusIf(ctx, requestID, models.RequestStatusAccepted, models.RequestStatusPending, s.now())
		return nil, err
	}

	sender, err := s.users.FindByID(ctx, request.SenderId)
	if err != nil {
		return nil, err
	}
	receiver, err := s.users.FindByID(ctx, request.ReceiverId)
	if err != nil {
		return nil, err
	}

	detail := &ConnectionDetail{
		Id:             connection.Id,
		RequestId:      connection.RequestId,
		ConnectionDate: connection.ConnectionDate,
	}
	if sender != nil {
		detail.User1 = summaryCard(sender)
	}
	if receiver != nil {
		detail.User2 = summaryCard(receiver)
	}
	return detail, nil
}

// Reject transitions a pending request to rejected. Only the receiver may
// reject; no connection is created.
func (s *RequestService) Reject(ctx context.Context, requestID, actingUserID primitive.ObjectID) error {
	request, err := s.requests.FindByID(ctx, requestID)
	if err != nil {
		return err
	}
	if request == nil {
		return NewNotFound("Request not found")
	}
	if request.ReceiverId != actingUserID {
		return NewAuthorization("Not authorized to reject this request")
	}
	if request.Status != models.RequestStatusPending {
		return NewConflictf("Request is already %s", request.Status)
	}

	ok, err := s.requests.UpdateStatusIf(ctx, requestID, models.RequestStatusPending, models.RequestStatusRejected, s.now())
	if err != nil {
		return err
	}
	if !ok {
		return s.staleTransition(ctx, requestID)
	}
	return nil
}

// Cancel transitions a pending request to cancelled. Only the sender may
// cancel.
func (s *RequestService) Cancel(ctx context.Context, requestID, actingUserID primitive.ObjectID) error {
	request, err := s.requests.FindByID(ctx, requestID)
	if err != nil {
		return err
	}
	if request == nil {
		return NewNotFound("Request not found")
	}
	if request.SenderId != actingUserID {
		return NewAuthorization("Not authorized to cancel this request")
	}
	if request.Status != models.RequestStatusPending {
		return NewConflict("Can only cancel pending requests")
	}

	ok, err := s.requests.UpdateStatusIf(ctx, requestID, models.RequestStatusPending, models.RequestStatusCancelled, s.now())
	if err != nil {
		return err
	}
	if !ok {
		current, err := s.requests.FindByID(ctx, requestID)
		if err != nil {
			return err
		}
		if current == nil {
			return NewNotFound("Request not found")
		}
		return NewConflict("Can only cancel pending requests")
	}
	return nil
}

// ListReceived returns requests addressed to the user, newest first, with the
// sender resolved. A non-empty status filters by exact match.
func (s *RequestService) ListReceived(ctx context.Context, userID primitive.ObjectID, status string) ([]ReceivedRequest, error) {
	requests, err := s.requests.ListByReceiver(ctx, userID, status)
	if err != nil {
		return nil, err
	}

	now := s.now()
	result := make([]ReceivedRequest, 0, len(requests))
	for _, request := range requests {
		sender, err := s.users.FindByID(ctx, request.SenderId)
		if err != nil {
			return nil, err
		}
		item := ReceivedRequest{
			Id:         request.Id,
			ReceiverId: request.ReceiverId,
			Status:     request.Status,
			Message:    request.Message,
			CreatedAt:  request.CreatedAt,
		}
		if sender != nil {
			item.Sender = listingCard(sender, now)
		}
		result = append(result, item)
	}
	return result, nil
}

// ListSent returns requests the user has sent, newest first, with the
// receiver resolved. A non-empty status filters by exact match.
func (s *RequestService) ListSent(ctx context.Context, userID primitive.ObjectID, status string) ([]SentRequest, error) {
	requests, err := s.requests.ListBySender(ctx, userID, status)
	if err != nil {
		return nil, err
	}

	now := s.now()
	result := make([]SentRequest, 0, len(requests))
	for _, request := range requests {
		receiver, err := s.users.FindByID(ctx, request.ReceiverId)
		if err != nil {
			return nil, err
		}
		item := SentRequest{
			Id:        request.Id,
			SenderId:  request.SenderId,
			Status:    request.Status,
			Message:   request.Message,
			CreatedAt: request.CreatedAt,
		}
		if receiver != nil {
			item.Receiver = listingCard(receiver, now)
		}
		result = append(result, item)
	}
	return result, nil
}

// staleTransition reports the conflict for a request that changed state
// between the pre-check and the conditional update.
func (s *RequestService) staleTransition(ctx context.Context, requestID primitive.ObjectID) error {
	current, err := s.requests.FindByID(ctx, requestID)
	if err != nil {
		return err
	}
	if current == nil {
		return NewNotFound("Request not found")
	}
	return NewConflictf("Request is already %s", current.Status)
}
