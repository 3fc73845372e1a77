package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/prajwalshetti/Project-matrimony/src/models"
)

var testNow = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

type requestEnv struct {
	users       *fakeUserStore
	requests    *fakeRequestStore
	connections *fakeConnectionStore
	svc         *RequestService

	alice primitive.ObjectID
	bob   primitive.ObjectID
	carol primitive.ObjectID
}

func newRequestEnv(t *testing.T) *requestEnv {
	t.Helper()

	alice := testUser("Alice", "alice@example.com")
	bob := testUser("Bob", "bob@example.com")
	carol := testUser("Carol", "carol@example.com")

	users := newFakeUserStore(alice, bob, carol)
	requests := &fakeRequestStore{}
	connections := &fakeConnectionStore{}

	svc := NewRequestService(users, requests, connections)
	svc.now = func() time.Time { return testNow }

	return &requestEnv{
		users:       users,
		requests:    requests,
		connections: connections,
		svc:         svc,
		alice:       alice.Id,
		bob:         bob.Id,
		carol:       carol.Id,
	}
}

func testUser(name, email string) *models.User {
	return &models.User{
		Id:           primitive.NewObjectID(),
		Name:         name,
		Email:        email,
		Occupation:   "Engineer",
		CurrentCity:  "Bengaluru",
		Education:    "Bengaluru BE",
		ProfilePhoto: "https://photos.example.com/" + name + ".jpg",
		DateOfBirth:  time.Date(1998, 5, 10, 0, 0, 0, 0, time.UTC),
	}
}

func TestSendRequestToSelf(t *testing.T) {
	env := newRequestEnv(t)

	_, err := env.svc.Send(context.Background(), env.alice, env.alice, "")
	require.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))
	assert.Equal(t, "Cannot send request to yourself", err.Error())
}

func TestSendRequestMissingReceiver(t *testing.T) {
	env := newRequestEnv(t)

	_, err := env.svc.Send(context.Background(), env.alice, primitive.NilObjectID, "")
	require.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))
	assert.Equal(t, "Receiver ID is required", err.Error())
}

func TestSendRequestReceiverNotFound(t *testing.T) {
	env := newRequestEnv(t)

	_, err := env.svc.Send(context.Background(), env.alice, primitive.NewObjectID(), "")
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.Equal(t, "User not found", err.Error())
}

func TestSendRequestMessageTooLong(t *testing.T) {
	env := newRequestEnv(t)

	_, err := env.svc.Send(context.Background(), env.alice, env.bob, strings.Repeat("x", 501))
	require.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))
}

func TestSendRequest(t *testing.T) {
	env := newRequestEnv(t)

	detail, err := env.svc.Send(context.Background(), env.alice, env.bob, "Hello")
	require.NoError(t, err)

	assert.Equal(t, models.RequestStatusPending, detail.Status)
	assert.Equal(t, "Hello", detail.Message)
	assert.Equal(t, "Alice", detail.Sender.Name)
	assert.Equal(t, "Bob", detail.Receiver.Name)
	assert.Equal(t, "Engineer", detail.Receiver.Occupation)
	assert.Equal(t, "Bengaluru", detail.Receiver.CurrentCity)
	assert.Empty(t, detail.Receiver.Email)

	stored, err := env.requests.FindByID(context.Background(), detail.Id)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, models.RequestStatusPending, stored.Status)
	assert.Equal(t, env.alice, stored.SenderId)
	assert.Equal(t, env.bob, stored.ReceiverId)
}

func TestSendRequestDuplicatePending(t *testing.T) {
	env := newRequestEnv(t)

	_, err := env.svc.Send(context.Background(), env.alice, env.bob, "")
	require.NoError(t, err)

	_, err = env.svc.Send(context.Background(), env.alice, env.bob, "")
	require.Error(t, err)
	assert.Equal(t, KindConflict, KindOf(err))
	assert.Equal(t, "Request already pending", err.Error())
}

// A pending request in the opposite direction does not block: the duplicate
// check only covers the exact sender->receiver direction, so both directions
// can be pending at once.
func TestSendRequestOppositeDirectionAllowed(t *testing.T) {
	env := newRequestEnv(t)

	_, err := env.svc.Send(context.Background(), env.alice, env.bob, "")
	require.NoError(t, err)

	detail, err := env.svc.Send(context.Background(), env.bob, env.alice, "")
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusPending, detail.Status)
}

func TestSendRequestExistingConnection(t *testing.T) {
	env := newRequestEnv(t)

	err := env.connections.Insert(context.Background(), &models.Connection{
		Id:             primitive.NewObjectID(),
		User1:          env.bob,
		User2:          env.alice,
		ConnectionDate: testNow,
	})
	require.NoError(t, err)

	// Blocked in either stored order of the pair.
	_, err = env.svc.Send(context.Background(), env.alice, env.bob, "")
	require.Error(t, err)
	assert.Equal(t, KindConflict, KindOf(err))
	assert.Equal(t, "Connection already exists", err.Error())
}

func TestAcceptRequest(t *testing.T) {
	env := newRequestEnv(t)

	sent, err := env.svc.Send(context.Background(), env.alice, env.bob, "Hello")
	require.NoError(t, err)

	detail, err := env.svc.Accept(context.Background(), sent.Id, env.bob)
	require.NoError(t, err)

	assert.Equal(t, "Alice", detail.User1.Name)
	assert.Equal(t, "Bob", detail.User2.Name)
	assert.Equal(t, sent.Id, detail.RequestId)
	assert.Equal(t, testNow, detail.ConnectionDate)

	request, err := env.requests.FindByID(context.Background(), sent.Id)
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusAccepted, request.Status)

	connection, err := env.connections.FindByUsers(context.Background(), env.alice, env.bob)
	require.NoError(t, err)
	require.NotNil(t, connection)
	assert.Equal(t, env.alice, connection.User1)
	assert.Equal(t, env.bob, connection.User2)
	assert.Len(t, env.connections.connections, 1)
}

func TestAcceptRequestNotFound(t *testing.T) {
	env := newRequestEnv(t)

	_, err := env.svc.Accept(context.Background(), primitive.NewObjectID(), env.bob)
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.Equal(t, "Request not found", err.Error())
}

func TestAcceptRequestNotReceiver(t *testing.T) {
	env := newRequestEnv(t)

	sent, err := env.svc.Send(context.Background(), env.alice, env.bob, "")
	require.NoError(t, err)

	for _, actor := range []primitive.ObjectID{env.alice, env.carol} {
		_, err := env.svc.Accept(context.Background(), sent.Id, actor)
		require.Error(t, err)
		assert.Equal(t, KindAuthorization, KindOf(err))
		assert.Equal(t, "Not authorized to accept this request", err.Error())
	}
}

func TestAcceptRequestAlreadyProcessed(t *testing.T) {
	env := newRequestEnv(t)

	sent, err := env.svc.Send(context.Background(), env.alice, env.bob, "")
	require.NoError(t, err)
	require.NoError(t, env.svc.Reject(context.Background(), sent.Id, env.bob))

	_, err = env.svc.Accept(context.Background(), sent.Id, env.bob)
	require.Error(t, err)
	assert.Equal(t, KindConflict, KindOf(err))
	assert.Equal(t, "Request is already rejected", err.Error())
}

// A failed connection insert must roll the request back to pending so it is
// never left accepted without a connection.
func TestAcceptRequestRollbackOnMaterializeFailure(t *testing.T) {
	env := newRequestEnv(t)

	sent, err := env.svc.Send(context.Background(), env.alice, env.bob, "")
	require.NoError(t, err)

	env.connections.insertErr = errors.New("insert failed")
	_, err = env.svc.Accept(context.Background(), sent.Id, env.bob)
	require.Error(t, err)

	request, err := env.requests.FindByID(context.Background(), sent.Id)
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusPending, request.Status)
	assert.Empty(t, env.connections.connections)
}

func TestRejectRequest(t *testing.T) {
	env := newRequestEnv(t)

	sent, err := env.svc.Send(context.Background(), env.alice, env.bob, "")
	require.NoError(t, err)

	require.NoError(t, env.svc.Reject(context.Background(), sent.Id, env.bob))

	request, err := env.requests.FindByID(context.Background(), sent.Id)
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusRejected, request.Status)
	assert.Empty(t, env.connections.connections)
}

func TestRejectRequestNotReceiver(t *testing.T) {
	env := newRequestEnv(t)

	sent, err := env.svc.Send(context.Background(), env.alice, env.bob, "")
	require.NoError(t, err)

	err = env.svc.Reject(context.Background(), sent.Id, env.carol)
	require.Error(t, err)
	assert.Equal(t, KindAuthorization, KindOf(err))
	assert.Equal(t, "Not authorized to reject this request", err.Error())
}

func TestCancelRequest(t *testing.T) {
	env := newRequestEnv(t)

	sent, err := env.svc.Send(context.Background(), env.alice, env.bob, "")
	require.NoError(t, err)

	require.NoError(t, env.svc.Cancel(context.Background(), sent.Id, env.alice))

	request, err := env.requests.FindByID(context.Background(), sent.Id)
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusCancelled, request.Status)
}

func TestCancelRequestNotSender(t *testing.T) {
	env := newRequestEnv(t)

	sent, err := env.svc.Send(context.Background(), env.alice, env.bob, "")
	require.NoError(t, err)

	for _, actor := range []primitive.ObjectID{env.bob, env.carol} {
		err := env.svc.Cancel(context.Background(), sent.Id, actor)
		require.Error(t, err)
		assert.Equal(t, KindAuthorization, KindOf(err))
		assert.Equal(t, "Not authorized to cancel this request", err.Error())
	}
}

// Cancel's wrong-state message differs from accept/reject's "already X" on
// purpose.
func TestCancelRequestNotPending(t *testing.T) {
	env := newRequestEnv(t)

	sent, err := env.svc.Send(context.Background(), env.alice, env.bob, "")
	require.NoError(t, err)
	require.NoError(t, env.svc.Reject(context.Background(), sent.Id, env.bob))

	err = env.svc.Cancel(context.Background(), sent.Id, env.alice)
	require.Error(t, err)
	assert.Equal(t, KindConflict, KindOf(err))
	assert.Equal(t, "Can only cancel pending requests", err.Error())
}

func TestListReceivedRequests(t *testing.T) {
	env := newRequestEnv(t)

	first, err := env.svc.Send(context.Background(), env.alice, env.bob, "hi")
	require.NoError(t, err)

	// Later request, so it must come first in the listing.
	env.svc.now = func() time.Time { return testNow.Add(time.Hour) }
	second, err := env.svc.Send(context.Background(), env.carol, env.bob, "hello")
	require.NoError(t, err)

	received, err := env.svc.ListReceived(context.Background(), env.bob, "")
	require.NoError(t, err)
	require.Len(t, received, 2)
	assert.Equal(t, second.Id, received[0].Id)
	assert.Equal(t, first.Id, received[1].Id)
	assert.Equal(t, "Carol", received[0].Sender.Name)
	assert.Equal(t, 28, received[0].Sender.Age)
	assert.Equal(t, "Bengaluru BE", received[0].Sender.Education)
	assert.Empty(t, received[0].Sender.Email)
}

func TestListReceivedRequestsStatusFilter(t *testing.T) {
	env := newRequestEnv(t)

	sent, err := env.svc.Send(context.Background(), env.alice, env.bob, "")
	require.NoError(t, err)
	_, err = env.svc.Send(context.Background(), env.carol, env.bob, "")
	require.NoError(t, err)

	require.NoError(t, env.svc.Reject(context.Background(), sent.Id, env.bob))

	rejected, err := env.svc.ListReceived(context.Background(), env.bob, "rejected")
	require.NoError(t, err)
	require.Len(t, rejected, 1)
	assert.Equal(t, sent.Id, rejected[0].Id)

	pending, err := env.svc.ListReceived(context.Background(), env.bob, "pending")
	require.NoError(t, err)
	assert.Len(t, pending, 1)
}

func TestListSentRequests(t *testing.T) {
	env := newRequestEnv(t)

	_, err := env.svc.Send(context.Background(), env.alice, env.bob, "")
	require.NoError(t, err)
	_, err = env.svc.Send(context.Background(), env.alice, env.carol, "")
	require.NoError(t, err)

	sent, err := env.svc.ListSent(context.Background(), env.alice, "")
	require.NoError(t, err)
	require.Len(t, sent, 2)
	for _, item := range sent {
		assert.Equal(t, env.alice, item.SenderId)
		assert.NotEmpty(t, item.Receiver.Name)
	}

	none, err := env.svc.ListSent(context.Background(), env.bob, "")
	require.NoError(t, err)
	assert.Empty(t, none)
}
