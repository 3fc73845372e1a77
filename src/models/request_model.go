package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Request is a directed connection proposal from one user to another.
// It starts pending and moves to exactly one terminal state.
type Request struct {
	Id         primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	SenderId   primitive.ObjectID `json:"senderId" bson:"senderId"`
	ReceiverId primitive.ObjectID `json:"receiverId" bson:"receiverId"`
	Status     RequestStatus      `json:"status" bson:"status"`
	Message    string             `json:"message" bson:"message"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusAccepted  RequestStatus = "accepted"
	RequestStatusRejected  RequestStatus = "rejected"
	RequestStatusCancelled RequestStatus = "cancelled"
)

// MaxRequestMessageLength bounds the optional message sent with a request.
const MaxRequestMessageLength = 500
