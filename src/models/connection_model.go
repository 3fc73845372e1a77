package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Connection is the mutual relationship created when a request is accepted.
// User1/User2 keep the sender/receiver order of the originating request but
// the pair is treated as unordered everywhere.
type Connection struct {
	Id             primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	User1          primitive.ObjectID `json:"user1" bson:"user1"`
	User2          primitive.ObjectID `json:"user2" bson:"user2"`
	RequestId      primitive.ObjectID `json:"requestId,omitempty" bson:"requestId,omitempty"`
	ConnectionDate time.Time          `json:"connectionDate" bson:"connectionDate"`
	LastMessageAt  *time.Time         `json:"lastMessageAt,omitempty" bson:"lastMessageAt,omitempty"`
}

// Involves reports whether the given user is one of the two participants.
func (c *Connection) Involves(userID primitive.ObjectID) bool {
	return c.User1 == userID || c.User2 == userID
}

// OtherUser returns the participant that is not the given user.
func (c *Connection) OtherUser(userID primitive.ObjectID) primitive.ObjectID {
	if c.User1 == userID {
		return c.User2
	}
	return c.User1
}
