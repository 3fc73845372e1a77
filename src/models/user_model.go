package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment holds the receipt details written by the payment subsystem.
// The backend only ever reads IsPaymentDone on the user.
type Payment struct {
	PaymentId string    `json:"paymentId,omitempty" bson:"paymentId,omitempty"`
	Amount    float64   `json:"amount,omitempty" bson:"amount,omitempty"`
	Method    string    `json:"method,omitempty" bson:"method,omitempty"`
	Date      time.Time `json:"date,omitempty" bson:"date,omitempty"`
}

type User struct {
	Id       primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Email    string             `json:"email" bson:"email"`
	Password string             `json:"password,omitempty" bson:"password,omitempty"`

	// Personal
	Name           string    `json:"name" bson:"name"`
	LastName       string    `json:"lastName" bson:"lastName"`
	DateOfBirth    time.Time `json:"dateOfBirth,omitempty" bson:"dateOfBirth,omitempty"`
	Gender         string    `json:"gender" bson:"gender"` // Male, Female, Others
	Height         string    `json:"height" bson:"height"`
	PhoneNumber    string    `json:"phoneNumber" bson:"phoneNumber"`
	FoodPreference string    `json:"foodPreference" bson:"foodPreference"` // Vegetarian, Eggetarian, Non-Veg

	// Professional
	OccupationType string   `json:"occupationType" bson:"occupationType"` // Govt, Private, Business
	Occupation     string   `json:"occupation" bson:"occupation"`
	Education      string   `json:"education" bson:"education"`
	LanguagesKnown []string `json:"languagesKnown" bson:"languagesKnown"`

	// Family
	FathersName       string `json:"fathersName" bson:"fathersName"`
	FathersOccupation string `json:"fathersOccupation" bson:"fathersOccupation"`
	MothersName       string `json:"mothersName" bson:"mothersName"`
	MothersOccupation string `json:"mothersOccupation" bson:"mothersOccupation"`

	// Location
	ResidentCountry string `json:"residentCountry" bson:"residentCountry"`
	CurrentCity     string `json:"currentCity" bson:"currentCity"`
	Hometown        string `json:"hometown" bson:"hometown"`

	// Preferences and free-form details
	Interests    []string `json:"interests" bson:"interests"`
	FuturePlans  string   `json:"futurePlans" bson:"futurePlans"`
	Disabilities string   `json:"disabilities" bson:"disabilities"`
	AboutMyself  string   `json:"aboutMyself" bson:"aboutMyself"`
	Gotra        string   `json:"gotra" bson:"gotra"`

	// Photos (asset host URLs)
	ProfilePhoto string   `json:"profilePhoto" bson:"profilePhoto"`
	ExtraPhotos  []string `json:"extraPhotos" bson:"extraPhotos"`

	Payment            *Payment `json:"payment,omitempty" bson:"payment,omitempty"`
	IsPaymentDone      bool     `json:"isPaymentDone" bson:"isPaymentDone"`
	IsProfileCompleted bool     `json:"isProfileCompleted" bson:"isProfileCompleted"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// ProfileCard is the public projection of a user shown to the other party of a
// request or connection. Age, education and email are only filled on the views
// that expose them.
type ProfileCard struct {
	Id           primitive.ObjectID `json:"_id"`
	Name         string             `json:"name"`
	ProfilePhoto string             `json:"profilePhoto"`
	Occupation   string             `json:"occupation"`
	CurrentCity  string             `json:"currentCity"`
	Age          int                `json:"age,omitempty"`
	Education    string             `json:"education,omitempty"`
	Email        string             `json:"email,omitempty"`
}

// Age in whole years at the given instant, 0 when the birth date is unset.
func (u *User) Age(now time.Time) int {
	if u.DateOfBirth.IsZero() {
		return 0
	}
	years := now.Year() - u.DateOfBirth.Year()
	if now.YearDay() < u.DateOfBirth.YearDay() {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}
