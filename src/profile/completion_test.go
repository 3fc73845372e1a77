package profile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prajwalshetti/Project-matrimony/src/models"
)

func fullUser() *models.User {
	return &models.User{
		Name:              "Priya",
		LastName:          "Sharma",
		DateOfBirth:       time.Date(1997, 3, 14, 0, 0, 0, 0, time.UTC),
		Gender:            "Female",
		Height:            "5'4\"",
		PhoneNumber:       "+91 9876543210",
		FoodPreference:    "Vegetarian",
		OccupationType:    "Private",
		Occupation:        "Architect",
		Education:         "Pune BArch",
		LanguagesKnown:    []string{"Hindi", "English"},
		FathersName:       "Rajesh",
		FathersOccupation: "Retired",
		MothersName:       "Sunita",
		MothersOccupation: "Homemaker",
		ResidentCountry:   "India",
		CurrentCity:       "Pune",
		Hometown:          "Nagpur",
		Interests:         []string{"Travel", "Music"},
		FuturePlans:       "Settle in Pune",
		ProfilePhoto:      "https://photos.example.com/priya.jpg",
		IsPaymentDone:     true,
	}
}

func TestComputeFullProfile(t *testing.T) {
	report := Compute(fullUser())

	assert.True(t, report.IsProfileCompleted)
	assert.True(t, report.IsDetailsCompleted)
	assert.True(t, report.IsPaymentDone)
	assert.Equal(t, 100, report.CompletionPercentage)
	assert.Empty(t, report.MissingRequiredFields)
	assert.Equal(t, 22, report.TotalFields)
	assert.Equal(t, 22, report.CompletedFields)
	assert.Equal(t, 0, report.MissingFieldsCount)
	assert.Len(t, report.CompletedRequiredFields, 21)

	assert.Equal(t, SectionCompletion{
		Personal:     true,
		Professional: true,
		Family:       true,
		Location:     true,
		Preferences:  true,
		Photo:        true,
		Payment:      true,
	}, report.SectionCompletion)
}

func TestComputeDetailsCompleteWithoutPayment(t *testing.T) {
	user := fullUser()
	user.IsPaymentDone = false

	report := Compute(user)

	assert.False(t, report.IsProfileCompleted)
	assert.True(t, report.IsDetailsCompleted)
	assert.False(t, report.IsPaymentDone)
	// 21 of 22 fields, rounded.
	assert.Equal(t, 95, report.CompletionPercentage)
	assert.Equal(t, []string{"payment"}, report.MissingRequiredFields)
	assert.Equal(t, 1, report.MissingFieldsCount)
	assert.Equal(t, 21, report.CompletedFields)
	assert.True(t, report.SectionCompletion.Photo)
	assert.False(t, report.SectionCompletion.Payment)
}

func TestComputeWhitespaceAndEmptyListAreAbsent(t *testing.T) {
	user := fullUser()
	user.Occupation = "   "
	user.Interests = nil

	report := Compute(user)

	assert.False(t, report.IsProfileCompleted)
	assert.False(t, report.IsDetailsCompleted)
	assert.Equal(t, []string{"occupation", "interests"}, report.MissingRequiredFields)
	assert.Equal(t, 20, report.CompletedFields)
	assert.Equal(t, 91, report.CompletionPercentage)
	assert.False(t, report.SectionCompletion.Professional)
	assert.False(t, report.SectionCompletion.Preferences)
	assert.True(t, report.SectionCompletion.Personal)
}

func TestComputeEmptyUser(t *testing.T) {
	report := Compute(&models.User{})

	assert.False(t, report.IsProfileCompleted)
	assert.False(t, report.IsDetailsCompleted)
	assert.Equal(t, 0, report.CompletionPercentage)
	assert.Equal(t, 0, report.CompletedFields)
	assert.Equal(t, 22, report.TotalFields)
	assert.Equal(t, 22, report.MissingFieldsCount)
	require.Len(t, report.MissingRequiredFields, 22)
	// Payment always sorts after the detail fields.
	assert.Equal(t, "payment", report.MissingRequiredFields[21])
	assert.Empty(t, report.CompletedRequiredFields)
	assert.Equal(t, SectionCompletion{}, report.SectionCompletion)
}

func TestComputePartialSections(t *testing.T) {
	user := fullUser()
	user.FathersName = ""
	user.Hometown = ""

	report := Compute(user)

	assert.False(t, report.SectionCompletion.Family)
	assert.False(t, report.SectionCompletion.Location)
	assert.True(t, report.SectionCompletion.Professional)
	assert.Equal(t, []string{"fathersName", "hometown"}, report.MissingRequiredFields)
	assert.Equal(t, 20, report.CompletedFields)
}
