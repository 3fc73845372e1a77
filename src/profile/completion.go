// Package profile computes how complete a user's matrimony profile is.
// The computation is pure; persisting the cached verdict is the caller's job.
package profile

import (
	"math"
	"strings"

	"github.com/prajwalshetti/Project-matrimony/src/models"
)

// SectionCompletion reports per-section completeness. A section is complete
// only when every required field in it is present.
type SectionCompletion struct {
	Personal     bool `json:"personal"`
	Professional bool `json:"professional"`
	Family       bool `json:"family"`
	Location     bool `json:"location"`
	Preferences  bool `json:"preferences"`
	Photo        bool `json:"photo"`
	Payment      bool `json:"payment"`
}

// Report is the derived completion view over a user. It is recomputed on
// demand and never stored as its own document; only IsProfileCompleted is
// cached back onto the user.
type Report struct {
	IsProfileCompleted      bool              `json:"isProfileCompleted"`
	IsDetailsCompleted      bool              `json:"isDetailsCompleted"`
	IsPaymentDone           bool              `json:"isPaymentDone"`
	CompletionPercentage    int               `json:"completionPercentage"`
	MissingRequiredFields   []string          `json:"missingRequiredFields"`
	CompletedRequiredFields []string          `json:"completedRequiredFields"`
	SectionCompletion       SectionCompletion `json:"sectionCompletion"`
	TotalFields             int               `json:"totalFields"`
	CompletedFields         int               `json:"completedFields"`
	MissingFieldsCount      int               `json:"missingFieldsCount"`
}

type requiredField struct {
	name    string
	present bool
}

// Compute evaluates the required-field set against the user. A field is
// absent when it is unset, an empty or whitespace-only string, or an empty
// list. Payment counts as one extra synthetic field on top of the profile
// details: the profile is complete only when details AND payment are done.
func Compute(u *models.User) Report {
	personal := []requiredField{
		{"name", presentString(u.Name)},
		{"lastName", presentString(u.LastName)},
		{"dateOfBirth", !u.DateOfBirth.IsZero()},
		{"gender", presentString(u.Gender)},
		{"height", presentString(u.Height)},
		{"phoneNumber", presentString(u.PhoneNumber)},
		{"foodPreference", presentString(u.FoodPreference)},
	}
	professional := []requiredField{
		{"occupationType", presentString(u.OccupationType)},
		{"occupation", presentString(u.Occupation)},
		{"education", presentString(u.Education)},
		{"languagesKnown", len(u.LanguagesKnown) > 0},
	}
	family := []requiredField{
		{"fathersName", presentString(u.FathersName)},
		{"fathersOccupation", presentString(u.FathersOccupation)},
		{"mothersName", presentString(u.MothersName)},
		{"mothersOccupation", presentString(u.MothersOccupation)},
	}
	location := []requiredField{
		{"residentCountry", presentString(u.ResidentCountry)},
		{"currentCity", presentString(u.CurrentCity)},
		{"hometown", presentString(u.Hometown)},
	}
	preferences := []requiredField{
		{"interests", len(u.Interests) > 0},
		{"futurePlans", presentString(u.FuturePlans)},
	}
	photo := []requiredField{
		{"profilePhoto", presentString(u.ProfilePhoto)},
	}

	all := make([]requiredField, 0, 21)
	for _, group := range [][]requiredField{personal, professional, family, location, preferences, photo} {
		all = append(all, group...)
	}

	missing := make([]string, 0)
	completed := make([]string, 0, len(all))
	for _, f := range all {
		if f.present {
			completed = append(completed, f.name)
		} else {
			missing = append(missing, f.name)
		}
	}

	isDetailsCompleted := len(missing) == 0
	isPaymentDone := u.IsPaymentDone

	totalFields := len(all) + 1 // +1 for payment
	completedFields := len(completed)
	if isPaymentDone {
		completedFields++
	}
	percentage := int(math.Round(float64(completedFields) / float64(totalFields) * 100))

	if !isPaymentDone {
		missing = append(missing, "payment")
	}

	return Report{
		IsProfileCompleted:      isDetailsCompleted && isPaymentDone,
		IsDetailsCompleted:      isDetailsCompleted,
		IsPaymentDone:           isPaymentDone,
		CompletionPercentage:    percentage,
		MissingRequiredFields:   missing,
		CompletedRequiredFields: completed,
		SectionCompletion: SectionCompletion{
			Personal:     allPresent(personal),
			Professional: allPresent(professional),
			Family:       allPresent(family),
			Location:     allPresent(location),
			Preferences:  allPresent(preferences),
			Photo:        allPresent(photo),
			Payment:      isPaymentDone,
		},
		TotalFields:        totalFields,
		CompletedFields:    completedFields,
		MissingFieldsCount: len(missing),
	}
}

func presentString(s string) bool {
	return strings.TrimSpace(s) != ""
}

func allPresent(fields []requiredField) bool {
	for _, f := range fields {
		if !f.present {
			return false
		}
	}
	return true
}
