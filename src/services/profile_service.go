package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/prajwalshetti/Project-matrimony/src/profile"
)

// ProfileService recomputes the completion report on demand and keeps the
// cached isProfileCompleted verdict on the user in sync. The cache is a
// memoized view only; decisions always use the fresh report.
type ProfileService struct {
	users UserStore
}

func NewProfileService(users UserStore) *ProfileService {
	return &ProfileService{users: users}
}

// Evaluate computes the completion report for the user and persists the
// verdict when it differs from the stored one.
func (s *ProfileService) Evaluate(ctx context.Context, userID primitive.ObjectID) (*profile.Report, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, NewNotFound("User not found")
	}

	report := profile.Compute(user)
	if report.IsProfileCompleted != user.IsProfileCompleted {
		if err := s.users.SetProfileCompleted(ctx, userID, report.IsProfileCompleted); err != nil {
			return nil, err
		}
	}
	return &report, nil
}
