package usecase

import (
	"healthtrack-backend/internal/profile/domain"
	"healthtrack-backend/internal/profile/repository"
)

// ProfileUsecase reads and writes a user's own health profile.
type ProfileUsecase interface {
	GetProfile(userID string) (*domain.HealthProfile, error)
	SaveProfile(userID string, profile *domain.HealthProfile) (*domain.HealthProfile, error)
}

type profileUsecase struct {
	profileRepo repository.ProfileRepository
}

func NewProfileUsecase(profileRepo repository.ProfileRepository) ProfileUsecase {
	return &profileUsecase{profileRepo: profileRepo}
}

func (u *profileUsecase) GetProfile(userID string) (*domain.HealthProfile, error) {
	profile, err := u.profileRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrProfileNotFound
	}
	return profile, nil
}

// SaveProfile upserts the profile. The owner is always the
// authenticated user; any user id in the request body is discarded.
func (u *profileUsecase) SaveProfile(userID string, profile *domain.HealthProfile) (*domain.HealthProfile, error) {
	profile.UserID = userID

	if err := u.profileRepo.Upsert(profile); err != nil {
		return nil, err
	}
	return profile, nil
}
