package tutor

import (
	"fmt"
	"time"

	"tutorhub/models"
	"tutorhub/services/availability"
	"tutorhub/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// GetTutorByID retrieves a tutor account with credentials stripped.
func (s *DefaultTutorService) GetTutorByID(tutorID string) (*models.User, error) {
	account, err := s.Repo.GetByID(tutorID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tutor: %w", err)
	}
	if !account.IsTutor() {
		return nil, fmt.Errorf("account %s is not a tutor", tutorID)
	}
	account.Sanitize()
	return account, nil
}

// UpdateProfile applies the provided tutor-profile fields.
func (s *DefaultTutorService) UpdateProfile(tutorID string, req models.TutorUpdateRequest) (*models.User, error) {
	if _, err := s.GetTutorByID(tutorID); err != nil {
		return nil, err
	}

	update := bson.M{}
	if req.Bio != nil {
		update["tutorProfile.bio"] = *req.Bio
	}
	if req.Subjects != nil {
		update["tutorProfile.subjects"] = req.Subjects
	}
	if req.Education != nil {
		update["tutorProfile.education"] = req.Education
	}
	if req.ExperienceYrs != nil {
		update["tutorProfile.experienceYears"] = *req.ExperienceYrs
	}
	if req.HourlyRateHint != nil {
		update["tutorProfile.hourlyRateHint"] = *req.HourlyRateHint
	}
	if len(update) == 0 {
		return nil, fmt.Errorf("no fields to update")
	}

	if err := s.Repo.UpdateSetDocument(tutorID, update); err != nil {
		return nil, fmt.Errorf("failed to update tutor profile: %w", err)
	}
	return s.GetTutorByID(tutorID)
}

// SetAvailability stores the raw availability payload on the tutor profile.
// The payload is kept verbatim; a payload the resolver cannot decode is
// accepted but logged, since it simply presents no bookable slots.
func (s *DefaultTutorService) SetAvailability(tutorID string, raw string) error {
	if _, err := s.GetTutorByID(tutorID); err != nil {
		return err
	}

	if _, err := availability.Parse(raw); err != nil {
		utils.GetLogger().Warn("SetAvailability: storing undecodable payload",
			zap.String("tutorID", tutorID), zap.Error(err))
	}

	if err := s.Repo.UpdateSetDocument(tutorID, bson.M{"tutorProfile.availability": raw}); err != nil {
		return fmt.Errorf("failed to store availability: %w", err)
	}
	return nil
}

// GetAvailability resolves the tutor's stored payload into the client-facing
// per-date view, filtered against today's local date.
func (s *DefaultTutorService) GetAvailability(tutorID string) (models.AvailabilityView, error) {
	view := models.AvailabilityView{TutorID: tutorID, Windows: map[string][]models.AvailabilityWindow{}}

	account, err := s.GetTutorByID(tutorID)
	if err != nil {
		return view, err
	}

	idx := availability.BuildIndex(account.TutorProfile.Availability, time.Now())
	view.Dates = idx.Dates
	for date, windows := range idx.Windows {
		converted := make([]models.AvailabilityWindow, 0, len(windows))
		for _, w := range windows {
			converted = append(converted, models.AvailabilityWindow{
				StartTime: w.StartTime,
				EndTime:   w.EndTime,
			})
		}
		view.Windows[date] = converted
	}
	return view, nil
}
