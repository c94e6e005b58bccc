package booking

import (
	"fmt"
	"slices"
	"time"

	"tutorhub/models"
	"tutorhub/services/availability"
	"tutorhub/utils"

	"go.uber.org/zap"
)

// QuoteSelection validates a student's slot selection against the course
// tutor's published availability and derives the end time, duration and
// total price. The quote is not persisted.
func (s *DefaultBookingService) QuoteSelection(req models.QuoteRequest) (*models.Quote, error) {
	course, err := s.CourseRepo.GetByID(req.CourseID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch course %s: %w", req.CourseID, err)
	}
	if !course.IsBookable() {
		return nil, NewNotBookableError("course is not open for booking")
	}

	tutor, err := s.UserRepo.GetByID(course.TutorID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tutor %s: %w", course.TutorID, err)
	}
	if tutor.TutorProfile == nil {
		return nil, NewNotBookableError("tutor has no published profile")
	}

	idx := availability.BuildIndex(tutor.TutorProfile.Availability, time.Now())
	if !idx.HasDate(req.Date) {
		return nil, NewSlotUnavailableError("tutor has no availability on the requested date")
	}
	if !slices.Contains(idx.StartTimes(req.Date), req.StartTime) {
		return nil, NewSlotUnavailableError("requested start time is not offered on that date")
	}

	endTime := idx.ResolveEndTime(req.Date, req.StartTime)

	hours, err := availability.DurationHours(req.StartTime, endTime)
	if err != nil {
		utils.GetLogger().Warn("quote rejected: unusable window",
			zap.String("courseID", req.CourseID),
			zap.String("date", req.Date),
			zap.String("startTime", req.StartTime),
			zap.Error(err))
		return nil, NewSlotUnavailableError("the selected window cannot be priced")
	}

	total, err := availability.Price(hours, course.HourlyRate)
	if err != nil {
		return nil, NewNotBookableError("course has an invalid hourly rate")
	}

	return &models.Quote{
		Date:          req.Date,
		StartTime:     req.StartTime,
		EndTime:       endTime,
		DurationHours: hours,
		HourlyRate:    course.HourlyRate,
		TotalAmount:   total,
	}, nil
}
