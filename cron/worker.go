package cron

import (
	"context"
	"encoding/json"
	"time"

	"tutorhub/config"
	bookingRepo "tutorhub/database/repository/booking"
	"tutorhub/models"
	"tutorhub/services/notification"
	"tutorhub/services/tasks"
	"tutorhub/utils"

	"github.com/hibiken/asynq"
	"github.com/robfig/cron/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// QueueRedisOpt returns the asynq Redis connection shared by the client and
// the worker.
func QueueRedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// InitReminderWorker runs the asynq worker in the background. It delivers
// lesson reminder pushes scheduled at booking confirmation.
func InitReminderWorker(notifSvc notification.NotificationService) {
	srv := asynq.NewServer(
		QueueRedisOpt(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeReminderSend, handleReminderTask(notifSvc))

	go func() {
		utils.GetLogger().Info("starting reminder worker")
		if err := srv.Run(mux); err != nil {
			utils.GetLogger().Error("reminder worker stopped", zap.Error(err))
		}
	}()
}

func handleReminderTask(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			utils.GetLogger().Error("invalid reminder payload", zap.Error(err))
			return err
		}

		data := map[string]string{
			"bookingId": p.BookingID,
		}
		if err := notifSvc.SendPushNotification(ctx, p.UserID, p.Title, p.Body, data); err != nil {
			utils.GetLogger().Error("reminder push failed",
				zap.String("bookingID", p.BookingID), zap.Error(err))
			return err
		}
		return nil
	}
}

// StartBookingSweeper schedules the nightly pass that settles bookings whose
// lesson date has passed: pending ones expire, confirmed ones complete.
func StartBookingSweeper(repo bookingRepo.BookingRepository) *cron.Cron {
	c := cron.New()
	_, err := c.AddFunc("15 0 * * *", func() {
		SweepPastBookings(repo, time.Now())
	})
	if err != nil {
		utils.GetLogger().Error("failed to schedule booking sweeper", zap.Error(err))
		return c
	}
	c.Start()
	return c
}

// SweepPastBookings settles every active booking dated strictly before now's
// calendar date.
func SweepPastBookings(repo bookingRepo.BookingRepository, now time.Time) {
	logger := utils.GetLogger()
	todayKey := now.Format("2006-01-02")

	stale, err := repo.ListActiveBefore(todayKey)
	if err != nil {
		logger.Error("booking sweep failed to list", zap.Error(err))
		return
	}

	var expired, completed int
	for i := range stale {
		b := &stale[i]
		next := models.BookingExpired
		if b.Status == models.BookingConfirmed {
			next = models.BookingCompleted
		}
		if err := repo.UpdateSetDocument(b.ID, bson.M{"status": next}); err != nil {
			logger.Error("booking sweep update failed",
				zap.String("bookingID", b.ID), zap.Error(err))
			continue
		}
		if next == models.BookingExpired {
			expired++
		} else {
			completed++
		}
	}

	if expired+completed > 0 {
		logger.Info("booking sweep finished",
			zap.Int("expired", expired),
			zap.Int("completed", completed))
	}
}

// NewQueueClient builds the asynq client used to enqueue reminders.
func NewQueueClient() *asynq.Client {
	return asynq.NewClient(QueueRedisOpt())
}
