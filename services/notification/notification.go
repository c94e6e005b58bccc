package notification

import (
	"context"
	"fmt"

	userRepo "tutorhub/database/repository/user"
	"tutorhub/utils"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// NotificationService defines methods for sending FCM pushes.
type NotificationService interface {
	SendPushNotification(ctx context.Context, userID, title, body string, data map[string]string) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Users userRepo.UserRepository
}

// NewDefaultNotificationService wires the service.
func NewDefaultNotificationService(users userRepo.UserRepository) (*DefaultNotificationService, error) {
	if users == nil {
		return nil, fmt.Errorf("notification service initialization error: user repository is nil")
	}
	return &DefaultNotificationService{Users: users}, nil
}

// SendPushNotification looks up the account's FCM token and sends a push.
// Accounts with no registered token are skipped silently; pushes are best
// effort everywhere this service is called.
func (s *DefaultNotificationService) SendPushNotification(
	ctx context.Context,
	userID, title, body string,
	data map[string]string,
) error {
	account, err := s.Users.GetByID(userID)
	if err != nil {
		return fmt.Errorf("SendPushNotification: could not find account %s: %w", userID, err)
	}
	if account.FCMToken == "" {
		utils.GetLogger().Debug("SendPushNotification: account has no FCM token",
			zap.String("userID", userID))
		return nil
	}

	msg := &messaging.Message{
		Token: account.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	response, err := utils.FCMClient.Send(ctx, msg)
	if err != nil {
		return fmt.Errorf("SendPushNotification: failed to send FCM message: %w", err)
	}

	utils.GetLogger().Debug("SendPushNotification: message sent", zap.String("response", response))
	return nil
}
