package notification

import (
	"context"
	"fmt"

	"flowdesk/services/user"
	"flowdesk/utils"

	"firebase.google.com/go/v4/messaging"
)

// NotificationService defines methods for sending FCM pushes.
type NotificationService interface {
	SendUserPushNotification(ctx context.Context, userID, title, body string, data map[string]string) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	user user.UserService
}

func NewDefaultNotificationService(userSvc user.UserService) (*DefaultNotificationService, error) {
	if userSvc == nil {
		return nil, fmt.Errorf("notification service initialization error: user service is nil")
	}
	return &DefaultNotificationService{user: userSvc}, nil
}

// SendUserPushNotification looks up a user's registered FCM tokens and sends a
// push to each device.
func (s *DefaultNotificationService) SendUserPushNotification(
	ctx context.Context,
	userID, title, body string,
	data map[string]string,
) error {
	if utils.FCMClient == nil {
		return fmt.Errorf("SendUserPushNotification: push notifications are not configured")
	}

	u, err := s.user.GetUserByID(userID)
	if err != nil {
		return fmt.Errorf("SendUserPushNotification: could not find user %s: %w", userID, err)
	}
	if len(u.FCMTokens) == 0 {
		return fmt.Errorf("SendUserPushNotification: user %s has no FCM token", userID)
	}

	var lastErr error
	for _, token := range u.FCMTokens {
		msg := &messaging.Message{
			Token: token,
			Notification: &messaging.Notification{
				Title: title,
				Body:  body,
			},
			Data: data,
		}
		if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
			lastErr = fmt.Errorf("SendUserPushNotification: failed to send FCM message: %w", err)
		}
	}
	return lastErr
}
