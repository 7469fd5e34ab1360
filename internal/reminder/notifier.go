package reminder

import (
	"context"
	"log"
	"time"

	authrepo "jobtrackr-backend/internal/auth/repository"
	"jobtrackr-backend/pkg/fcm"
)

// Clock supplies the current time. Injected so tests can fix "now".
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall clock
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Notification is one alert to show the user
type Notification struct {
	Title string
	Body  string
}

// Notifier is the permission-gated alert capability. The engine checks
// Granted before dispatching and never requests permission itself.
type Notifier interface {
	// Granted reports whether the user can receive push alerts
	Granted(userID string) bool
	// Notify fires one alert for the user
	Notify(userID string, n Notification) error
}

// fcmNotifier delivers alerts over Firebase Cloud Messaging. Permission
// means the user has at least one registered device token.
type fcmNotifier struct {
	client  *fcm.Client
	fcmRepo authrepo.FCMTokenRepository
}

// NewFCMNotifier creates a push-backed Notifier. A nil client yields a
// notifier that never has permission, which disables dispatch cleanly.
func NewFCMNotifier(client *fcm.Client, fcmRepo authrepo.FCMTokenRepository) Notifier {
	return &fcmNotifier{client: client, fcmRepo: fcmRepo}
}

func (n *fcmNotifier) Granted(userID string) bool {
	if n.client == nil {
		return false
	}
	tokens, err := n.fcmRepo.GetTokensByUserID(userID)
	if err != nil {
		log.Printf("[Reminder] Error loading FCM tokens for user %s: %v", userID, err)
		return false
	}
	return len(tokens) > 0
}

func (n *fcmNotifier) Notify(userID string, notification Notification) error {
	tokens, err := n.fcmRepo.GetTokensByUserID(userID)
	if err != nil {
		return err
	}

	tokenStrings := make([]string, 0, len(tokens))
	for _, t := range tokens {
		tokenStrings = append(tokenStrings, t.Token)
	}

	failedTokens, err := n.client.SendToDevices(context.Background(), tokenStrings, fcm.NotificationData{
		Title: notification.Title,
		Body:  notification.Body,
		Data: map[string]string{
			"type":         "follow_up_reminder",
			"click_action": "/jobs",
		},
	})
	if err != nil {
		return err
	}

	// Cleanup failed tokens
	for _, token := range failedTokens {
		n.fcmRepo.DeleteToken(token)
	}

	return nil
}
