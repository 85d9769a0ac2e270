// Package notify delivers user-facing toast messages.
package notify

import (
	"sync"

	"github.com/sirupsen/logrus"
)

type Kind string

const (
	KindInfo    Kind = "info"
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

type Notifier interface {
	Notify(kind Kind, message string)
}

// LogNotifier writes notifications to the application log.
type LogNotifier struct {
	logger logrus.FieldLogger
}

func NewLogNotifier(logger logrus.FieldLogger) LogNotifier {
	return LogNotifier{logger: logger}
}

func (n LogNotifier) Notify(kind Kind, message string) {
	entry := n.logger.WithField("kind", string(kind))

	switch kind {
	case KindError:
		entry.Error(message)
	default:
		entry.Info(message)
	}
}

// Capture records notifications for assertions in tests.
type Capture struct {
	lock sync.Mutex

	Notifications []Notification
}

type Notification struct {
	Kind    Kind
	Message string
}

func (c *Capture) Notify(kind Kind, message string) {
	c.lock.Lock()
	defer c.lock.Unlock()

	c.Notifications = append(c.Notifications, Notification{Kind: kind, Message: message})
}
