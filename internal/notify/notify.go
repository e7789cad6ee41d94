// Package notify delivers moderation notifications. Mail delivery is owned
// by an external pipeline that tails the structured log; this package shapes
// the events and carries the injected admin address.
package notify

import (
	"launchpad/pkg/types"

	"github.com/sirupsen/logrus"
)

type Notifier struct {
	logger           *logrus.Logger
	adminNotifyEmail string
}

func New(logger *logrus.Logger, adminNotifyEmail string) *Notifier {
	return &Notifier{
		logger:           logger,
		adminNotifyEmail: adminNotifyEmail,
	}
}

// StatusChanged records a moderation transition for the admin address.
func (n *Notifier) StatusChanged(startup *types.Startup, from, to types.StartupStatus, actorID string) {
	if n == nil || n.adminNotifyEmail == "" {
		return
	}

	n.logger.WithFields(logrus.Fields{
		"notify":      n.adminNotifyEmail,
		"startup_id":  startup.ID,
		"startup":     startup.Name,
		"from_status": from,
		"to_status":   to,
		"actor_id":    actorID,
	}).Info("moderation status changed")
}

// NewSubmission records a fresh wizard submission awaiting review.
func (n *Notifier) NewSubmission(startup *types.Startup) {
	if n == nil || n.adminNotifyEmail == "" {
		return
	}

	n.logger.WithFields(logrus.Fields{
		"notify":     n.adminNotifyEmail,
		"startup_id": startup.ID,
		"startup":    startup.Name,
	}).Info("new startup submission pending review")
}
