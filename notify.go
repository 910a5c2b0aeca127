package main

import (
	"github.com/gen2brain/beeep"
)

// NotificationManager raises desktop notifications
type NotificationManager struct {
	enabled bool
	log     *LogManager
}

// NewNotificationManager creates a new notification manager
func NewNotificationManager(config *Config, log *LogManager) *NotificationManager {
	return &NotificationManager{
		enabled: config.Notifications.Enabled,
		log:     log,
	}
}

// NotifyError sends an error alert
func (nm *NotificationManager) NotifyError(message string) {
	if !nm.enabled {
		return
	}

	if err := beeep.Alert(AppName, message, ""); err != nil {
		nm.log.LogWarning("Failed to send error notification", "error", err.Error())
	}
}
