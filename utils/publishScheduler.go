package utils

import (
	"coursepanel/config"
	"coursepanel/session"
	"log"
	"strconv"
	"time"

	"github.com/jinzhu/now"
	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[PUBLISH-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// publishSaved republishes the last committed document. Unsaved edits are
// deliberately skipped: the schedule must never push work in progress.
func publishSaved(s *session.Session) {
	if s.IsModified() {
		logScheduler("Skipping scheduled publish: session has unsaved edits")
		return
	}

	day := now.BeginningOfDay().Format("2006-01-02")
	files, err := PublishAll(s.Content(), config.AppConfig.OutputDir)
	if err != nil {
		logScheduler("Scheduled publish failed for " + day + ": " + err.Error())
		return
	}
	logScheduler("Scheduled publish for " + day + " wrote " + strconv.Itoa(len(files)) + " files")
}

// InitializePublishScheduler starts the cron that republishes the site on
// the configured schedule; returns nil when no schedule is configured
func InitializePublishScheduler(s *session.Session) *cron.Cron {
	if config.AppConfig.PublishCron == "" {
		logScheduler("No publish schedule configured")
		return nil
	}

	c := cron.New()
	if _, err := c.AddFunc(config.AppConfig.PublishCron, func() {
		publishSaved(s)
	}); err != nil {
		logScheduler("Invalid publish schedule: " + err.Error())
		return nil
	}

	c.Start()
	logScheduler("Publish scheduler started with schedule " + config.AppConfig.PublishCron)
	return c
}
