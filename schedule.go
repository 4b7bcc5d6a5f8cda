package main

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	log "github.com/sirupsen/logrus"
)

// runScheduled reruns the sync every interval seconds until the process is
// killed. Stale deletion needs an operator at the terminal, so it is forced
// off for scheduled runs. Overlapping runs are skipped via the sync lock.
func runScheduled(client BucketClient, appConfig AppConfig, notifier Notifier) error {
	sc := appConfig.SyncConfig()
	if sc.DeleteStale {
		log.Warn("Stale deletion requires interactive confirmation, disabling it for scheduled runs")
		sc.DeleteStale = false
	}

	lock := new(sync.Mutex)
	scheduler := gocron.NewScheduler(time.UTC)
	_, jobErr := scheduler.Every(appConfig.Interval).Seconds().Do(func() {
		if _, syncErr := doSync(client, sc, notifier, lock); syncErr != nil {
			log.Error(fmt.Sprintf("Sync failed: %s", syncErr))
		}
	})
	if jobErr != nil {
		return fmt.Errorf("Error scheduling sync job: %s", jobErr)
	}

	scheduler.StartBlocking()

	return nil
}
