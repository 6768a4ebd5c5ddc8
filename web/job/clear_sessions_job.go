// Package job contains scheduled maintenance tasks run by the server cron.
package job

import (
	"github.com/MukulParasar/PRODIGY-FS-02/logger"
	"github.com/MukulParasar/PRODIGY-FS-02/web/sessionstore"
)

type ClearSessionsJob struct{}

func NewClearSessionsJob() *ClearSessionsJob {
	return new(ClearSessionsJob)
}

// Run is an interface method of the cron Job interface. It drops session rows
// whose expiry has passed.
func (j *ClearSessionsJob) Run() {
	purged, err := sessionstore.PurgeExpired()
	if err != nil {
		logger.Warning("clear sessions job err:", err)
		return
	}
	if purged > 0 {
		logger.Debugf("cleared %d expired sessions", purged)
	}
}
