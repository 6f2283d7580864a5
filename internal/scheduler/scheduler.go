package scheduler

import (
	"context"

	"github.com/learning-notifier/learning-notifier/internal/notify"
	"github.com/learning-notifier/learning-notifier/pkg/logger"
	"github.com/robfig/cron/v3"
)

// Daily run at 09:00 server time.
const dailySpec = "0 9 * * *"

// Start registers the daily notification job and starts the cron runner.
// The returned cron can be stopped on shutdown. Run logs its own failures,
// so the scheduled entry point has nothing to report to.
func Start(svc *notify.Service) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(dailySpec, func() {
		_, _, _ = svc.Run(context.Background())
	})
	if err != nil {
		return nil, err
	}
	c.Start()
	logger.Infof("daily notification schedule registered (%s)", dailySpec)
	return c, nil
}
