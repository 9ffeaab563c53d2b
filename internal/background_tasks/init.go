package background_tasks

import "gitlab.com/nunet/sample-store/internal/logger"

var zlog *logger.Logger

func init() {
	zlog = logger.New("background_tasks")
}
