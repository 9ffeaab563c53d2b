package db

import (
	"gitlab.com/nunet/sample-store/internal/logger"
)

var zlog *logger.Logger

func init() {
	zlog = logger.New("db")
}
