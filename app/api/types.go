package api

import (
	"github.com/lysyi3m/yt-mirror/app/database"
	"github.com/lysyi3m/yt-mirror/app/tasks"
)

type Handler struct {
	tracker   *tasks.Tracker
	cycleRepo database.CycleRepository
}
