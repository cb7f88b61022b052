package tasks

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type TaskType string

const (
	TaskTypeSyncChannel    TaskType = "sync_channel"
	TaskTypeSweepChannel   TaskType = "sweep_channel"
	TaskTypeReconcileStore TaskType = "reconcile_store"
	TaskTypeNotify         TaskType = "notify"
)

type TaskInterface interface {
	Execute(ctx context.Context) error
	GetID() string
	GetType() TaskType
	GetChannelURL() string
	Start()
	GetDuration() time.Duration
}

type Task struct {
	ID         string
	Type       TaskType
	ChannelURL string
	StartedAt  *time.Time
}

func (t *Task) GetID() string {
	return t.ID
}

func (t *Task) GetType() TaskType {
	return t.Type
}

func (t *Task) GetChannelURL() string {
	return t.ChannelURL
}

func (t *Task) Start() {
	now := time.Now()
	t.StartedAt = &now
}

func (t *Task) GetDuration() time.Duration {
	if t.StartedAt == nil {
		return 0
	}
	return time.Since(*t.StartedAt)
}

func NewTask(taskType TaskType, channelURL string) Task {
	return Task{
		ID:         uuid.New().String(),
		Type:       taskType,
		ChannelURL: channelURL,
	}
}
