package tasks

import (
	"context"
	"log/slog"
)

type NotifyTask struct {
	Task
	notifier NotifierInterface
}

func NewNotifyTask(notifier NotifierInterface) *NotifyTask {
	return &NotifyTask{
		Task:     NewTask(TaskTypeNotify, ""),
		notifier: notifier,
	}
}

func (t *NotifyTask) Execute(ctx context.Context) error {

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if err := t.notifier.Run(ctx); err != nil {
		return err
	}

	slog.Info("Task completed",
		"type", string(t.Type),
		"duration", t.GetDuration())

	return nil
}
