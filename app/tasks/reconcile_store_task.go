package tasks

import (
	"context"
	"log/slog"

	"github.com/lysyi3m/yt-mirror/app/store"
)

type ReconcileStoreTask struct {
	Task
	Keep       map[string]bool
	Result     store.ReconcileResult
	reconciler *store.Reconciler
	root       string
}

func NewReconcileStoreTask(root string, keep map[string]bool, reconciler *store.Reconciler) *ReconcileStoreTask {
	return &ReconcileStoreTask{
		Task:       NewTask(TaskTypeReconcileStore, ""),
		Keep:       keep,
		reconciler: reconciler,
		root:       root,
	}
}

func (t *ReconcileStoreTask) Execute(ctx context.Context) error {

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	t.Result = t.reconciler.Run(t.root, t.Keep)

	slog.Info("Task completed",
		"type", string(t.Type),
		"duration", t.GetDuration(),
		"removed", t.Result.Removed,
		"failed", t.Result.Failed)

	return nil
}
