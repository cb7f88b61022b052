package store

// SweepResult reports the outcome of sweeping one channel directory
type SweepResult struct {
	Removed int
	Failed  int
}

// ReconcileResult reports the outcome of reconciling the store root
type ReconcileResult struct {
	Removed int
	Failed  int
}
