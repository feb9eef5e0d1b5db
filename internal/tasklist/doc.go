package tasklist

// Package tasklist implements the task list controller: it owns the active
// and completed lists plus the pending-title buffer, applies add, complete
// and delete, and moves completed tasks after a fixed delay through a
// Scheduler that runs deferred work on the UI thread.
