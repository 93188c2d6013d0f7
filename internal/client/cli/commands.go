package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/kinetrack/kinetrack/internal/models"
)

// RunAdd records a new measurement: add <type> <json>.
func (a *App) RunAdd(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: add <type> <json>")
	}

	measurementType := args[0]

	var payload map[string]any
	if err := json.Unmarshal([]byte(args[1]), &payload); err != nil {
		return fmt.Errorf("invalid json payload: %w", err)
	}

	record, err := a.Data.InsertMeasurement(ctx, a.UserID, measurementType, payload)
	if err != nil {
		return fmt.Errorf("failed to record measurement: %w", err)
	}

	fmt.Fprintf(a.Out, "Recorded measurement %s (%s)\n", record.ID, record.Type)
	return nil
}

// RunList prints the user's local measurements, newest first.
func (a *App) RunList(ctx context.Context) error {
	records, err := a.Data.ListMeasurements(ctx, a.UserID)
	if err != nil {
		return fmt.Errorf("failed to list measurements: %w", err)
	}

	if len(records) == 0 {
		fmt.Fprintln(a.Out, "No measurements recorded.")
		return nil
	}

	fmt.Fprintf(a.Out, "Found %d measurement(s):\n", len(records))
	for _, record := range records {
		printRecord(a.Out, record)
	}
	return nil
}

// RunStatus prints the sync engine state and per-status counts.
func (a *App) RunStatus(ctx context.Context) error {
	state := a.Engine.State()

	fmt.Fprintf(a.Out, "Status:   %s\n", state.Status)
	fmt.Fprintf(a.Out, "Online:   %t\n", state.IsOnline)
	fmt.Fprintf(a.Out, "Pending:  %d\n", state.PendingCount)
	fmt.Fprintf(a.Out, "Failed:   %d\n", state.FailedCount)
	if !state.LastSyncAttempt.IsZero() {
		fmt.Fprintf(a.Out, "Last sync: %s\n", state.LastSyncAttempt.Format("2006-01-02 15:04:05"))
	}
	if state.LastError != "" {
		fmt.Fprintf(a.Out, "Last error: %s\n", state.LastError)
	}
	return nil
}

// RunSync forces a sync pass and reports the result.
func (a *App) RunSync(ctx context.Context) error {
	if err := a.Engine.ForceSyncNow(ctx); err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}

	state := a.Engine.State()
	if !state.IsOnline {
		fmt.Fprintln(a.Out, "Offline, nothing synced.")
		return nil
	}

	fmt.Fprintf(a.Out, "Sync finished: %s (pending %d, failed %d)\n",
		state.Status, state.PendingCount, state.FailedCount)
	return nil
}

// RunRetry resets failed measurements and runs a sync pass.
func (a *App) RunRetry(ctx context.Context) error {
	if err := a.Engine.RetryFailedItems(ctx); err != nil {
		return fmt.Errorf("retry failed: %w", err)
	}

	state := a.Engine.State()
	fmt.Fprintf(a.Out, "Retry finished: %s (pending %d, failed %d)\n",
		state.Status, state.PendingCount, state.FailedCount)
	return nil
}

// RunPrune deletes synced measurements past the retention window.
func (a *App) RunPrune(ctx context.Context) error {
	pruned, err := a.Engine.PruneSynced(ctx)
	if err != nil {
		return fmt.Errorf("prune failed: %w", err)
	}

	fmt.Fprintf(a.Out, "Pruned %d measurement(s)\n", pruned)
	return nil
}

// RunWatch streams measurement list changes until ctx is cancelled.
func (a *App) RunWatch(ctx context.Context) error {
	updates, err := a.Data.WatchMeasurements(ctx, a.UserID)
	if err != nil {
		return fmt.Errorf("failed to watch measurements: %w", err)
	}

	fmt.Fprintln(a.Out, "Watching measurements (Ctrl+C to stop)...")
	for records := range updates {
		fmt.Fprintf(a.Out, "--- %d measurement(s) ---\n", len(records))
		for _, record := range records {
			printRecord(a.Out, record)
		}
	}
	return nil
}

func printRecord(out io.Writer, record *models.MeasurementRecord) {
	retries := ""
	if record.SyncRetryCount > 0 {
		retries = fmt.Sprintf(" retries=%d", record.SyncRetryCount)
	}
	fmt.Fprintf(out, "  %s  %-16s  %-8s%s  %s\n",
		record.ID,
		record.Type,
		record.SyncStatus,
		retries,
		record.CreatedAt.Format("2006-01-02 15:04:05"),
	)
}
