package reduction

import (
	"context"
	"testing"

	"github.com/ayoub-Ouba/reduction-probleme-tunnel/internal/satformula"
)

// TestSolveBatchMatchesSequential is scenario 7: submitting scenarios 1, 3,
// 4 and 6 together as internal/parallel jobs must produce the same verdicts
// as solving each one sequentially.
func TestSolveBatchMatchesSequential(t *testing.T) {
	directTransmit, l1 := buildDirectTransmit(t)
	pushPop, l2 := buildPushPopRoundTrip(t)
	symbolSwitch, l3 := buildSymbolSwitch(t)
	pushBounded, l4 := buildPushDepthBounded(t)

	jobs := []Job{
		{Name: "direct-transmit", Network: directTransmit, Length: l1},
		{Name: "push-pop", Network: pushPop, Length: l2},
		{Name: "symbol-switch", Network: symbolSwitch, Length: l3},
		{Name: "push-bounded", Network: pushBounded, Length: l4},
	}

	wantStatus := map[string]satformula.Status{
		"direct-transmit": satformula.Sat,
		"push-pop":        satformula.Sat,
		"symbol-switch":   satformula.Sat,
		"push-bounded":    satformula.Unsat,
	}

	results, summary := SolveBatch(context.Background(), jobs, 2)
	if len(results) != len(jobs) {
		t.Fatalf("got %d results, want %d", len(results), len(jobs))
	}

	for i, res := range results {
		if res.Job.Name != jobs[i].Name {
			t.Fatalf("result %d out of order: got job %q, want %q", i, res.Job.Name, jobs[i].Name)
		}
		if res.Err != nil {
			t.Fatalf("job %q: unexpected error: %v", res.Job.Name, res.Err)
		}
		want := wantStatus[res.Job.Name]
		if res.Status != want {
			t.Errorf("job %q: status = %v, want %v", res.Job.Name, res.Status, want)
		}
		if want == satformula.Sat && len(res.Path) == 0 {
			t.Errorf("job %q: expected a decoded path, got none", res.Job.Name)
		}
	}

	if summary.Stats.TasksSubmitted != int64(len(jobs)) {
		t.Errorf("summary.Stats.TasksSubmitted = %d, want %d", summary.Stats.TasksSubmitted, len(jobs))
	}
	if summary.Stats.TasksCompleted != int64(len(jobs)) {
		t.Errorf("summary.Stats.TasksCompleted = %d, want %d", summary.Stats.TasksCompleted, len(jobs))
	}
	if summary.ActiveTasksAtEnd != 0 {
		t.Errorf("summary.ActiveTasksAtEnd = %d, want 0 once every job has finished", summary.ActiveTasksAtEnd)
	}
}

func TestSolveBatchEmpty(t *testing.T) {
	results, summary := SolveBatch(context.Background(), nil, 2)
	if len(results) != 0 {
		t.Errorf("got %d results for an empty batch, want 0", len(results))
	}
	if summary.Stats.TasksSubmitted != 0 {
		t.Errorf("summary.Stats.TasksSubmitted = %d for an empty batch, want 0", summary.Stats.TasksSubmitted)
	}
}
