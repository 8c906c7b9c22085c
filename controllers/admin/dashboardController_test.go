package admin

import (
	"context"
	"errors"
	"testing"
	"time"

	"villageconnect-be/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// stubCounter answers count queries from a fixed table keyed on the filter.
func stubCounter(t *testing.T, byStatus map[string]int64, total, recent int64) documentCounter {
	t.Helper()
	return func(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error) {
		f, ok := filter.(bson.M)
		if !ok {
			t.Fatalf("filter = %T, want bson.M", filter)
		}
		if status, ok := f["status"]; ok {
			return byStatus[string(status.(models.IssueStatus))], nil
		}
		if _, ok := f["createdAt"]; ok {
			return recent, nil
		}
		return total, nil
	}
}

func fixedCounter(n int64) documentCounter {
	return func(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error) {
		return n, nil
	}
}

func TestGatherDashboardCounts(t *testing.T) {
	issues := stubCounter(t, map[string]int64{
		"pending":     12,
		"in-progress": 8,
		"resolved":    20,
	}, 40, 5)

	counts, err := gatherDashboardCounts(context.Background(),
		issues, fixedCounter(7), fixedCounter(3), fixedCounter(1), time.Now().AddDate(0, 0, -7))
	if err != nil {
		t.Fatalf("gatherDashboardCounts: %v", err)
	}

	if counts.TotalIssues != 40 || counts.PendingIssues != 12 || counts.InProgressIssues != 8 || counts.ResolvedIssues != 20 {
		t.Errorf("issue counts = %+v", counts)
	}
	if counts.TotalLeaders != 7 || counts.TotalRepresentatives != 3 || counts.ActiveAdmins != 1 {
		t.Errorf("content counts = %+v", counts)
	}
	if counts.RecentIssues != 5 {
		t.Errorf("recentIssues = %d, want 5", counts.RecentIssues)
	}
}

func TestGatherDashboardCountsFailsOnCountError(t *testing.T) {
	countErr := errors.New("connection reset")
	issues := func(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error) {
		f := filter.(bson.M)
		if f["status"] == models.StatusPending {
			return 0, countErr
		}
		return 40, nil
	}

	_, err := gatherDashboardCounts(context.Background(),
		issues, fixedCounter(7), fixedCounter(3), fixedCounter(1), time.Now())
	if err == nil {
		t.Fatal("expected an error when a count fails, got confident zeroes")
	}
	if !errors.Is(err, countErr) {
		t.Errorf("error = %v, want wrapped %v", err, countErr)
	}
}
