package system

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"
)

type fakePruner struct {
	cutoff  time.Time
	deleted int64
	err     error
}

func (f *fakePruner) DeleteOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	f.cutoff = cutoff
	return f.deleted, f.err
}

func TestCutoff(t *testing.T) {
	s := &RetentionService{RetentionDays: 30}

	now := time.Date(2025, 3, 31, 12, 0, 0, 0, time.UTC)
	want := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	if got := s.Cutoff(now); !got.Equal(want) {
		t.Errorf("Cutoff(%v) = %v, want %v", now, got, want)
	}
}

func TestPruneUsesRetentionWindow(t *testing.T) {
	pruner := &fakePruner{deleted: 7}
	s := &RetentionService{
		Pruner:        pruner,
		RetentionDays: 14,
		Logger:        zap.NewNop(),
	}

	before := time.Now().UTC().AddDate(0, 0, -14)
	s.Prune()
	after := time.Now().UTC().AddDate(0, 0, -14)

	if pruner.cutoff.Before(before) || pruner.cutoff.After(after) {
		t.Errorf("cutoff = %v, want about 14 days ago", pruner.cutoff)
	}
}
