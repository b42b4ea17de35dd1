package state

import (
	"errors"
	"testing"
	"time"

	"github.com/litescript/ls-almanac/internal/report"
)

func TestManagerPublishAndSnapshot(t *testing.T) {
	m := NewManager(DefaultConfig())
	if m.HasData() {
		t.Error("fresh manager claims to have data")
	}

	r := &report.Report{}
	m.Update(r, 120*time.Millisecond, nil)

	snap := m.Snapshot()
	if snap.Report != r {
		t.Error("snapshot does not carry the published report")
	}
	if snap.LastError != nil {
		t.Errorf("snapshot error = %v", snap.LastError)
	}
	if snap.ComputeDuration != 120*time.Millisecond {
		t.Errorf("compute duration = %v", snap.ComputeDuration)
	}
	if !snap.NextRefresh.After(snap.LastCompute) {
		t.Error("next refresh not after last compute")
	}
	if !m.HasData() {
		t.Error("manager lost its data")
	}
}

func TestManagerRetainsReportOnFailure(t *testing.T) {
	m := NewManager(DefaultConfig())
	r := &report.Report{}
	m.Update(r, 0, nil)

	boom := errors.New("compute failed")
	m.Update(nil, 0, boom)

	snap := m.Snapshot()
	if snap.Report != r {
		t.Error("failed update discarded the previous report")
	}
	if !errors.Is(snap.LastError, boom) {
		t.Errorf("snapshot error = %v, want compute failure", snap.LastError)
	}
}

func TestManagerRefreshInterval(t *testing.T) {
	m := NewManager(Config{RefreshInterval: -1})
	if m.RefreshInterval() != time.Minute {
		t.Errorf("invalid interval not replaced: %v", m.RefreshInterval())
	}
	m.SetRefreshInterval(10 * time.Second)
	if m.RefreshInterval() != 10*time.Second {
		t.Errorf("interval = %v after SetRefreshInterval", m.RefreshInterval())
	}
}
