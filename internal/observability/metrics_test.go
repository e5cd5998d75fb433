package observability

import (
	"testing"
	"time"
)

func TestMetricsSnapshot(t *testing.T) {
	m := NewMetrics()
	m.RecordRequest("/admin/users/update-role", "POST", 200, 10*time.Millisecond)
	m.RecordRequest("/admin/users/update-role", "POST", 200, 30*time.Millisecond)
	m.RecordError("/admin/users/update-role", "POST", "NOT_FOUND")
	m.RecordMutation("committed")

	snap := m.Snapshot()
	key := "/admin/users/update-role|POST|200"
	if snap.Requests[key] != 2 {
		t.Fatalf("expected 2 requests, got %d", snap.Requests[key])
	}
	if snap.AvgLatencyMs[key] != 20 {
		t.Fatalf("expected 20ms average, got %d", snap.AvgLatencyMs[key])
	}
	if snap.Errors["/admin/users/update-role|POST|NOT_FOUND"] != 1 {
		t.Fatalf("error not counted")
	}
	if snap.Mutations["committed"] != 1 {
		t.Fatalf("mutation not counted")
	}
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.RecordRequest("/", "GET", 200, time.Millisecond)
	m.RecordError("/", "GET", "X")
	m.RecordMutation("committed")
	if snap := m.Snapshot(); len(snap.Requests) != 0 {
		t.Fatalf("nil metrics should produce an empty snapshot")
	}
}
