package domain

import (
	"encoding/json"
	"testing"
	"time"
)

func TestProfileChangesDistinguishesAbsentFromNull(t *testing.T) {
	var changes ProfileChanges
	payload := `{"division": null, "faction_rank": "Sergeant", "unknown": 1}`
	if err := json.Unmarshal([]byte(payload), &changes); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if !changes.Division.Present || changes.Division.Value != nil {
		t.Fatalf("expected division present with nil value, got %+v", changes.Division)
	}
	if !changes.FactionRank.Present || changes.FactionRank.Value != "Sergeant" {
		t.Fatalf("unexpected faction rank %+v", changes.FactionRank)
	}
	if changes.SystemRole.Present || changes.DivisionRank.Present || changes.IsBureauManager.Present {
		t.Fatalf("absent keys must not be present")
	}
	if changes.IsEmpty() {
		t.Fatalf("changes should not be empty")
	}
}

func TestProfileChangesEmptyPayload(t *testing.T) {
	var changes ProfileChanges
	if err := json.Unmarshal([]byte(`{}`), &changes); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !changes.IsEmpty() {
		t.Fatalf("expected empty changes")
	}
}

func TestOptionalFalseAndEmptyListArePresent(t *testing.T) {
	var changes ProfileChanges
	payload := `{"is_bureau_manager": false, "qualifications": [], "commanded_divisions": null}`
	if err := json.Unmarshal([]byte(payload), &changes); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !changes.IsBureauManager.Present || changes.IsBureauManager.Value {
		t.Fatalf("expected explicit false, got %+v", changes.IsBureauManager)
	}
	if !changes.Qualifications.Present || changes.Qualifications.Value == nil || len(changes.Qualifications.Value) != 0 {
		t.Fatalf("expected present empty list, got %+v", changes.Qualifications)
	}
	if !changes.CommandedDivisions.Present || changes.CommandedDivisions.Value != nil {
		t.Fatalf("expected present nil list, got %+v", changes.CommandedDivisions)
	}
}

func TestProfileUpdateSetAndApply(t *testing.T) {
	division := "Patrol"
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	var update ProfileUpdate
	update.Set(ColumnFactionRank, "Officer")
	update.Set(ColumnDivision, &division)
	update.Set(ColumnFactionRank, "Sergeant")
	update.Set(ColumnLastPromotionDate, now)

	if got := update.Columns(); len(got) != 3 || got[0] != ColumnFactionRank {
		t.Fatalf("unexpected columns %v", got)
	}

	profile := &Profile{ID: "u1", FactionRank: "Cadet"}
	update.Apply(profile)
	if profile.FactionRank != "Sergeant" {
		t.Fatalf("expected later write to win, got %s", profile.FactionRank)
	}
	if profile.Division == nil || *profile.Division != "Patrol" {
		t.Fatalf("division not applied")
	}
	if profile.LastPromotionDate == nil || !profile.LastPromotionDate.Equal(now) {
		t.Fatalf("promotion date not applied")
	}
}
