package services

import (
	"testing"

	"github.com/Monika2004-sys/Smart-Health-Tracker/config"
	"github.com/Monika2004-sys/Smart-Health-Tracker/models"
)

func TestTakenTodayIsDerivedFromLogs(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	med, err := AddMedication(1, "Aspirin", "100mg", "daily", []string{"08:00"})
	if err != nil {
		t.Fatalf("failed to add medication: %v", err)
	}

	taken, err := TakenToday(1, med.ID)
	if err != nil {
		t.Fatalf("taken today: %v", err)
	}
	if taken {
		t.Fatal("medication with no logs should report untaken")
	}

	if _, err := LogMedicationIntake(1, med.ID); err != nil {
		t.Fatalf("failed to log intake: %v", err)
	}
	taken, err = TakenToday(1, med.ID)
	if err != nil {
		t.Fatalf("taken today: %v", err)
	}
	if !taken {
		t.Fatal("medication with one log today should report taken")
	}

	// a second log is fine and still reads as taken
	if _, err := LogMedicationIntake(1, med.ID); err != nil {
		t.Fatalf("failed to log second intake: %v", err)
	}
	taken, err = TakenToday(1, med.ID)
	if err != nil {
		t.Fatalf("taken today: %v", err)
	}
	if !taken {
		t.Fatal("medication with multiple logs should still report taken")
	}
}

func TestDeactivateMedicationIsSoftDelete(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	med, err := AddMedication(1, "Metformin", "500mg", "daily", []string{"08:00", "20:00"})
	if err != nil {
		t.Fatalf("failed to add medication: %v", err)
	}
	if _, err := LogMedicationIntake(1, med.ID); err != nil {
		t.Fatalf("failed to log intake: %v", err)
	}

	if err := DeactivateMedication(1, med.ID); err != nil {
		t.Fatalf("failed to deactivate: %v", err)
	}

	meds, err := ListActiveMedications(1)
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if len(meds) != 0 {
		t.Errorf("deactivated medication still listed: %v", meds)
	}

	// the row itself and its history remain
	var stored models.Medication
	if err := config.DB.First(&stored, med.ID).Error; err != nil {
		t.Fatalf("medication row removed instead of deactivated: %v", err)
	}
	if stored.Active {
		t.Error("stored medication should be inactive")
	}

	var logCount int64
	config.DB.Model(&models.MedicationLog{}).Where("medication_id = ?", med.ID).Count(&logCount)
	if logCount != 1 {
		t.Errorf("intake history lost on deactivate: %d rows", logCount)
	}

	// logging against an inactive medication is rejected
	if _, err := LogMedicationIntake(1, med.ID); err == nil {
		t.Error("expected error logging intake for inactive medication")
	}
}

func TestAddMedicationValidation(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	if _, err := AddMedication(1, "Aspirin", "100mg", "daily", nil); err == nil {
		t.Error("expected error for missing times")
	}
	if _, err := AddMedication(1, "Aspirin", "100mg", "daily", []string{"8 o'clock"}); err == nil {
		t.Error("expected error for malformed time")
	}
	if _, err := AddMedication(1, "", "100mg", "daily", []string{"08:00"}); err == nil {
		t.Error("expected error for missing name")
	}
}

func TestListMedicationsWithStatus(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	a, err := AddMedication(1, "Aspirin", "100mg", "daily", []string{"08:00"})
	if err != nil {
		t.Fatalf("add medication: %v", err)
	}
	if _, err := AddMedication(1, "Metformin", "500mg", "daily", []string{"20:00"}); err != nil {
		t.Fatalf("add medication: %v", err)
	}
	if _, err := LogMedicationIntake(1, a.ID); err != nil {
		t.Fatalf("log intake: %v", err)
	}

	statuses, err := ListMedicationsWithStatus(1)
	if err != nil {
		t.Fatalf("list with status: %v", err)
	}
	if len(statuses) != 2 {
		t.Fatalf("expected 2 medications, got %d", len(statuses))
	}
	for _, s := range statuses {
		want := s.ID == a.ID
		if s.TakenToday != want {
			t.Errorf("medication %s: taken_today = %v, want %v", s.Name, s.TakenToday, want)
		}
	}
}

func TestMedicationTimesSplit(t *testing.T) {
	med := models.Medication{TimesOfDay: "08:00, 12:30,20:00"}
	times := MedicationTimes(med)
	if len(times) != 3 || times[0] != "08:00" || times[1] != "12:30" || times[2] != "20:00" {
		t.Errorf("unexpected times: %v", times)
	}

	if got := MedicationTimes(models.Medication{}); got != nil {
		t.Errorf("expected nil for empty times, got %v", got)
	}
}
