package services

import (
	"sync"
	"testing"
	"time"
)

type reminderRecorder struct {
	mu    sync.Mutex
	calls []string
}

func (r *reminderRecorder) record(userID uint, tracker, title, body string) {
	r.mu.Lock()
	r.calls = append(r.calls, tracker+": "+body)
	r.mu.Unlock()
}

func (r *reminderRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

func TestWithinReminderWindow(t *testing.T) {
	base := time.Date(2025, 3, 10, 8, 0, 0, 0, time.Local)

	cases := []struct {
		now  time.Time
		want bool
	}{
		{base, true},
		{base.Add(59 * time.Second), true},
		{base.Add(-59 * time.Second), true},
		{base.Add(60 * time.Second), false},
		{base.Add(-61 * time.Second), false},
		{base.Add(5 * time.Minute), false},
	}
	for _, tc := range cases {
		if got := withinReminderWindow(tc.now, "08:00"); got != tc.want {
			t.Errorf("withinReminderWindow(%v, 08:00) = %v, want %v", tc.now, got, tc.want)
		}
	}

	if withinReminderWindow(base, "8am") {
		t.Error("malformed target must never match")
	}
}

func TestSchedulerFiresAndStopsCleanly(t *testing.T) {
	rec := &reminderRecorder{}

	s := NewReminderScheduler()
	s.poll = 5 * time.Millisecond
	s.notify = rec.record
	s.now = func() time.Time {
		return time.Date(2025, 3, 10, 8, 0, 10, 0, time.Local)
	}

	err := s.Set(1, ReminderConfig{
		Tracker: "meals",
		Times:   []ReminderTime{{Label: "breakfast", At: "08:00"}},
	})
	if err != nil {
		t.Fatalf("set reminder: %v", err)
	}

	time.Sleep(40 * time.Millisecond)
	if rec.count() == 0 {
		t.Fatal("expected at least one reminder within the window")
	}

	s.Stop(1, "meals")
	time.Sleep(10 * time.Millisecond) // let an in-flight check drain
	n := rec.count()
	time.Sleep(40 * time.Millisecond)
	if rec.count() != n {
		t.Error("reminders kept firing after Stop")
	}
	if len(s.Configs(1)) != 0 {
		t.Error("config still listed after Stop")
	}
}

func TestSchedulerSetReplacesExistingJob(t *testing.T) {
	s := NewReminderScheduler()
	s.notify = func(uint, string, string, string) {}

	cfg := ReminderConfig{Tracker: "sleep", Times: []ReminderTime{{At: "22:00"}}}
	if err := s.Set(1, cfg); err != nil {
		t.Fatalf("set: %v", err)
	}
	cfg.Times = []ReminderTime{{At: "23:00"}}
	if err := s.Set(1, cfg); err != nil {
		t.Fatalf("re-set: %v", err)
	}

	configs := s.Configs(1)
	if len(configs) != 1 {
		t.Fatalf("expected one config after replace, got %d", len(configs))
	}
	if configs[0].Times[0].At != "23:00" {
		t.Errorf("old config survived the replace: %+v", configs[0])
	}

	s.StopAll(1)
	if len(s.Configs(1)) != 0 {
		t.Error("StopAll left configs behind")
	}
}

func TestSchedulerValidation(t *testing.T) {
	s := NewReminderScheduler()

	if err := s.Set(1, ReminderConfig{Tracker: "exercise"}); err == nil {
		t.Error("expected error for unknown tracker")
	}
	if err := s.Set(1, ReminderConfig{Tracker: "sleep"}); err == nil {
		t.Error("expected error for missing times")
	}
	if err := s.Set(1, ReminderConfig{Tracker: "meals", Times: []ReminderTime{{At: "25:99"}}}); err == nil {
		t.Error("expected error for malformed time")
	}
	if len(s.Configs(1)) != 0 {
		t.Error("failed Set must not leave a job behind")
	}
}

func TestWaterReminderChecksIntakeAgainstGoal(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	rec := &reminderRecorder{}
	s := NewReminderScheduler()
	s.notify = rec.record

	cfg := ReminderConfig{Tracker: "water", IntervalMinutes: 30}

	// under goal: the check fires
	s.check(1, cfg)
	if rec.count() != 1 {
		t.Fatalf("expected a water reminder under goal, got %d calls", rec.count())
	}

	// at goal: quiet
	if _, err := AddWater(1, WaterGoalML); err != nil {
		t.Fatalf("seed water: %v", err)
	}
	s.check(1, cfg)
	if rec.count() != 1 {
		t.Error("water reminder fired although intake reached the goal")
	}
}

func TestMedicationReminderUsesStoredTimes(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	if _, err := AddMedication(1, "Aspirin", "100mg", "daily", []string{"08:00"}); err != nil {
		t.Fatalf("seed medication: %v", err)
	}

	rec := &reminderRecorder{}
	s := NewReminderScheduler()
	s.notify = rec.record
	s.now = func() time.Time {
		return time.Date(2025, 3, 10, 8, 0, 30, 0, time.Local)
	}

	s.check(1, ReminderConfig{Tracker: "medication"})
	if rec.count() != 1 {
		t.Fatalf("expected one medication reminder, got %d", rec.count())
	}

	// outside the window: quiet
	s.now = func() time.Time {
		return time.Date(2025, 3, 10, 8, 5, 0, 0, time.Local)
	}
	s.check(1, ReminderConfig{Tracker: "medication"})
	if rec.count() != 1 {
		t.Error("medication reminder fired outside the window")
	}
}
