package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// Reminder configuration lives only in memory; it resets on restart, the same
// way the client's toggle resets on reload.

type ReminderTime struct {
	Label string `json:"label,omitempty"`
	At    string `json:"at"` // HH:MM
}

type ReminderConfig struct {
	Tracker         string         `json:"tracker"` // "water" | "sleep" | "meals" | "medication"
	Times           []ReminderTime `json:"times,omitempty"`
	IntervalMinutes int            `json:"interval_minutes,omitempty"` // water only
}

type reminderKey struct {
	userID  uint
	tracker string
}

type reminderJob struct {
	cfg    ReminderConfig
	cancel context.CancelFunc
}

// ReminderScheduler runs one polling goroutine per enabled (user, tracker)
// pair. Time-of-day trackers poll every minute and fire when the tick lands
// within 60 seconds of a target HH:MM; the water tracker instead fires on its
// own user-chosen interval while intake is under goal. The window match is
// best-effort: a tick can land just outside the window and skip that day's
// reminder.
type ReminderScheduler struct {
	mu   sync.Mutex
	jobs map[reminderKey]*reminderJob

	notify func(userID uint, tracker, title, body string)
	now    func() time.Time
	poll   time.Duration
}

func NewReminderScheduler() *ReminderScheduler {
	return &ReminderScheduler{
		jobs:   make(map[reminderKey]*reminderJob),
		notify: EmitReminder,
		now:    time.Now,
		poll:   time.Minute,
	}
}

var validTrackers = map[string]bool{
	"water":      true,
	"sleep":      true,
	"meals":      true,
	"medication": true,
}

// Set enables reminders for a tracker, replacing any running job for the same
// (user, tracker) so a re-toggle never leaves a second timer behind.
func (s *ReminderScheduler) Set(userID uint, cfg ReminderConfig) error {
	if !validTrackers[cfg.Tracker] {
		return errors.New("unknown tracker")
	}

	switch cfg.Tracker {
	case "water":
		if cfg.IntervalMinutes <= 0 {
			cfg.IntervalMinutes = 60
		}
	case "medication":
		// target times come from the active medications at each tick
	default:
		if len(cfg.Times) == 0 {
			return errors.New("at least one reminder time is required")
		}
	}
	for _, rt := range cfg.Times {
		if _, err := time.Parse("15:04", rt.At); err != nil {
			return errors.New("reminder times must be HH:MM")
		}
	}

	ctx, cancel := context.WithCancel(context.Background())

	s.mu.Lock()
	key := reminderKey{userID: userID, tracker: cfg.Tracker}
	if old, ok := s.jobs[key]; ok {
		old.cancel()
	}
	s.jobs[key] = &reminderJob{cfg: cfg, cancel: cancel}
	s.mu.Unlock()

	go s.run(ctx, userID, cfg)
	return nil
}

// Stop disables a tracker's reminders. The job's context is cancelled, so the
// polling goroutine exits on its next select.
func (s *ReminderScheduler) Stop(userID uint, tracker string) {
	s.mu.Lock()
	key := reminderKey{userID: userID, tracker: tracker}
	if job, ok := s.jobs[key]; ok {
		job.cancel()
		delete(s.jobs, key)
	}
	s.mu.Unlock()
}

// StopAll tears down every job a user has, for logout or session teardown.
func (s *ReminderScheduler) StopAll(userID uint) {
	s.mu.Lock()
	for key, job := range s.jobs {
		if key.userID == userID {
			job.cancel()
			delete(s.jobs, key)
		}
	}
	s.mu.Unlock()
}

// Configs lists the user's active reminder configurations.
func (s *ReminderScheduler) Configs(userID uint) []ReminderConfig {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []ReminderConfig
	for key, job := range s.jobs {
		if key.userID == userID {
			out = append(out, job.cfg)
		}
	}
	return out
}

func (s *ReminderScheduler) run(ctx context.Context, userID uint, cfg ReminderConfig) {
	interval := s.poll
	if cfg.Tracker == "water" {
		interval = time.Duration(cfg.IntervalMinutes) * time.Minute
	} else {
		// time-of-day trackers check immediately, then poll
		s.check(userID, cfg)
	}

	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.check(userID, cfg)
		}
	}
}

func (s *ReminderScheduler) check(userID uint, cfg ReminderConfig) {
	now := s.now()

	switch cfg.Tracker {
	case "water":
		rec, err := GetDailyTracking(userID, now)
		if err != nil {
			return
		}
		if rec.WaterIntakeML < WaterGoalML {
			s.notify(userID, "water", "Water Reminder", "Time to drink some water!")
		}

	case "sleep":
		for _, rt := range cfg.Times {
			if withinReminderWindow(now, rt.At) {
				s.notify(userID, "sleep", "Bedtime Reminder", "Time to get ready for bed!")
			}
		}

	case "meals":
		for _, rt := range cfg.Times {
			if withinReminderWindow(now, rt.At) {
				label := rt.Label
				if label == "" {
					label = "your meal"
				}
				s.notify(userID, "meals", "Meal Reminder", fmt.Sprintf("Time for %s!", label))
			}
		}

	case "medication":
		meds, err := ListActiveMedications(userID)
		if err != nil {
			return
		}
		for _, m := range meds {
			for _, at := range MedicationTimes(m) {
				if withinReminderWindow(now, at) {
					s.notify(userID, "medication", "Medication Reminder",
						fmt.Sprintf("Time to take %s (%s)", m.Name, m.Dosage))
				}
			}
		}
	}
}

// withinReminderWindow reports whether now falls within 60 seconds of the
// HH:MM target on the same day.
func withinReminderWindow(now time.Time, target string) bool {
	tt, err := time.Parse("15:04", target)
	if err != nil {
		return false
	}
	at := time.Date(now.Year(), now.Month(), now.Day(), tt.Hour(), tt.Minute(), 0, 0, now.Location())
	diff := now.Sub(at)
	if diff < 0 {
		diff = -diff
	}
	return diff < time.Minute
}
