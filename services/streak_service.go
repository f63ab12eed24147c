package services

import (
	"context"
	"log"
	"sort"
	"time"

	"github.com/YongHui-X/ecoplate-sub001/models"
)

// streakMilestones are the streak lengths that trigger a celebration
// notification when first reached.
var streakMilestones = map[int]bool{3: true, 7: true, 30: true, 100: true}

// StreakService derives the current streak incrementally on writes and the
// longest streak from the full log on reads.
type StreakService struct {
	Interactions  *InteractionService
	Points        *PointsService
	Notifications *NotificationService
	Config        models.EngineConfig
}

// BumpStreak runs the streak state machine after an action was appended to
// the log and persists the outcome. Returns the (possibly unchanged)
// current streak.
func (s *StreakService) BumpStreak(ctx context.Context, userID, actionType, date string) (int, error) {
	ledger, err := s.Points.GetLedger(ctx, userID)
	if err != nil {
		return 0, err
	}

	today := time.Now().UTC().Format(DateLayout)

	if !models.IsQualifyingAction(actionType) {
		if actionType == models.ActionWasted && date == today && s.Config.WastedResetsStreak && ledger.CurrentStreak != 0 {
			log.Printf("💔 Waste logged, resetting streak for %s", userID)
			if err := s.Points.SetCurrentStreak(ctx, userID, 0); err != nil {
				return 0, err
			}
			return 0, nil
		}
		return ledger.CurrentStreak, nil
	}

	interactions, err := s.Interactions.ListInteractions(ctx, userID)
	if err != nil {
		return 0, err
	}

	newStreak, changed := NextStreak(interactions, ledger.CurrentStreak, date, today)
	if !changed {
		return ledger.CurrentStreak, nil
	}

	if err := s.Points.SetCurrentStreak(ctx, userID, newStreak); err != nil {
		return 0, err
	}
	log.Printf("🔥 Streak for %s is now %d", userID, newStreak)

	if newStreak > ledger.CurrentStreak && streakMilestones[newStreak] {
		s.Notifications.NotifyStreakMilestone(ctx, userID, newStreak)
	}

	return newStreak, nil
}

// NextStreak is the pure streak state machine. The triggering interaction is
// already in the log; date is its calendar day, today is the current UTC
// day. Backfilled entries (date before today) never move the streak — the
// machine is defined against the present, not the entry's day. A calendar
// day contributes at most +1: if today already holds more than one
// qualifying entry, the day was processed and the streak stands. Otherwise
// the most recent qualifying day strictly before today decides: yesterday
// extends, anything older (or nothing) restarts at 1.
func NextStreak(interactions []models.Interaction, currentStreak int, date, today string) (int, bool) {
	if date != today {
		return currentStreak, false
	}

	todayCount := 0
	previousDay := ""
	for _, interaction := range interactions {
		if !models.IsQualifyingAction(interaction.Type) {
			continue
		}
		if interaction.Date == today {
			todayCount++
		} else if interaction.Date < today && interaction.Date > previousDay {
			previousDay = interaction.Date
		}
	}

	if todayCount > 1 {
		return currentStreak, false
	}

	if previousDay == "" {
		return 1, true
	}

	todayDate, err := time.Parse(DateLayout, today)
	if err != nil {
		return 1, true
	}
	yesterday := todayDate.AddDate(0, 0, -1).Format(DateLayout)
	if previousDay == yesterday {
		return currentStreak + 1, true
	}
	return 1, true
}

// LongestStreak scans the full log for the longest run of consecutive
// qualifying calendar days. Always recomputed, never cached, so it
// self-heals after out-of-band log corrections.
func LongestStreak(interactions []models.Interaction) int {
	seen := map[string]bool{}
	var days []time.Time
	for _, interaction := range interactions {
		if !models.IsQualifyingAction(interaction.Type) || seen[interaction.Date] {
			continue
		}
		day, err := time.Parse(DateLayout, interaction.Date)
		if err != nil {
			continue
		}
		seen[interaction.Date] = true
		days = append(days, day)
	}
	if len(days) == 0 {
		return 0
	}

	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i].Sub(days[i-1]) == 24*time.Hour {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}
