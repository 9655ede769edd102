package routines

import (
	"sort"
	"storyai-service/internal/app/models"
	"storyai-service/internal/pkg/constvars"
	"storyai-service/internal/pkg/dto/responses"
	"storyai-service/internal/pkg/exceptions"
	"storyai-service/internal/pkg/schedule"
	"storyai-service/internal/pkg/utils"
)

func parseDays(names []string) ([]schedule.Weekday, error) {
	days := make([]schedule.Weekday, 0, len(names))
	for _, name := range names {
		day, err := schedule.ParseWeekday(name)
		if err != nil {
			return nil, exceptions.ErrInputValidation(err)
		}
		days = append(days, day)
	}
	return days, nil
}

func parseInterval(startTime, endTime string) (schedule.Interval, error) {
	start, err := utils.ParseClock(startTime)
	if err != nil {
		return schedule.Interval{}, exceptions.ErrInvalidActivityInterval(err)
	}
	end, err := utils.ParseClock(endTime)
	if err != nil {
		return schedule.Interval{}, exceptions.ErrInvalidActivityInterval(err)
	}
	interval, err := schedule.NewInterval(start, end)
	if err != nil {
		return schedule.Interval{}, exceptions.ErrInvalidActivityInterval(err)
	}
	return interval, nil
}

// parseOrderedInterval additionally rejects an end before the start for every
// category except Sleep, the only one allowed to continue past midnight.
func parseOrderedInterval(startTime, endTime, category string) (schedule.Interval, error) {
	interval, err := parseInterval(startTime, endTime)
	if err != nil {
		return schedule.Interval{}, err
	}
	if interval.Wraps() && category != constvars.CategorySleep {
		return schedule.Interval{}, exceptions.ErrInvalidActivityInterval(schedule.ErrInvalidInterval)
	}
	return interval, nil
}

// activityToEntry converts a stored activity into an engine entry. Activities
// with malformed times are skipped by returning false so one bad document
// cannot block the whole schedule.
func activityToEntry(activity models.Activity) (schedule.Entry, bool) {
	interval, err := parseInterval(activity.StartTime, activity.EndTime)
	if err != nil {
		return schedule.Entry{}, false
	}
	days, err := parseDays(activity.Days)
	if err != nil {
		return schedule.Entry{}, false
	}
	return schedule.Entry{
		ID:       activity.ID,
		Days:     days,
		Interval: interval,
	}, true
}

// checkableEntries collects the engine entries of every activity that takes
// part in conflict detection and slot resolution. Exempt categories are left
// out.
func checkableEntries(activities []models.Activity) []schedule.Entry {
	var entries []schedule.Entry
	for _, activity := range activities {
		if activity.IsExempt() {
			continue
		}
		entry, ok := activityToEntry(activity)
		if !ok {
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

// checkableUserEntries is checkableEntries restricted to user-authored
// activities. The derived set is rebuilt against what the user scheduled
// themselves, not against the derived activities it replaces.
func checkableUserEntries(activities []models.Activity) []schedule.Entry {
	authored := make([]models.Activity, 0, len(activities))
	for _, activity := range activities {
		if activity.Derived {
			continue
		}
		authored = append(authored, activity)
	}
	return checkableEntries(authored)
}

func findActivitiesByIDs(activities []models.Activity, entries []schedule.Entry) []responses.Activity {
	byID := make(map[string]models.Activity, len(activities))
	for _, activity := range activities {
		byID[activity.ID] = activity
	}
	conflicting := make([]responses.Activity, 0, len(entries))
	for _, entry := range entries {
		if activity, ok := byID[entry.ID]; ok {
			conflicting = append(conflicting, activity.ConvertIntoResponse())
		}
	}
	return conflicting
}

func buildWeeklySchedule(activities []models.Activity, dayFilter, categoryFilter string) *responses.WeeklySchedule {
	weekly := &responses.WeeklySchedule{Days: make([]responses.DaySchedule, 0, len(schedule.AllWeekdays))}
	for _, day := range schedule.AllWeekdays {
		if dayFilter != "" && dayFilter != string(day) {
			continue
		}

		var dayActivities []models.Activity
		for _, activity := range activities {
			if categoryFilter != "" && activity.Category != categoryFilter {
				continue
			}
			for _, activityDay := range activity.Days {
				if activityDay == string(day) {
					dayActivities = append(dayActivities, activity)
					break
				}
			}
		}

		sort.SliceStable(dayActivities, func(i, j int) bool {
			left, _ := utils.ParseClock(dayActivities[i].StartTime)
			right, _ := utils.ParseClock(dayActivities[j].StartTime)
			if left != right {
				return left < right
			}
			return dayActivities[i].Title < dayActivities[j].Title
		})

		daySchedule := responses.DaySchedule{
			Day:        string(day),
			Activities: make([]responses.Activity, 0, len(dayActivities)),
		}
		for _, activity := range dayActivities {
			daySchedule.Activities = append(daySchedule.Activities, activity.ConvertIntoResponse())
		}
		weekly.Days = append(weekly.Days, daySchedule)
	}
	return weekly
}

func weekdayNames(days []schedule.Weekday) []string {
	names := make([]string, 0, len(days))
	for _, day := range days {
		names = append(names, string(day))
	}
	return names
}
