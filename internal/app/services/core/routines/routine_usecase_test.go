package routines

import (
	"context"
	"testing"

	"storyai-service/internal/app/config"
	"storyai-service/internal/app/models"
	"storyai-service/internal/pkg/constvars"
	"storyai-service/internal/pkg/dto/requests"
	"storyai-service/internal/pkg/dto/responses"
	"storyai-service/internal/pkg/exceptions"
	"storyai-service/internal/pkg/schedule"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRoutineRepository struct {
	activities []models.Activity
	findCalls  int
}

func (f *fakeRoutineRepository) FindByUser(_ context.Context, userID string) ([]models.Activity, error) {
	f.findCalls++
	var out []models.Activity
	for _, activity := range f.activities {
		if activity.UserID == userID {
			out = append(out, activity)
		}
	}
	return out, nil
}

func (f *fakeRoutineRepository) FindByID(_ context.Context, userID, activityID string) (*models.Activity, error) {
	for _, activity := range f.activities {
		if activity.UserID == userID && activity.ID == activityID {
			found := activity
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeRoutineRepository) CreateActivity(_ context.Context, activity *models.Activity) error {
	f.activities = append(f.activities, *activity)
	return nil
}

func (f *fakeRoutineRepository) CreateActivities(_ context.Context, activities []models.Activity) error {
	f.activities = append(f.activities, activities...)
	return nil
}

func (f *fakeRoutineRepository) UpdateActivity(_ context.Context, activity *models.Activity) error {
	for i := range f.activities {
		if f.activities[i].ID == activity.ID && f.activities[i].UserID == activity.UserID {
			f.activities[i] = *activity
		}
	}
	return nil
}

func (f *fakeRoutineRepository) DeleteActivity(_ context.Context, userID, activityID string) error {
	return f.DeleteActivities(context.Background(), userID, []string{activityID})
}

func (f *fakeRoutineRepository) DeleteActivities(_ context.Context, userID string, activityIDs []string) error {
	ids := make(map[string]bool, len(activityIDs))
	for _, id := range activityIDs {
		ids[id] = true
	}
	kept := f.activities[:0]
	for _, activity := range f.activities {
		if activity.UserID == userID && ids[activity.ID] {
			continue
		}
		kept = append(kept, activity)
	}
	f.activities = kept
	return nil
}

func (f *fakeRoutineRepository) DeleteByUser(_ context.Context, userID string) error {
	kept := f.activities[:0]
	for _, activity := range f.activities {
		if activity.UserID != userID {
			kept = append(kept, activity)
		}
	}
	f.activities = kept
	return nil
}

type fakeRedisRepository struct {
	store map[string]string
}

func newFakeRedisRepository() *fakeRedisRepository {
	return &fakeRedisRepository{store: make(map[string]string)}
}

func (f *fakeRedisRepository) Delete(_ context.Context, key string) error {
	delete(f.store, key)
	return nil
}

func (f *fakeRedisRepository) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.store[key] = string(encoded)
	return nil
}

func (f *fakeRedisRepository) Get(_ context.Context, key string) (string, error) {
	return f.store[key], nil
}

func (f *fakeRedisRepository) TrySetNX(_ context.Context, key string, value interface{}, _ time.Duration) (bool, error) {
	if _, taken := f.store[key]; taken {
		return false, nil
	}
	encoded, err := json.Marshal(value)
	if err != nil {
		return false, err
	}
	f.store[key] = string(encoded)
	return true, nil
}

type fakeLockerService struct {
	busy    bool
	locks   int
	unlocks int
}

func (f *fakeLockerService) TryLock(_ context.Context, _ string, _ time.Duration) (bool, string, error) {
	if f.busy {
		return false, "", nil
	}
	f.locks++
	return true, "lock-value", nil
}

func (f *fakeLockerService) Unlock(_ context.Context, _, _ string) error {
	f.unlocks++
	return nil
}

type fakeEventPublisher struct {
	events []string
}

func (f *fakeEventPublisher) PublishScheduleEvent(_ context.Context, eventType, _ string, _ interface{}) error {
	f.events = append(f.events, eventType)
	return nil
}

func newTestUsecase() (*routineUsecase, *fakeRoutineRepository, *fakeRedisRepository, *fakeLockerService, *fakeEventPublisher) {
	repo := &fakeRoutineRepository{}
	redisRepo := newFakeRedisRepository()
	lockerSvc := &fakeLockerService{}
	publisher := &fakeEventPublisher{}
	uc := &routineUsecase{
		RoutineRepository: repo,
		RedisRepository:   redisRepo,
		LockerService:     lockerSvc,
		EventPublisher:    publisher,
		InternalConfig: &config.InternalConfig{
			Scheduling: config.Scheduling{
				AfterWakeOffsetInMinute:   30,
				MorningDurationInMinute:   5,
				BeforeSleepOffsetInMinute: 45,
				EveningDurationInMinute:   12,
				CacheTTLInSecond:          300,
				LockExpirationInSecond:    10,
			},
		},
		Log: zap.NewNop(),
	}
	return uc, repo, redisRepo, lockerSvc, publisher
}

func asCustomError(t *testing.T, err error) *exceptions.CustomError {
	t.Helper()
	require.Error(t, err)
	customErr, ok := err.(*exceptions.CustomError)
	require.True(t, ok, "expected *exceptions.CustomError, got %T", err)
	return customErr
}

func TestRoutineUsecaseCreateActivity(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a conflict-free activity", func(t *testing.T) {
		uc, repo, _, lockerSvc, _ := newTestUsecase()

		response, err := uc.CreateActivity(ctx, &requests.CreateActivity{
			Title:     "Morning Yoga",
			Category:  constvars.CategoryExercise,
			Days:      []string{"Monday", "Wednesday"},
			StartTime: "09:00",
			EndTime:   "10:00",
			UserID:    "user-1",
		})
		require.NoError(t, err)
		require.NotNil(t, response)
		assert.NotEmpty(t, response.ID)
		assert.False(t, response.Completed)
		assert.Len(t, repo.activities, 1)
		assert.Equal(t, lockerSvc.locks, lockerSvc.unlocks)
	})

	t.Run("rejects an overlapping activity with the conflicts attached", func(t *testing.T) {
		uc, repo, _, _, _ := newTestUsecase()

		first, err := uc.CreateActivity(ctx, &requests.CreateActivity{
			Title:     "Morning Yoga",
			Category:  constvars.CategoryExercise,
			Days:      []string{"Monday"},
			StartTime: "09:00",
			EndTime:   "10:00",
			UserID:    "user-1",
		})
		require.NoError(t, err)

		_, err = uc.CreateActivity(ctx, &requests.CreateActivity{
			Title:     "Journaling",
			Category:  constvars.CategoryJournal,
			Days:      []string{"Monday"},
			StartTime: "09:30",
			EndTime:   "09:45",
			UserID:    "user-1",
		})
		customErr := asCustomError(t, err)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)

		conflicts, ok := customErr.Data.([]responses.Activity)
		require.True(t, ok)
		require.Len(t, conflicts, 1)
		assert.Equal(t, first.ID, conflicts[0].ID)
		assert.Len(t, repo.activities, 1)
	})

	t.Run("allows the same time on a different day", func(t *testing.T) {
		uc, repo, _, _, _ := newTestUsecase()

		_, err := uc.CreateActivity(ctx, &requests.CreateActivity{
			Title: "Morning Yoga", Category: constvars.CategoryExercise,
			Days: []string{"Monday"}, StartTime: "09:00", EndTime: "10:00", UserID: "user-1",
		})
		require.NoError(t, err)

		_, err = uc.CreateActivity(ctx, &requests.CreateActivity{
			Title: "Journaling", Category: constvars.CategoryJournal,
			Days: []string{"Tuesday"}, StartTime: "09:00", EndTime: "10:00", UserID: "user-1",
		})
		require.NoError(t, err)
		assert.Len(t, repo.activities, 2)
	})

	t.Run("exempt categories skip conflict checking", func(t *testing.T) {
		uc, _, _, _, _ := newTestUsecase()

		_, err := uc.CreateActivity(ctx, &requests.CreateActivity{
			Title: "Morning Yoga", Category: constvars.CategoryExercise,
			Days: []string{"Monday"}, StartTime: "09:00", EndTime: "10:00", UserID: "user-1",
		})
		require.NoError(t, err)

		// An exempt candidate may overlap anything.
		_, err = uc.CreateActivity(ctx, &requests.CreateActivity{
			Title: "Nap", Category: constvars.CategoryRest,
			Days: []string{"Monday"}, StartTime: "20:00", EndTime: "20:30", UserID: "user-1",
		})
		require.NoError(t, err)

		// And an exempt entry never blocks a later candidate either.
		_, err = uc.CreateActivity(ctx, &requests.CreateActivity{
			Title: "Reading", Category: constvars.CategoryCustom,
			Days: []string{"Monday"}, StartTime: "20:10", EndTime: "20:40", UserID: "user-1",
		})
		require.NoError(t, err)
	})

	t.Run("rejects equal start and end times", func(t *testing.T) {
		uc, _, _, _, _ := newTestUsecase()

		_, err := uc.CreateActivity(ctx, &requests.CreateActivity{
			Title: "Zero", Category: constvars.CategoryCustom,
			Days: []string{"Monday"}, StartTime: "09:00", EndTime: "09:00", UserID: "user-1",
		})
		customErr := asCustomError(t, err)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})

	t.Run("rejects a wrapping interval for non-Sleep categories", func(t *testing.T) {
		uc, repo, _, _, _ := newTestUsecase()

		_, err := uc.CreateActivity(ctx, &requests.CreateActivity{
			Title: "Night Run", Category: constvars.CategoryExercise,
			Days: []string{"Monday"}, StartTime: "22:00", EndTime: "06:00", UserID: "user-1",
		})
		customErr := asCustomError(t, err)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Empty(t, repo.activities)

		// Sleep is the one category allowed to continue past midnight.
		_, err = uc.CreateActivity(ctx, &requests.CreateActivity{
			Title: "Sleep", Category: constvars.CategorySleep,
			Days: []string{"Monday", "Tuesday"}, StartTime: "23:00", EndTime: "07:00", UserID: "user-1",
		})
		require.NoError(t, err)
		assert.Len(t, repo.activities, 1)
	})

	t.Run("returns busy while another request holds the lock", func(t *testing.T) {
		uc, _, _, lockerSvc, _ := newTestUsecase()
		lockerSvc.busy = true

		_, err := uc.CreateActivity(ctx, &requests.CreateActivity{
			Title: "Morning Yoga", Category: constvars.CategoryExercise,
			Days: []string{"Monday"}, StartTime: "09:00", EndTime: "10:00", UserID: "user-1",
		})
		customErr := asCustomError(t, err)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientScheduleBusy, customErr.ClientMessage)
	})
}

func TestRoutineUsecaseCreateActivityAutoSlot(t *testing.T) {
	ctx := context.Background()

	t.Run("slides past a busy hour to the next free slot", func(t *testing.T) {
		uc, _, _, _, _ := newTestUsecase()

		_, err := uc.CreateActivity(ctx, &requests.CreateActivity{
			Title: "Morning Yoga", Category: constvars.CategoryExercise,
			Days: []string{"Monday"}, StartTime: "09:00", EndTime: "10:00", UserID: "user-1",
		})
		require.NoError(t, err)

		response, err := uc.CreateActivityAutoSlot(ctx, &requests.CreateActivityAutoSlot{
			Title:           "Journaling",
			Category:        constvars.CategoryJournal,
			Days:            []string{"Monday"},
			PreferredStart:  "09:15",
			DurationMinutes: 30,
			UserID:          "user-1",
		})
		require.NoError(t, err)
		assert.Equal(t, "10:00", response.StartTime)
		assert.Equal(t, "10:30", response.EndTime)
	})

	t.Run("keeps the preferred slot when it is free", func(t *testing.T) {
		uc, _, _, _, _ := newTestUsecase()

		response, err := uc.CreateActivityAutoSlot(ctx, &requests.CreateActivityAutoSlot{
			Title:           "Journaling",
			Category:        constvars.CategoryJournal,
			Days:            []string{"Monday", "Friday"},
			PreferredStart:  "08:00",
			DurationMinutes: 20,
			UserID:          "user-1",
		})
		require.NoError(t, err)
		assert.Equal(t, "08:00", response.StartTime)
		assert.Equal(t, "08:20", response.EndTime)
	})

	t.Run("fails with unprocessable when the day is exhausted", func(t *testing.T) {
		uc, _, _, _, _ := newTestUsecase()

		_, err := uc.CreateActivityAutoSlot(ctx, &requests.CreateActivityAutoSlot{
			Title:           "Late Session",
			Category:        constvars.CategoryTherapy,
			Days:            []string{"Monday"},
			PreferredStart:  "23:30",
			DurationMinutes: 45,
			UserID:          "user-1",
		})
		customErr := asCustomError(t, err)
		assert.Equal(t, constvars.StatusUnprocessableEntity, customErr.StatusCode)
	})
}

func TestRoutineUsecaseSetSleepSchedule(t *testing.T) {
	ctx := context.Background()

	uniform := &requests.SetSleepSchedule{
		Uniform: &requests.SleepTimes{WakeTime: "07:00", SleepTime: "23:00"},
		UserID:  "user-1",
	}

	t.Run("derives sleep blocks and companions for the whole week", func(t *testing.T) {
		uc, repo, _, _, publisher := newTestUsecase()

		response, err := uc.SetSleepSchedule(ctx, uniform)
		require.NoError(t, err)
		// 7 sleep blocks plus a morning and an evening companion per day.
		assert.Len(t, response, 21)
		assert.Len(t, repo.activities, 21)

		var morning, evening *responses.Activity
		for i := range response {
			if response[i].Title == constvars.DerivedMorningTitle && morning == nil {
				morning = &response[i]
			}
			if response[i].Title == constvars.DerivedEveningTitle && evening == nil {
				evening = &response[i]
			}
			assert.True(t, response[i].Derived)
		}
		require.NotNil(t, morning)
		assert.Equal(t, "07:30", morning.StartTime)
		assert.Equal(t, "07:35", morning.EndTime)
		require.NotNil(t, evening)
		assert.Equal(t, "22:15", evening.StartTime)
		assert.Equal(t, "22:27", evening.EndTime)

		require.Len(t, publisher.events, 1)
		assert.Equal(t, constvars.ScheduleEventDerivedSetReplaced, publisher.events[0])
	})

	t.Run("replaces the previous derived set instead of stacking", func(t *testing.T) {
		uc, repo, _, _, _ := newTestUsecase()

		_, err := uc.SetSleepSchedule(ctx, uniform)
		require.NoError(t, err)
		_, err = uc.SetSleepSchedule(ctx, &requests.SetSleepSchedule{
			Uniform: &requests.SleepTimes{WakeTime: "06:30", SleepTime: "22:30"},
			UserID:  "user-1",
		})
		require.NoError(t, err)

		assert.Len(t, repo.activities, 21)
		for _, activity := range repo.activities {
			if activity.Title == constvars.DerivedSleepTitle {
				assert.Equal(t, "22:30", activity.StartTime)
				assert.Equal(t, "06:30", activity.EndTime)
			}
		}
	})

	t.Run("slides the morning companion off a user activity", func(t *testing.T) {
		uc, repo, _, _, _ := newTestUsecase()

		_, err := uc.CreateActivity(ctx, &requests.CreateActivity{
			Title: "Stretching", Category: constvars.CategoryExercise,
			Days: []string{"Monday"}, StartTime: "07:30", EndTime: "07:35", UserID: "user-1",
		})
		require.NoError(t, err)

		_, err = uc.SetSleepSchedule(ctx, uniform)
		require.NoError(t, err)

		for _, activity := range repo.activities {
			if activity.Title != constvars.DerivedMorningTitle {
				continue
			}
			require.Len(t, activity.Days, 1)
			if activity.Days[0] == "Monday" {
				assert.Equal(t, "07:35", activity.StartTime)
				assert.Equal(t, "07:40", activity.EndTime)
			} else {
				assert.Equal(t, "07:30", activity.StartTime)
			}
		}

		// No two non-exempt activities sharing a day may overlap.
		entries := checkableEntries(repo.activities)
		for _, entry := range entries {
			assert.Empty(t, schedule.FindConflicts(entry.Days, entry.Interval, entries, entry.ID))
		}
	})

	t.Run("keeps user-created activities untouched", func(t *testing.T) {
		uc, repo, _, _, _ := newTestUsecase()

		created, err := uc.CreateActivity(ctx, &requests.CreateActivity{
			Title: "Morning Yoga", Category: constvars.CategoryExercise,
			Days: []string{"Monday"}, StartTime: "09:00", EndTime: "10:00", UserID: "user-1",
		})
		require.NoError(t, err)

		_, err = uc.SetSleepSchedule(ctx, uniform)
		require.NoError(t, err)

		assert.Len(t, repo.activities, 22)
		kept, err := repo.FindByID(ctx, "user-1", created.ID)
		require.NoError(t, err)
		require.NotNil(t, kept)
	})

	t.Run("supports per-day schedules", func(t *testing.T) {
		uc, repo, _, _, _ := newTestUsecase()

		response, err := uc.SetSleepSchedule(ctx, &requests.SetSleepSchedule{
			PerDay: map[string]requests.SleepTimes{
				"Monday": {WakeTime: "07:00", SleepTime: "23:00"},
				"Friday": {WakeTime: "09:00", SleepTime: "01:30"},
			},
			UserID: "user-1",
		})
		require.NoError(t, err)
		assert.Len(t, response, 6)
		assert.Len(t, repo.activities, 6)
	})

	t.Run("rejects requests that set both shapes or neither", func(t *testing.T) {
		uc, _, _, _, _ := newTestUsecase()

		_, err := uc.SetSleepSchedule(ctx, &requests.SetSleepSchedule{UserID: "user-1"})
		customErr := asCustomError(t, err)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)

		_, err = uc.SetSleepSchedule(ctx, &requests.SetSleepSchedule{
			Uniform: &requests.SleepTimes{WakeTime: "07:00", SleepTime: "23:00"},
			PerDay:  map[string]requests.SleepTimes{"Monday": {WakeTime: "07:00", SleepTime: "23:00"}},
			UserID:  "user-1",
		})
		customErr = asCustomError(t, err)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})

	t.Run("rejects equal wake and sleep times", func(t *testing.T) {
		uc, _, _, _, _ := newTestUsecase()

		_, err := uc.SetSleepSchedule(ctx, &requests.SetSleepSchedule{
			Uniform: &requests.SleepTimes{WakeTime: "07:00", SleepTime: "07:00"},
			UserID:  "user-1",
		})
		customErr := asCustomError(t, err)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})
}

func TestRoutineUsecaseFindActivities(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T, uc *routineUsecase) {
		t.Helper()
		_, err := uc.CreateActivity(ctx, &requests.CreateActivity{
			Title: "Evening Walk", Category: constvars.CategoryExercise,
			Days: []string{"Monday"}, StartTime: "18:00", EndTime: "18:30", UserID: "user-1",
		})
		require.NoError(t, err)
		_, err = uc.CreateActivity(ctx, &requests.CreateActivity{
			Title: "Morning Yoga", Category: constvars.CategoryExercise,
			Days: []string{"Monday", "Tuesday"}, StartTime: "09:00", EndTime: "10:00", UserID: "user-1",
		})
		require.NoError(t, err)
		_, err = uc.CreateActivity(ctx, &requests.CreateActivity{
			Title: "Journaling", Category: constvars.CategoryJournal,
			Days: []string{"Tuesday"}, StartTime: "08:00", EndTime: "08:15", UserID: "user-1",
		})
		require.NoError(t, err)
	}

	t.Run("groups by day in week order and sorts by start time", func(t *testing.T) {
		uc, _, _, _, _ := newTestUsecase()
		seed(t, uc)

		weekly, err := uc.FindActivities(ctx, &requests.FindActivities{UserID: "user-1"})
		require.NoError(t, err)
		require.Len(t, weekly.Days, 7)

		monday := weekly.Days[0]
		assert.Equal(t, "Monday", monday.Day)
		require.Len(t, monday.Activities, 2)
		assert.Equal(t, "Morning Yoga", monday.Activities[0].Title)
		assert.Equal(t, "Evening Walk", monday.Activities[1].Title)

		tuesday := weekly.Days[1]
		require.Len(t, tuesday.Activities, 2)
		assert.Equal(t, "Journaling", tuesday.Activities[0].Title)

		assert.Empty(t, weekly.Days[2].Activities)
	})

	t.Run("filters by day and category", func(t *testing.T) {
		uc, _, _, _, _ := newTestUsecase()
		seed(t, uc)

		weekly, err := uc.FindActivities(ctx, &requests.FindActivities{UserID: "user-1", Day: "Tuesday"})
		require.NoError(t, err)
		require.Len(t, weekly.Days, 1)
		assert.Equal(t, "Tuesday", weekly.Days[0].Day)

		weekly, err = uc.FindActivities(ctx, &requests.FindActivities{UserID: "user-1", Category: constvars.CategoryJournal})
		require.NoError(t, err)
		require.Len(t, weekly.Days, 7)
		assert.Empty(t, weekly.Days[0].Activities)
		require.Len(t, weekly.Days[1].Activities, 1)
		assert.Equal(t, "Journaling", weekly.Days[1].Activities[0].Title)
	})

	t.Run("serves repeat unfiltered reads from cache", func(t *testing.T) {
		uc, repo, _, _, _ := newTestUsecase()
		seed(t, uc)

		_, err := uc.FindActivities(ctx, &requests.FindActivities{UserID: "user-1"})
		require.NoError(t, err)
		callsAfterFirst := repo.findCalls

		cached, err := uc.FindActivities(ctx, &requests.FindActivities{UserID: "user-1"})
		require.NoError(t, err)
		assert.Equal(t, callsAfterFirst, repo.findCalls)
		require.Len(t, cached.Days, 7)
	})

	t.Run("mutations invalidate the cache", func(t *testing.T) {
		uc, repo, _, _, _ := newTestUsecase()
		seed(t, uc)

		_, err := uc.FindActivities(ctx, &requests.FindActivities{UserID: "user-1"})
		require.NoError(t, err)

		_, err = uc.CreateActivity(ctx, &requests.CreateActivity{
			Title: "Stretching", Category: constvars.CategoryExercise,
			Days: []string{"Sunday"}, StartTime: "07:00", EndTime: "07:15", UserID: "user-1",
		})
		require.NoError(t, err)

		callsBefore := repo.findCalls
		weekly, err := uc.FindActivities(ctx, &requests.FindActivities{UserID: "user-1"})
		require.NoError(t, err)
		assert.Greater(t, repo.findCalls, callsBefore)
		require.Len(t, weekly.Days[6].Activities, 1)
	})
}

func TestRoutineUsecaseUpdateActivity(t *testing.T) {
	ctx := context.Background()

	t.Run("updates without conflicting with itself", func(t *testing.T) {
		uc, _, _, _, _ := newTestUsecase()

		created, err := uc.CreateActivity(ctx, &requests.CreateActivity{
			Title: "Morning Yoga", Category: constvars.CategoryExercise,
			Days: []string{"Monday"}, StartTime: "09:00", EndTime: "10:00", UserID: "user-1",
		})
		require.NoError(t, err)

		updated, err := uc.UpdateActivity(ctx, &requests.UpdateActivity{
			Title: "Morning Yoga", Category: constvars.CategoryExercise,
			Days: []string{"Monday"}, StartTime: "09:15", EndTime: "10:15",
			UserID: "user-1", RoutineID: created.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, "09:15", updated.StartTime)
	})

	t.Run("rejects an update that collides with another activity", func(t *testing.T) {
		uc, _, _, _, _ := newTestUsecase()

		_, err := uc.CreateActivity(ctx, &requests.CreateActivity{
			Title: "Morning Yoga", Category: constvars.CategoryExercise,
			Days: []string{"Monday"}, StartTime: "09:00", EndTime: "10:00", UserID: "user-1",
		})
		require.NoError(t, err)

		other, err := uc.CreateActivity(ctx, &requests.CreateActivity{
			Title: "Journaling", Category: constvars.CategoryJournal,
			Days: []string{"Monday"}, StartTime: "11:00", EndTime: "11:30", UserID: "user-1",
		})
		require.NoError(t, err)

		_, err = uc.UpdateActivity(ctx, &requests.UpdateActivity{
			Title: "Journaling", Category: constvars.CategoryJournal,
			Days: []string{"Monday"}, StartTime: "09:30", EndTime: "09:45",
			UserID: "user-1", RoutineID: other.ID,
		})
		customErr := asCustomError(t, err)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
	})

	t.Run("rejects a wrapping update for a non-Sleep category", func(t *testing.T) {
		uc, repo, _, _, _ := newTestUsecase()

		created, err := uc.CreateActivity(ctx, &requests.CreateActivity{
			Title: "Morning Yoga", Category: constvars.CategoryExercise,
			Days: []string{"Monday"}, StartTime: "09:00", EndTime: "10:00", UserID: "user-1",
		})
		require.NoError(t, err)

		_, err = uc.UpdateActivity(ctx, &requests.UpdateActivity{
			Title: "Morning Yoga", Category: constvars.CategoryExercise,
			Days: []string{"Monday"}, StartTime: "22:00", EndTime: "06:00",
			UserID: "user-1", RoutineID: created.ID,
		})
		customErr := asCustomError(t, err)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Equal(t, "09:00", repo.activities[0].StartTime)
	})

	t.Run("unknown activity yields not found", func(t *testing.T) {
		uc, _, _, _, _ := newTestUsecase()

		_, err := uc.UpdateActivity(ctx, &requests.UpdateActivity{
			Title: "Ghost", Category: constvars.CategoryCustom,
			Days: []string{"Monday"}, StartTime: "09:00", EndTime: "09:30",
			UserID: "user-1", RoutineID: "missing",
		})
		customErr := asCustomError(t, err)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}

func TestRoutineUsecaseToggleCompletion(t *testing.T) {
	ctx := context.Background()

	t.Run("flips the completed flag back and forth", func(t *testing.T) {
		uc, _, _, _, _ := newTestUsecase()

		created, err := uc.CreateActivity(ctx, &requests.CreateActivity{
			Title: "Morning Yoga", Category: constvars.CategoryExercise,
			Days: []string{"Monday"}, StartTime: "09:00", EndTime: "10:00", UserID: "user-1",
		})
		require.NoError(t, err)

		toggled, err := uc.ToggleCompletion(ctx, &requests.ToggleCompletion{UserID: "user-1", RoutineID: created.ID})
		require.NoError(t, err)
		assert.True(t, toggled.Completed)

		toggled, err = uc.ToggleCompletion(ctx, &requests.ToggleCompletion{UserID: "user-1", RoutineID: created.ID})
		require.NoError(t, err)
		assert.False(t, toggled.Completed)
	})

	t.Run("unknown activity yields not found", func(t *testing.T) {
		uc, _, _, _, _ := newTestUsecase()

		_, err := uc.ToggleCompletion(ctx, &requests.ToggleCompletion{UserID: "user-1", RoutineID: "missing"})
		customErr := asCustomError(t, err)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}

func TestRoutineUsecaseDeleteAndClear(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes one activity", func(t *testing.T) {
		uc, repo, _, _, _ := newTestUsecase()

		created, err := uc.CreateActivity(ctx, &requests.CreateActivity{
			Title: "Morning Yoga", Category: constvars.CategoryExercise,
			Days: []string{"Monday"}, StartTime: "09:00", EndTime: "10:00", UserID: "user-1",
		})
		require.NoError(t, err)

		err = uc.DeleteActivity(ctx, &requests.DeleteActivity{UserID: "user-1", RoutineID: created.ID})
		require.NoError(t, err)
		assert.Empty(t, repo.activities)
	})

	t.Run("deleting a missing activity yields not found", func(t *testing.T) {
		uc, _, _, _, _ := newTestUsecase()

		err := uc.DeleteActivity(ctx, &requests.DeleteActivity{UserID: "user-1", RoutineID: "missing"})
		customErr := asCustomError(t, err)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})

	t.Run("clearing removes everything and publishes an event", func(t *testing.T) {
		uc, repo, _, _, publisher := newTestUsecase()

		_, err := uc.CreateActivity(ctx, &requests.CreateActivity{
			Title: "Morning Yoga", Category: constvars.CategoryExercise,
			Days: []string{"Monday"}, StartTime: "09:00", EndTime: "10:00", UserID: "user-1",
		})
		require.NoError(t, err)
		_, err = uc.SetSleepSchedule(ctx, &requests.SetSleepSchedule{
			Uniform: &requests.SleepTimes{WakeTime: "07:00", SleepTime: "23:00"},
			UserID:  "user-1",
		})
		require.NoError(t, err)

		err = uc.ClearActivities(ctx, &requests.ClearActivities{UserID: "user-1"})
		require.NoError(t, err)
		assert.Empty(t, repo.activities)
		assert.Contains(t, publisher.events, constvars.ScheduleEventCleared)
	})
}
