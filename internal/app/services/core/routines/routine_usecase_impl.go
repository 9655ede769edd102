package routines

import (
	"context"
	"errors"
	"fmt"
	"storyai-service/internal/app/config"
	"storyai-service/internal/app/contracts"
	"storyai-service/internal/app/models"
	"storyai-service/internal/pkg/constvars"
	"storyai-service/internal/pkg/dto/requests"
	"storyai-service/internal/pkg/dto/responses"
	"storyai-service/internal/pkg/exceptions"
	"storyai-service/internal/pkg/schedule"
	"storyai-service/internal/pkg/utils"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type routineUsecase struct {
	RoutineRepository contracts.RoutineRepository
	RedisRepository   contracts.RedisRepository
	LockerService     contracts.LockerService
	EventPublisher    contracts.ScheduleEventPublisher
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
}

var (
	routineUsecaseInstance contracts.RoutineUsecase
	onceRoutineUsecase     sync.Once
)

func NewRoutineUsecase(
	routineRepository contracts.RoutineRepository,
	redisRepository contracts.RedisRepository,
	lockerService contracts.LockerService,
	eventPublisher contracts.ScheduleEventPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.RoutineUsecase {
	onceRoutineUsecase.Do(func() {
		instance := &routineUsecase{
			RoutineRepository: routineRepository,
			RedisRepository:   redisRepository,
			LockerService:     lockerService,
			EventPublisher:    eventPublisher,
			InternalConfig:    internalConfig,
			Log:               logger,
		}
		routineUsecaseInstance = instance
	})
	return routineUsecaseInstance
}

func (uc *routineUsecase) cacheKey(userID string) string {
	return fmt.Sprintf(constvars.RedisKeyWeeklyScheduleFormat, userID)
}

func (uc *routineUsecase) lockKey(userID string) string {
	return fmt.Sprintf(constvars.RedisKeyRoutineLockFormat, userID)
}

// withScheduleLock serializes every mutation of one user's timetable. A lock
// that cannot be acquired means another request is mid-flight, so the caller
// is told to retry instead of waiting.
func (uc *routineUsecase) withScheduleLock(ctx context.Context, userID string, fn func() error) error {
	key := uc.lockKey(userID)
	expiration := time.Duration(uc.InternalConfig.Scheduling.LockExpirationInSecond) * time.Second

	acquired, lockValue, err := uc.LockerService.TryLock(ctx, key, expiration)
	if err != nil {
		return err
	}
	if !acquired {
		return exceptions.ErrScheduleBusy(nil)
	}
	defer func() {
		if unlockErr := uc.LockerService.Unlock(ctx, key, lockValue); unlockErr != nil {
			uc.Log.Warn("routineUsecase failed to release schedule lock",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
				zap.String(constvars.LoggingRedisKey, key),
				zap.Error(unlockErr),
			)
		}
	}()

	return fn()
}

func (uc *routineUsecase) invalidateCache(ctx context.Context, userID string) {
	key := uc.cacheKey(userID)
	if err := uc.RedisRepository.Delete(ctx, key); err != nil {
		uc.Log.Warn("routineUsecase failed to invalidate schedule cache",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
	}
}

// publishEvent reports timetable changes to the schedule queue. Publishing is
// best effort, a broker outage must not fail the user's request.
func (uc *routineUsecase) publishEvent(ctx context.Context, eventType, userID string, payload interface{}) {
	if err := uc.EventPublisher.PublishScheduleEvent(ctx, eventType, userID, payload); err != nil {
		uc.Log.Warn("routineUsecase failed to publish schedule event",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingEventTypeKey, eventType),
			zap.String(constvars.LoggingUserIDKey, userID),
			zap.Error(err),
		)
	}
}

func (uc *routineUsecase) CreateActivity(ctx context.Context, request *requests.CreateActivity) (*responses.Activity, error) {
	uc.Log.Info("RoutineUsecase.CreateActivity called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingUserIDKey, request.UserID),
	)

	interval, err := parseOrderedInterval(request.StartTime, request.EndTime, request.Category)
	if err != nil {
		return nil, err
	}
	days, err := parseDays(request.Days)
	if err != nil {
		return nil, err
	}

	var response *responses.Activity
	err = uc.withScheduleLock(ctx, request.UserID, func() error {
		existing, err := uc.RoutineRepository.FindByUser(ctx, request.UserID)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		activity := models.Activity{
			ID:          utils.GenerateActivityID(),
			UserID:      request.UserID,
			Title:       request.Title,
			Description: request.Description,
			Category:    request.Category,
			Days:        request.Days,
			StartTime:   request.StartTime,
			EndTime:     request.EndTime,
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		if !activity.IsExempt() {
			conflicts := schedule.FindConflicts(days, interval, checkableEntries(existing), "")
			if len(conflicts) > 0 {
				return exceptions.ErrScheduleConflict(findActivitiesByIDs(existing, conflicts))
			}
		}

		if err := uc.RoutineRepository.CreateActivity(ctx, &activity); err != nil {
			return err
		}
		uc.invalidateCache(ctx, request.UserID)

		converted := activity.ConvertIntoResponse()
		response = &converted
		return nil
	})
	if err != nil {
		return nil, err
	}
	return response, nil
}

func (uc *routineUsecase) CreateActivityAutoSlot(ctx context.Context, request *requests.CreateActivityAutoSlot) (*responses.Activity, error) {
	uc.Log.Info("RoutineUsecase.CreateActivityAutoSlot called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingUserIDKey, request.UserID),
	)

	preferredStart, err := utils.ParseClock(request.PreferredStart)
	if err != nil {
		return nil, exceptions.ErrInvalidActivityInterval(err)
	}
	days, err := parseDays(request.Days)
	if err != nil {
		return nil, err
	}

	var response *responses.Activity
	err = uc.withScheduleLock(ctx, request.UserID, func() error {
		existing, err := uc.RoutineRepository.FindByUser(ctx, request.UserID)
		if err != nil {
			return err
		}

		start, err := schedule.ResolveAll(days, request.DurationMinutes, preferredStart, checkableEntries(existing))
		if err != nil {
			if errors.Is(err, schedule.ErrSchedulingExhausted) {
				return exceptions.ErrSchedulingExhausted(err)
			}
			return exceptions.ErrInvalidActivityInterval(err)
		}

		now := time.Now().UTC()
		activity := models.Activity{
			ID:          utils.GenerateActivityID(),
			UserID:      request.UserID,
			Title:       request.Title,
			Description: request.Description,
			Category:    request.Category,
			Days:        request.Days,
			StartTime:   utils.FormatClock(start),
			EndTime:     utils.FormatClock(start + request.DurationMinutes),
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		if err := uc.RoutineRepository.CreateActivity(ctx, &activity); err != nil {
			return err
		}
		uc.invalidateCache(ctx, request.UserID)

		converted := activity.ConvertIntoResponse()
		response = &converted
		return nil
	})
	if err != nil {
		return nil, err
	}
	return response, nil
}

func (uc *routineUsecase) SetSleepSchedule(ctx context.Context, request *requests.SetSleepSchedule) ([]responses.Activity, error) {
	uc.Log.Info("RoutineUsecase.SetSleepSchedule called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingUserIDKey, request.UserID),
	)

	perDay, err := uc.parseSleepSchedule(request)
	if err != nil {
		return nil, err
	}

	blocks, err := schedule.DeriveSleepSchedule(perDay)
	if err != nil {
		return nil, exceptions.ErrInvalidActivityInterval(err)
	}
	companions := schedule.DeriveCompanions(perDay, schedule.CompanionOffsets{
		AfterWake:       uc.InternalConfig.Scheduling.AfterWakeOffsetInMinute,
		MorningDuration: uc.InternalConfig.Scheduling.MorningDurationInMinute,
		BeforeSleep:     uc.InternalConfig.Scheduling.BeforeSleepOffsetInMinute,
		EveningDuration: uc.InternalConfig.Scheduling.EveningDurationInMinute,
	})

	var derived []models.Activity
	var response []responses.Activity
	err = uc.withScheduleLock(ctx, request.UserID, func() error {
		existing, err := uc.RoutineRepository.FindByUser(ctx, request.UserID)
		if err != nil {
			return err
		}

		placed, err := uc.placeCompanions(companions, checkableUserEntries(existing))
		if err != nil {
			return err
		}
		derived = uc.buildDerivedActivities(request.UserID, blocks, placed)

		var oldDerivedIDs []string
		for _, activity := range existing {
			if activity.Derived {
				oldDerivedIDs = append(oldDerivedIDs, activity.ID)
			}
		}

		// Insert the replacement set before removing the old one so a crash
		// in between never leaves the user without a sleep schedule.
		if err := uc.RoutineRepository.CreateActivities(ctx, derived); err != nil {
			return err
		}
		if err := uc.RoutineRepository.DeleteActivities(ctx, request.UserID, oldDerivedIDs); err != nil {
			return err
		}
		uc.invalidateCache(ctx, request.UserID)

		response = make([]responses.Activity, 0, len(derived))
		for _, activity := range derived {
			response = append(response, activity.ConvertIntoResponse())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.publishEvent(ctx, constvars.ScheduleEventDerivedSetReplaced, request.UserID, map[string]interface{}{
		"derived_count": len(derived),
	})
	return response, nil
}

func (uc *routineUsecase) parseSleepSchedule(request *requests.SetSleepSchedule) (map[schedule.Weekday]schedule.WakeSleep, error) {
	hasUniform := request.Uniform != nil
	hasPerDay := len(request.PerDay) > 0
	if hasUniform == hasPerDay {
		return nil, exceptions.ErrInvalidSleepSchedule(nil)
	}

	perDay := make(map[schedule.Weekday]schedule.WakeSleep)
	if hasUniform {
		times, err := parseWakeSleep(*request.Uniform)
		if err != nil {
			return nil, err
		}
		for _, day := range schedule.AllWeekdays {
			perDay[day] = times
		}
		return perDay, nil
	}

	for name, sleepTimes := range request.PerDay {
		day, err := schedule.ParseWeekday(name)
		if err != nil {
			return nil, exceptions.ErrInputValidation(err)
		}
		times, err := parseWakeSleep(sleepTimes)
		if err != nil {
			return nil, err
		}
		perDay[day] = times
	}
	return perDay, nil
}

func parseWakeSleep(times requests.SleepTimes) (schedule.WakeSleep, error) {
	wake, err := utils.ParseClock(times.WakeTime)
	if err != nil {
		return schedule.WakeSleep{}, exceptions.ErrInvalidActivityInterval(err)
	}
	sleep, err := utils.ParseClock(times.SleepTime)
	if err != nil {
		return schedule.WakeSleep{}, exceptions.ErrInvalidActivityInterval(err)
	}
	return schedule.WakeSleep{Wake: wake, Sleep: sleep}, nil
}

// placeCompanions slides each morning companion to the next free slot on its
// day so the regenerated set never overlaps what the user scheduled
// themselves. Evening companions are Rest and may coexist with anything.
func (uc *routineUsecase) placeCompanions(companions []schedule.Companion, userEntries []schedule.Entry) ([]schedule.Companion, error) {
	placed := make([]schedule.Companion, 0, len(companions))
	for _, companion := range companions {
		if companion.Kind != schedule.CompanionMorning {
			placed = append(placed, companion)
			continue
		}

		duration := companion.Interval.DurationMinutes()
		start, err := schedule.Resolve(companion.Day, duration, companion.Interval.Start, userEntries)
		if err != nil {
			if errors.Is(err, schedule.ErrSchedulingExhausted) {
				return nil, exceptions.ErrSchedulingExhausted(err)
			}
			return nil, exceptions.ErrInvalidActivityInterval(err)
		}
		companion.Interval = schedule.Interval{
			Start: start,
			End:   (start + duration) % schedule.MinutesPerDay,
		}
		placed = append(placed, companion)
	}
	return placed, nil
}

func (uc *routineUsecase) buildDerivedActivities(userID string, blocks []schedule.SleepBlock, companions []schedule.Companion) []models.Activity {
	now := time.Now().UTC()
	derived := make([]models.Activity, 0, len(blocks)+len(companions))

	for _, block := range blocks {
		derived = append(derived, models.Activity{
			ID:        utils.GenerateActivityID(),
			UserID:    userID,
			Title:     constvars.DerivedSleepTitle,
			Category:  constvars.CategorySleep,
			Days:      weekdayNames(block.Days),
			StartTime: utils.FormatClock(block.Interval.Start),
			EndTime:   utils.FormatClock(block.Interval.End),
			Derived:   true,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	for _, companion := range companions {
		title := constvars.DerivedMorningTitle
		category := constvars.CategoryJournal
		if companion.Kind == schedule.CompanionEvening {
			title = constvars.DerivedEveningTitle
			category = constvars.CategoryRest
		}
		derived = append(derived, models.Activity{
			ID:        utils.GenerateActivityID(),
			UserID:    userID,
			Title:     title,
			Category:  category,
			Days:      []string{string(companion.Day)},
			StartTime: utils.FormatClock(companion.Interval.Start),
			EndTime:   utils.FormatClock(companion.Interval.End),
			Derived:   true,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	return derived
}

func (uc *routineUsecase) FindActivities(ctx context.Context, request *requests.FindActivities) (*responses.WeeklySchedule, error) {
	uc.Log.Info("RoutineUsecase.FindActivities called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingUserIDKey, request.UserID),
	)

	unfiltered := request.Day == "" && request.Category == ""
	if unfiltered {
		cached, err := uc.RedisRepository.Get(ctx, uc.cacheKey(request.UserID))
		if err == nil && cached != "" {
			var weekly responses.WeeklySchedule
			if err := json.Unmarshal([]byte(cached), &weekly); err == nil {
				return &weekly, nil
			}
		}
	}

	activities, err := uc.RoutineRepository.FindByUser(ctx, request.UserID)
	if err != nil {
		return nil, err
	}
	weekly := buildWeeklySchedule(activities, request.Day, request.Category)

	if unfiltered {
		ttl := time.Duration(uc.InternalConfig.Scheduling.CacheTTLInSecond) * time.Second
		if err := uc.RedisRepository.Set(ctx, uc.cacheKey(request.UserID), weekly, ttl); err != nil {
			uc.Log.Warn("routineUsecase failed to cache weekly schedule",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
				zap.Error(err),
			)
		}
	}
	return weekly, nil
}

func (uc *routineUsecase) UpdateActivity(ctx context.Context, request *requests.UpdateActivity) (*responses.Activity, error) {
	uc.Log.Info("RoutineUsecase.UpdateActivity called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingUserIDKey, request.UserID),
		zap.String(constvars.LoggingActivityIDKey, request.RoutineID),
	)

	interval, err := parseOrderedInterval(request.StartTime, request.EndTime, request.Category)
	if err != nil {
		return nil, err
	}
	days, err := parseDays(request.Days)
	if err != nil {
		return nil, err
	}

	var response *responses.Activity
	err = uc.withScheduleLock(ctx, request.UserID, func() error {
		activity, err := uc.RoutineRepository.FindByID(ctx, request.UserID, request.RoutineID)
		if err != nil {
			return err
		}
		if activity == nil {
			return exceptions.ErrActivityNotFound(nil)
		}

		existing, err := uc.RoutineRepository.FindByUser(ctx, request.UserID)
		if err != nil {
			return err
		}

		updated := *activity
		updated.Title = request.Title
		updated.Description = request.Description
		updated.Category = request.Category
		updated.Days = request.Days
		updated.StartTime = request.StartTime
		updated.EndTime = request.EndTime
		updated.UpdatedAt = time.Now().UTC()

		if !updated.IsExempt() {
			conflicts := schedule.FindConflicts(days, interval, checkableEntries(existing), updated.ID)
			if len(conflicts) > 0 {
				return exceptions.ErrScheduleConflict(findActivitiesByIDs(existing, conflicts))
			}
		}

		if err := uc.RoutineRepository.UpdateActivity(ctx, &updated); err != nil {
			return err
		}
		uc.invalidateCache(ctx, request.UserID)

		converted := updated.ConvertIntoResponse()
		response = &converted
		return nil
	})
	if err != nil {
		return nil, err
	}
	return response, nil
}

func (uc *routineUsecase) ToggleCompletion(ctx context.Context, request *requests.ToggleCompletion) (*responses.Activity, error) {
	uc.Log.Info("RoutineUsecase.ToggleCompletion called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingUserIDKey, request.UserID),
		zap.String(constvars.LoggingActivityIDKey, request.RoutineID),
	)

	var response *responses.Activity
	err := uc.withScheduleLock(ctx, request.UserID, func() error {
		activity, err := uc.RoutineRepository.FindByID(ctx, request.UserID, request.RoutineID)
		if err != nil {
			return err
		}
		if activity == nil {
			return exceptions.ErrActivityNotFound(nil)
		}

		activity.Completed = !activity.Completed
		activity.UpdatedAt = time.Now().UTC()

		if err := uc.RoutineRepository.UpdateActivity(ctx, activity); err != nil {
			return err
		}
		uc.invalidateCache(ctx, request.UserID)

		converted := activity.ConvertIntoResponse()
		response = &converted
		return nil
	})
	if err != nil {
		return nil, err
	}
	return response, nil
}

func (uc *routineUsecase) DeleteActivity(ctx context.Context, request *requests.DeleteActivity) error {
	uc.Log.Info("RoutineUsecase.DeleteActivity called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingUserIDKey, request.UserID),
		zap.String(constvars.LoggingActivityIDKey, request.RoutineID),
	)

	return uc.withScheduleLock(ctx, request.UserID, func() error {
		activity, err := uc.RoutineRepository.FindByID(ctx, request.UserID, request.RoutineID)
		if err != nil {
			return err
		}
		if activity == nil {
			return exceptions.ErrActivityNotFound(nil)
		}

		if err := uc.RoutineRepository.DeleteActivity(ctx, request.UserID, request.RoutineID); err != nil {
			return err
		}
		uc.invalidateCache(ctx, request.UserID)
		return nil
	})
}

func (uc *routineUsecase) ClearActivities(ctx context.Context, request *requests.ClearActivities) error {
	uc.Log.Info("RoutineUsecase.ClearActivities called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingUserIDKey, request.UserID),
	)

	err := uc.withScheduleLock(ctx, request.UserID, func() error {
		if err := uc.RoutineRepository.DeleteByUser(ctx, request.UserID); err != nil {
			return err
		}
		uc.invalidateCache(ctx, request.UserID)
		return nil
	})
	if err != nil {
		return err
	}

	uc.publishEvent(ctx, constvars.ScheduleEventCleared, request.UserID, nil)
	return nil
}
