package contracts

import (
	"context"
	"storyai-service/internal/app/models"
	"storyai-service/internal/pkg/dto/requests"
	"storyai-service/internal/pkg/dto/responses"
)

type RoutineRepository interface {
	FindByUser(ctx context.Context, userID string) ([]models.Activity, error)
	FindByID(ctx context.Context, userID, activityID string) (*models.Activity, error)
	CreateActivity(ctx context.Context, activity *models.Activity) error
	CreateActivities(ctx context.Context, activities []models.Activity) error
	UpdateActivity(ctx context.Context, activity *models.Activity) error
	DeleteActivity(ctx context.Context, userID, activityID string) error
	DeleteActivities(ctx context.Context, userID string, activityIDs []string) error
	DeleteByUser(ctx context.Context, userID string) error
}

type RoutineUsecase interface {
	CreateActivity(ctx context.Context, request *requests.CreateActivity) (*responses.Activity, error)
	CreateActivityAutoSlot(ctx context.Context, request *requests.CreateActivityAutoSlot) (*responses.Activity, error)
	SetSleepSchedule(ctx context.Context, request *requests.SetSleepSchedule) ([]responses.Activity, error)
	FindActivities(ctx context.Context, request *requests.FindActivities) (*responses.WeeklySchedule, error)
	UpdateActivity(ctx context.Context, request *requests.UpdateActivity) (*responses.Activity, error)
	ToggleCompletion(ctx context.Context, request *requests.ToggleCompletion) (*responses.Activity, error)
	DeleteActivity(ctx context.Context, request *requests.DeleteActivity) error
	ClearActivities(ctx context.Context, request *requests.ClearActivities) error
}
