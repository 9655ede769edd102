package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"storyai-service/internal/app/contracts"
	"storyai-service/internal/pkg/constvars"
	"storyai-service/internal/pkg/dto/requests"
	"storyai-service/internal/pkg/exceptions"
	"storyai-service/internal/pkg/utils"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type RoutineController struct {
	Log            *zap.Logger
	RoutineUsecase contracts.RoutineUsecase
}

var (
	routineControllerInstance *RoutineController
	onceRoutineController     sync.Once
)

func NewRoutineController(logger *zap.Logger, routineUsecase contracts.RoutineUsecase) *RoutineController {
	onceRoutineController.Do(func() {
		instance := &RoutineController{
			Log:            logger,
			RoutineUsecase: routineUsecase,
		}
		routineControllerInstance = instance
	})
	return routineControllerInstance
}

func (ctrl *RoutineController) requestID(w http.ResponseWriter, r *http.Request, caller string) (string, bool) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error(caller + " requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return "", false
	}
	return requestID, true
}

func (ctrl *RoutineController) CreateActivity(w http.ResponseWriter, r *http.Request) {
	requestID, ok := ctrl.requestID(w, r, "RoutineController.CreateActivity")
	if !ok {
		return
	}
	ctrl.Log.Info("RoutineController.CreateActivity called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.CreateActivity)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		ctrl.Log.Error("RoutineController.CreateActivity error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.UserID = chi.URLParam(r, constvars.URLParamUserID)

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("RoutineController.CreateActivity validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.RoutineUsecase.CreateActivity(ctx, request)
	if err != nil {
		ctrl.Log.Error("RoutineController.CreateActivity error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("RoutineController.CreateActivity succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateActivitySuccessMessage, response)
}

func (ctrl *RoutineController) CreateActivityAutoSlot(w http.ResponseWriter, r *http.Request) {
	requestID, ok := ctrl.requestID(w, r, "RoutineController.CreateActivityAutoSlot")
	if !ok {
		return
	}
	ctrl.Log.Info("RoutineController.CreateActivityAutoSlot called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.CreateActivityAutoSlot)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		ctrl.Log.Error("RoutineController.CreateActivityAutoSlot error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.UserID = chi.URLParam(r, constvars.URLParamUserID)

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("RoutineController.CreateActivityAutoSlot validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.RoutineUsecase.CreateActivityAutoSlot(ctx, request)
	if err != nil {
		ctrl.Log.Error("RoutineController.CreateActivityAutoSlot error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("RoutineController.CreateActivityAutoSlot succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.AutoSlotActivitySuccessMessage, response)
}

func (ctrl *RoutineController) SetSleepSchedule(w http.ResponseWriter, r *http.Request) {
	requestID, ok := ctrl.requestID(w, r, "RoutineController.SetSleepSchedule")
	if !ok {
		return
	}
	ctrl.Log.Info("RoutineController.SetSleepSchedule called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.SetSleepSchedule)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		ctrl.Log.Error("RoutineController.SetSleepSchedule error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.UserID = chi.URLParam(r, constvars.URLParamUserID)

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("RoutineController.SetSleepSchedule validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.RoutineUsecase.SetSleepSchedule(ctx, request)
	if err != nil {
		ctrl.Log.Error("RoutineController.SetSleepSchedule error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("RoutineController.SetSleepSchedule succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SetSleepScheduleSuccessMessage, response)
}

func (ctrl *RoutineController) FindActivities(w http.ResponseWriter, r *http.Request) {
	requestID, ok := ctrl.requestID(w, r, "RoutineController.FindActivities")
	if !ok {
		return
	}
	ctrl.Log.Info("RoutineController.FindActivities called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := &requests.FindActivities{
		Day:      r.URL.Query().Get(constvars.URLQueryParamDay),
		Category: r.URL.Query().Get(constvars.URLQueryParamCategory),
		UserID:   chi.URLParam(r, constvars.URLParamUserID),
	}

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("RoutineController.FindActivities validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.RoutineUsecase.FindActivities(ctx, request)
	if err != nil {
		ctrl.Log.Error("RoutineController.FindActivities error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("RoutineController.FindActivities succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindActivitiesSuccessMessage, response)
}

func (ctrl *RoutineController) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	requestID, ok := ctrl.requestID(w, r, "RoutineController.UpdateActivity")
	if !ok {
		return
	}
	ctrl.Log.Info("RoutineController.UpdateActivity called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.UpdateActivity)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		ctrl.Log.Error("RoutineController.UpdateActivity error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.UserID = chi.URLParam(r, constvars.URLParamUserID)
	request.RoutineID = chi.URLParam(r, constvars.URLParamRoutineID)

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("RoutineController.UpdateActivity validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.RoutineUsecase.UpdateActivity(ctx, request)
	if err != nil {
		ctrl.Log.Error("RoutineController.UpdateActivity error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("RoutineController.UpdateActivity succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateActivitySuccessMessage, response)
}

func (ctrl *RoutineController) ToggleCompletion(w http.ResponseWriter, r *http.Request) {
	requestID, ok := ctrl.requestID(w, r, "RoutineController.ToggleCompletion")
	if !ok {
		return
	}
	ctrl.Log.Info("RoutineController.ToggleCompletion called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := &requests.ToggleCompletion{
		UserID:    chi.URLParam(r, constvars.URLParamUserID),
		RoutineID: chi.URLParam(r, constvars.URLParamRoutineID),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.RoutineUsecase.ToggleCompletion(ctx, request)
	if err != nil {
		ctrl.Log.Error("RoutineController.ToggleCompletion error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("RoutineController.ToggleCompletion succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ToggleCompletionSuccessMessage, response)
}

func (ctrl *RoutineController) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	requestID, ok := ctrl.requestID(w, r, "RoutineController.DeleteActivity")
	if !ok {
		return
	}
	ctrl.Log.Info("RoutineController.DeleteActivity called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := &requests.DeleteActivity{
		UserID:    chi.URLParam(r, constvars.URLParamUserID),
		RoutineID: chi.URLParam(r, constvars.URLParamRoutineID),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err := ctrl.RoutineUsecase.DeleteActivity(ctx, request)
	if err != nil {
		ctrl.Log.Error("RoutineController.DeleteActivity error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("RoutineController.DeleteActivity succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteActivitySuccessMessage, nil)
}

func (ctrl *RoutineController) ClearActivities(w http.ResponseWriter, r *http.Request) {
	requestID, ok := ctrl.requestID(w, r, "RoutineController.ClearActivities")
	if !ok {
		return
	}
	ctrl.Log.Info("RoutineController.ClearActivities called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := &requests.ClearActivities{
		UserID: chi.URLParam(r, constvars.URLParamUserID),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err := ctrl.RoutineUsecase.ClearActivities(ctx, request)
	if err != nil {
		ctrl.Log.Error("RoutineController.ClearActivities error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("RoutineController.ClearActivities succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ClearActivitiesSuccessMessage, nil)
}
