package routers

import (
	"storyai-service/internal/app/delivery/http/controllers"
	"storyai-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachRoutineRoutes(router chi.Router, middlewares *middlewares.Middlewares, routineController *controllers.RoutineController) {
	router.Post("/", routineController.CreateActivity)
	router.With(middlewares.ThrottleAutoSlot()).Post("/auto", routineController.CreateActivityAutoSlot)
	router.Put("/sleep-schedule", routineController.SetSleepSchedule)
	router.Get("/", routineController.FindActivities)
	router.Put("/{routine_id}", routineController.UpdateActivity)
	router.Patch("/{routine_id}/completion", routineController.ToggleCompletion)
	router.Delete("/{routine_id}", routineController.DeleteActivity)
	router.Delete("/", routineController.ClearActivities)
}
