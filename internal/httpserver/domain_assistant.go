package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"study-assistant/internal/chat"
	chatHTTP "study-assistant/internal/chat/delivery/http"
	chatUC "study-assistant/internal/chat/usecase"
	courseRepo "study-assistant/internal/course/repository/postgre"
	courseUC "study-assistant/internal/course/usecase"
	"study-assistant/internal/middleware"
	notifRepo "study-assistant/internal/notification/repository/postgre"
	reminderHTTP "study-assistant/internal/reminder/delivery/http"
	reminderRepo "study-assistant/internal/reminder/repository/postgre"
	reminderUC "study-assistant/internal/reminder/usecase"
	scheduleRepo "study-assistant/internal/schedule/repository/postgre"
	scheduleUC "study-assistant/internal/schedule/usecase"
	taskRepo "study-assistant/internal/task/repository/postgre"
	taskUC "study-assistant/internal/task/usecase"
)

// setupAssistantDomain initializes the assistant domains and registers their
// routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.postgresDB, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(repo, srv.l)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv *HTTPServer) setupAssistantDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// Repositories
	courses := courseUC.New(courseRepo.New(srv.postgresDB, srv.l), srv.l)
	tasks := taskUC.New(taskRepo.New(srv.postgresDB, srv.l), srv.loc, srv.l)

	// The calendar mirror stays nil when not configured, which disables it.
	var calendar scheduleUC.CalendarClient
	if srv.calendar != nil {
		calendar = srv.calendar
	}
	schedules := scheduleUC.New(scheduleRepo.New(srv.postgresDB, srv.l), calendar, srv.calendarID, srv.loc, srv.l)

	notifications := notifRepo.New(srv.postgresDB, srv.l)
	reminders := reminderUC.New(reminderRepo.New(srv.postgresDB, srv.l), notifications, srv.l)

	// Chat pipeline
	pending, err := chat.NewPendingStore()
	if err != nil {
		return err
	}
	chatUseCase := chatUC.New(srv.resolver, srv.extractor, courses, tasks, schedules, reminders, pending, srv.loc, srv.l)

	// Handlers and routes
	chatHTTP.RegisterRoutes(api, chatHTTP.New(srv.l, chatUseCase), mw)
	reminderHTTP.RegisterRoutes(api, reminderHTTP.New(srv.l, reminders))

	srv.l.Infof(ctx, "Assistant domain registered")
	return nil
}
