package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"smart-todo/internal/agent"
	agentHTTP "smart-todo/internal/agent/delivery/http"
	agentRepo "smart-todo/internal/agent/repository/postgre"
	agentUC "smart-todo/internal/agent/usecase"
	"smart-todo/internal/calendar"
	calendarHTTP "smart-todo/internal/calendar/delivery/http"
	calendarUC "smart-todo/internal/calendar/usecase"
	reminderHTTP "smart-todo/internal/reminder/delivery/http"
	todoHTTP "smart-todo/internal/todo/delivery/http"
	todoRepo "smart-todo/internal/todo/repository/postgre"
	todoUC "smart-todo/internal/todo/usecase"
	uploadHTTP "smart-todo/internal/upload/delivery/http"
	uploadUC "smart-todo/internal/upload/usecase"
)

// setupAgentDomain loads the categorization rule set and registers /api/v1/agents.
func (srv HTTPServer) setupAgentDomain(ctx context.Context, api *gin.RouterGroup) (agent.UseCase, error) {
	repo := agentRepo.New(srv.postgresDB, srv.l)
	uc := agentUC.New(srv.l, repo, srv.metrics)
	if err := uc.Load(ctx); err != nil {
		return nil, err
	}

	h := agentHTTP.New(srv.l, uc)
	agentHTTP.RegisterRoutes(api.Group("/agents"), h)

	srv.l.Infof(ctx, "Agent domain registered")
	return uc, nil
}

// setupCalendarDomain registers /api/v1/calendar.
func (srv HTTPServer) setupCalendarDomain(ctx context.Context, api *gin.RouterGroup) (calendar.UseCase, error) {
	repo := todoRepo.New(srv.postgresDB, srv.l)
	providers := calendarUC.NewProviderFactory(srv.l, srv.calendarConfig)

	uc, err := calendarUC.New(srv.l, repo, providers, srv.metrics, srv.calendarConfig.CalendarID, srv.calendarConfig.Timezone)
	if err != nil {
		return nil, err
	}

	h := calendarHTTP.New(srv.l, uc)
	calendarHTTP.RegisterRoutes(api.Group("/calendar"), h)

	srv.l.Infof(ctx, "Calendar domain registered")
	return uc, nil
}

// setupTodoDomain registers /api/v1/todos.
func (srv HTTPServer) setupTodoDomain(ctx context.Context, api *gin.RouterGroup, agents agent.UseCase, cal calendar.UseCase) {
	repo := todoRepo.New(srv.postgresDB, srv.l)
	uc := todoUC.New(srv.l, repo, agents, cal, srv.dateMath)

	h := todoHTTP.New(srv.l, uc)
	todoHTTP.RegisterRoutes(api.Group("/todos"), h)

	srv.l.Infof(ctx, "Todo domain registered")
}

// setupUploadDomain registers /api/v1/uploads. Skipped when no object storage is configured.
func (srv HTTPServer) setupUploadDomain(ctx context.Context, api *gin.RouterGroup) {
	if srv.storage == nil {
		srv.l.Warnf(ctx, "Object storage not configured, skipping upload routes")
		return
	}

	uc := uploadUC.New(srv.l, srv.storage, srv.metrics, srv.storageConfig)

	h := uploadHTTP.New(srv.l, uc, srv.storageConfig.MaxUploadMB)
	uploadHTTP.RegisterRoutes(api.Group("/uploads"), h)

	srv.l.Infof(ctx, "Upload domain registered")
}

// setupNotificationDomain registers /api/v1/notifications over the shared scheduler.
func (srv HTTPServer) setupNotificationDomain(ctx context.Context, api *gin.RouterGroup) {
	h := reminderHTTP.New(srv.l, srv.reminderUC)
	reminderHTTP.RegisterRoutes(api.Group("/notifications"), h)

	srv.l.Infof(ctx, "Notification domain registered")
}
