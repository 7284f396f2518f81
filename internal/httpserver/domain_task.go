package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	taskHTTP "realtime-taskboard/internal/task/delivery/http"
)

// setupTaskDomain wires the task delivery layer and registers its routes.
// The UseCase itself is built in main, because the change feed listener
// shares it.
func (srv *HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup) {
	h := taskHTTP.New(srv.l, srv.taskUC)
	taskHTTP.RegisterRoutes(api, h, srv.mw)

	srv.l.Infof(ctx, "Task domain registered")
}
