package router

import (
	"net/http"

	"casedesk/config"
	intakeHandler "casedesk/internal/intake"
	intakeService "casedesk/internal/intake/service"
	"casedesk/internal/metrics"
	workspaceHandler "casedesk/internal/workspace"
	workspaceService "casedesk/internal/workspace/service"
	"casedesk/middleware"
	"casedesk/socket"
)

func Setup(cfg config.Config, workspaces *workspaceService.WorkspaceService, intake *intakeService.IntakeService, hub *socket.Hub) http.Handler {
	mux := http.NewServeMux()
	identity := middleware.IdentityMiddleware(cfg.Auth.JWTSecret)

	// WebSocket
	wsHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		socket.ServeWs(hub, w, r, middleware.Identity(r.Context()))
	})
	mux.Handle("/ws", identity(wsHandler))

	// REST API
	wsH := workspaceHandler.NewWorkspaceHandler(workspaces)
	intakeH := intakeHandler.NewIntakeHandler(intake)
	metricsH := metrics.NewHandler(workspaces)

	mux.Handle("/api/workspaces", identity(http.HandlerFunc(wsH.GetWorkspaces)))
	mux.Handle("/api/workspaces/get", identity(http.HandlerFunc(wsH.GetWorkspace)))
	mux.Handle("/api/metrics", identity(http.HandlerFunc(metricsH.GetMetrics)))

	mux.Handle("/api/intake/start", identity(http.HandlerFunc(intakeH.StartDraft)))
	mux.Handle("/api/intake", identity(http.HandlerFunc(intakeH.GetDraft)))
	mux.Handle("/api/intake/summarise", identity(http.HandlerFunc(intakeH.Summarise)))
	mux.Handle("/api/intake/details", identity(http.HandlerFunc(intakeH.UpdateDetails)))
	mux.Handle("/api/intake/back", identity(http.HandlerFunc(intakeH.GoBack)))
	mux.Handle("/api/intake/save", identity(http.HandlerFunc(intakeH.SaveDetails)))
	mux.Handle("/api/intake/close", identity(http.HandlerFunc(intakeH.CloseDraft)))

	return middleware.RequestLogger(middleware.CORSMiddleware(cfg.Server.AllowOrigin)(mux))
}
