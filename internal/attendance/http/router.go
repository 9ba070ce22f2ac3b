package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/ssonuprakashks-droid/attendance/internal/attendance/service"
	"github.com/ssonuprakashks-droid/attendance/internal/attendance/store"
	"github.com/ssonuprakashks-droid/attendance/pkg/httpx"
	"github.com/ssonuprakashks-droid/attendance/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	pages        *pages
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store             store.Store
	AuthService       *service.AuthService
	AttendanceService *service.AttendanceService
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) (*Router, error) {
	p, err := newPages()
	if err != nil {
		return nil, err
	}

	r := &Router{
		Mux:          http.NewServeMux(),
		pages:        p,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain. Session resolution runs globally so
	// every handler, page or JSON, sees the same identity.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		r.withSession(),
	}

	return r, nil
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerPages()
	r.registerAttendance()
	r.registerSystem()
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	loginHandler := &LoginHandler{AuthService: r.AuthService, Pages: r.pages}
	logoutHandler := &LogoutHandler{AuthService: r.AuthService}

	// GET /login - lenient rate limit (just displays the form)
	r.Mux.Handle("GET /login",
		httpx.Chain(http.HandlerFunc(loginHandler.HandleGet),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	// POST /login - rate limited by IP + username form field to prevent brute force
	r.Mux.Handle("POST /login",
		httpx.Chain(http.HandlerFunc(loginHandler.HandlePost),
			httpx.RateLimitByIPAndFormField(httpx.StrictLimit, "username"),
		),
	)

	r.Mux.Handle("GET /logout",
		httpx.Chain(http.HandlerFunc(logoutHandler.HandleLogout),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerPages() {
	indexHandler := &IndexHandler{Pages: r.pages}
	dashboardHandler := &DashboardHandler{AttendanceService: r.AttendanceService, Pages: r.pages}
	reportsHandler := &ReportsHandler{AttendanceService: r.AttendanceService, Pages: r.pages}

	// The index handler does its own auth check so it can double as the
	// 404 surface for unmatched paths.
	r.Mux.Handle("/",
		httpx.Chain(http.HandlerFunc(indexHandler.HandleIndex),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	r.Mux.Handle("GET /dashboard",
		httpx.Chain(http.HandlerFunc(dashboardHandler.HandleDashboard),
			requireSessionPage,
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	r.Mux.Handle("GET /reports",
		httpx.Chain(http.HandlerFunc(reportsHandler.HandleReports),
			requireSessionPage,
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerAttendance() {
	attendanceHandler := &AttendanceHandler{AttendanceService: r.AttendanceService}
	summaryHandler := &SummaryHandler{AttendanceService: r.AttendanceService}

	// Mutations get a moderate per-user limit; the unique-day constraint
	// makes retries harmless but there is no reason to allow a flood.
	r.Mux.Handle("POST /check-in",
		httpx.Chain(http.HandlerFunc(attendanceHandler.HandleCheckIn),
			requireSessionJSON,
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("POST /check-out",
		httpx.Chain(http.HandlerFunc(attendanceHandler.HandleCheckOut),
			requireSessionJSON,
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("GET /api/attendance-summary",
		httpx.Chain(http.HandlerFunc(summaryHandler.HandleSummary),
			requireSessionJSON,
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
