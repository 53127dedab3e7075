package router

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"hrdashboard/internal/auth"
	"hrdashboard/internal/config"
	"hrdashboard/internal/handler"
	"hrdashboard/internal/logger"
	"hrdashboard/internal/validator"
)

// formOverheadBytes leaves room for the text fields sent next to a resume.
const formOverheadBytes = 1 << 20

// Handlers groups the HTTP handlers mounted by Register.
type Handlers struct {
	Auth         *handler.AuthHandler
	Dashboard    *handler.DashboardHandler
	Jobs         *handler.JobHandler
	Applications *handler.ApplicationHandler
	Contacts     *handler.ContactHandler
	Settings     *handler.SettingsHandler
}

// Register wires routes and middleware.
func Register(e *echo.Echo, cfg *config.Config, sessions *auth.Manager, h Handlers) {
	e.HTTPErrorHandler = ErrorHandler
	e.Validator = validator.New()

	e.Use(middleware.RequestID())
	e.Use(requestContext)
	e.Use(middleware.RequestLoggerWithConfig(requestLoggerConfig()))
	e.Use(middleware.Recover())
	if cfg.UploadMaxBytes > 0 {
		e.Use(middleware.BodyLimit(fmt.Sprintf("%dK", (cfg.UploadMaxBytes+formOverheadBytes)/1024)))
	}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public routes
	e.GET("/", h.Auth.LoginPage)
	e.POST("/", h.Auth.Login)
	e.GET("/logout", h.Auth.Logout)

	cors := corsMiddleware(cfg.CORSAllowedOrigins)
	public(e, http.MethodGet, "/apply/:job_id", h.Applications.ApplyForm, cors)
	public(e, http.MethodPost, "/apply/:job_id", h.Applications.Apply, cors)
	public(e, http.MethodPost, "/contact-us/add", h.Contacts.Submit, cors)

	if cfg.Storage.Type == "local" {
		e.GET("/uploads/resumes/:filename", h.Applications.Resume)
	}

	// Session gated routes
	gate := sessions.Middleware()

	e.GET("/dashboard", h.Dashboard.Show, gate...)

	e.GET("/jobs", h.Jobs.List, gate...)
	e.POST("/jobs", h.Jobs.Create, gate...)
	e.GET("/edit-job/:id", h.Jobs.EditForm, gate...)
	e.POST("/edit-job/:id", h.Jobs.Update, gate...)
	e.GET("/delete-job/:id", h.Jobs.Delete, gate...)

	e.GET("/applications", h.Applications.List, gate...)
	e.GET("/download-excel", h.Applications.ExportAll, gate...)
	e.GET("/export-applications/:job_id", h.Applications.ExportJob, gate...)

	e.GET("/contact-us", h.Contacts.List, gate...)

	e.GET("/settings", h.Settings.Show, gate...)
	e.POST("/settings", h.Settings.ChangePassword, gate...)
}

// public mounts an unauthenticated route, answering CORS preflight when
// cross origin access is configured.
func public(e *echo.Echo, method, path string, h echo.HandlerFunc, cors []echo.MiddlewareFunc) {
	e.Add(method, path, h, cors...)
	if len(cors) > 0 {
		e.OPTIONS(path, func(c echo.Context) error {
			return c.NoContent(http.StatusNoContent)
		}, cors...)
	}
}

func corsMiddleware(origins []string) []echo.MiddlewareFunc {
	if len(origins) == 0 {
		return nil
	}
	return []echo.MiddlewareFunc{middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: origins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAccept},
	})}
}

// requestContext copies the request id into the request context for logging.
func requestContext(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Response().Header().Get(echo.HeaderXRequestID)
		if id != "" {
			req := c.Request()
			c.SetRequest(req.WithContext(logger.WithRequestID(req.Context(), id)))
		}
		return next(c)
	}
}

func requestLoggerConfig() middleware.RequestLoggerConfig {
	return middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("remote_ip", v.RemoteIP),
			}
			if v.Error != nil {
				level = slog.LevelWarn
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			logger.FromContext(c.Request().Context()).LogAttrs(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	}
}
