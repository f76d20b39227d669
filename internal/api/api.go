// Package api wires the gin server, session store and routes.
package api

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/jon4hz/surfcast/internal/api/auth"
	"github.com/jon4hz/surfcast/internal/api/handler"
	"github.com/jon4hz/surfcast/internal/api/templates"
	"github.com/jon4hz/surfcast/internal/config"
	"github.com/jon4hz/surfcast/internal/database"
	"github.com/jon4hz/surfcast/internal/forecast"
	"github.com/jon4hz/surfcast/internal/spots"
)

// Server is the surfcast HTTP server.
type Server struct {
	cfg          *config.Config
	ginEngine    *gin.Engine
	db           database.DB
	registry     *spots.Registry
	forecast     *forecast.Client
	authProvider *auth.Provider
}

// New creates a new server with all dependencies injected.
func New(cfg *config.Config, db database.DB, fc *forecast.Client, debug bool) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if !debug {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		cfg:          cfg,
		ginEngine:    gin.Default(),
		db:           db,
		registry:     spots.Default(),
		forecast:     fc,
		authProvider: auth.New(db),
	}

	tmpl, err := templates.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}
	s.ginEngine.SetHTMLTemplate(tmpl)

	return s, nil
}

func (s *Server) setupSession() {
	store := cookie.NewStore([]byte(s.cfg.SessionKey))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   s.cfg.SessionMaxAge,
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	})
	s.ginEngine.Use(sessions.Sessions("surfcast_session", store))
}

func (s *Server) setupRoutes() {
	s.ginEngine.Use(gzip.Gzip(gzip.DefaultCompression))
	s.ginEngine.Use(RequestID(), NoCache())
	s.setupSession()

	h := handler.New(s.db, s.registry, s.forecast)

	s.ginEngine.GET("/", h.Home)
	s.ginEngine.POST("/", redirectTo("/"))

	s.ginEngine.GET("/login", s.authProvider.LoginPage)
	s.ginEngine.POST("/login", s.authProvider.Login)
	s.ginEngine.GET("/register", s.authProvider.RegisterPage)
	s.ginEngine.POST("/register", s.authProvider.Register)
	s.ginEngine.GET("/logout", s.authProvider.Logout)
	s.ginEngine.POST("/logout", s.authProvider.Logout)

	s.ginEngine.GET("/spots", h.Spots)
	s.ginEngine.POST("/spots", redirectTo("/spots"))
	s.ginEngine.GET("/spots/:slug", h.SpotForecast)
	s.ginEngine.POST("/spots/:slug", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/spots/"+c.Param("slug"))
	})

	protected := s.ginEngine.Group("/")
	protected.Use(s.authProvider.RequireAuth())

	protected.GET("/favorites", h.Favorites)
	protected.POST("/favorites", redirectTo("/favorites"))
	protected.POST("/add", h.AddFavorite)
	protected.POST("/remove", h.RemoveFavorite)
}

func redirectTo(target string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Redirect(http.StatusFound, target)
	}
}

// Run starts the HTTP server.
func (s *Server) Run() error {
	s.setupRoutes()

	return s.ginEngine.Run(s.cfg.Listen)
}
