// Package handler contains the page handlers for the surfcast web UI.
package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/jon4hz/surfcast/internal/api/auth"
	"github.com/jon4hz/surfcast/internal/database"
	"github.com/jon4hz/surfcast/internal/forecast"
	"github.com/jon4hz/surfcast/internal/spots"
)

// Handler orchestrates the stores and the forecast gateway for the views.
type Handler struct {
	db       database.DB
	registry *spots.Registry
	forecast *forecast.Client
}

// New creates a new page handler.
func New(db database.DB, registry *spots.Registry, fc *forecast.Client) *Handler {
	return &Handler{
		db:       db,
		registry: registry,
		forecast: fc,
	}
}

// Home renders the homepage.
func (h *Handler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"LoggedIn": loggedIn(c),
	})
}

// Spots renders the list of all registered spots.
func (h *Handler) Spots(c *gin.Context) {
	c.HTML(http.StatusOK, "spots.html", gin.H{
		"Spots":    h.registry.All(),
		"Flashes":  takeFlashes(c),
		"LoggedIn": loggedIn(c),
	})
}

// SpotForecast resolves the spot slug, fetches all four forecast facets and
// renders the combined view. An unknown slug flashes "Spot not found" and
// redirects to the spot listing without touching the gateway.
func (h *Handler) SpotForecast(c *gin.Context) {
	spot, ok := h.registry.Resolve(c.Param("slug"))
	if !ok {
		flashRedirect(c, "Spot not found", "/spots")
		return
	}

	bundle := h.forecast.FetchAll(c.Request.Context(), spot.ID)

	c.HTML(http.StatusOK, "forecast.html", gin.H{
		"SpotName":    spot.Name,
		"CurrentDate": time.Now().Format("Mon, 02 January 2006"),
		"Wave":        bundle.Wave,
		"Wind":        bundle.Wind,
		"Weather":     bundle.Weather,
		"Conditions":  bundle.Conditions,
		"LoggedIn":    loggedIn(c),
	})
}

// Favorites renders the user's favorite spots next to the full registry.
func (h *Handler) Favorites(c *gin.Context) {
	userID := auth.UserID(c)

	favorites, err := h.db.ListFavorites(c.Request.Context(), userID)
	if err != nil {
		log.Error("failed to list favorites", "user_id", userID, "error", err)
	}

	c.HTML(http.StatusOK, "favorites.html", gin.H{
		"Spots":     h.registry.All(),
		"Favorites": lo.Map(favorites, func(f database.Favorite, _ int) string { return f.Spot }),
		"Flashes":   takeFlashes(c),
		"LoggedIn":  true,
	})
}

// AddFavorite adds the submitted spot to the user's favorites.
func (h *Handler) AddFavorite(c *gin.Context) {
	userID := auth.UserID(c)

	spot := c.PostForm("spot")
	if spot == "" {
		flashRedirect(c, "Must select spot to add", "/favorites")
		return
	}

	exists, err := h.db.FavoriteExists(c.Request.Context(), userID, spot)
	if err != nil {
		log.Error("failed to check favorite", "user_id", userID, "error", err)
		flashRedirect(c, "Something went wrong, try again", "/favorites")
		return
	}
	if exists {
		flashRedirect(c, "Spot already exists", "/favorites")
		return
	}

	if _, err := h.db.AddFavorite(c.Request.Context(), userID, spot); err != nil {
		// The unique index catches an add race the pre-check missed.
		if errors.Is(err, database.ErrDuplicateFavorite) {
			flashRedirect(c, "Spot already exists", "/favorites")
			return
		}
		log.Error("failed to add favorite", "user_id", userID, "error", err)
		flashRedirect(c, "Something went wrong, try again", "/favorites")
		return
	}

	flashRedirect(c, "Spot added to favorites", "/favorites")
}

// RemoveFavorite removes the submitted spot from the user's favorites.
// Removing a spot that was never added is a no-op with a message.
func (h *Handler) RemoveFavorite(c *gin.Context) {
	userID := auth.UserID(c)

	spot := c.PostForm("spotfav")
	if spot == "" {
		flashRedirect(c, "Must select spot to remove", "/favorites")
		return
	}

	removed, err := h.db.RemoveFavorite(c.Request.Context(), userID, spot)
	if err != nil {
		log.Error("failed to remove favorite", "user_id", userID, "error", err)
		flashRedirect(c, "Something went wrong, try again", "/favorites")
		return
	}
	if !removed {
		flashRedirect(c, "Spot not found in favorites", "/favorites")
		return
	}

	flashRedirect(c, "Spot removed from favorites", "/favorites")
}

func loggedIn(c *gin.Context) bool {
	return sessions.Default(c).Get("user_id") != nil
}

func takeFlashes(c *gin.Context) []any {
	session := sessions.Default(c)
	flashes := session.Flashes()
	if len(flashes) > 0 {
		if err := session.Save(); err != nil {
			log.Error("failed to save session", "error", err)
		}
	}
	return flashes
}

func flashRedirect(c *gin.Context, msg, target string) {
	session := sessions.Default(c)
	session.AddFlash(msg)
	if err := session.Save(); err != nil {
		log.Error("failed to save session", "error", err)
	}
	c.Redirect(http.StatusFound, target)
}
