package auth

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jon4hz/surfcast/internal/database"
)

const sessionUserKey = "user_id"

// Provider authenticates users against the local credential store.
type Provider struct {
	db database.DB
}

// New creates a credential provider backed by the given database.
func New(db database.DB) *Provider {
	return &Provider{db: db}
}

// LoginPage renders the login form. Reaching the login page forgets any
// existing session. An error message may arrive via the query string.
func (p *Provider) LoginPage(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		log.Error("failed to clear session", "error", err)
	}

	c.HTML(http.StatusOK, "login.html", gin.H{
		"Error": c.Query("error"),
	})
}

// Login validates the submitted credentials and establishes a session.
// Failures redirect back to the login form with a distinct error message.
func (p *Provider) Login(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	if username == "" {
		redirectLoginError(c, "Must provide username")
		return
	}

	password := c.PostForm("password")
	if password == "" {
		redirectLoginError(c, "Must provide password")
		return
	}

	user, err := p.db.GetUserByUsername(c.Request.Context(), username)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Error("failed to look up user", "error", err)
		}
		redirectLoginError(c, "Invalid username")
		return
	}

	if !CheckPassword(user.PasswordHash, password) {
		redirectLoginError(c, "Invalid password")
		return
	}

	p.establishSession(c, user.ID)
}

// RegisterPage renders the registration form with any pending flash messages.
func (p *Provider) RegisterPage(c *gin.Context) {
	session := sessions.Default(c)
	flashes := session.Flashes()
	if err := session.Save(); err != nil {
		log.Error("failed to save session", "error", err)
	}

	c.HTML(http.StatusOK, "register.html", gin.H{
		"Flashes": flashes,
	})
}

// Register validates the registration form, creates the user and logs them
// in. Each validation failure flashes its own message and sends the user
// back to the form.
func (p *Provider) Register(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	if username == "" {
		flashRedirect(c, "Must provide username", "/register")
		return
	}

	password := c.PostForm("password")
	if password == "" {
		flashRedirect(c, "Must provide password", "/register")
		return
	}

	confirmation := c.PostForm("confirmation")
	if confirmation == "" {
		flashRedirect(c, "Must confirm password", "/register")
		return
	}

	if password != confirmation {
		flashRedirect(c, "Passwords do not match", "/register")
		return
	}

	if _, err := p.db.GetUserByUsername(c.Request.Context(), username); err == nil {
		flashRedirect(c, "Username already exists", "/register")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Error("failed to look up user", "error", err)
		flashRedirect(c, "Something went wrong, try again", "/register")
		return
	}

	hash, err := HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", "error", err)
		flashRedirect(c, "Something went wrong, try again", "/register")
		return
	}

	user, err := p.db.CreateUser(c.Request.Context(), username, hash)
	if err != nil {
		// Unique index catches a registration race the pre-check missed.
		if errors.Is(err, database.ErrUsernameTaken) {
			flashRedirect(c, "Username already exists", "/register")
			return
		}
		log.Error("failed to create user", "error", err)
		flashRedirect(c, "Something went wrong, try again", "/register")
		return
	}

	p.establishSession(c, user.ID)
}

// Logout forgets the session and redirects home.
func (p *Provider) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		log.Error("failed to clear session", "error", err)
	}
	c.Redirect(http.StatusFound, "/")
}

func (p *Provider) establishSession(c *gin.Context, userID uint) {
	session := sessions.Default(c)
	session.Set(sessionUserKey, userID)
	if err := session.Save(); err != nil {
		log.Error("failed to save session", "error", err)
		redirectLoginError(c, "Something went wrong, try again")
		return
	}
	c.Redirect(http.StatusFound, "/")
}

func redirectLoginError(c *gin.Context, msg string) {
	c.Redirect(http.StatusFound, "/login?error="+url.QueryEscape(msg))
}

func flashRedirect(c *gin.Context, msg, target string) {
	session := sessions.Default(c)
	session.AddFlash(msg)
	if err := session.Save(); err != nil {
		log.Error("failed to save session", "error", err)
	}
	c.Redirect(http.StatusFound, target)
}
