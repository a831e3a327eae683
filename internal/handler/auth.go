package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/amanullahykhan/voice-chatbot-project/internal/middleware"
	"github.com/amanullahykhan/voice-chatbot-project/internal/store"
	"github.com/amanullahykhan/voice-chatbot-project/internal/util"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves registration, login, logout and profile.
type AuthHandler struct {
	Users    *store.UserStore
	Sessions *store.SessionStore
}

func NewAuthHandler(users *store.UserStore, sessions *store.SessionStore) *AuthHandler {
	return &AuthHandler{Users: users, Sessions: sessions}
}

type registerReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	req.Password = strings.TrimSpace(req.Password)

	if err := util.ValidateUsername(req.Username); err != nil {
		util.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := util.ValidatePassword(req.Password); err != nil {
		util.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := util.ValidateEmail(req.Email); err != nil {
		util.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.Users.Create(req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateIdentity) {
			util.Error(c, http.StatusBadRequest, "Username or email already exists")
			return
		}
		util.Error(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	token, err := h.Sessions.Issue(user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to create session")
		return
	}

	util.Success(c, util.Response{
		"message":  "Registration successful",
		"token":    token,
		"user_id":  user.ID,
		"username": user.Username,
	})
}

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Password = strings.TrimSpace(req.Password)

	user, err := h.Users.VerifyCredentials(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, store.ErrInvalidCredentials) {
			util.Error(c, http.StatusUnauthorized, "Invalid username or password")
			return
		}
		util.Error(c, http.StatusInternalServerError, "Failed to log in")
		return
	}

	token, err := h.Sessions.Issue(user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to create session")
		return
	}

	email := ""
	if user.Email != nil {
		email = *user.Email
	}
	util.Success(c, util.Response{
		"message":  "Login successful",
		"token":    token,
		"user_id":  user.ID,
		"username": user.Username,
		"email":    email,
	})
}

// Logout revokes the presented token. Idempotent.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, ok := c.Get(middleware.CtxToken); ok {
		if tokenStr, ok := token.(string); ok {
			if err := h.Sessions.Revoke(tokenStr); err != nil {
				util.Error(c, http.StatusInternalServerError, "Failed to log out")
				return
			}
		}
	}
	util.Success(c, util.Response{
		"message": "Logged out successfully",
	})
}

// Profile returns the authenticated user's account details.
func (h *AuthHandler) Profile(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	user, err := h.Users.Get(userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			util.Error(c, http.StatusNotFound, "User not found")
			return
		}
		util.Error(c, http.StatusInternalServerError, "Failed to load profile")
		return
	}

	util.Success(c, util.Response{
		"profile": gin.H{
			"username":   user.Username,
			"email":      user.Email,
			"created_at": user.CreatedAt,
			"last_login": user.LastLoginAt,
		},
	})
}
