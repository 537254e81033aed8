package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"fruitstand/internal/domain"
	"fruitstand/internal/service"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	items   service.ItemService
	users   service.UserService
	stats   service.StatsService
	auth    service.AuthService
	logger  *logrus.Logger
	version string
}

func NewHandler(items service.ItemService, users service.UserService, stats service.StatsService, auth service.AuthService, logger *logrus.Logger, version string) *Handler {
	return &Handler{
		items:   items,
		users:   users,
		stats:   stats,
		auth:    auth,
		logger:  logger,
		version: version,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware())
	router.Use(requestLogger(h.logger))

	router.POST("/token", h.login)

	api := router.Group("/api")
	{
		api.GET("/items", h.listItems)
		api.POST("/items", h.addItem)
		api.GET("/users", h.listUsers)
		api.GET("/stats", h.getStats)
		api.GET("/protected", h.protected)
		api.GET("/health", h.health)
	}
}

type addItemRequest struct {
	Name string `json:"name"`
}

type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type StatsResponse struct {
	TotalItems int    `json:"total_items"`
	TotalUsers int    `json:"total_users"`
	Status     string `json:"status"`
}

func (h *Handler) listItems(c *gin.Context) {
	items, err := h.items.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *Handler) addItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	added, items, err := h.items.Add(c.Request.Context(), req.Name)
	if err != nil {
		if errors.Is(err, service.ErrItemNameRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item '" + added + "' added successfully",
		"items":   items,
	})
}

func (h *Handler) listUsers(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := make([]UserResponse, len(users))
	for i := range users {
		resp[i] = userToResponse(users[i])
	}
	c.JSON(http.StatusOK, gin.H{"users": resp})
}

func (h *Handler) getStats(c *gin.Context) {
	stats, err := h.stats.Snapshot(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, statsToResponse(stats))
}

// login accepts the credential pair from either a form body or the query
// string, matching how clients of the original endpoint submit both ways.
func (h *Handler) login(c *gin.Context) {
	username := c.PostForm("username")
	if username == "" {
		username = c.Query("username")
	}
	password := c.PostForm("password")
	if password == "" {
		password = c.Query("password")
	}

	token, err := h.auth.Login(c.Request.Context(), username, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
		"message":      "Login successful",
	})
}

func (h *Handler) protected(c *gin.Context) {
	token, ok := bearerToken(c.GetHeader("Authorization"))
	if !ok {
		c.Header("WWW-Authenticate", "Bearer")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
		return
	}

	if err := h.auth.Verify(c.Request.Context(), token); err != nil {
		c.Header("WWW-Authenticate", "Bearer")
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "This is a protected endpoint",
		"user":    "admin",
	})
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": h.version,
	})
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header. The scheme comparison is case-insensitive; the token is not.
func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}
	return token, true
}

func userToResponse(u domain.User) UserResponse {
	return UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}

func statsToResponse(s domain.Stats) StatsResponse {
	return StatsResponse{
		TotalItems: s.TotalItems,
		TotalUsers: s.TotalUsers,
		Status:     s.Status,
	}
}
