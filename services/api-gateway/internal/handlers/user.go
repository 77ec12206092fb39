package handlers

import (
	"net/http"

	identityv1 "github.com/gh-aakash/BillionBrains/rpc/identity/v1"
	"github.com/gh-aakash/BillionBrains/services/api-gateway/internal/clients"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	c *clients.Clients
}

func NewUserHandler(c *clients.Clients) *UserHandler {
	return &UserHandler{c: c}
}

// Create proxies POST /api/users to identity Register. Any downstream
// failure flattens to a plain 500; the gateway never reports success it
// did not get.
func (h *UserHandler) Create(c *gin.Context) {
	var in struct {
		Username string `json:"username"`
		FullName string `json:"full_name"`
		Bio      string `json:"bio"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	u, err := h.c.Identity.Register(c.Request.Context(), &identityv1.RegisterRequest{
		Username: in.Username,
		FullName: in.FullName,
		Bio:      in.Bio,
		Password: in.Password,
		Role:     in.Role,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": u.Id, "username": u.Username})
}
