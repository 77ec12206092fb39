package handlers

import (
	"net/http"

	ideav1 "github.com/gh-aakash/BillionBrains/rpc/idea/v1"
	"github.com/gh-aakash/BillionBrains/services/api-gateway/internal/clients"

	"github.com/gin-gonic/gin"
)

type IdeaHandler struct {
	c *clients.Clients
}

func NewIdeaHandler(c *clients.Clients) *IdeaHandler {
	return &IdeaHandler{c: c}
}

func (h *IdeaHandler) Create(c *gin.Context) {
	var in struct {
		Title     string `json:"title"`
		Problem   string `json:"problem"`
		Solution  string `json:"solution"`
		CreatorID string `json:"creator_id"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	idea, err := h.c.Idea.CreateIdea(c.Request.Context(), &ideav1.CreateIdeaRequest{
		Title:     in.Title,
		Problem:   in.Problem,
		Solution:  in.Solution,
		CreatorId: in.CreatorID,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": idea.Id, "title": idea.Title, "status": idea.Status})
}

func (h *IdeaHandler) List(c *gin.Context) {
	resp, err := h.c.Idea.ListIdeas(c.Request.Context(), &ideav1.ListIdeasRequest{PageSize: 10})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	ideas := make([]gin.H, 0, len(resp.Ideas))
	for _, i := range resp.Ideas {
		ideas = append(ideas, gin.H{"id": i.Id, "title": i.Title, "problem": i.Problem})
	}
	c.JSON(http.StatusOK, gin.H{"ideas": ideas})
}
