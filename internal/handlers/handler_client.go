package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/facturly/facturly-backend/internal/core/ports/services"
	"github.com/facturly/facturly-backend/internal/dto"
	"github.com/facturly/facturly-backend/internal/middleware"
)

// clientHandler handles HTTP requests related to clients.
type clientHandler struct {
	clientService portssvc.ClientSvcFacade
}

func newClientHandler(cs portssvc.ClientSvcFacade) *clientHandler {
	return &clientHandler{clientService: cs}
}

// registerClientRoutes registers the client CRUD routes.
func registerClientRoutes(rg *gin.RouterGroup, clientService portssvc.ClientSvcFacade) {
	h := newClientHandler(clientService)

	clients := rg.Group("/clients")
	{
		clients.POST("", h.createClient)
		clients.GET("", h.listClients)
		clients.GET("/:client_id", h.getClient)
		clients.PUT("/:client_id", h.updateClient)
		clients.DELETE("/:client_id", h.deleteClient)
	}
}

func (h *clientHandler) createClient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SaveClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	client, err := h.clientService.CreateClient(c.Request.Context(), userID, req)
	if err != nil {
		logger.Warn("Failed to create client", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToClientResponse(client))
}

func (h *clientHandler) listClients(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	clients, err := h.clientService.ListClients(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToClientResponses(clients))
}

func (h *clientHandler) getClient(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	client, err := h.clientService.GetClientByID(c.Request.Context(), userID, c.Param("client_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToClientResponse(client))
}

func (h *clientHandler) updateClient(c *gin.Context) {
	var req dto.SaveClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	client, err := h.clientService.UpdateClient(c.Request.Context(), userID, c.Param("client_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToClientResponse(client))
}

func (h *clientHandler) deleteClient(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.clientService.DeleteClient(c.Request.Context(), userID, c.Param("client_id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
