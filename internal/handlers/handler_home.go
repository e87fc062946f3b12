package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func getHome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Facturly Backend API v1"})
}

func getAPIHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
