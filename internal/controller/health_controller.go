package controller

import (
	"net/http"

	"sensai_backend/internal/config"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type HealthController struct {
	DB     *mongo.Database
	Config *config.Config
}

func NewHealthController(db *mongo.Database, cfg *config.Config) *HealthController {
	return &HealthController{DB: db, Config: cfg}
}

// @Summary Liveness marker
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (c *HealthController) Root(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "SENSAI API is running"})
}

// @Summary Store connectivity report
// @Description Reports configuration and connectivity of the document store
// @Tags system
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /test [get]
func (c *HealthController) TestDatabase(ctx *gin.Context) {
	report := gin.H{
		"backend":           "running",
		"database":          "not available",
		"database_url":      "not set",
		"database_name":     "not set",
		"connection_status": "not connected",
		"collections":       []string{},
	}

	if c.Config.Database.URL != "" {
		report["database_url"] = "set"
	}
	if c.Config.Database.DBName != "" {
		report["database_name"] = "set"
	}

	if c.DB == nil {
		ctx.JSON(http.StatusOK, report)
		return
	}

	report["database"] = "available"
	collections, err := c.DB.ListCollectionNames(ctx.Request.Context(), bson.M{})
	if err != nil {
		// A reachable-but-failing store downgrades the status, it does not
		// fail the diagnostic itself.
		report["database"] = "connected but error: " + truncate(err.Error(), 50)
		ctx.JSON(http.StatusOK, report)
		return
	}

	if len(collections) > 10 {
		collections = collections[:10]
	}
	report["database"] = "connected and working"
	report["connection_status"] = "connected"
	report["collections"] = collections

	ctx.JSON(http.StatusOK, report)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
