package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rafisyahdn/go-dubbing-backend/internal/repository"
	"github.com/rafisyahdn/go-dubbing-backend/internal/service"
)

type SyncHandler struct {
	Tasks *service.TaskService
	Repo  *repository.PostgresRepo
}

func NewSyncHandler(tasks *service.TaskService, repo *repository.PostgresRepo) *SyncHandler {
	return &SyncHandler{Tasks: tasks, Repo: repo}
}

// SyncTasks pulls the full status history from the task-service.
// POST /api/v1/sync/tasks
func (h *SyncHandler) SyncTasks(c *gin.Context) {
	log.Println("--- api trigger: task-service sync ---")
	run, err := h.Tasks.SyncRecords(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":        "sync ok",
		"run_id":         run.ID,
		"records_synced": run.RecordCount,
	})
}

// GetSyncHistory lists recent sync runs.
// GET /api/v1/sync/history
func (h *SyncHandler) GetSyncHistory(c *gin.Context) {
	limitStr := c.DefaultQuery("limit", "20")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit parameter"})
		return
	}

	history, err := h.Repo.ListSyncRuns(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, history)
}
