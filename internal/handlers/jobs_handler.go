package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/quikka/quikka-api/internal/httperr"
	ucBooking "github.com/quikka/quikka-api/internal/usecase/booking"
)

// JobsHandler exposes batch jobs meant to be hit by an external scheduler
// (cron, Cloud Scheduler). Nothing here self-schedules.
type JobsHandler struct {
	sweep *ucBooking.NoShowSweep
}

func NewJobsHandler(sweep *ucBooking.NoShowSweep) *JobsHandler {
	return &JobsHandler{sweep: sweep}
}

func (h *JobsHandler) NoShowSweep(c *gin.Context) {
	flagged, err := h.sweep.Execute(c.Request.Context(), time.Now())
	if err != nil {
		httperr.Internal(c, "sweep_failed", "no-show sweep failed")
		return
	}

	ids := make([]uint, 0, len(flagged))
	for _, b := range flagged {
		ids = append(ids, b.ID)
	}

	c.JSON(http.StatusOK, gin.H{
		"flagged":     len(flagged),
		"booking_ids": ids,
	})
}
