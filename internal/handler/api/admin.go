package api

import (
	"net/http"

	reqdto "hotel-reservation/internal/handler/dto/request"
	resdto "hotel-reservation/internal/handler/dto/response"
	"hotel-reservation/internal/handler/httperr"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/usecase/commands"
	"hotel-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errResetNotConfirmed = errs.New("reset requires explicit confirmation")

type AdminHandler struct {
	rooms commands.RoomCommands
	stats queries.StatsQueries
}

func NewAdminHandler(rooms commands.RoomCommands, stats queries.StatsQueries) *AdminHandler {
	return &AdminHandler{rooms: rooms, stats: stats}
}

// @Summary Dashboard statistics
// @Tags admin
// @Produce json
// @Success 200 {object} resdto.StatsResponse
// @Router /api/stats [get]
func (h *AdminHandler) Stats(c *gin.Context) {
	view, err := h.stats.Get(c.Request.Context())
	if err != nil {
		abortWithEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStatsView(view))
}

// @Summary Reset data
// @Description Delete every booking and mark all rooms available
// @Tags admin
// @Accept json
// @Param request body reqdto.ResetDataRequest true "Must carry confirm=true"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Router /api/admin/reset [post]
func (h *AdminHandler) Reset(c *gin.Context) {
	var req reqdto.ResetDataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
		return
	}
	if !req.Confirm {
		abortWithBadRequest(c, errResetNotConfirmed)
		return
	}

	if err := h.rooms.ResetData(c.Request.Context()); err != nil {
		abortWithEngineError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
