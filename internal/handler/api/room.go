package api

import (
	"net/http"

	reqdto "hotel-reservation/internal/handler/dto/request"
	resdto "hotel-reservation/internal/handler/dto/response"
	"hotel-reservation/internal/handler/httperr"
	"hotel-reservation/internal/pkg/clock"
	"hotel-reservation/internal/usecase/commands"
	"hotel-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	cmds  commands.RoomCommands
	q     queries.RoomQueries
	clock clock.Clock
}

func NewRoomHandler(cmds commands.RoomCommands, q queries.RoomQueries, clock clock.Clock) *RoomHandler {
	return &RoomHandler{cmds: cmds, q: q, clock: clock}
}

// @Summary List rooms
// @Description List every room in the catalog with its dashboard status
// @Tags rooms
// @Produce json
// @Success 200 {array} resdto.RoomResponse
// @Router /api/rooms [get]
func (h *RoomHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		abortWithEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomViews(views))
}

// @Summary Search available rooms
// @Description Rooms that can host the party and are free for [checkIn, checkOut)
// @Tags rooms
// @Produce json
// @Param category query string false "standard, deluxe, suite or any"
// @Param guests query int false "Number of guests (1-10)"
// @Param checkIn query string true "Check-in date (YYYY-MM-DD)"
// @Param checkOut query string true "Check-out date (YYYY-MM-DD)"
// @Success 200 {array} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Router /api/rooms/search [get]
func (h *RoomHandler) Search(c *gin.Context) {
	var query reqdto.SearchRoomsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
		return
	}
	criteria, err := query.ToCriteria(h.clock.Now())
	if err != nil {
		abortWithBadRequest(c, err)
		return
	}

	views, err := h.q.Search(c.Request.Context(), criteria)
	if err != nil {
		abortWithEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomViews(views))
}

// @Summary Get room
// @Tags rooms
// @Produce json
// @Param number path string true "Room number"
// @Success 200 {object} resdto.RoomResponse
// @Failure 404 {object} httperr.Response
// @Router /api/rooms/{number} [get]
func (h *RoomHandler) Get(c *gin.Context) {
	view, err := h.q.Get(c.Request.Context(), c.Param("number"))
	if err != nil {
		abortWithEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomView(view))
}

// @Summary Add room
// @Description Add a room to the catalog
// @Tags rooms
// @Accept json
// @Produce json
// @Param request body reqdto.AddRoomRequest true "Room"
// @Success 201 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/rooms [post]
func (h *RoomHandler) Add(c *gin.Context) {
	var req reqdto.AddRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
		return
	}
	params, err := req.ToParams()
	if err != nil {
		abortWithBadRequest(c, err)
		return
	}

	view, err := h.cmds.Add(c.Request.Context(), params)
	if err != nil {
		abortWithEngineError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRoomView(view))
}
