package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "roomboard/internal/handler/dto/request"
	resdto "roomboard/internal/handler/dto/response"
	"roomboard/internal/usecase/commands"
	"roomboard/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RoomHandler struct {
	roomCommands commands.RoomCommands
	roomQueries  queries.RoomQueries
}

func NewRoomHandler(roomCommands commands.RoomCommands, roomQueries queries.RoomQueries) *RoomHandler {
	return &RoomHandler{
		roomCommands: roomCommands,
		roomQueries:  roomQueries,
	}
}

// @Summary Create room
// @Description Register a new bookable room with an optional business window override
// @Tags rooms
// @Accept json
// @Produce json
// @Param request body reqdto.CreateRoomRequest true "Room request"
// @Success 201 {object} resdto.RoomResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /rooms [post]
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var req reqdto.CreateRoomRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	roomRM, err := h.roomCommands.CreateRoom(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidWindowConfig):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid business window configuration",
			})
		case errors.Is(err, commands.ErrInvalidRoom):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Domain validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRoomView(roomRM))
}

// @Summary Room board
// @Description Current status of every room, one card per room
// @Tags rooms
// @Produce json
// @Success 200 {array} resdto.RoomStatusResponse
// @Router /rooms [get]
func (h *RoomHandler) ListStatuses(c *gin.Context) {
	statusesRM, err := h.roomQueries.ListStatuses(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.RoomStatusResponse, len(statusesRM))
	for i, rm := range statusesRM {
		response[i] = resdto.FromRoomStatusView(rm)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Get room
// @Description Get room configuration by ID
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rooms/{id} [get]
func (h *RoomHandler) GetRoom(c *gin.Context) {
	id, ok := parseRoomID(c)
	if !ok {
		return
	}

	roomRM, err := h.roomQueries.GetRoom(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomView(roomRM))
}

// @Summary Room status
// @Description Current availability status of one room
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.RoomStatusResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rooms/{id}/status [get]
func (h *RoomHandler) GetStatus(c *gin.Context) {
	id, ok := parseRoomID(c)
	if !ok {
		return
	}

	statusRM, err := h.roomQueries.GetStatus(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomStatusView(statusRM))
}

// @Summary Suggest free slots
// @Description Next bookable slots for a room; the first result is the default suggestion
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Param day query string false "Day to search, YYYY-MM-DD (defaults to today)"
// @Param duration query int false "Slot duration in minutes (defaults to the room's default)"
// @Param limit query int false "Maximum number of slots (defaults to 3)"
// @Success 200 {array} resdto.SlotResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rooms/{id}/slots [get]
func (h *RoomHandler) FindSlots(c *gin.Context) {
	id, ok := parseRoomID(c)
	if !ok {
		return
	}

	search := queries.SlotSearch{
		RoomID: id,
		Day:    c.Query("day"),
	}
	if raw := c.Query("duration"); raw != "" {
		duration, err := strconv.Atoi(raw)
		if err != nil || duration <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid duration",
			})
			return
		}
		search.DurationMinutes = duration
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid limit",
			})
			return
		}
		search.MaxResults = limit
	}

	slotsRM, err := h.roomQueries.FindSlots(c.Request.Context(), search)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
		case errors.Is(err, queries.ErrInvalidDay):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid day format",
			})
		case errors.Is(err, queries.ErrInvalidSearch):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid slot search parameters",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	response := make([]resdto.SlotResponse, len(slotsRM))
	for i, rm := range slotsRM {
		response[i] = resdto.FromSlotView(rm)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Set special state
// @Description Put a room into maintenance, inactive or night rest, or clear the state
// @Tags rooms
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body reqdto.SetSpecialStateRequest true "Special state"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rooms/{id}/state [patch]
func (h *RoomHandler) SetSpecialState(c *gin.Context) {
	id, ok := parseRoomID(c)
	if !ok {
		return
	}

	var req reqdto.SetSpecialStateRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.roomCommands.SetSpecialState(c.Request.Context(), id, req.State); err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidSpecialState):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid special state",
			})
		case errors.Is(err, commands.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func parseRoomID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}
