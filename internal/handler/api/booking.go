package api

import (
	"errors"
	"net/http"

	reqdto "roomboard/internal/handler/dto/request"
	resdto "roomboard/internal/handler/dto/response"
	"roomboard/internal/usecase/commands"
	"roomboard/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create booking
// @Description Book a room for a naive wall-clock interval
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /rooms/{id}/bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	roomID, ok := parseRoomID(c)
	if !ok {
		return
	}

	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	bookingRM, err := h.bookingCommands.CreateBooking(c.Request.Context(), req.ToParams(roomID))
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
		case errors.Is(err, commands.ErrRoomUnavailable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Room is not accepting bookings",
			})
		case errors.Is(err, commands.ErrInvalidTimeRange):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid time range",
			})
		case errors.Is(err, commands.ErrOutsideBusinessHours):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Booking is outside business hours",
			})
		case errors.Is(err, commands.ErrBookingConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Booking conflicts with an existing booking",
			})
		case errors.Is(err, commands.ErrDomainValidation):
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

	c.JSON(http.StatusCreated, resdto.FromBookingView(bookingRM))
}

// @Summary List room bookings
// @Description Bookings of one room for a single day
// @Tags bookings
// @Produce json
// @Param id path string true "Room ID"
// @Param day query string false "Day, YYYY-MM-DD (defaults to today)"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Router /rooms/{id}/bookings [get]
func (h *BookingHandler) ListRoomBookings(c *gin.Context) {
	roomID, ok := parseRoomID(c)
	if !ok {
		return
	}

	// Empty day means today; the query service resolves it from its clock.
	bookingsRM, err := h.bookingQueries.ListForRoomDay(c.Request.Context(), roomID, c.Query("day"))
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidDay):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid day format",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	response := make([]*resdto.BookingResponse, len(bookingsRM))
	for i, rm := range bookingsRM {
		response[i] = resdto.FromBookingView(rm)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Get booking
// @Description Get booking by ID
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, ok := parseBookingID(c)
	if !ok {
		return
	}

	bookingRM, err := h.bookingQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(bookingRM))
}

// @Summary Cancel booking
// @Description Cancel an active booking, freeing its slot
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id} [delete]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	id, ok := parseBookingID(c)
	if !ok {
		return
	}

	if err := h.bookingCommands.CancelBooking(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, commands.ErrBookingAlreadyCancelled):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Booking is already cancelled",
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

func parseBookingID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}
