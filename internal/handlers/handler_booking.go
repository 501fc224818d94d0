package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smarttravel/smart_travel_backend/internal/apperrors"
	portssvc "github.com/smarttravel/smart_travel_backend/internal/core/ports/services"
	"github.com/smarttravel/smart_travel_backend/internal/dto"
	"github.com/smarttravel/smart_travel_backend/internal/middleware"
)

// bookingHandler handles HTTP requests for bookings.
type bookingHandler struct {
	bookingService portssvc.BookingSvcFacade
}

// newBookingHandler creates a new bookingHandler.
func newBookingHandler(bs portssvc.BookingSvcFacade) *bookingHandler {
	return &bookingHandler{bookingService: bs}
}

// RegisterBookingRoutes registers all booking-related routes.
func RegisterBookingRoutes(rg *gin.RouterGroup, bookingService portssvc.BookingSvcFacade) {
	h := newBookingHandler(bookingService)

	bookings := rg.Group("/bookings")
	{
		bookings.POST("", h.bookRide)
		bookings.GET("", h.listBookings)
	}
}

// bookRide godoc
// @Summary Book a ride
// @Description Books a trip and debits the wallet in one atomic operation
// @Tags bookings
// @Accept  json
// @Produce  json
// @Param   booking body dto.BookRideRequest true "Booking details"
// @Success 201 {object} dto.BookRideResponse
// @Failure 400 {object} map[string]string "Invalid input or unknown transport mode"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 402 {object} dto.InsufficientBalanceResponse "Insufficient balance"
// @Failure 404 {object} map[string]string "Wallet not found"
// @Failure 500 {object} map[string]string "Failed to book ride"
// @Security BearerAuth
// @Router /bookings [post]
func (h *bookingHandler) bookRide(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.BookRideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for booking request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	res, err := h.bookingService.BookRide(c.Request.Context(), userID, req)
	if err != nil {
		var insufficientErr *apperrors.InsufficientBalanceError
		switch {
		case errors.As(err, &insufficientErr):
			c.JSON(http.StatusPaymentRequired, dto.InsufficientBalanceResponse{
				Error:     "Insufficient balance",
				Required:  insufficientErr.Required,
				Available: insufficientErr.Available,
			})
		case errors.Is(err, apperrors.ErrInsufficientBalance):
			c.JSON(http.StatusPaymentRequired, gin.H{"error": "Insufficient balance"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Wallet not found"})
		default:
			logger.Error("Failed to book ride", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to book ride"})
		}
		return
	}

	c.JSON(http.StatusCreated, res)
}

// listBookings godoc
// @Summary List bookings
// @Description Returns the authenticated user's bookings, most recent first
// @Tags bookings
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Pagination token from a previous page"
// @Success 200 {object} dto.ListBookingsResponse
// @Failure 400 {object} map[string]string "Invalid pagination token"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to retrieve bookings"
// @Security BearerAuth
// @Router /bookings [get]
func (h *bookingHandler) listBookings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var params dto.ListBookingsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	res, err := h.bookingService.ListBookings(c.Request.Context(), userID, params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to retrieve bookings", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve bookings"})
		return
	}

	c.JSON(http.StatusOK, res)
}
