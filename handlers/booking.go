package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hometown/models"
	"hometown/services/booking"
)

// BookingHandler exposes the booking wizard session service over HTTP.
type BookingHandler struct {
	Service booking.FormService
	Logger  *zap.Logger
}

func NewBookingHandler(service booking.FormService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: service, Logger: logger}
}

// StartSession creates a new wizard session on step one.
func (h *BookingHandler) StartSession(c *gin.Context) {
	session, pricing, err := h.Service.StartSession(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	h.respond(c, session, pricing)
}

// GetSession returns the current session state with pricing recomputed.
func (h *BookingHandler) GetSession(c *gin.Context) {
	session, pricing, err := h.Service.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	h.respond(c, session, pricing)
}

// ApplyAction applies one reducer action to the session.
func (h *BookingHandler) ApplyAction(c *gin.Context) {
	var action booking.Action
	if err := c.ShouldBindJSON(&action); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	h.applyAction(c, action)
}

// AddVehicle appends a new empty vehicle to the booking form.
func (h *BookingHandler) AddVehicle(c *gin.Context) {
	h.applyAction(c, booking.Action{Type: booking.ActionAddVehicle})
}

// RemoveVehicle removes a vehicle; the last remaining one is protected.
func (h *BookingHandler) RemoveVehicle(c *gin.Context) {
	h.applyAction(c, booking.Action{
		Type:      booking.ActionRemoveVehicle,
		VehicleID: c.Param("vehicleID"),
	})
}

// ApplyPromo validates and applies a promo code. Lookup misses are not HTTP
// errors; they show up in the session's promoError field.
func (h *BookingHandler) ApplyPromo(c *gin.Context) {
	var input struct {
		Code string `json:"code"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	h.applyAction(c, booking.Action{Type: booking.ActionApplyPromo, Value: input.Code})
}

// RemovePromo clears the applied promo, its code, and any promo error.
func (h *BookingHandler) RemovePromo(c *gin.Context) {
	h.applyAction(c, booking.Action{Type: booking.ActionRemovePromo})
}

// NextStep advances the wizard when the current step validates.
func (h *BookingHandler) NextStep(c *gin.Context) {
	h.applyAction(c, booking.Action{Type: booking.ActionNextStep})
}

// PrevStep moves the wizard back one step.
func (h *BookingHandler) PrevStep(c *gin.Context) {
	h.applyAction(c, booking.Action{Type: booking.ActionPrevStep})
}

// Submit posts the booking to the external API and, on success, returns the
// confirmed session with its booking id.
func (h *BookingHandler) Submit(c *gin.Context) {
	session, pricing, err := h.Service.Submit(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"session":   session,
		"pricing":   pricing,
		"bookingId": session.BookingID,
	})
}

// Dismiss acknowledges the confirmation and resets the wizard.
func (h *BookingHandler) Dismiss(c *gin.Context) {
	session, pricing, err := h.Service.Dismiss(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	h.respond(c, session, pricing)
}

func (h *BookingHandler) applyAction(c *gin.Context, action booking.Action) {
	session, pricing, err := h.Service.ApplyAction(c.Request.Context(), c.Param("sessionID"), action)
	if err != nil {
		h.respondError(c, err)
		return
	}
	h.respond(c, session, pricing)
}

func (h *BookingHandler) respond(c *gin.Context, session *models.FormSession, pricing models.PricingSummary) {
	c.JSON(http.StatusOK, gin.H{"session": session, "pricing": pricing})
}

func (h *BookingHandler) respondError(c *gin.Context, err error) {
	if errors.Is(err, booking.ErrSessionNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking session not found or expired"})
		return
	}
	var be *booking.BookingError
	if errors.As(err, &be) {
		switch be.Code {
		case booking.CodeServerError, booking.CodeBookingRejected, booking.CodeNetworkError:
			c.JSON(http.StatusBadGateway, gin.H{"error": be.Message, "code": be.Code})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": be.Message, "code": be.Code})
		}
		return
	}
	h.Logger.Error("Booking handler failure", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
