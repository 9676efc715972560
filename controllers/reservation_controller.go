package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-reservations/services"
	"hotel-reservations/utils"
)

type ReservationController struct {
	ReservationSvc *services.ReservationService
}

func NewReservationController(svc *services.ReservationService) *ReservationController {
	return &ReservationController{ReservationSvc: svc}
}

type createReservationRequest struct {
	StartDate  string `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate    string `json:"endDate" binding:"required,datetime=2006-01-02"`
	ClientID   uint   `json:"clientId" binding:"required"`
	RoomID     uint   `json:"roomId" binding:"required"`
	EmployeeID *uint  `json:"employeeId"`
}

type createOnlineReservationRequest struct {
	StartDate    string  `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate      string  `json:"endDate" binding:"required,datetime=2006-01-02"`
	ClientID     uint    `json:"clientId" binding:"required"`
	RoomID       uint    `json:"roomId" binding:"required"`
	Platform     string  `json:"platform" binding:"required"`
	DiscountRate float64 `json:"discountRate"`
}

type updateReservationRequest struct {
	StartDate  string `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate    string `json:"endDate" binding:"required,datetime=2006-01-02"`
	Status     string `json:"status" binding:"required,oneof=PENDING CONFIRMED CANCELLED"`
	ClientID   uint   `json:"clientId" binding:"required"`
	RoomID     uint   `json:"roomId" binding:"required"`
	EmployeeID *uint  `json:"employeeId"`
}

// GetReservations (GET /api/reservations)
func (ctrl *ReservationController) GetReservations(c *gin.Context) {
	page, size := parsePaging(c)
	reservations, total, err := ctrl.ReservationSvc.GetAll(page, size)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONPage(c, http.StatusOK, reservations, total, page, size)
}

// GetReservationByID (GET /api/reservations/:id)
func (ctrl *ReservationController) GetReservationByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	reservation, err := ctrl.ReservationSvc.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservation)
}

// CreateReservation (POST /api/reservations)
func (ctrl *ReservationController) CreateReservation(c *gin.Context) {
	var req createReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid reservation payload: "+err.Error())
		return
	}
	start, ok := parseDate(c, req.StartDate, "startDate")
	if !ok {
		return
	}
	end, ok := parseDate(c, req.EndDate, "endDate")
	if !ok {
		return
	}

	reservation, err := ctrl.ReservationSvc.Create(start, end, req.ClientID, req.RoomID, req.EmployeeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, reservation)
}

// CreateOnlineReservation (POST /api/reservations/online)
func (ctrl *ReservationController) CreateOnlineReservation(c *gin.Context) {
	var req createOnlineReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid online reservation payload: "+err.Error())
		return
	}
	start, ok := parseDate(c, req.StartDate, "startDate")
	if !ok {
		return
	}
	end, ok := parseDate(c, req.EndDate, "endDate")
	if !ok {
		return
	}

	reservation, err := ctrl.ReservationSvc.CreateOnline(start, end, req.ClientID, req.RoomID, req.Platform, req.DiscountRate)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, reservation)
}

// ConfirmReservation (PUT /api/reservations/:id/confirm?employeeId=)
func (ctrl *ReservationController) ConfirmReservation(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	employeeID, ok := optionalEmployeeID(c)
	if !ok {
		return
	}
	reservation, err := ctrl.ReservationSvc.Confirm(id, employeeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservation)
}

// CancelReservation (PUT /api/reservations/:id/cancel?employeeId=)
func (ctrl *ReservationController) CancelReservation(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	employeeID, ok := optionalEmployeeID(c)
	if !ok {
		return
	}
	reservation, err := ctrl.ReservationSvc.Cancel(id, employeeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservation)
}

// GetReservationAmount (GET /api/reservations/:id/amount)
func (ctrl *ReservationController) GetReservationAmount(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	amount, err := ctrl.ReservationSvc.Amount(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"amount": amount})
}

// UpdateReservation (PUT /api/reservations/:id)
func (ctrl *ReservationController) UpdateReservation(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req updateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid reservation payload: "+err.Error())
		return
	}
	start, ok := parseDate(c, req.StartDate, "startDate")
	if !ok {
		return
	}
	end, ok := parseDate(c, req.EndDate, "endDate")
	if !ok {
		return
	}

	reservation, err := ctrl.ReservationSvc.Update(id, start, end, req.Status, req.ClientID, req.RoomID, req.EmployeeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservation)
}

// DeleteReservation (DELETE /api/reservations/:id)
func (ctrl *ReservationController) DeleteReservation(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.ReservationSvc.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetReservationsByStatus (GET /api/reservations/status/:status)
func (ctrl *ReservationController) GetReservationsByStatus(c *gin.Context) {
	reservations, err := ctrl.ReservationSvc.ByStatus(c.Param("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservations)
}

// GetReservationsByClient (GET /api/reservations/client/:clientId)
func (ctrl *ReservationController) GetReservationsByClient(c *gin.Context) {
	clientID, ok := parseID(c, "clientId")
	if !ok {
		return
	}
	reservations, err := ctrl.ReservationSvc.ByClient(clientID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservations)
}

// GetReservationsByRoom (GET /api/reservations/room/:roomId)
func (ctrl *ReservationController) GetReservationsByRoom(c *gin.Context) {
	roomID, ok := parseID(c, "roomId")
	if !ok {
		return
	}
	reservations, err := ctrl.ReservationSvc.ByRoom(roomID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservations)
}

// GetReservationsByDates (GET /api/reservations/dates?start=&end=)
func (ctrl *ReservationController) GetReservationsByDates(c *gin.Context) {
	start, ok := parseDate(c, c.Query("start"), "start")
	if !ok {
		return
	}
	end, ok := parseDate(c, c.Query("end"), "end")
	if !ok {
		return
	}
	reservations, err := ctrl.ReservationSvc.BetweenDates(start, end)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservations)
}
