package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-reservations/models"
	"hotel-reservations/services"
	"hotel-reservations/utils"
)

type ClientController struct {
	ClientSvc *services.ClientService
}

func NewClientController(svc *services.ClientService) *ClientController {
	return &ClientController{ClientSvc: svc}
}

type createClientRequest struct {
	LastName  string `json:"lastName" binding:"required,min=2,max=50"`
	FirstName string `json:"firstName" binding:"required,min=2,max=50"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required,min=10,max=20"`
}

type createVIPClientRequest struct {
	LastName  string `json:"lastName" binding:"required,min=2,max=50"`
	FirstName string `json:"firstName" binding:"required,min=2,max=50"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required,min=10,max=20"`
	// Pointer so an omitted rate falls back to the VIP default rather
	// than zero.
	DiscountRate *float64 `json:"discountRate"`
}

// GetClients (GET /api/clients)
func (ctrl *ClientController) GetClients(c *gin.Context) {
	page, size := parsePaging(c)
	clients, total, err := ctrl.ClientSvc.GetAll(page, size)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONPage(c, http.StatusOK, clients, total, page, size)
}

// GetClientByID (GET /api/clients/:id)
func (ctrl *ClientController) GetClientByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	client, err := ctrl.ClientSvc.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

// CreateClient (POST /api/clients)
func (ctrl *ClientController) CreateClient(c *gin.Context) {
	var req createClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid client payload: "+err.Error())
		return
	}
	client := models.Client{
		LastName:  req.LastName,
		FirstName: req.FirstName,
		Email:     req.Email,
		Phone:     req.Phone,
	}
	if err := ctrl.ClientSvc.Create(&client); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, client)
}

// CreateVIPClient (POST /api/clients/vip)
func (ctrl *ClientController) CreateVIPClient(c *gin.Context) {
	var req createVIPClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid VIP client payload: "+err.Error())
		return
	}
	discount := models.DefaultVIPDiscount
	if req.DiscountRate != nil {
		discount = *req.DiscountRate
	}
	client := models.Client{
		LastName:     req.LastName,
		FirstName:    req.FirstName,
		Email:        req.Email,
		Phone:        req.Phone,
		DiscountRate: discount,
	}
	if err := ctrl.ClientSvc.CreateVIP(&client); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, client)
}

// UpdateClient (PUT /api/clients/:id)
func (ctrl *ClientController) UpdateClient(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var payload models.Client
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid client payload: "+err.Error())
		return
	}
	client, err := ctrl.ClientSvc.Update(id, payload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

// DeleteClient (DELETE /api/clients/:id)
func (ctrl *ClientController) DeleteClient(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.ClientSvc.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetClientsByLastName (GET /api/clients/search/name/:name)
func (ctrl *ClientController) GetClientsByLastName(c *gin.Context) {
	clients, err := ctrl.ClientSvc.ByLastName(c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, clients)
}
