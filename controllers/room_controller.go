package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-reservations/models"
	"hotel-reservations/services"
	"hotel-reservations/utils"
)

type RoomController struct {
	RoomSvc *services.RoomService
}

func NewRoomController(svc *services.RoomService) *RoomController {
	return &RoomController{RoomSvc: svc}
}

type createRoomRequest struct {
	RoomNumber int     `json:"roomNumber" binding:"required,gt=0,lte=9999"`
	Price      float64 `json:"price" binding:"gte=0"`
	RoomType   string  `json:"roomType" binding:"omitempty,oneof=SIMPLE SUITE"`
}

type createSuiteRequest struct {
	RoomNumber int     `json:"roomNumber" binding:"required,gt=0"`
	Price      float64 `json:"price" binding:"gte=0"`
	SuiteName  string  `json:"suiteName" binding:"required,min=2,max=100"`
	RoomCount  int     `json:"roomCount" binding:"omitempty,gte=1,lte=20"`
	Jacuzzi    bool    `json:"jacuzzi"`
}

// GetRooms (GET /api/rooms)
func (ctrl *RoomController) GetRooms(c *gin.Context) {
	page, size := parsePaging(c)
	rooms, total, err := ctrl.RoomSvc.GetAll(page, size)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONPage(c, http.StatusOK, rooms, total, page, size)
}

// GetRoomByID (GET /api/rooms/:id)
func (ctrl *RoomController) GetRoomByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	room, err := ctrl.RoomSvc.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// CreateRoom (POST /api/rooms)
func (ctrl *RoomController) CreateRoom(c *gin.Context) {
	var req createRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid room payload: "+err.Error())
		return
	}
	room := models.Room{
		RoomNumber: req.RoomNumber,
		Price:      req.Price,
		RoomType:   req.RoomType,
	}
	if err := ctrl.RoomSvc.Create(&room); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, room)
}

// CreateSuite (POST /api/rooms/suite)
func (ctrl *RoomController) CreateSuite(c *gin.Context) {
	var req createSuiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid suite payload: "+err.Error())
		return
	}
	room := models.Room{
		RoomNumber: req.RoomNumber,
		Price:      req.Price,
		SuiteName:  req.SuiteName,
		RoomCount:  req.RoomCount,
		Jacuzzi:    req.Jacuzzi,
	}
	if err := ctrl.RoomSvc.CreateSuite(&room); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, room)
}

// UpdateRoom (PUT /api/rooms/:id)
func (ctrl *RoomController) UpdateRoom(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var payload models.Room
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid room payload: "+err.Error())
		return
	}
	room, err := ctrl.RoomSvc.Update(id, payload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// DeleteRoom (DELETE /api/rooms/:id)
func (ctrl *RoomController) DeleteRoom(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.RoomSvc.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetRoomsByType (GET /api/rooms/type/:type)
func (ctrl *RoomController) GetRoomsByType(c *gin.Context) {
	rooms, err := ctrl.RoomSvc.ByType(c.Param("type"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// GetRoomsByMaxPrice (GET /api/rooms/max-price/:price)
func (ctrl *RoomController) GetRoomsByMaxPrice(c *gin.Context) {
	maxPrice, err := strconv.ParseFloat(c.Param("price"), 64)
	if err != nil || maxPrice < 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid price")
		return
	}
	rooms, err := ctrl.RoomSvc.ByMaxPrice(maxPrice)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}
