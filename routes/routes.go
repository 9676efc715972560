package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-reservations/controllers"
	"hotel-reservations/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the controllers onto the API routes.
func SetupRouter(
	rc *controllers.RoomController,
	cc *controllers.ClientController,
	ec *controllers.EmployeeController,
	resc *controllers.ReservationController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		rooms := api.Group("/rooms")
		{
			rooms.GET("", rc.GetRooms)
			rooms.POST("", rc.CreateRoom)
			rooms.POST("/suite", rc.CreateSuite)

			// literal segments before /:id so they don't collide
			rooms.GET("/type/:type", rc.GetRoomsByType)
			rooms.GET("/max-price/:price", rc.GetRoomsByMaxPrice)

			rooms.GET("/:id", rc.GetRoomByID)
			rooms.PUT("/:id", rc.UpdateRoom)
			rooms.DELETE("/:id", rc.DeleteRoom)
		}

		clients := api.Group("/clients")
		{
			clients.GET("", cc.GetClients)
			clients.POST("", cc.CreateClient)
			clients.POST("/vip", cc.CreateVIPClient)
			clients.GET("/search/name/:name", cc.GetClientsByLastName)
			clients.GET("/:id", cc.GetClientByID)
			clients.PUT("/:id", cc.UpdateClient)
			clients.DELETE("/:id", cc.DeleteClient)
		}

		employees := api.Group("/employees")
		{
			employees.GET("", ec.GetEmployees)
			employees.POST("", ec.CreateEmployee)
			employees.GET("/search/name/:name", ec.GetEmployeesByName)
			employees.GET("/search/job/:job", ec.GetEmployeesByJobTitle)
			employees.GET("/:id", ec.GetEmployeeByID)
			employees.PUT("/:id", ec.UpdateEmployee)
			employees.DELETE("/:id", ec.DeleteEmployee)
		}

		reservations := api.Group("/reservations")
		{
			reservations.GET("", resc.GetReservations)
			reservations.POST("", resc.CreateReservation)
			reservations.POST("/online", resc.CreateOnlineReservation)
			reservations.GET("/dates", resc.GetReservationsByDates)
			reservations.GET("/status/:status", resc.GetReservationsByStatus)
			reservations.GET("/client/:clientId", resc.GetReservationsByClient)
			reservations.GET("/room/:roomId", resc.GetReservationsByRoom)
			reservations.GET("/:id", resc.GetReservationByID)
			reservations.PUT("/:id", resc.UpdateReservation)
			reservations.PUT("/:id/confirm", resc.ConfirmReservation)
			reservations.PUT("/:id/cancel", resc.CancelReservation)
			reservations.GET("/:id/amount", resc.GetReservationAmount)
			reservations.DELETE("/:id", resc.DeleteReservation)
		}
	}

	return r
}
