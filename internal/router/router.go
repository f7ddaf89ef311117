package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Signup(c *ginext.Context)
	Login(c *ginext.Context)
	Me(c *ginext.Context)
	ListEvents(c *ginext.Context)
	GetEvent(c *ginext.Context)
	CreateEvent(c *ginext.Context)
	UpdateEvent(c *ginext.Context)
	DeleteEvent(c *ginext.Context)
	Register(c *ginext.Context)
	Unregister(c *ginext.Context)
	MyRegisteredEvents(c *ginext.Context)
	MyCreatedEvents(c *ginext.Context)
	ListUsers(c *ginext.Context)
	GetUser(c *ginext.Context)
	UpdateUser(c *ginext.Context)
	DeleteUser(c *ginext.Context)
}

func InitRouter(mode string, h Handler, authMW, adminMW ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Auth
		api.POST("/auth/signup", h.Signup)
		api.POST("/auth/login", h.Login)
		api.GET("/auth/me", authMW, h.Me)

		// Events (public reads)
		api.GET("/events", h.ListEvents)

		// Per-user event listings go before /events/:id so the literal
		// segment is not swallowed by the id parameter.
		api.GET("/events/user/registered", authMW, h.MyRegisteredEvents)
		api.GET("/events/user/created", authMW, h.MyCreatedEvents)

		api.GET("/events/:id", h.GetEvent)

		// Event metadata (organizer/admin enforced in the service)
		api.POST("/events", authMW, h.CreateEvent)
		api.PUT("/events/:id", authMW, h.UpdateEvent)
		api.DELETE("/events/:id", authMW, h.DeleteEvent)

		// Registration
		api.POST("/events/:id/register", authMW, h.Register)
		api.DELETE("/events/:id/register", authMW, h.Unregister)

		// Users
		api.GET("/users", authMW, adminMW, h.ListUsers)
		api.GET("/users/:id", authMW, h.GetUser)
		api.PUT("/users/:id", authMW, h.UpdateUser)
		api.DELETE("/users/:id", authMW, adminMW, h.DeleteUser)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
