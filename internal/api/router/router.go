package router

import (
	"github.com/wb-go/wbf/ginext"

	"github.com/aliskhannn/rental-notifier/internal/api/handlers/event"
	"github.com/aliskhannn/rental-notifier/internal/api/handlers/inbox"
	"github.com/aliskhannn/rental-notifier/internal/api/handlers/sweep"
)

func New(events *event.Handler, inboxes *inbox.Handler, sweeps *sweep.Handler) *ginext.Engine {
	e := ginext.New()
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	api := e.Group("/api")
	{
		api.POST("/events", events.Publish)
		api.GET("/users/:id/notifications", inboxes.List)
		api.POST("/sweeps", sweeps.Run)
	}

	return e
}
