// Package router wires the HTTP routes to their handlers.
package router

import (
	"github.com/gin-gonic/gin"

	authhandler "stockcalendar/internal/feature/auth/transport/handler"
	snapshothandler "stockcalendar/internal/feature/snapshot/transport/handler"
	summaryhandler "stockcalendar/internal/feature/summary/transport/handler"
	"stockcalendar/internal/platform/http/handler"
	jwtmw "stockcalendar/internal/platform/jwt"
)

// NewRouter builds the gin engine with the public and authenticated routes.
func NewRouter(auth *authhandler.AuthHandler, snapshots *snapshothandler.SnapshotHandler,
	summaries *summaryhandler.SummaryHandler) *gin.Engine {
	r := gin.Default()

	// Public routes.
	r.GET("/healthz", handler.Health)
	r.POST("/signup", auth.Signup)
	r.POST("/login", auth.Login)

	// Everything below requires a valid bearer token.
	authed := r.Group("/")
	authed.Use(jwtmw.AuthRequired())
	{
		authed.POST("/stocks", snapshots.Create)
		authed.GET("/stocks", snapshots.List)
		authed.PUT("/stocks/:id", snapshots.Update)
		authed.DELETE("/stocks/:id", snapshots.Delete)

		authed.GET("/interests", snapshots.ListInterests)

		authed.PUT("/summary", summaries.Upsert)
		authed.GET("/summary", summaries.Get)
	}

	return r
}
