package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/movie-catalog/internal/handler" // import the handlers that implement resource logic
)

// RegisterRoutes wires every catalog endpoint onto the provided Echo
// instance.  Movies expose only read operations; directors and genres
// expose full CRUD minus partial updates.  The trailing slash on the
// collection paths is part of the public contract.
func RegisterRoutes(e *echo.Echo, m *handler.MovieHandler, d *handler.DirectorHandler, g *handler.GenreHandler) {
	// Health check for load balancers and monitoring.
	e.GET("/healthz", handler.Health)

	movies := e.Group("/movies")
	movies.GET("/", m.List)   // list, filterable by director_id and genre_id
	movies.GET("/:id", m.Get) // single lookup, 404 when absent

	directors := e.Group("/directors")
	directors.GET("/", d.List)
	directors.POST("/", d.Create)
	directors.PUT("/:id", d.Replace)
	directors.DELETE("/:id", d.Delete)

	genres := e.Group("/genres")
	genres.GET("/", g.List)
	genres.POST("/", g.Create)
	genres.PUT("/:id", g.Replace)
	genres.DELETE("/:id", g.Delete)
}
