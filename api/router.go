// Package api mounts the HTTP controllers under a versioned base path.
package api

import (
	"net/http"

	"github.com/beka-birhanu/loopgrid/api/i"
	"github.com/gin-gonic/gin"
)

const apiVersion = "/v1"

// Router builds the gin engine from a set of controllers and serves it.
type Router struct {
	addr        string
	baseURL     string
	mode        string
	controllers []i.Controller
	authorize   gin.HandlerFunc
}

// Config holds configuration settings for creating a new Router instance.
type Config struct {
	Addr                    string // host:port to listen on
	BaseURL                 string // prefix of every route, e.g. /api
	Mode                    string // gin mode; empty keeps gin's default
	Controllers             []i.Controller
	AuthorizationMiddleware gin.HandlerFunc
}

// NewRouter creates a Router from config.
func NewRouter(config Config) *Router {
	return &Router{
		addr:        config.Addr,
		baseURL:     config.BaseURL,
		mode:        config.Mode,
		controllers: config.Controllers,
		authorize:   config.AuthorizationMiddleware,
	}
}

// Handler returns the engine with every route mounted under BaseURL/v1.
// Protected routes share the prefix with public ones and sit behind the authorization middleware.
func (r *Router) Handler() *gin.Engine {
	if r.mode != "" {
		gin.SetMode(r.mode)
	}
	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery())

	base := engine.Group(r.baseURL)
	base.GET("/health", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	public := base.Group(apiVersion)
	for _, c := range r.controllers {
		c.RegisterPublic(public)
	}

	protected := base.Group(apiVersion)
	if r.authorize != nil {
		protected.Use(r.authorize)
	}
	for _, c := range r.controllers {
		c.RegisterProtected(protected)
	}

	return engine
}

// Run serves the API until the listener fails.
func (r *Router) Run() error {
	gin.ForceConsoleColor()
	return r.Handler().Run(r.addr)
}
