package i

import "github.com/gin-gonic/gin"

// Controller mounts a group of handlers on the router. Protected routes run behind the
// authorization middleware; public ones do not.
type Controller interface {
	RegisterPublic(*gin.RouterGroup)
	RegisterProtected(*gin.RouterGroup)
}
