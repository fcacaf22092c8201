package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/param-vault/param-vault/internal/domain/identity"
	"github.com/param-vault/param-vault/internal/domain/params"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	adminParamService params.AdminParamService,
	userParamService params.UserParamService,
	userDirectory identity.Directory) {

	v1 := r.Group(BasePath) // lookup in version file

	// Parameter Routes
	paramHandler := NewParamHandler(adminParamService, userParamService, userDirectory)
	v1.GET("/parameters/admin", paramHandler.ListAdmin)
	v1.GET("/parameters/admin/:namespace/:name", paramHandler.GetAdmin)
	v1.PUT("/parameters/admin/:namespace/:name", paramHandler.SaveAdmin)
	v1.GET("/users/:id/parameters", paramHandler.ListForUser)
	v1.GET("/users/:id/parameters/:namespace/:name", paramHandler.GetForUser)
	v1.PUT("/users/:id/parameters/:namespace/:name", paramHandler.SaveForUser)

	// User Routes
	userHandler := NewUserHandler(userDirectory)
	v1.POST("/users", userHandler.Create)
	v1.GET("/users", userHandler.List)
	v1.GET("/users/:id", userHandler.GetByID)
}
