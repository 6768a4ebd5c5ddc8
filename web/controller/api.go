package controller

import (
	"github.com/gin-gonic/gin"
)

// APIController mounts the /api route tree: public auth endpoints and the
// login-protected employees endpoints.
type APIController struct {
	BaseController

	authController     *AuthController
	employeeController *EmployeeController
}

// NewAPIController creates a new APIController instance and initializes its
// routes.
func NewAPIController(g *gin.RouterGroup) *APIController {
	a := &APIController{}
	a.initRouter(g)
	return a
}

func (a *APIController) initRouter(g *gin.RouterGroup) {
	api := g.Group("/api")

	a.authController = NewAuthController(api)

	employees := api.Group("/employees")
	employees.Use(a.checkLogin)
	a.employeeController = NewEmployeeController(employees)
}
