package controller

import (
	"net/http"

	"github.com/MukulParasar/PRODIGY-FS-02/config"
	"github.com/MukulParasar/PRODIGY-FS-02/database"
	"github.com/MukulParasar/PRODIGY-FS-02/database/model"
	"github.com/MukulParasar/PRODIGY-FS-02/logger"
	"github.com/MukulParasar/PRODIGY-FS-02/web/entity"
	"github.com/MukulParasar/PRODIGY-FS-02/web/schema"
	"github.com/MukulParasar/PRODIGY-FS-02/web/service"
	"github.com/MukulParasar/PRODIGY-FS-02/web/session"

	"github.com/gin-gonic/gin"
)

// AuthController handles registration, login, logout and the current-user
// endpoint.
type AuthController struct {
	BaseController

	userService service.UserService
}

// NewAuthController creates a new AuthController and initializes its routes.
func NewAuthController(g *gin.RouterGroup) *AuthController {
	a := &AuthController{}
	a.initRouter(g)
	return a
}

func (a *AuthController) initRouter(g *gin.RouterGroup) {
	g.POST("/register", a.register)
	g.POST("/login", a.login)
	g.POST("/logout", a.logout)
	g.GET("/logout", a.logout)
	g.GET("/auth/user", a.currentUser)
}

// register creates an administrator account and logs it in immediately.
func (a *AuthController) register(c *gin.Context) {
	var form schema.RegisterUser
	if err := c.ShouldBindJSON(&form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "Invalid form data")
		return
	}
	if errs := schema.Validate(&form); errs != nil {
		validationMsg(c, http.StatusBadRequest, errs)
		return
	}

	user, err := a.userService.CreateUser(&form)
	if err != nil {
		if database.IsDuplicate(err) {
			validationMsg(c, http.StatusConflict, entity.FieldErrors{
				"email": "An account with this email already exists",
			})
			return
		}
		jsonMsg(c, "Registration", err)
		return
	}

	if err := a.establishSession(c, user); err != nil {
		jsonMsg(c, "Registration", err)
		return
	}

	logger.Infof("%s registered, IP: %s", user.Email, getRemoteIp(c))
	jsonObj(c, user, nil)
}

// login verifies credentials and establishes the session identity. The
// failure message never reveals whether the email exists.
func (a *AuthController) login(c *gin.Context) {
	var form schema.LoginUser
	if err := c.ShouldBindJSON(&form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "Invalid form data")
		return
	}
	if errs := schema.Validate(&form); errs != nil {
		validationMsg(c, http.StatusBadRequest, errs)
		return
	}

	user := a.userService.CheckUser(form.Email, form.Password)
	if user == nil {
		logger.Warningf("failed login for %q, IP: %s", form.Email, getRemoteIp(c))
		pureJsonMsg(c, http.StatusUnauthorized, false, "Invalid email or password")
		return
	}

	if err := a.establishSession(c, user); err != nil {
		jsonMsg(c, "Login", err)
		return
	}

	logger.Infof("%s logged in successfully, IP: %s", user.Email, getRemoteIp(c))
	jsonObj(c, user, nil)
}

func (a *AuthController) establishSession(c *gin.Context, user *model.User) error {
	if err := session.SetMaxAge(c, config.GetSessionMaxAge()*60); err != nil {
		return err
	}
	return session.SetLoginUser(c, user)
}

// logout tears the session down. Browser GETs are redirected back to the
// login page, API POSTs get a JSON acknowledgment.
func (a *AuthController) logout(c *gin.Context) {
	user := session.GetLoginUser(c)
	if user != nil {
		logger.Infof("%s logged out", user.Email)
	}
	if err := session.ClearSession(c); err != nil {
		logger.Warning("clear session err:", err)
	}

	if c.Request.Method == http.MethodGet {
		c.Redirect(http.StatusTemporaryRedirect, "/")
		return
	}
	jsonMsg(c, "Logged out", nil)
}

// currentUser returns the identity bound to the active session, or 401 when
// there is none.
func (a *AuthController) currentUser(c *gin.Context) {
	user := session.GetLoginUser(c)
	if user == nil {
		pureJsonMsg(c, http.StatusUnauthorized, false, "Unauthorized")
		return
	}
	jsonObj(c, user, nil)
}
