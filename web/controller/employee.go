package controller

import (
	"net/http"
	"strconv"

	"github.com/MukulParasar/PRODIGY-FS-02/database"
	"github.com/MukulParasar/PRODIGY-FS-02/logger"
	"github.com/MukulParasar/PRODIGY-FS-02/web/entity"
	"github.com/MukulParasar/PRODIGY-FS-02/web/schema"
	"github.com/MukulParasar/PRODIGY-FS-02/web/service"

	"github.com/gin-gonic/gin"
)

// EmployeeController handles HTTP requests for employee record management.
type EmployeeController struct {
	employeeService service.EmployeeService
}

// NewEmployeeController creates a new EmployeeController and sets up its
// routes.
func NewEmployeeController(g *gin.RouterGroup) *EmployeeController {
	a := &EmployeeController{}
	a.initRouter(g)
	return a
}

func (a *EmployeeController) initRouter(g *gin.RouterGroup) {
	g.GET("", a.getEmployees)
	g.GET("/:id", a.getEmployee)
	g.POST("", a.addEmployee)
	g.PUT("/:id", a.updateEmployee)
	g.DELETE("/:id", a.delEmployee)
}

// getEmployees lists employees, optionally filtered by ?search= and
// ?department=.
func (a *EmployeeController) getEmployees(c *gin.Context) {
	query := c.Query("search")
	department := c.Query("department")

	var err error
	var employees any
	if query == "" && department == "" {
		employees, err = a.employeeService.GetAllEmployees()
	} else {
		employees, err = a.employeeService.SearchEmployees(query, department)
	}
	if err != nil {
		jsonMsg(c, "Fetch employees", err)
		return
	}
	jsonObj(c, employees, nil)
}

// getEmployee retrieves a single employee by id.
func (a *EmployeeController) getEmployee(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "Invalid employee id")
		return
	}

	employee, err := a.employeeService.GetEmployee(id)
	if err != nil {
		jsonMsg(c, "Fetch employee", err)
		return
	}
	if employee == nil {
		pureJsonMsg(c, http.StatusNotFound, false, "Employee not found")
		return
	}
	jsonObj(c, employee, nil)
}

// addEmployee creates an employee record. The EMP-### identifier is assigned
// server-side.
func (a *EmployeeController) addEmployee(c *gin.Context) {
	var form schema.InsertEmployee
	if err := c.ShouldBindJSON(&form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "Invalid form data")
		return
	}
	if errs := schema.Validate(&form); errs != nil {
		validationMsg(c, http.StatusBadRequest, errs)
		return
	}
	form.Normalize()

	employee, err := a.employeeService.CreateEmployee(&form)
	if err != nil {
		if database.IsDuplicate(err) {
			validationMsg(c, http.StatusConflict, entity.FieldErrors{
				"email": "An employee with this email already exists",
			})
			return
		}
		jsonMsg(c, "Create employee", err)
		return
	}

	logger.Infof("employee %s (%s) created", employee.EmployeeId, employee.Name)
	jsonObj(c, employee, nil)
}

// updateEmployee applies a partial update. The id in the path supersedes any
// id in the body.
func (a *EmployeeController) updateEmployee(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "Invalid employee id")
		return
	}

	var form schema.UpdateEmployee
	if err := c.ShouldBindJSON(&form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "Invalid form data")
		return
	}
	form.Id = id
	if errs := schema.Validate(&form); errs != nil {
		validationMsg(c, http.StatusBadRequest, errs)
		return
	}

	employee, err := a.employeeService.UpdateEmployee(id, &form)
	if err != nil {
		if database.IsNotFound(err) {
			pureJsonMsg(c, http.StatusNotFound, false, "Employee not found")
			return
		}
		if database.IsDuplicate(err) {
			validationMsg(c, http.StatusConflict, entity.FieldErrors{
				"email": "An employee with this email already exists",
			})
			return
		}
		jsonMsg(c, "Update employee", err)
		return
	}

	jsonObj(c, employee, nil)
}

// delEmployee removes an employee record permanently.
func (a *EmployeeController) delEmployee(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "Invalid employee id")
		return
	}

	if err := a.employeeService.DeleteEmployee(id); err != nil {
		if database.IsNotFound(err) {
			pureJsonMsg(c, http.StatusNotFound, false, "Employee not found")
			return
		}
		jsonMsg(c, "Delete employee", err)
		return
	}

	logger.Infof("employee %d deleted", id)
	jsonMsg(c, "Employee deleted", nil)
}
