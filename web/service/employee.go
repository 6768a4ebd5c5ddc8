package service

import (
	"fmt"
	"strings"

	"github.com/MukulParasar/PRODIGY-FS-02/database"
	"github.com/MukulParasar/PRODIGY-FS-02/database/model"
	"github.com/MukulParasar/PRODIGY-FS-02/web/schema"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// EmployeeService provides CRUD and search over employee records.
type EmployeeService struct{}

// GetAllEmployees returns every employee, most recently created first.
func (s *EmployeeService) GetAllEmployees() ([]*model.Employee, error) {
	db := database.GetDB()

	var employees []*model.Employee
	err := db.Model(model.Employee{}).
		Order("created_at DESC, id DESC").
		Find(&employees).
		Error
	if err != nil {
		return nil, err
	}
	return employees, nil
}

// GetEmployee returns the employee with the given id, or nil when no row
// matches.
func (s *EmployeeService) GetEmployee(id int) (*model.Employee, error) {
	db := database.GetDB()

	employee := &model.Employee{}
	err := db.Model(model.Employee{}).
		Where("id = ?", id).
		First(employee).
		Error
	if database.IsNotFound(err) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return employee, nil
}

// CreateEmployee assigns the next EMP-### display identifier and persists the
// record. Counting and inserting run in one transaction so concurrent
// creations cannot mint the same identifier.
func (s *EmployeeService) CreateEmployee(data *schema.InsertEmployee) (*model.Employee, error) {
	db := database.GetDB()

	salary, err := parseSalary(data.Salary)
	if err != nil {
		return nil, err
	}

	employee := &model.Employee{
		Name:       data.Name,
		Email:      data.Email,
		Department: data.Department,
		Position:   data.Position,
		StartDate:  data.StartDate,
		Status:     data.Status,
		Salary:     salary,
		Phone:      data.Phone,
		Address:    data.Address,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(model.Employee{}).Count(&count).Error; err != nil {
			return err
		}
		employee.EmployeeId = fmt.Sprintf("EMP-%03d", count+1)
		return tx.Create(employee).Error
	})
	if err != nil {
		return nil, err
	}
	return employee, nil
}

// UpdateEmployee applies only the supplied fields to the target row and
// returns the updated record. A missing id yields gorm.ErrRecordNotFound.
func (s *EmployeeService) UpdateEmployee(id int, data *schema.UpdateEmployee) (*model.Employee, error) {
	db := database.GetDB()

	employee := &model.Employee{}
	if err := db.First(employee, id).Error; err != nil {
		return nil, err
	}

	if data.Name != nil {
		employee.Name = *data.Name
	}
	if data.Email != nil {
		employee.Email = *data.Email
	}
	if data.Department != nil {
		employee.Department = *data.Department
	}
	if data.Position != nil {
		employee.Position = *data.Position
	}
	if data.StartDate != nil {
		employee.StartDate = *data.StartDate
	}
	if data.Status != nil {
		employee.Status = *data.Status
	}
	if data.Salary != nil {
		salary, err := parseSalary(*data.Salary)
		if err != nil {
			return nil, err
		}
		employee.Salary = salary
	}
	if data.Phone != nil {
		employee.Phone = *data.Phone
	}
	if data.Address != nil {
		employee.Address = *data.Address
	}

	if err := db.Save(employee).Error; err != nil {
		return nil, err
	}
	return employee, nil
}

// DeleteEmployee removes the row. A missing id yields
// gorm.ErrRecordNotFound rather than succeeding silently.
func (s *EmployeeService) DeleteEmployee(id int) error {
	db := database.GetDB()

	result := db.Delete(&model.Employee{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SearchEmployees filters employees, most recently created first. A supplied
// department matches exactly and discards the text query entirely; this
// mirrors the search form, which resets the text box when a department is
// chosen. Without a department the query matches name, email, or position
// case-insensitively as a substring.
func (s *EmployeeService) SearchEmployees(query string, department string) ([]*model.Employee, error) {
	db := database.GetDB()

	tx := db.Model(model.Employee{})
	if department != "" {
		tx = tx.Where("department = ?", department)
	} else if query != "" {
		like := "%" + strings.ToLower(query) + "%"
		tx = tx.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(position) LIKE ?", like, like, like)
	}

	var employees []*model.Employee
	err := tx.Order("created_at DESC, id DESC").
		Find(&employees).
		Error
	if err != nil {
		return nil, err
	}
	return employees, nil
}

// parseSalary converts the optional salary string to a nullable fixed-point
// decimal; empty means NULL.
func parseSalary(raw string) (decimal.NullDecimal, error) {
	if raw == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}, nil
}
