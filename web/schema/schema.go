// Package schema defines the request shapes accepted by the API and their
// field-level validation rules. Validation is pure: raw input either
// normalizes into a typed value or yields a per-field error map.
package schema

import (
	"reflect"
	"strings"

	"github.com/MukulParasar/PRODIGY-FS-02/database/model"
	"github.com/MukulParasar/PRODIGY-FS-02/web/entity"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// RegisterUser is the payload for creating an administrator account.
type RegisterUser struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
}

// LoginUser is the payload for authenticating. Unlike registration there is
// no password length floor.
type LoginUser struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// InsertEmployee is the payload for creating an employee record. The
// employeeId is never client-supplied.
type InsertEmployee struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Department string `json:"department" validate:"required,department"`
	Position   string `json:"position" validate:"required"`
	StartDate  string `json:"startDate" validate:"required"`
	Status     string `json:"status" validate:"omitempty,empstatus"`
	Salary     string `json:"salary" validate:"omitempty,money"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
}

// UpdateEmployee is a partial update. Nil fields are left untouched; the id
// names the target row and is required.
type UpdateEmployee struct {
	Id         int     `json:"id" validate:"required"`
	Name       *string `json:"name" validate:"omitempty,min=1"`
	Email      *string `json:"email" validate:"omitempty,email"`
	Department *string `json:"department" validate:"omitempty,department"`
	Position   *string `json:"position" validate:"omitempty,min=1"`
	StartDate  *string `json:"startDate" validate:"omitempty,min=1"`
	Status     *string `json:"status" validate:"omitempty,empstatus"`
	Salary     *string `json:"salary" validate:"omitempty,money"`
	Phone      *string `json:"phone"`
	Address    *string `json:"address"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	validate.RegisterValidation("department", func(fl validator.FieldLevel) bool {
		for _, d := range model.Departments() {
			if fl.Field().String() == string(d) {
				return true
			}
		}
		return false
	})
	validate.RegisterValidation("empstatus", func(fl validator.FieldLevel) bool {
		for _, s := range model.Statuses() {
			if fl.Field().String() == string(s) {
				return true
			}
		}
		return false
	})
	validate.RegisterValidation("money", func(fl validator.FieldLevel) bool {
		_, err := decimal.NewFromString(fl.Field().String())
		return err == nil
	})
}

// Validate checks v against its schema tags and returns a per-field error
// map, or nil when the value is valid.
func Validate(v any) entity.FieldErrors {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return entity.FieldErrors{"": err.Error()}
	}
	out := entity.FieldErrors{}
	for _, fe := range verrs {
		if _, exists := out[fe.Field()]; !exists {
			out[fe.Field()] = fieldMessage(fe)
		}
	}
	return out
}

// Normalize applies defaults after validation. Status falls back to Active
// when omitted.
func (e *InsertEmployee) Normalize() {
	if e.Status == "" {
		e.Status = string(model.StatusActive)
	}
}

// fieldMessage mirrors the messages the registration and employee forms show
// inline.
func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "email":
		return "Please enter a valid email address"
	case "department":
		return "Please select a department"
	case "empstatus":
		return "Invalid status"
	case "money":
		return "Invalid salary"
	case "min":
		if fe.Field() == "password" {
			return "Password must be at least 6 characters"
		}
		return fieldLabel(fe.Field()) + " is required"
	default:
		return fieldLabel(fe.Field()) + " is required"
	}
}

func fieldLabel(field string) string {
	switch field {
	case "name":
		return "Full name"
	case "email":
		return "Email"
	case "password":
		return "Password"
	case "firstName":
		return "First name"
	case "lastName":
		return "Last name"
	case "department":
		return "Department"
	case "position":
		return "Position"
	case "startDate":
		return "Start date"
	case "id":
		return "Id"
	default:
		return field
	}
}
