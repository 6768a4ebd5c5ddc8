// Package model defines the persisted entities of the employee records panel.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Department is the fixed set of departments an employee can belong to.
type Department string

const (
	Engineering Department = "Engineering"
	Marketing   Department = "Marketing"
	Sales       Department = "Sales"
	HR          Department = "HR"
	Finance     Department = "Finance"
	Operations  Department = "Operations"
)

// Departments lists all valid departments in display order.
func Departments() []Department {
	return []Department{Engineering, Marketing, Sales, HR, Finance, Operations}
}

// Status is the employment status of an employee record.
type Status string

const (
	StatusActive     Status = "Active"
	StatusProbation  Status = "Probation"
	StatusInactive   Status = "Inactive"
	StatusTerminated Status = "Terminated"
)

// Statuses lists all valid employment statuses.
func Statuses() []Status {
	return []Status{StatusActive, StatusProbation, StatusInactive, StatusTerminated}
}

// User is an administrator account. Email is the login identity.
type User struct {
	Id        int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"column:password_hash;not null"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Employee is a managed HR profile. EmployeeId is the human-readable EMP-###
// code, assigned once at creation and never changed.
type Employee struct {
	Id         int                 `json:"id" gorm:"primaryKey;autoIncrement"`
	EmployeeId string              `json:"employeeId" gorm:"uniqueIndex;not null"`
	Name       string              `json:"name" gorm:"not null"`
	Email      string              `json:"email" gorm:"uniqueIndex;not null"`
	Department string              `json:"department" gorm:"not null"`
	Position   string              `json:"position" gorm:"not null"`
	StartDate  string              `json:"startDate" gorm:"type:date;not null"`
	Status     string              `json:"status" gorm:"not null;default:Active"`
	Salary     decimal.NullDecimal `json:"salary" gorm:"type:decimal(10,2)"`
	Phone      string              `json:"phone"`
	Address    string              `json:"address"`
	CreatedAt  time.Time           `json:"createdAt"`
	UpdatedAt  time.Time           `json:"updatedAt"`
}

// Session is a server-side session row, keyed by the opaque id stored in the
// client cookie. Payload is the gob-encoded session values.
type Session struct {
	Sid     string    `gorm:"primaryKey"`
	Payload []byte    `gorm:"not null"`
	Expire  time.Time `gorm:"index;not null"`
}
