package schema

import (
	"testing"
)

func TestValidateRegisterUser(t *testing.T) {
	tests := []struct {
		name      string
		input     RegisterUser
		wantField string
	}{
		{
			name:  "valid",
			input: RegisterUser{Email: "a@x.com", Password: "secret123", FirstName: "Ada", LastName: "Lovelace"},
		},
		{
			name:      "invalid email",
			input:     RegisterUser{Email: "not-an-email", Password: "secret123", FirstName: "Ada", LastName: "Lovelace"},
			wantField: "email",
		},
		{
			name:      "short password",
			input:     RegisterUser{Email: "a@x.com", Password: "abc", FirstName: "Ada", LastName: "Lovelace"},
			wantField: "password",
		},
		{
			name:      "missing first name",
			input:     RegisterUser{Email: "a@x.com", Password: "secret123", LastName: "Lovelace"},
			wantField: "firstName",
		},
		{
			name:      "missing last name",
			input:     RegisterUser{Email: "a@x.com", Password: "secret123", FirstName: "Ada"},
			wantField: "lastName",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Validate(&tt.input)
			if tt.wantField == "" {
				if errs != nil {
					t.Errorf("Validate() = %v, expected no errors", errs)
				}
				return
			}
			if _, ok := errs[tt.wantField]; !ok {
				t.Errorf("Validate() = %v, expected error on %q", errs, tt.wantField)
			}
		})
	}
}

func TestValidateLoginUser(t *testing.T) {
	tests := []struct {
		name      string
		input     LoginUser
		wantField string
	}{
		{name: "valid", input: LoginUser{Email: "a@x.com", Password: "p"}},
		{name: "short password allowed", input: LoginUser{Email: "a@x.com", Password: "x"}},
		{name: "empty password", input: LoginUser{Email: "a@x.com"}, wantField: "password"},
		{name: "bad email", input: LoginUser{Email: "nope", Password: "p"}, wantField: "email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Validate(&tt.input)
			if tt.wantField == "" {
				if errs != nil {
					t.Errorf("Validate() = %v, expected no errors", errs)
				}
				return
			}
			if _, ok := errs[tt.wantField]; !ok {
				t.Errorf("Validate() = %v, expected error on %q", errs, tt.wantField)
			}
		})
	}
}

func validInsert() InsertEmployee {
	return InsertEmployee{
		Name:       "John Smith",
		Email:      "john@x.com",
		Department: "Engineering",
		Position:   "Dev",
		StartDate:  "2024-01-01",
	}
}

func TestValidateInsertEmployee(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*InsertEmployee)
		wantField string
	}{
		{name: "valid minimal", mutate: func(e *InsertEmployee) {}},
		{name: "empty name", mutate: func(e *InsertEmployee) { e.Name = "" }, wantField: "name"},
		{name: "bad email", mutate: func(e *InsertEmployee) { e.Email = "john" }, wantField: "email"},
		{name: "empty department", mutate: func(e *InsertEmployee) { e.Department = "" }, wantField: "department"},
		{name: "unknown department", mutate: func(e *InsertEmployee) { e.Department = "Legal" }, wantField: "department"},
		{name: "empty position", mutate: func(e *InsertEmployee) { e.Position = "" }, wantField: "position"},
		{name: "empty start date", mutate: func(e *InsertEmployee) { e.StartDate = "" }, wantField: "startDate"},
		{name: "unknown status", mutate: func(e *InsertEmployee) { e.Status = "Retired" }, wantField: "status"},
		{name: "valid status", mutate: func(e *InsertEmployee) { e.Status = "Probation" }},
		{name: "bad salary", mutate: func(e *InsertEmployee) { e.Salary = "lots" }, wantField: "salary"},
		{name: "valid salary", mutate: func(e *InsertEmployee) { e.Salary = "50000.00" }},
		{name: "optional fields empty", mutate: func(e *InsertEmployee) { e.Phone = ""; e.Address = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInsert()
			tt.mutate(&input)
			errs := Validate(&input)
			if tt.wantField == "" {
				if errs != nil {
					t.Errorf("Validate() = %v, expected no errors", errs)
				}
				return
			}
			if _, ok := errs[tt.wantField]; !ok {
				t.Errorf("Validate() = %v, expected error on %q", errs, tt.wantField)
			}
		})
	}
}

func TestValidateUpdateEmployee(t *testing.T) {
	name := "Jane"
	empty := ""
	badEmail := "nope"
	status := "Terminated"

	tests := []struct {
		name      string
		input     UpdateEmployee
		wantField string
	}{
		{name: "id only", input: UpdateEmployee{Id: 1}},
		{name: "missing id", input: UpdateEmployee{Name: &name}, wantField: "id"},
		{name: "partial name", input: UpdateEmployee{Id: 1, Name: &name}},
		{name: "empty name rejected", input: UpdateEmployee{Id: 1, Name: &empty}, wantField: "name"},
		{name: "bad email rejected", input: UpdateEmployee{Id: 1, Email: &badEmail}, wantField: "email"},
		{name: "status change", input: UpdateEmployee{Id: 1, Status: &status}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Validate(&tt.input)
			if tt.wantField == "" {
				if errs != nil {
					t.Errorf("Validate() = %v, expected no errors", errs)
				}
				return
			}
			if _, ok := errs[tt.wantField]; !ok {
				t.Errorf("Validate() = %v, expected error on %q", errs, tt.wantField)
			}
		})
	}
}

func TestInsertEmployeeNormalize(t *testing.T) {
	e := validInsert()
	e.Normalize()
	if e.Status != "Active" {
		t.Errorf("Normalize() status = %q, expected Active", e.Status)
	}

	e = validInsert()
	e.Status = "Inactive"
	e.Normalize()
	if e.Status != "Inactive" {
		t.Errorf("Normalize() overwrote supplied status %q", e.Status)
	}
}
