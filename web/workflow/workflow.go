// Package workflow models the employee page's dialog and filter state as an
// explicit finite-state value driven through a single reducer. The web client
// applies user actions and mutation outcomes as events; the returned effects
// tell it what to do next (refetch the list, redirect to login, or show a
// notification).
package workflow

import (
	"github.com/MukulParasar/PRODIGY-FS-02/database/model"
)

// State is the full client-held workflow state. The zero value is the
// initial state: viewing the list with no modal open and no filters.
type State struct {
	SearchQuery      string
	DepartmentFilter string

	AddModalOpen      bool
	EditModalOpen     bool
	DeleteConfirmOpen bool

	// Editing carries the record whose current values pre-populate the edit
	// form; Deleting names the record the confirm dialog is about.
	Editing  *model.Employee
	Deleting *model.Employee

	// Pending disables the submitting control until the mutation resolves.
	Pending bool
}

// Events.
type (
	OpenAddModal  struct{}
	CloseAddModal struct{}

	BeginEdit  struct{ Target *model.Employee }
	CancelEdit struct{}

	RequestDelete struct{ Target *model.Employee }
	CancelDelete  struct{}

	SubmitMutation    struct{}
	MutationSucceeded struct{}
	MutationFailed    struct{ Unauthorized bool }

	SetSearchQuery      struct{ Query string }
	SetDepartmentFilter struct{ Department string }
)

// Effects.
type (
	// RefetchList invalidates the cached employee list and forces a re-fetch.
	RefetchList struct{}
	// RedirectToLogin sends the client back to the login flow after a short
	// delay.
	RedirectToLogin struct{}
	// Notify surfaces a transient notification.
	Notify struct{ Message string }
)

const genericFailureMessage = "Something went wrong. Please try again."

// Reduce applies one event to the state and returns the next state plus the
// effects the client must perform. It never mutates its input.
func Reduce(s State, event any) (State, []any) {
	switch e := event.(type) {
	case OpenAddModal:
		if s.Pending {
			return s, nil
		}
		s.AddModalOpen = true
		return s, nil

	case CloseAddModal:
		s.AddModalOpen = false
		return s, nil

	case BeginEdit:
		if s.Pending || e.Target == nil {
			return s, nil
		}
		s.EditModalOpen = true
		s.Editing = e.Target
		return s, nil

	case CancelEdit:
		s.EditModalOpen = false
		s.Editing = nil
		return s, nil

	case RequestDelete:
		if s.Pending || e.Target == nil {
			return s, nil
		}
		s.DeleteConfirmOpen = true
		s.Deleting = e.Target
		return s, nil

	case CancelDelete:
		s.DeleteConfirmOpen = false
		s.Deleting = nil
		return s, nil

	case SubmitMutation:
		// a second submit while one is in flight is dropped
		if s.Pending {
			return s, nil
		}
		s.Pending = true
		return s, nil

	case MutationSucceeded:
		s.Pending = false
		s.AddModalOpen = false
		s.EditModalOpen = false
		s.DeleteConfirmOpen = false
		s.Editing = nil
		s.Deleting = nil
		return s, []any{RefetchList{}}

	case MutationFailed:
		s.Pending = false
		if e.Unauthorized {
			return s, []any{RedirectToLogin{}}
		}
		// the open modal stays up so the user can correct and resubmit
		return s, []any{Notify{Message: genericFailureMessage}}

	case SetSearchQuery:
		if s.SearchQuery == e.Query {
			return s, nil
		}
		s.SearchQuery = e.Query
		return s, []any{RefetchList{}}

	case SetDepartmentFilter:
		if s.DepartmentFilter == e.Department {
			return s, nil
		}
		s.DepartmentFilter = e.Department
		return s, []any{RefetchList{}}
	}

	return s, nil
}
