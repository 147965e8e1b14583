package security

import (
	"github.com/inkwell-cms/InkWell/app/models"
)

// Action is a requested operation on a subject entity.
type Action string

const (
	ActionView   Action = "VIEW"
	ActionCreate Action = "CREATE"
	ActionEdit   Action = "EDIT"
	ActionDelete Action = "DELETE"
	ActionManage Action = "MANAGE"
)

// Actor is the identity attempting an operation. The zero value is anonymous.
type Actor struct {
	ID    uint
	Roles []string
}

// Anonymous is the actor used for unauthenticated requests.
var Anonymous = Actor{}

// FromUser builds an actor from a persisted user.
func FromUser(u *models.User) Actor {
	if u == nil {
		return Anonymous
	}
	return Actor{ID: u.ID, Roles: u.GetRoles()}
}

func (a Actor) IsAuthenticated() bool {
	return a.ID != 0
}

func (a Actor) IsAdmin() bool {
	for _, role := range a.Roles {
		if role == models.ROLE_ADMIN {
			return true
		}
	}
	return false
}

// Can decides whether the actor may perform the action on the subject.
// It is a pure predicate over the actor's identity/roles and the subject's
// state. Anonymous actors and unsupported (action, subject) pairs are denied.
func Can(actor Actor, action Action, subject any) bool {
	if !actor.IsAuthenticated() {
		return false
	}

	switch s := subject.(type) {
	case *models.Article:
		switch action {
		case ActionView:
			return s.IsPublished() || actor.IsAdmin()
		case ActionCreate, ActionEdit, ActionDelete:
			return actor.IsAdmin()
		}
	case *models.Category:
		switch action {
		case ActionEdit, ActionDelete:
			return actor.IsAdmin()
		}
	case *models.Tag:
		switch action {
		case ActionEdit, ActionDelete:
			return actor.IsAdmin()
		}
	case *models.Comment:
		switch action {
		case ActionDelete:
			return actor.IsAdmin()
		}
	case *models.User:
		switch action {
		case ActionView, ActionEdit:
			return actor.IsAdmin() || actor.ID == s.ID
		case ActionManage:
			return actor.IsAdmin()
		}
	}

	return false
}
