package apperr

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// Kind classifies an application error for the request boundary.
type Kind int

const (
	KindUnknown Kind = iota
	// KindAuthorizationDenied means the permission engine denied the action.
	// Surfaced as a generic "no permission" outcome, never with the rule.
	KindAuthorizationDenied
	// KindValidation is a recoverable field-level violation (length,
	// uniqueness, required relation), pre-check or reflected from the store.
	KindValidation
	// KindBusinessRule is a recoverable cross-entity rule violation with a
	// specific user-facing reason.
	KindBusinessRule
	// KindNotFound means a referenced entity identifier did not resolve.
	KindNotFound
	// KindStorage is a fatal persistence failure, propagated unretried.
	KindStorage
)

const mysqlDuplicateEntry = 1062

type Error struct {
	Kind   Kind
	Reason string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Denied() error {
	return &Error{Kind: KindAuthorizationDenied, Reason: "no permission"}
}

func Validation(reason string, err error) error {
	return &Error{Kind: KindValidation, Reason: reason, Err: err}
}

func BusinessRule(reason string) error {
	return &Error{Kind: KindBusinessRule, Reason: reason}
}

func NotFound(what string) error {
	return &Error{Kind: KindNotFound, Reason: what + " not found"}
}

func Storage(err error) error {
	return &Error{Kind: KindStorage, Reason: "storage failure", Err: err}
}

// KindOf returns the classification of err, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// FromDB maps persistence errors into the taxonomy: missing records become
// NotFound, uniqueness violations become Validation, everything else Storage.
func FromDB(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &Error{Kind: KindNotFound, Reason: "record not found", Err: err}
	}
	if isDuplicateKey(err) {
		return Validation("already exists", err)
	}
	return Storage(err)
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry
}
