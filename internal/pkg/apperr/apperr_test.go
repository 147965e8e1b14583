package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstructorsCarryTheirKind(t *testing.T) {
	assert.Equal(t, KindAuthorizationDenied, KindOf(Denied()))
	assert.Equal(t, KindValidation, KindOf(Validation("bad input", nil)))
	assert.Equal(t, KindBusinessRule, KindOf(BusinessRule("rule broken")))
	assert.Equal(t, KindNotFound, KindOf(NotFound("article")))
	assert.Equal(t, KindStorage, KindOf(Storage(errors.New("disk gone"))))
}

func TestKindOfForeignError(t *testing.T) {
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestKindSurvivesWrapping(t *testing.T) {
	wrapped := fmt.Errorf("while saving: %w", Denied())
	assert.True(t, IsKind(wrapped, KindAuthorizationDenied))
}

func TestNotFoundMessage(t *testing.T) {
	assert.EqualError(t, NotFound("tag"), "tag not found")
}

func TestFromDB(t *testing.T) {
	assert.NoError(t, FromDB(nil))

	assert.Equal(t, KindNotFound, KindOf(FromDB(gorm.ErrRecordNotFound)))
	assert.Equal(t, KindNotFound, KindOf(FromDB(fmt.Errorf("lookup: %w", gorm.ErrRecordNotFound))))

	assert.Equal(t, KindValidation, KindOf(FromDB(gorm.ErrDuplicatedKey)))
	assert.Equal(t, KindValidation, KindOf(FromDB(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})))

	assert.Equal(t, KindStorage, KindOf(FromDB(&mysql.MySQLError{Number: 1452, Message: "FK violation"})))
	assert.Equal(t, KindStorage, KindOf(FromDB(errors.New("connection reset"))))
}
