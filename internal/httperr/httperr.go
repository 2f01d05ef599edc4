package httperr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type HTTPError struct {
	Status  int    `json:"status"`
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Response(err error) HTTPError {
	e := From(err)
	return HTTPError{
		Status:  e.Kind.Status(),
		Code:    e.Kind.String(),
		Message: e.Message,
	}
}

func Write(c *gin.Context, err error) {
	body := Response(err)
	c.JSON(body.Status, body)
}

// Abort records err for the boundary handler and stops the chain.
func Abort(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// FromBinding converts a gin binding failure into MissingField.
func FromBinding(err error) error {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		return MissingField(fmt.Sprintf("Insert %s.", jsonFieldName(ve[0])))
	}
	return MissingField("Invalid request body.")
}

func jsonFieldName(fe validator.FieldError) string {
	name := fe.Field()
	if name == "" {
		return "field"
	}
	if strings.ToUpper(name) == name {
		return strings.ToLower(name)
	}
	return strings.ToLower(name[:1]) + name[1:]
}

// IsUniqueViolation detects unique-key violations from gorm or Postgres.
func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
