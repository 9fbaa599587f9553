// Package comment provides the comment board domain model.
package comment

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrEmptyFields is returned when the name or the comment is blank after trimming.
var ErrEmptyFields = errors.New("name and comment are required")

var validate = validator.New()

// Comment is a single entry on the board.
type Comment struct {
	Name    string `json:"name" validate:"required"`
	Comment string `json:"comment" validate:"required"`
}

// New builds a comment from raw form input, trimming surrounding whitespace.
func New(name, text string) (Comment, error) {
	c := Comment{
		Name:    strings.TrimSpace(name),
		Comment: strings.TrimSpace(text),
	}
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return Comment{}, ErrEmptyFields
		}
		return Comment{}, err
	}
	return c, nil
}
