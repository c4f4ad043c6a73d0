package httpapi

import (
	"fmt"
	"reflect"
	"strings"

	userEntity "blogfeed/internal/core/user"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/leebenson/conform"
)

type postForm struct {
	Text  string `form:"text" conform:"trim" validate:"required"`
	Group string `form:"group" conform:"trim"`
}

type commentForm struct {
	Text string `form:"text" conform:"trim" validate:"required"`
}

type loginForm struct {
	Username string `form:"username" conform:"trim" validate:"required"`
	Password string `form:"password" validate:"required"`
	Next     string `form:"next" conform:"trim"`
}

type signupForm struct {
	FirstName string `form:"first_name" conform:"trim" validate:"max=150"`
	LastName  string `form:"last_name" conform:"trim" validate:"max=150"`
	Username  string `form:"username" conform:"trim" validate:"required,max=150,username"`
	Email     string `form:"email" conform:"trim,lower" validate:"omitempty,email"`
	Password1 string `form:"password1" validate:"required,min=8"`
	Password2 string `form:"password2" validate:"required,eqfield=Password1"`
}

// fieldErrors maps a form field name to its message; "form" holds errors not
// tied to a single field.
type fieldErrors map[string]string

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return userEntity.ValidUsername(fl.Field().String())
	})
	return v
}

// bindForm decodes the request form into dst, trims it and validates it.
func bindForm(c *gin.Context, dst any) fieldErrors {
	errs := fieldErrors{}
	if err := c.ShouldBind(dst); err != nil {
		errs["form"] = "Invalid form submission."
		return errs
	}
	if err := conform.Strings(dst); err != nil {
		errs["form"] = "Invalid form submission."
		return errs
	}
	err := validate.Struct(dst)
	if err == nil {
		return errs
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		errs["form"] = "Invalid form submission."
		return errs
	}
	for _, e := range verrs {
		if _, seen := errs[e.Field()]; !seen {
			errs[e.Field()] = message(e)
		}
	}
	return errs
}

func message(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "min":
		return fmt.Sprintf("Ensure this value has at least %s characters.", e.Param())
	case "max":
		return fmt.Sprintf("Ensure this value has at most %s characters.", e.Param())
	case "username":
		return "Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters."
	case "eqfield":
		return "The two password fields didn't match."
	default:
		return "Enter a valid value."
	}
}
