package apperror

import (
	"reflect"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Init wires custom rules into Gin's built-in validator. Call once from main
// before any request is bound.
func Init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	// Report fields by their json tag name (e.g. "phoneNumber", not "PhoneNumber")
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// beforetoday: a 2006-01-02 date strictly before the current date.
	// The datetime rule already rejects unparseable values, so a parse
	// failure here just defers to that message.
	_ = v.RegisterValidation("beforetoday", func(fl validator.FieldLevel) bool {
		d, err := time.Parse("2006-01-02", fl.Field().String())
		if err != nil {
			return true
		}
		today := time.Now().UTC().Truncate(24 * time.Hour)
		return d.Before(today)
	})
}
