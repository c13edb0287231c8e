package validators

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/quikka/quikka-api/internal/timeutil"
)

// RegisterBindings installs custom rules on gin's validator engine. Request
// structs can then tag time-of-day fields with binding:"hhmm".
func RegisterBindings() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
			_, err := timeutil.ParseHM(fl.Field().String())
			return err == nil
		})
	}
}
