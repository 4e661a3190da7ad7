package lint

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/roach88/afmkit/afm"
)

var validate = sync.OnceValue(func() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
})

// checkRequired reports fields tagged required that are empty.
func (l *linter) checkRequired(exec afm.Execution) {
	err := validate().Struct(exec)
	if err == nil {
		return
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		l.add(ErrRequired, "execution", "%v", err)
		return
	}
	for _, fe := range verrs {
		field := fieldPath(fe.Namespace())
		if fe.Tag() == "required" {
			l.add(ErrRequired, field, "%s is required", fe.Field())
			continue
		}
		l.add(ErrRequired, field, "failed %q check", fe.Tag())
	}
}

// fieldPath turns "Execution.afm.measures[0].definition" into
// "afm.measures[0].definition".
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}
