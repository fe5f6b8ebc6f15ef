// Package validate checks request payloads against the declarative `validate`
// struct tags on their types and reports every failing field in one error.
package validate

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/platform/apierr"
)

var (
	once     sync.Once
	instance *validator.Validate
)

func engine() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return f.Name
			}
			return name
		})
		instance = v
	})
	return instance
}

// Struct returns nil or an *apierr.Error with Fields naming each failure by
// its JSON name (nested as parent.child).
func Struct(v any) error {
	err := engine().Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apierr.BadRequest(apierr.CodeValidation, err)
	}
	seen := make(map[string]bool, len(verrs))
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		name := fieldPath(fe.Namespace())
		if seen[name] {
			continue
		}
		seen[name] = true
		fields = append(fields, name)
	}
	return apierr.Validation(fields...)
}

// fieldPath drops the top-level struct name from a validator namespace.
func fieldPath(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
