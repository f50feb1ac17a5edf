package content

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/paul-wang1/portfolio/internal/platform/icons"
)

// ErrInvalidContent marks content that failed validation.
var ErrInvalidContent = errors.New("invalid content")

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

var contentValidator = sync.OnceValue(func() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	})
	validate.RegisterValidation("icon", func(fl validator.FieldLevel) bool {
		id, ok := icons.ParseID(fl.Field().String())
		return ok && string(id) == fl.Field().String()
	})
	return validate
})

func validateStruct(name string, value any) error {
	if err := contentValidator().Struct(value); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return fmt.Errorf("%w: %s: %s", ErrInvalidContent, name, describe(verrs))
		}
		return fmt.Errorf("%w: %s: %v", ErrInvalidContent, name, err)
	}
	return nil
}

func describe(verrs validator.ValidationErrors) string {
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s fails %q", fe.Namespace(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}

func validateUniqueSlugs(projects []Project) error {
	seen := make(map[string]string, len(projects))
	for _, project := range projects {
		if other, ok := seen[project.Slug]; ok {
			return fmt.Errorf("%w: duplicate slug %q in %s and %s", ErrInvalidContent, project.Slug, other, project.source)
		}
		seen[project.Slug] = project.source
	}
	return nil
}
