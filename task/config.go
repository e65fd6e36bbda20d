package task

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
)

// CatalogFile is the project-local catalog override, looked up relative
// to the working directory.
const CatalogFile = "devtask.yaml"

type fileCatalog struct {
	Tasks []fileTask `yaml:"tasks" validate:"required,min=1,unique=Name,dive"`
}

type fileTask struct {
	Name     string    `yaml:"name" validate:"required"`
	Commands []Command `yaml:"commands" validate:"required,min=1,dive,min=1"`
}

var validate = sync.OnceValue(func() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
})

// Load returns the catalog declared in dir's devtask.yaml, or the default
// catalog if the file does not exist. The file is read once at startup;
// a malformed or invalid file is a fatal error, not a fallback.
func Load(dir string) (Catalog, error) {
	fn := filepath.Join(dir, CatalogFile)
	f, err := os.Open(fn)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}
	defer f.Close()

	var fc fileCatalog
	d := yaml.NewDecoder(f, yaml.DisallowUnknownField())
	if err := d.Decode(&fc); err != nil {
		return nil, fmt.Errorf("error loading %s: %w", fn, err)
	}
	if err := validate().Struct(&fc); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", fn, err)
	}

	cat := make(Catalog, len(fc.Tasks))
	for _, t := range fc.Tasks {
		cat[t.Name] = Task{Name: t.Name, Commands: t.Commands}
	}
	return cat, nil
}
