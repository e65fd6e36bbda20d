package task

// Default is the built-in catalog, used when the project does not provide
// a catalog file. It covers a Go tree; other ecosystems declare their own
// catalog in devtask.yaml.
func Default() Catalog {
	return Catalog{
		"fmt": {Name: "fmt", Commands: []Command{
			{"golangci-lint", "fmt", "./..."},
			{"golangci-lint", "run", "--fix", "./..."},
		}},
		"lint": {Name: "lint", Commands: []Command{
			{"golangci-lint", "run", "./..."},
		}},
		"test": {Name: "test", Commands: []Command{
			{"go", "test", "./..."},
		}},
	}
}
