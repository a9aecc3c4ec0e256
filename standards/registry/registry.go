package registry

import (
	"github.com/LegacyCodeHQ/dialect/standards/findup"
	"github.com/LegacyCodeHQ/dialect/standards/langsupport"
	"github.com/LegacyCodeHQ/dialect/standards/languages/c"
	"github.com/LegacyCodeHQ/dialect/standards/languages/cpp"
	"github.com/LegacyCodeHQ/dialect/standards/languages/golang"
	"github.com/LegacyCodeHQ/dialect/standards/languages/java"
	"github.com/LegacyCodeHQ/dialect/standards/languages/rust"
)

var modules = []langsupport.Module{
	c.Module{},
	cpp.Module{},
	golang.Module{},
	java.Module{},
	rust.Module{},
}

var nameAliases = map[string]string{
	"c++":    "cpp",
	"cxx":    "cpp",
	"golang": "go",
}

// Modules returns supported language modules in deterministic order.
func Modules() []langsupport.Module {
	return append([]langsupport.Module(nil), modules...)
}

// ModuleForName returns the module registered under the provided language
// name, accepting common aliases.
func ModuleForName(name string) (langsupport.Module, bool) {
	if canonical, ok := nameAliases[name]; ok {
		name = canonical
	}

	for _, module := range modules {
		if module.Name() == name {
			return module, true
		}
	}

	return nil, false
}

// Present returns the modules whose build files exist in dir or one of its
// ancestors, in registry order.
func Present(dir string) []langsupport.Module {
	var present []langsupport.Module
	for _, module := range modules {
		for _, buildFile := range module.BuildFiles() {
			if _, ok := findup.Nearest(dir, buildFile); ok {
				present = append(present, module)
				break
			}
		}
	}

	return present
}

// BuildFileNames returns the union of every module's build file names.
func BuildFileNames() map[string]bool {
	names := make(map[string]bool)
	for _, module := range modules {
		for _, buildFile := range module.BuildFiles() {
			names[buildFile] = true
		}
	}

	return names
}
