package cpp

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	treecpp "github.com/smacker/go-tree-sitter/cpp"
)

var headerSuffixes = []string{".h", ".hpp", ".hh", ".hxx"}

// scanFile parses one C++ file and splits its include directives into
// standard-library headers (the probe's inference input) and project-local
// paths (the probe's graph edges).
func scanFile(path string) (system, local []string, err error) {
	sourceCode, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read file: %w", err)
	}

	return parseIncludes(sourceCode)
}

func parseIncludes(sourceCode []byte) (system, local []string, err error) {
	parser := sitter.NewParser()
	parser.SetLanguage(treecpp.GetLanguage())

	tree, err := parser.ParseCtx(context.Background(), nil, sourceCode)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse C++ code: %w", err)
	}
	defer tree.Close()

	var walk func(*sitter.Node)
	walk = func(n *sitter.Node) {
		if n == nil {
			return
		}

		if n.Type() == "preproc_include" {
			for i := 0; i < int(n.ChildCount()); i++ {
				child := n.Child(i)
				if child == nil {
					continue
				}
				switch child.Type() {
				case "system_lib_string":
					header := strings.TrimSpace(child.Content(sourceCode))
					header = strings.TrimSuffix(strings.TrimPrefix(header, "<"), ">")
					if header = strings.TrimSpace(header); header != "" {
						system = append(system, header)
					}
				case "string_literal":
					if path := strings.Trim(child.Content(sourceCode), "\"' "); path != "" {
						local = append(local, path)
					}
				}
			}
		}

		for i := 0; i < int(n.ChildCount()); i++ {
			walk(n.Child(i))
		}
	}

	walk(tree.RootNode())
	return system, local, nil
}

// resolveInclude maps a project-local include onto files the probe collected.
// Candidates are the include path relative to the including file's directory,
// then relative to each ancestor up to the scan root and its include/
// subdirectory; directories above the scan root are never consulted, since
// projectFiles cannot contain anything outside it. Extensionless includes are
// tried against the common header suffixes.
func resolveInclude(root, sourceFile, includePath string, projectFiles map[string]bool) []string {
	seen := make(map[string]bool)
	var resolved []string

	tryBase := func(base string) {
		for _, candidate := range headerCandidates(base) {
			if !seen[candidate] && projectFiles[candidate] {
				seen[candidate] = true
				resolved = append(resolved, candidate)
			}
		}
	}

	for dir := filepath.Dir(sourceFile); ; dir = filepath.Dir(dir) {
		tryBase(filepath.Join(dir, includePath))
		tryBase(filepath.Join(dir, "include", includePath))

		if dir == root || dir == filepath.Dir(dir) {
			break
		}
	}

	sort.Strings(resolved)
	return resolved
}

func headerCandidates(base string) []string {
	if filepath.Ext(base) != "" {
		return []string{filepath.Clean(base)}
	}

	candidates := make([]string, 0, len(headerSuffixes))
	for _, suffix := range headerSuffixes {
		candidates = append(candidates, filepath.Clean(base)+suffix)
	}
	return candidates
}
