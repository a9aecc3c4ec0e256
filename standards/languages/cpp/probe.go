package cpp

import (
	"io/fs"
	"path/filepath"
	"strconv"

	graphlib "github.com/dominikbraun/graph"
)

// probeFileLimit bounds how many files the source probe will parse so that
// detection stays cheap on large trees.
const probeFileLimit = 200

var sourceExtensions = map[string]bool{
	".cpp": true,
	".cc":  true,
	".cxx": true,
}

var headerExtensions = map[string]bool{
	".h":   true,
	".hpp": true,
	".hh":  true,
	".hxx": true,
}

var skippedDirs = map[string]bool{
	".git":                true,
	"node_modules":        true,
	"build":               true,
	"cmake-build-debug":   true,
	"cmake-build-release": true,
	".idea":               true,
	".vscode":             true,
	".cache":              true,
}

// Standard-library headers that pin a minimum language revision. Headers
// available since C++11 or earlier carry no signal and are omitted.
var headerMinimumStandards = map[string]string{
	"print":           "23",
	"expected":        "23",
	"generator":       "23",
	"stacktrace":      "23",
	"spanstream":      "23",
	"flat_map":        "23",
	"flat_set":        "23",
	"mdspan":          "23",
	"concepts":        "20",
	"coroutine":       "20",
	"ranges":          "20",
	"span":            "20",
	"format":          "20",
	"bit":             "20",
	"numbers":         "20",
	"compare":         "20",
	"latch":           "20",
	"barrier":         "20",
	"semaphore":       "20",
	"syncstream":      "20",
	"source_location": "20",
	"optional":        "17",
	"variant":         "17",
	"any":             "17",
	"string_view":     "17",
	"filesystem":      "17",
	"charconv":        "17",
	"execution":       "17",
	"memory_resource": "17",
	"shared_mutex":    "14",
}

// probeSourcesStandard infers the minimum standard the project's own sources
// require. Translation units under dir are parsed and their local includes
// resolved into a directed include graph; each translation unit is then
// scored by walking its reachable closure in that graph and taking the
// highest minimum its standard-library headers imply. The winning version is
// returned together with the translation unit that pinned it. A project with
// no telling headers reports no evidence.
func probeSourcesStandard(dir string) (version, pinnedBy string, ok bool) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return "", "", false
	}

	translationUnits, projectFiles := collectSourceFiles(root)
	if len(translationUnits) == 0 {
		return "", "", false
	}

	includeGraph, fileHeaders := buildIncludeGraph(root, translationUnits, projectFiles)

	best := 0
	for _, unit := range translationUnits {
		implied := 0
		walkErr := graphlib.BFS(includeGraph, unit, func(file string) bool {
			for _, header := range fileHeaders[file] {
				if minimum, known := headerMinimum(header); known && minimum > implied {
					implied = minimum
				}
			}
			return false
		})
		if walkErr != nil {
			// Translation units beyond the parse limit never entered the graph.
			continue
		}

		if implied > best {
			best = implied
			pinnedBy = unit
		}
	}

	if best == 0 {
		return "", "", false
	}
	return strconv.Itoa(best), pinnedBy, true
}

// buildIncludeGraph parses the closure of the translation units and records
// it as a directed graph: one vertex per parsed file, one edge per resolved
// local include. fileHeaders carries each vertex's standard-library includes
// for the scoring pass. The graph's order caps how many files are parsed.
func buildIncludeGraph(root string, translationUnits []string, projectFiles map[string]bool) (graphlib.Graph[string, string], map[string][]string) {
	includeGraph := graphlib.New(graphlib.StringHash, graphlib.Directed())
	fileHeaders := make(map[string][]string)

	parsed := make(map[string]bool)
	queue := append([]string(nil), translationUnits...)

	for len(queue) > 0 {
		file := queue[0]
		queue = queue[1:]

		if parsed[file] {
			continue
		}
		if order, err := includeGraph.Order(); err == nil && order >= probeFileLimit {
			break
		}
		parsed[file] = true
		_ = includeGraph.AddVertex(file)

		system, local, err := scanFile(file)
		if err != nil {
			continue
		}
		fileHeaders[file] = system

		for _, includePath := range local {
			for _, resolved := range resolveInclude(root, file, includePath, projectFiles) {
				_ = includeGraph.AddVertex(resolved)
				_ = includeGraph.AddEdge(file, resolved)
				if !parsed[resolved] {
					queue = append(queue, resolved)
				}
			}
		}
	}

	return includeGraph, fileHeaders
}

// collectSourceFiles gathers translation units and the set of all project
// C/C++ files under root. Headers enter the probe only when reached through
// the include graph, never directly.
func collectSourceFiles(root string) ([]string, map[string]bool) {
	var translationUnits []string
	projectFiles := make(map[string]bool)

	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if skippedDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}

		ext := filepath.Ext(path)
		switch {
		case sourceExtensions[ext]:
			if len(translationUnits) < probeFileLimit {
				translationUnits = append(translationUnits, path)
			}
			projectFiles[path] = true
		case headerExtensions[ext]:
			projectFiles[path] = true
		}
		return nil
	})

	return translationUnits, projectFiles
}

func headerMinimum(header string) (int, bool) {
	version, ok := headerMinimumStandards[header]
	if !ok {
		return 0, false
	}

	minimum, err := strconv.Atoi(version)
	if err != nil {
		return 0, false
	}
	return minimum, true
}
