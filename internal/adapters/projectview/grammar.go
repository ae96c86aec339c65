package projectview

import (
	"strconv"
	"strings"

	"github.com/elharo/eclipse/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	itemPrefix   = "  "
	importPrefix = "import "

	sectionDirectories = "directories"
	sectionTargets     = "targets"
	sectionBuildFlags  = "build_flags"
	labelLanguageLevel = "java_language_level"
	labelImport        = "import"
)

// lineKind is the grammar form a physical line matched.
type lineKind int

const (
	lineBlank lineKind = iota
	lineItem
	lineImport
	lineColon
	lineComment
	lineInvalid
)

// classify matches a raw line against the grammar's line forms. Rule order
// matters: the item prefix wins over everything after it, and the import
// prefix wins over a colon appearing later in the line.
func classify(line string) lineKind {
	switch {
	case line == "":
		return lineBlank
	case strings.HasPrefix(line, itemPrefix):
		return lineItem
	case strings.HasPrefix(line, importPrefix):
		return lineImport
	case strings.Contains(line, ":"):
		return lineColon
	case strings.HasPrefix(strings.TrimSpace(line), "#"):
		return lineComment
	default:
		return lineInvalid
	}
}

// viewState carries the accumulation of one parse. A single instance is
// threaded by pointer through the whole import tree, so the open section
// deliberately survives file boundaries; only blank lines reset it, and the
// accumulation ends when the top-level resource has been fully processed.
type viewState struct {
	directories []string
	targets     []string
	buildFlags  []string
	level       int

	section     string
	haveSection bool

	// visiting is the chain of resolved view identities on the import
	// call stack, top-level first.
	visiting []string

	sources []Source
}

// build snapshots the accumulated content into the immutable model.
func (s *viewState) build() *domain.ProjectView {
	return domain.NewProjectView(s.directories, s.targets, s.buildFlags, s.level)
}

// applyItem appends an indented item to the open section. Items under
// unrecognized sections are recognized and dropped.
func applyItem(o origin, item string, num int, state *viewState) error {
	if !state.haveSection {
		return lineError(domain.ErrItemOutsideSection, o, num)
	}
	switch state.section {
	case sectionDirectories:
		state.directories = append(state.directories, item)
	case sectionTargets:
		state.targets = append(state.targets, item)
	case sectionBuildFlags:
		state.buildFlags = append(state.buildFlags, item)
	}
	return nil
}

// applyColon handles both line forms built around a colon: a section header
// (trailing colon after trimming) and a label: value scalar.
func applyColon(o origin, line string, num int, state *viewState) error {
	trimmed := strings.TrimSpace(line)

	if name, ok := strings.CutSuffix(trimmed, ":"); ok {
		if name == labelLanguageLevel {
			return zerr.With(lineError(domain.ErrReservedSection, o, num), "label", name)
		}
		state.section = name
		state.haveSection = true
		return nil
	}

	label, value, _ := strings.Cut(trimmed, ":")
	label = strings.TrimSpace(label)
	value = strings.TrimSpace(value)

	switch label {
	case sectionDirectories, sectionTargets, sectionBuildFlags, labelImport:
		return zerr.With(lineError(domain.ErrReservedScalarLabel, o, num), "label", label)
	case labelLanguageLevel:
		level, err := parseLanguageLevel(value)
		if err != nil {
			return zerr.With(lineError(domain.ErrLanguageLevelNotInteger, o, num), "value", value)
		}
		// Later assignment wins; view text carries no double-set guard
		state.level = level
	}
	return nil
}

// parseLanguageLevel accepts decimal digit runs only, so "07" parses as 7
// while signs, spaces, and empty values are rejected.
func parseLanguageLevel(value string) (int, error) {
	if value == "" {
		return 0, zerr.New("empty value")
	}
	for i := 0; i < len(value); i++ {
		if value[i] < '0' || value[i] > '9' {
			return 0, zerr.New("non-digit value")
		}
	}
	return strconv.Atoi(value)
}

// lineError annotates a grammar sentinel with the failing view and its
// 1-based line number.
func lineError(sentinel error, o origin, num int) error {
	return zerr.With(zerr.With(sentinel, "view", o.name()), "line", strconv.Itoa(num))
}

// cycleError reports an import chain that returned to a view already being
// parsed, formatted first occurrence onward.
func cycleError(visiting []string, id string) error {
	start := 0
	for i, seen := range visiting {
		if seen == id {
			start = i
			break
		}
	}
	chain := strings.Join(visiting[start:], " -> ") + " -> " + id
	return zerr.With(domain.ErrImportCycle, "cycle", chain)
}
