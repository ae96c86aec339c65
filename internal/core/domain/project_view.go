// Package domain contains the core models of the bridge: parsed project
// views and aggregated per-target build info records.
package domain

import (
	"encoding/json"
	"slices"
)

// ProjectView is the parsed form of a .bazelproject file: the directories the
// workspace cares about, the target patterns to build, extra build flags, and
// an optional Java language level. Views are immutable once constructed; both
// the text parser and the ViewBuilder finish by handing their accumulated
// state to NewProjectView.
type ProjectView struct {
	directories       []string
	targets           []string
	buildFlags        []string
	javaLanguageLevel int
}

// NewProjectView constructs an immutable view. The slices are copied, so the
// caller's buffers stay decoupled from the returned value.
func NewProjectView(directories, targets, buildFlags []string, javaLanguageLevel int) *ProjectView {
	return &ProjectView{
		directories:       cloneItems(directories),
		targets:           cloneItems(targets),
		buildFlags:        cloneItems(buildFlags),
		javaLanguageLevel: javaLanguageLevel,
	}
}

// cloneItems copies s and never returns nil, so accessors and JSON output
// always see a real list.
func cloneItems(s []string) []string {
	if len(s) == 0 {
		return []string{}
	}
	return slices.Clone(s)
}

// Directories returns the workspace directories in declaration order.
func (v *ProjectView) Directories() []string {
	return slices.Clone(v.directories)
}

// Targets returns the target patterns in declaration order. Patterns are kept
// verbatim, including wildcard and exclusion syntax.
func (v *ProjectView) Targets() []string {
	return slices.Clone(v.targets)
}

// BuildFlags returns the extra build flags in declaration order.
func (v *ProjectView) BuildFlags() []string {
	return slices.Clone(v.buildFlags)
}

// JavaLanguageLevel returns the declared Java language level, or zero when
// the view leaves the level to the toolchain default.
func (v *ProjectView) JavaLanguageLevel() int {
	return v.javaLanguageLevel
}

// MarshalJSON renders the view for tooling output. This is a one-way
// projection; the view text format is never written back.
func (v *ProjectView) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Directories       []string `json:"directories"`
		Targets           []string `json:"targets"`
		BuildFlags        []string `json:"build_flags"`
		JavaLanguageLevel int      `json:"java_language_level"`
	}{
		Directories:       v.directories,
		Targets:           v.targets,
		BuildFlags:        v.buildFlags,
		JavaLanguageLevel: v.javaLanguageLevel,
	})
}
