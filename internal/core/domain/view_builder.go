package domain

import (
	"strconv"

	"go.trai.ch/zerr"
)

// ViewBuilder accumulates project view content programmatically, for callers
// that assemble a view from somewhere other than view text (wizards, tests,
// generated configs). The two construction paths carry deliberately different
// java_language_level contracts: re-assignment in view text overwrites
// silently, while the builder rejects a second SetJavaLanguageLevel.
type ViewBuilder struct {
	directories []string
	targets     []string
	buildFlags  []string
	level       int
}

// NewViewBuilder returns an empty builder.
func NewViewBuilder() *ViewBuilder {
	return &ViewBuilder{}
}

// AddDirectories appends workspace directories, preserving order.
func (b *ViewBuilder) AddDirectories(dirs ...string) *ViewBuilder {
	b.directories = append(b.directories, dirs...)
	return b
}

// AddTargets appends target patterns, preserving order.
func (b *ViewBuilder) AddTargets(targets ...string) *ViewBuilder {
	b.targets = append(b.targets, targets...)
	return b
}

// AddBuildFlags appends build flags, preserving order.
func (b *ViewBuilder) AddBuildFlags(flags ...string) *ViewBuilder {
	b.buildFlags = append(b.buildFlags, flags...)
	return b
}

// SetJavaLanguageLevel records the Java language level. The level must be
// positive and may be set at most once per builder.
func (b *ViewBuilder) SetJavaLanguageLevel(level int) error {
	if level <= 0 {
		return zerr.With(ErrLanguageLevelInvalid, "level", strconv.Itoa(level))
	}
	if b.level != 0 {
		return zerr.With(ErrLanguageLevelAlreadySet, "level", strconv.Itoa(b.level))
	}
	b.level = level
	return nil
}

// Build snapshots the accumulated content into an immutable ProjectView. The
// builder stays usable afterwards; further mutation never affects views
// already built.
func (b *ViewBuilder) Build() *ProjectView {
	return NewProjectView(b.directories, b.targets, b.buildFlags, b.level)
}
