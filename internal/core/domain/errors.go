package domain

import "go.trai.ch/zerr"

var (
	// ErrViewSyntax is returned when a project view line matches no grammar rule.
	ErrViewSyntax = zerr.New("malformed project view line")

	// ErrItemOutsideSection is returned when an indented item appears while no section is open.
	ErrItemOutsideSection = zerr.New("list item outside any section")

	// ErrReservedSection is returned when a scalar-only label is used as a section header.
	ErrReservedSection = zerr.New("label cannot open a section")

	// ErrReservedScalarLabel is returned when a section-only or import label carries a scalar value.
	ErrReservedScalarLabel = zerr.New("label cannot carry a scalar value")

	// ErrLanguageLevelNotInteger is returned when a java_language_level value is not a decimal integer.
	ErrLanguageLevelNotInteger = zerr.New("java language level is not an integer")

	// ErrImportCycle is returned when a project view transitively imports itself.
	ErrImportCycle = zerr.New("project view import cycle")

	// ErrLanguageLevelInvalid is returned when a non-positive level is passed to the builder.
	ErrLanguageLevelInvalid = zerr.New("java language level must be positive")

	// ErrLanguageLevelAlreadySet is returned when the builder's level is assigned twice.
	ErrLanguageLevelAlreadySet = zerr.New("java language level already set")

	// ErrMissingField is returned when a build info document lacks a required key.
	ErrMissingField = zerr.New("missing required field")

	// ErrNoBuildInfo is returned when an operation needs build info files but
	// none were named, by argument, flag, or settings.
	ErrNoBuildInfo = zerr.New("no build info files specified")

	// ErrArtifactsMissing is returned when verification finds jars that are
	// absent from disk.
	ErrArtifactsMissing = zerr.New("artifacts missing")
)
