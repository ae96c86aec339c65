package domain

import (
	"bytes"
	"encoding/json"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// BuildInfo is one target's build metadata as emitted by the IDE aspect: the
// jars it produces, the location of its serialized BUILD file, the rule kind,
// and the target's declared dependencies and sources. Records are immutable;
// accessors hand out copies of the slices. Construction goes through JSON
// decoding, the only way records enter the system.
type BuildInfo struct {
	label     Label
	location  string
	kind      string
	deps      []Label
	sources   []string
	generated []JarGroup
	outputs   []JarGroup
}

// Label returns the target label the record describes.
func (b BuildInfo) Label() Label {
	return b.label
}

// Location returns the build file artifact location.
func (b BuildInfo) Location() string {
	return b.location
}

// Kind returns the rule kind, e.g. "java_library".
func (b BuildInfo) Kind() string {
	return b.kind
}

// Dependencies returns the declared dependency labels in document order.
func (b BuildInfo) Dependencies() []Label {
	return slices.Clone(b.deps)
}

// Sources returns the source file paths in document order.
func (b BuildInfo) Sources() []string {
	return slices.Clone(b.sources)
}

// GeneratedJars returns the jars produced by annotation processing.
func (b BuildInfo) GeneratedJars() []JarGroup {
	return slices.Clone(b.generated)
}

// OutputJars returns the jars produced by building the target.
func (b BuildInfo) OutputJars() []JarGroup {
	return slices.Clone(b.outputs)
}

// buildInfoDTO is the aspect's wire shape for one target. Scalars are
// pointers and arrays stay nil when absent, so required-key checks can tell
// a missing key from an empty value.
type buildInfoDTO struct {
	Jars          []JarGroup        `json:"jars"`
	GeneratedJars []JarGroup        `json:"generated_jars"`
	Location      *string           `json:"build_file_artifact_location"`
	Kind          *string           `json:"kind"`
	Label         *string           `json:"label"`
	Dependencies  []json.RawMessage `json:"dependencies"`
	Sources       []json.RawMessage `json:"sources"`
}

// UnmarshalJSON decodes one aspect document. Every top-level key is required;
// the first missing one aborts with ErrMissingField and the field name.
func (b *BuildInfo) UnmarshalJSON(data []byte) error {
	var dto buildInfoDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return zerr.Wrap(err, "failed to decode build info")
	}

	switch {
	case dto.Jars == nil:
		return zerr.With(ErrMissingField, "field", "jars")
	case dto.GeneratedJars == nil:
		return zerr.With(ErrMissingField, "field", "generated_jars")
	case dto.Location == nil:
		return zerr.With(ErrMissingField, "field", "build_file_artifact_location")
	case dto.Kind == nil:
		return zerr.With(ErrMissingField, "field", "kind")
	case dto.Label == nil:
		return zerr.With(ErrMissingField, "field", "label")
	case dto.Dependencies == nil:
		return zerr.With(ErrMissingField, "field", "dependencies")
	case dto.Sources == nil:
		return zerr.With(ErrMissingField, "field", "sources")
	}

	deps := make([]Label, 0, len(dto.Dependencies))
	for _, d := range coerceStrings(dto.Dependencies) {
		deps = append(deps, NewLabel(d))
	}

	*b = BuildInfo{
		label:     NewLabel(*dto.Label),
		location:  *dto.Location,
		kind:      *dto.Kind,
		deps:      deps,
		sources:   coerceStrings(dto.Sources),
		generated: dto.GeneratedJars,
		outputs:   dto.Jars,
	}
	return nil
}

// MarshalJSON re-emits the aspect shape with keys in aspect order.
func (b BuildInfo) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Jars          []JarGroup `json:"jars"`
		GeneratedJars []JarGroup `json:"generated_jars"`
		Location      string     `json:"build_file_artifact_location"`
		Kind          string     `json:"kind"`
		Label         Label      `json:"label"`
		Dependencies  []Label    `json:"dependencies"`
		Sources       []string   `json:"sources"`
	}{
		Jars:          b.outputs,
		GeneratedJars: b.generated,
		Location:      b.location,
		Kind:          b.kind,
		Label:         b.label,
		Dependencies:  b.deps,
		Sources:       b.sources,
	})
}

// coerceStrings converts the elements of a JSON array to strings the way the
// aspect's consumers expect: JSON strings keep their value, any other element
// keeps its literal JSON text.
func coerceStrings(raw []json.RawMessage) []string {
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		var s string
		if err := json.Unmarshal(r, &s); err == nil {
			out = append(out, s)
			continue
		}
		out = append(out, string(bytes.TrimSpace(r)))
	}
	return out
}

// BuildInfoMap indexes build info records by target label.
type BuildInfoMap map[Label]BuildInfo

// Put inserts a record, replacing any earlier record with the same label.
// When the same target is captured twice the most recent capture wins.
func (m BuildInfoMap) Put(info BuildInfo) {
	m[info.label] = info
}

// Labels returns the map's keys sorted by label text, for deterministic
// output.
func (m BuildInfoMap) Labels() []Label {
	labels := make([]Label, 0, len(m))
	for l := range m {
		labels = append(labels, l)
	}
	slices.SortFunc(labels, func(a, b Label) int {
		return strings.Compare(a.String(), b.String())
	})
	return labels
}
