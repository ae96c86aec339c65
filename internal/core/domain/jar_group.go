package domain

import (
	"encoding/json"

	"go.trai.ch/zerr"
)

// optString is an explicit present-or-absent string. Absence is a real state
// for jar slots: a group without a source jar differs from one whose source
// jar is the empty path, and equality must tell the two apart.
type optString struct {
	s  string
	ok bool
}

// JarGroup bundles the artifacts produced for one jar: the compiled jar
// itself plus optional interface (ijar) and source jars. Groups are
// comparable values; two groups are equal when all three slots match,
// including absence.
type JarGroup struct {
	jar  string
	ijar optString
	src  optString
}

// JarGroupOption configures the optional slots of a JarGroup.
type JarGroupOption func(*JarGroup)

// WithInterfaceJar sets the interface jar path.
func WithInterfaceJar(path string) JarGroupOption {
	return func(g *JarGroup) {
		g.ijar = optString{s: path, ok: true}
	}
}

// WithSourceJar sets the source jar path.
func WithSourceJar(path string) JarGroupOption {
	return func(g *JarGroup) {
		g.src = optString{s: path, ok: true}
	}
}

// NewJarGroup builds a group around the required compiled jar.
func NewJarGroup(jar string, opts ...JarGroupOption) JarGroup {
	g := JarGroup{jar: jar}
	for _, opt := range opts {
		opt(&g)
	}
	return g
}

// Jar returns the compiled jar path.
func (g JarGroup) Jar() string {
	return g.jar
}

// InterfaceJar returns the interface jar path and whether one is present.
func (g JarGroup) InterfaceJar() (string, bool) {
	return g.ijar.s, g.ijar.ok
}

// SourceJar returns the source jar path and whether one is present.
func (g JarGroup) SourceJar() (string, bool) {
	return g.src.s, g.src.ok
}

// jarGroupDTO is the aspect's wire shape for one jar group.
type jarGroupDTO struct {
	Jar          *string `json:"jar,omitempty"`
	InterfaceJar *string `json:"interface_jar,omitempty"`
	SrcJar       *string `json:"srcjar,omitempty"`
}

// UnmarshalJSON decodes the aspect shape. The jar key is required; the
// interface and source jars stay absent when their keys are missing.
func (g *JarGroup) UnmarshalJSON(data []byte) error {
	var dto jarGroupDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return zerr.Wrap(err, "failed to decode jar group")
	}
	if dto.Jar == nil {
		return zerr.With(ErrMissingField, "field", "jar")
	}

	*g = JarGroup{jar: *dto.Jar}
	if dto.InterfaceJar != nil {
		g.ijar = optString{s: *dto.InterfaceJar, ok: true}
	}
	if dto.SrcJar != nil {
		g.src = optString{s: *dto.SrcJar, ok: true}
	}
	return nil
}

// MarshalJSON mirrors the aspect shape, omitting absent slots.
func (g JarGroup) MarshalJSON() ([]byte, error) {
	dto := jarGroupDTO{Jar: &g.jar}
	if g.ijar.ok {
		ijar := g.ijar.s
		dto.InterfaceJar = &ijar
	}
	if g.src.ok {
		src := g.src.s
		dto.SrcJar = &src
	}
	return json.Marshal(dto)
}
