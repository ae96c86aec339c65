package domain

import (
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint returns a stable xxhash64 digest of the view contents. Views
// with identical sections in identical order share a fingerprint; cache
// invalidation and change detection key on it.
func (v *ProjectView) Fingerprint() string {
	hasher := xxhash.New()

	hashItems(hasher, v.directories)
	hashItems(hasher, v.targets)
	hashItems(hasher, v.buildFlags)

	_, _ = hasher.WriteString(strconv.Itoa(v.javaLanguageLevel))
	_, _ = hasher.Write([]byte{0})

	return fmt.Sprintf("%016x", hasher.Sum64())
}

// Fingerprint returns a stable xxhash64 digest of the aggregate. Records are
// hashed in sorted label order, so maps with the same content share a
// fingerprint regardless of capture order.
func (m BuildInfoMap) Fingerprint() string {
	hasher := xxhash.New()

	for _, label := range m.Labels() {
		info := m[label]

		_, _ = hasher.WriteString(label.String())
		_, _ = hasher.Write([]byte{0})
		_, _ = hasher.WriteString(info.kind)
		_, _ = hasher.Write([]byte{0})
		_, _ = hasher.WriteString(info.location)
		_, _ = hasher.Write([]byte{0})

		for _, dep := range info.deps {
			_, _ = hasher.WriteString(dep.String())
			_, _ = hasher.Write([]byte{0})
		}
		_, _ = hasher.Write([]byte{0})

		hashItems(hasher, info.sources)
		hashJarGroups(hasher, info.generated)
		hashJarGroups(hasher, info.outputs)
	}

	return fmt.Sprintf("%016x", hasher.Sum64())
}

// hashItems writes one string list followed by a section separator.
func hashItems(hasher *xxhash.Digest, items []string) {
	for _, item := range items {
		_, _ = hasher.WriteString(item)
		_, _ = hasher.Write([]byte{0})
	}
	_, _ = hasher.Write([]byte{0}) // Section separator
}

// hashJarGroups writes jar slots with presence markers, so an absent slot
// never collides with an empty path.
func hashJarGroups(hasher *xxhash.Digest, groups []JarGroup) {
	for _, g := range groups {
		_, _ = hasher.WriteString(g.jar)
		_, _ = hasher.Write([]byte{0})
		hashOptional(hasher, g.ijar)
		hashOptional(hasher, g.src)
	}
	_, _ = hasher.Write([]byte{0})
}

func hashOptional(hasher *xxhash.Digest, o optString) {
	if o.ok {
		_, _ = hasher.Write([]byte{1})
		_, _ = hasher.WriteString(o.s)
	}
	_, _ = hasher.Write([]byte{0})
}
