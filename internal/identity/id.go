package identity

import (
	"fmt"
	"hash/fnv"
)

// idPrefix tags generated identifiers so they are recognizable in logs and
// storage dumps.
const idPrefix = "bk_"

// BookID derives a deterministic record identifier from a title/author pair.
// The composite key is the normalized title and author joined with "|", hashed
// with FNV-1a. FNV is fixed and unkeyed, so two independent processes always
// derive the same id for the same pair. Collisions are accepted as a rare
// false-merge risk rather than guarded against.
func BookID(title, author string) string {
	h := fnv.New64a()
	h.Write([]byte(NormalizeTitle(title)))
	h.Write([]byte{'|'})
	h.Write([]byte(NormalizeAuthor(author)))
	return fmt.Sprintf("%s%016x", idPrefix, h.Sum64())
}
