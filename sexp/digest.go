package sexp

import (
	digest "github.com/opencontainers/go-digest"
)

// Digest returns a content digest of t's canonical serialization. Two
// Trees that serialize to the same bytes always produce the same
// Digest, regardless of how they were built or how many nodes were
// allocated and discarded along the way; it is meant for cache keys and
// change detection, not for cryptographic integrity guarantees beyond
// what the underlying algorithm provides.
func Digest(t *Tree) digest.Digest {
	return digest.FromBytes(Serialize(t))
}

// NodeDigest is Digest's counterpart for a single node's subtree.
func NodeDigest(n Node) digest.Digest {
	return digest.FromBytes(SerializeNode(n))
}
