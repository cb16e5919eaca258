// Package cache tracks the last-seen content digest of watched files so
// the watch subcommand can skip reformatting a file that fsnotify woke
// us up for but whose content hasn't actually changed (editors commonly
// emit multiple events per save).
package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/opencontainers/go-digest"
)

// Digests is a bounded cache from file path to the digest.Digest last
// written for that path.
type Digests struct {
	lru *lru.Cache[string, digest.Digest]
}

// New returns a Digests cache holding at most size entries, evicting the
// least recently used path once full.
func New(size int) (*Digests, error) {
	c, err := lru.New[string, digest.Digest](size)
	if err != nil {
		return nil, err
	}
	return &Digests{lru: c}, nil
}

// Seen reports whether dg is the digest already recorded for path, and
// records dg for path either way. A caller should reformat only when
// Seen returns false.
func (d *Digests) Seen(path string, dg digest.Digest) bool {
	prev, ok := d.lru.Get(path)
	d.lru.Add(path, dg)
	return ok && prev == dg
}
