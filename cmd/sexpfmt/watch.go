package main

import (
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/arbortext/sexp/cmd/sexpfmt/internal/cache"
	"github.com/arbortext/sexp/sexp"
)

func newWatchCmd() *cobra.Command {
	var write bool
	cmd := &cobra.Command{
		Use:   "watch FILE...",
		Short: "Watch S-expression files and reformat them on change",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(args, write)
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", true, "write the canonicalized form back to each file")
	return cmd
}

func runWatch(paths []string, write bool) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	for _, p := range paths {
		if err := watcher.Add(p); err != nil {
			return err
		}
	}

	digests, err := cache.New(len(paths) * 4)
	if err != nil {
		return err
	}

	// One token per path per 200ms caps reformat churn from editors that
	// emit several write events per save. An event for a path that arrives
	// within 200ms of the last one handled for that path is dropped.
	limiters := make(map[string]*rate.Limiter)

	log.Info("watching for changes, press ctrl-c to stop")
	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			limiter, ok := limiters[ev.Name]
			if !ok {
				limiter = rate.NewLimiter(rate.Every(200*time.Millisecond), 1)
				limiters[ev.Name] = limiter
			}
			if !limiter.Allow() {
				continue
			}
			handleWatchEvent(ev.Name, write, digests)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.WithError(err).Warn("watcher error")
		}
	}
}

func handleWatchEvent(path string, write bool, digests *cache.Digests) {
	raw, err := os.ReadFile(path)
	if err != nil {
		log.WithError(err).WithField("file", path).Warn("read failed")
		return
	}
	tree, err := sexp.Parse(raw)
	if err != nil {
		log.WithError(err).WithField("file", path).Warn("parse failed")
		return
	}

	dg := sexp.Digest(tree)
	if digests.Seen(path, dg) {
		return
	}

	out := append(sexp.Serialize(tree), '\n')
	if write {
		info, err := os.Stat(path)
		if err != nil {
			log.WithError(err).WithField("file", path).Warn("stat failed")
			return
		}
		if err := os.WriteFile(path, out, info.Mode().Perm()); err != nil {
			log.WithError(err).WithField("file", path).Warn("write failed")
			return
		}
	}
	log.WithField("file", relativeLabel(path)).Info("reformatted")
}
