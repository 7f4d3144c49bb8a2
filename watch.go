package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"sort"

	"github.com/fsnotify/fsnotify"
)

// watchScripts renders once, then re-renders whenever one of the input
// scripts changes, until ctx is cancelled. Render failures after the first
// pass are reported to errw and watching continues.
func watchScripts(ctx context.Context, paths []string, errw io.Writer, regen func() error) error {
	if err := regen(); err != nil {
		return err
	}
	files, dirs, err := watchTargets(paths)
	if err != nil {
		return err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Watch parent directories rather than the files themselves: editors
	// commonly replace files on save, which drops a direct file watch.
	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return err
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil {
				continue
			}
			if _, ok := files[abs]; !ok {
				continue
			}
			if err := regen(); err != nil {
				fmt.Fprintln(errw, "tomdoc:", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintln(errw, "tomdoc: watch:", err)
		}
	}
}

// watchTargets resolves paths to the absolute file set to react to and the
// deduplicated parent directories to register with the watcher.
func watchTargets(paths []string) (map[string]struct{}, []string, error) {
	files := make(map[string]struct{}, len(paths))
	dirSet := make(map[string]struct{})
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, nil, err
		}
		files[abs] = struct{}{}
		dirSet[filepath.Dir(abs)] = struct{}{}
	}
	dirs := make([]string, 0, len(dirSet))
	for dir := range dirSet {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)
	return files, dirs, nil
}
