// Package watcher provides a debounced fsnotify file watcher for policy-set
// files. It backs the watch command: every debounced change to a watched
// file re-runs the lint callback, and callback failures are logged rather
// than terminating the watch.
package watcher
