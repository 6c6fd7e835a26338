// Package notify delivers render lifecycle events via pluggable backends.
//
// Two transports are supported: ntfy (plain HTTP POST with title, tags, and
// priority headers) and email through the sendemail CLI. Configured backends
// fan out; with none configured a noop implementation stands in so command
// code never branches on notification settings.
package notify
