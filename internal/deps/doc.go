// Package deps checks availability of the external binaries Slate wraps.
package deps
