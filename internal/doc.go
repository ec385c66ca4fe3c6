// Package internal implements the kit exposed by the root hbkit package.
package internal
