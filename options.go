package pathier

import "io/fs"

// Option tunes reads, writes, dumps and backups. Options that do not apply to
// an operation are ignored by it.
type Option func(*options)

type options struct {
	parents        bool
	encoding       string
	perm           fs.FileMode
	newline        bool
	sortKeys       bool
	indent         int
	backupTemplate string
}

func buildOptions(opts []Option) options {
	o := options{
		parents:        true,
		perm:           filePerm,
		newline:        true,
		backupTemplate: DefaultBackupTemplate,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// NoParents disables creating missing parent directories on write.
func NoParents() Option {
	return func(o *options) { o.parents = false }
}

// WithEncoding reads or writes text in the named encoding, e.g. "latin1" or
// "utf-16le". The empty name means UTF-8 without validation.
func WithEncoding(name string) Option {
	return func(o *options) { o.encoding = name }
}

// WithPerm sets the permission bits of files created by a write.
func WithPerm(perm fs.FileMode) Option {
	return func(o *options) { o.perm = perm }
}

// WithoutNewline stops Append from terminating data with a newline.
func WithoutNewline() Option {
	return func(o *options) { o.newline = false }
}

// SortKeys orders object keys and struct fields alphabetically on Dump.
func SortKeys() Option {
	return func(o *options) { o.sortKeys = true }
}

// Indent pretty-prints JSON dumps with n spaces per level.
func Indent(n int) Option {
	return func(o *options) { o.indent = n }
}

// WithBackupTemplate overrides the text/template used to name backups.
func WithBackupTemplate(tmpl string) Option {
	return func(o *options) {
		if tmpl != "" {
			o.backupTemplate = tmpl
		}
	}
}
