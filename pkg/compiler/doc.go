// Package compiler turns finalized template descriptors into specialized
// rendering callables. Compilation emits a constant-only program (append
// instructions plus handoff keys standing in for live sub-models), and the
// loader materializes that program into an artifact by claiming its
// identifier, resolving every handoff key into a constant slot, and composing
// the render path as a closure sequence. Rendering an artifact interprets
// nothing: the buffer strategy (exact presize for literal content, seeding
// from the first element when none exists) and the per-element append
// operations are fixed at compile time.
package compiler
