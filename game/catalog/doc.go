// Package catalog holds the static, process-wide, read-only tables shared
// by every game instance: items, enemies, abilities, discoveries, lore
// entries, achievements, and titles  Tables are built
// once at package init and never mutated afterward, satisfying the
// concurrency model's "Static catalogues: process-wide, init-only,
// immutable after init" discipline.
package catalog
