package common

const (
	SrcFileExtension = ".java"
	ModuleFileName   = "sj-mod.toml"
	SJVersion        = "0.1.0"
)

// DefaultWordSize is the target word size in bytes used when a module
// manifest does not specify one.  Field and array layouts depend on it and
// must be stable across a compilation unit.
const DefaultWordSize = 4
