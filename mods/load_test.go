package mods

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Nadezhda94/SimpleJava/common"
)

func writeManifest(t *testing.T, contents string) string {
	t.Helper()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, common.ModuleFileName), []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}

	return dir
}

const testManifest = `
[module]
name = "calc"
sj-version = "0.1.0"
word-size = 8

[[module.profiles]]
name = "debug"
debug = true
dump-ir = true
default = true

[[module.profiles]]
name = "release"
output = "calc.ir"
primary = true
`

func TestLoadModule(t *testing.T) {
	dir := writeManifest(t, testManifest)

	prof := &BuildProfile{}
	mod, err := LoadModule(dir, "", prof)
	if err != nil {
		t.Fatal(err)
	}

	if mod.Name != "calc" {
		t.Errorf("expected module name calc, got %s", mod.Name)
	}
	if mod.WordSize != 8 {
		t.Errorf("expected word size 8, got %d", mod.WordSize)
	}
	if mod.ModuleRoot != dir {
		t.Errorf("expected module root %s, got %s", dir, mod.ModuleRoot)
	}
}

func TestProfileSelectionExplicit(t *testing.T) {
	dir := writeManifest(t, testManifest)

	prof := &BuildProfile{}
	if _, err := LoadModule(dir, "release", prof); err != nil {
		t.Fatal(err)
	}

	if prof.Name != "release" || prof.OutputPath != "calc.ir" {
		t.Errorf("expected the release profile, got %+v", prof)
	}
}

func TestProfileSelectionImplicit(t *testing.T) {
	dir := writeManifest(t, testManifest)

	// Absent a selection, the first primary or default profile wins.
	prof := &BuildProfile{}
	if _, err := LoadModule(dir, "", prof); err != nil {
		t.Fatal(err)
	}

	if prof.Name != "debug" || !prof.DumpIR {
		t.Errorf("expected the debug profile, got %+v", prof)
	}
}

func TestProfileSelectionMissing(t *testing.T) {
	dir := writeManifest(t, testManifest)

	if _, err := LoadModule(dir, "bench", &BuildProfile{}); err == nil {
		t.Error("expected an error for an undeclared profile")
	}
}

func TestLoadModuleDefaultWordSize(t *testing.T) {
	dir := writeManifest(t, `
[module]
name = "tiny"
sj-version = "0.1.0"
`)

	mod, err := LoadModule(dir, "", &BuildProfile{})
	if err != nil {
		t.Fatal(err)
	}

	if mod.WordSize != common.DefaultWordSize {
		t.Errorf("expected the default word size %d, got %d", common.DefaultWordSize, mod.WordSize)
	}
}

func TestLoadModuleRejectsMissingName(t *testing.T) {
	dir := writeManifest(t, `
[module]
sj-version = "0.1.0"
`)

	if _, err := LoadModule(dir, "", &BuildProfile{}); err == nil {
		t.Error("expected an error for a nameless module")
	}
}

func TestLoadModuleRejectsVersionMismatch(t *testing.T) {
	dir := writeManifest(t, `
[module]
name = "old"
sj-version = "0.0.1"
`)

	if _, err := LoadModule(dir, "", &BuildProfile{}); err == nil {
		t.Error("expected an error for a version mismatch")
	}
}

func TestLoadModuleRejectsOddWordSize(t *testing.T) {
	dir := writeManifest(t, `
[module]
name = "odd"
sj-version = "0.1.0"
word-size = 3
`)

	if _, err := LoadModule(dir, "", &BuildProfile{}); err == nil {
		t.Error("expected an error for an odd word size")
	}
}

func TestInitModule(t *testing.T) {
	dir := t.TempDir()

	if err := InitModule("fresh", dir); err != nil {
		t.Fatal(err)
	}

	mod, err := LoadModule(dir, "", &BuildProfile{})
	if err != nil {
		t.Fatal(err)
	}
	if mod.Name != "fresh" {
		t.Errorf("expected module name fresh, got %s", mod.Name)
	}

	if err := InitModule("fresh", dir); err == nil {
		t.Error("expected an error re-initializing an existing module")
	}
}
