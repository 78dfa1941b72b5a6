package models

import (
	"path/filepath"
)

// Scaffold layout constants. A mock project is a marker file next to a
// directory of the same name holding the 3D export tree.
const (
	ProjectExt     = ".cst"
	ExportSubdir   = "Export"
	Export3DSubdir = "3d"
	FieldDataExt   = ".h5"
)

// FieldExportArity is the number of parts in a field export name.
const FieldExportArity = 4

// FieldExport identifies one exported field-data artifact. All parts are
// free-form strings; frequency and index are not validated as numbers.
type FieldExport struct {
	Field     string `yaml:"field"`
	Frequency string `yaml:"frequency"`
	Label     string `yaml:"label"`
	Index     string `yaml:"index"`
}

// FileName returns the canonical export filename:
// "<field> (f=<frequency>) [<label><index>].h5".
func (f FieldExport) FileName() string {
	return f.Field + " (f=" + f.Frequency + ") [" + f.Label + f.Index + "]" + FieldDataExt
}

// Args returns the export parts in formatter argument order.
func (f FieldExport) Args() []string {
	return []string{f.Field, f.Frequency, f.Label, f.Index}
}

// ScaffoldLayout resolves the on-disk paths of a mock project.
type ScaffoldLayout struct {
	Root string
	Name string
}

// ProjectFile returns <root>/<name>.cst.
func (l ScaffoldLayout) ProjectFile() string {
	return filepath.Join(l.Root, l.Name+ProjectExt)
}

// ProjectDir returns <root>/<name>.
func (l ScaffoldLayout) ProjectDir() string {
	return filepath.Join(l.Root, l.Name)
}

// ExportDir returns <root>/<name>/Export/3d.
func (l ScaffoldLayout) ExportDir() string {
	return filepath.Join(l.Root, l.Name, ExportSubdir, Export3DSubdir)
}
