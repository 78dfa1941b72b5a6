// Package exportname builds, parses and orders the canonical filenames of
// field-data export artifacts, e.g. "e-field (f=447) [AC1].h5".
package exportname

import (
	"github.com/harrison/cstexports/internal/models"
)

// FieldDataName formats the canonical 3D field export filename from
// exactly four parts: field name, frequency, label and index.
//
//	FieldDataName("e-field", "447", "AC", "1") // "e-field (f=447) [AC1].h5"
//
// Any other argument count returns a KindInvalidArgumentCount error. The
// parts are used verbatim; frequency and index are not checked as numbers.
func FieldDataName(args ...string) (string, error) {
	export, err := FromArgs(args)
	if err != nil {
		return "", err
	}
	return export.FileName(), nil
}

// FromArgs converts a formatter argument list into a FieldExport.
func FromArgs(args []string) (models.FieldExport, error) {
	if len(args) != models.FieldExportArity {
		return models.FieldExport{}, &models.ExportError{
			Kind: models.KindInvalidArgumentCount,
			Op:   "format",
			Args: append([]string(nil), args...),
		}
	}
	return models.FieldExport{
		Field:     args[0],
		Frequency: args[1],
		Label:     args[2],
		Index:     args[3],
	}, nil
}
