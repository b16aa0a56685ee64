package jflap

import (
	"bytes"
	"embed"
	"fmt"
	"sync"

	"github.com/jacoelho/xsd"
	xsderrors "github.com/jacoelho/xsd/errors"
)

//go:embed schema/jflap.xsd
var schemaFS embed.FS

const schemaLocation = "schema/jflap.xsd"

var loadSchema = sync.OnceValues(func() (*xsd.Schema, error) {
	return xsd.Load(schemaFS, schemaLocation)
})

// Validate Checks data against the bundled JFLAP schema. Violations are reported wrapped in
// ErrInvalidDocument.
func Validate(data []byte) error {
	schema, err := loadSchema()
	if err != nil {
		return fmt.Errorf("jflap: load schema: %w", err)
	}
	if err := schema.Validate(bytes.NewReader(data)); err != nil {
		if violations, ok := xsderrors.AsValidations(err); ok && len(violations) > 0 {
			return fmt.Errorf("%w: %s", ErrInvalidDocument, violations[0].Error())
		}
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return nil
}
