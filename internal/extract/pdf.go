package extract

import (
	"bytes"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/kamil-urbanek/docpipe/constants"
)

// EnsureReadable probes the file content before it is handed to the
// extraction service, so an unreadable PDF is classified as corrupt
// instead of burning retry budget on a vendor error.
func EnsureReadable(content []byte, format string) error {
	if format != constants.PDF {
		return nil
	}
	if _, err := api.PageCount(bytes.NewReader(content), nil); err != nil {
		return fmt.Errorf("%w: %v", ErrCorruptFile, err)
	}
	return nil
}
