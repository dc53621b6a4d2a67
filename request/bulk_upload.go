package request

import (
	"io"

	"github.com/icodeforyou/genability-go/types/maybe"
)

// BulkUploadRequest sends a file of readings, e.g. csv or Green Button
// ("espi") xml, as a multipart form.
type BulkUploadRequest struct {
	FileName   string
	FileData   io.Reader
	FileFormat maybe.Maybe[string]
}

// FormFields are the non-file form parts.
func (r *BulkUploadRequest) FormFields() Params {
	var p Params
	p = Add(p, "fileFormat", r.FileFormat)
	return p
}
