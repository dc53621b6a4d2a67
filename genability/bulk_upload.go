package genability

import (
	"context"

	"github.com/icodeforyou/genability-go/request"
	"github.com/icodeforyou/genability-go/types"
)

type BulkUploadService struct {
	client *Client
}

// UploadFile posts a readings file. The envelope's results hold the API's
// acknowledgement strings and its type is ReadingData.
func (s *BulkUploadService) UploadFile(ctx context.Context, r *request.BulkUploadRequest) (*types.Response[string], error) {
	r = orEmpty(r)
	cl, err := multipartCall("v1/files/loadbulk", r)
	if err != nil {
		return nil, err
	}
	return do[string](ctx, s.client, cl)
}
