package warehouse

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"path/filepath"
)

// Prediction is the product recognition result for an uploaded image.
type Prediction struct {
	ProductName       string `json:"product_name"`
	EstimatedQuantity int    `json:"estimated_quantity"`
}

type predictResponse struct {
	Prediction Prediction `json:"prediction"`
}

// PredictImage uploads one image as multipart form data and returns the
// classification result. The part's content type is derived from the file
// extension; the API rejects non-image uploads.
func (c *Client) PredictImage(ctx context.Context, filename string, file io.Reader) (Prediction, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	contentType := mime.TypeByExtension(filepath.Ext(filename))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return Prediction{}, err
	}
	if _, err := io.Copy(part, file); err != nil {
		return Prediction{}, err
	}
	if err := writer.Close(); err != nil {
		return Prediction{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict_image/", body)
	if err != nil {
		return Prediction{}, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var decoded predictResponse
	if err := c.roundTrip(req, &decoded); err != nil {
		return Prediction{}, err
	}
	return decoded.Prediction, nil
}
