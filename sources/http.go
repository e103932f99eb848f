package sources

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultTimeout = 10 * time.Second

// HTTP fetches a table from a remote endpoint. When the url has no known extension the response content type decides
// the format.
type HTTP struct {
	url    string
	format Format
	sheet  string
	client *resty.Client
}

func NewHTTP(url string, format Format, opts Options) *HTTP {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", "text/csv, application/vnd.openxmlformats-officedocument.spreadsheetml.sheet;q=0.9, */*;q=0.1")

	return &HTTP{
		url:    url,
		format: format,
		sheet:  opts.Sheet,
		client: client,
	}
}

func (h *HTTP) String() string {
	return h.url
}

func (h *HTTP) Load(ctx context.Context) (*Table, error) {
	resp, err := h.client.R().SetContext(ctx).Get(h.url)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch: unexpected status %d", resp.StatusCode())
	}

	format := h.format
	if format == "" {
		format, err = formatFromContentType(resp.Header().Get("Content-Type"))
		if err != nil {
			return nil, err
		}
	}

	body := bytes.NewReader(resp.Body())
	switch format {
	case XLSX:
		return readXLSX(body, h.sheet)
	default:
		return readCSV(body)
	}
}

func formatFromContentType(contentType string) (Format, error) {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", fmt.Errorf("content type %q: %w", contentType, ErrUnsupportedFormat)
	}
	switch mediaType {
	case "text/csv", "text/plain", "application/csv":
		return CSV, nil
	case "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":
		return XLSX, nil
	default:
		return "", fmt.Errorf("content type %q: %w", mediaType, ErrUnsupportedFormat)
	}
}
