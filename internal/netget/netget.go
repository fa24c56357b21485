// Package netget downloads files over HTTP in fixed-size blocks.
package netget

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/Norgate-AV/winutilz/internal/envpath"
	"github.com/Norgate-AV/winutilz/internal/logger"
	"github.com/Norgate-AV/winutilz/internal/timeouts"
	"github.com/Norgate-AV/winutilz/internal/version"
)

// ErrNotConnected is returned when the machine reports no network connection.
var ErrNotConnected = errors.New("no internet connection")

// StatusError is returned for a response outside the 2xx range.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

// BlockFunc receives each block of the body as it arrives. read is the
// running byte count and total is the Content-Length, or -1 when the server
// did not send one. Returning an error aborts the transfer.
type BlockFunc func(block []byte, read, total int64) error

// Options configures a Client. Zero values select the defaults in timeouts.
type Options struct {
	UserAgent string
	Timeout   time.Duration

	// RetryMax is the number of retries after the first attempt.
	// Negative disables retries.
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration

	// Connectivity overrides the OS connection check.
	Connectivity func(ctx context.Context) bool
}

// Client performs GET requests with retries.
type Client struct {
	http      *retryablehttp.Client
	userAgent string
	connected func(ctx context.Context) bool
	log       logger.LoggerInterface
}

// NewClient builds a Client. A nil log discards output.
func NewClient(log logger.LoggerInterface, opts Options) *Client {
	if log == nil {
		log = logger.NewNoOpLogger()
	}

	if opts.UserAgent == "" {
		opts.UserAgent = version.UserAgent()
	}

	if opts.Timeout == 0 {
		opts.Timeout = timeouts.HTTPTimeout
	}

	switch {
	case opts.RetryMax == 0:
		opts.RetryMax = timeouts.HTTPRetryMax
	case opts.RetryMax < 0:
		opts.RetryMax = 0
	}

	if opts.RetryWaitMin == 0 {
		opts.RetryWaitMin = timeouts.HTTPRetryWaitMin
	}

	if opts.RetryWaitMax == 0 {
		opts.RetryWaitMax = timeouts.HTTPRetryWaitMax
	}

	if opts.Connectivity == nil {
		opts.Connectivity = systemConnected
	}

	rc := retryablehttp.NewClient()
	rc.HTTPClient.Timeout = opts.Timeout
	rc.RetryMax = opts.RetryMax
	rc.RetryWaitMin = opts.RetryWaitMin
	rc.RetryWaitMax = opts.RetryWaitMax
	rc.Logger = log
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler

	return &Client{
		http:      rc,
		userAgent: opts.UserAgent,
		connected: opts.Connectivity,
		log:       log,
	}
}

// IsConnected reports whether the machine has a network connection.
func (c *Client) IsConnected(ctx context.Context) bool {
	return c.connected(ctx)
}

// Get streams url to fn in DownloadBlockSize blocks and returns the number
// of bytes read.
func (c *Client) Get(ctx context.Context, url string, fn BlockFunc) (int64, error) {
	if !c.connected(ctx) {
		return 0, fmt.Errorf("GET %s: %w", url, ErrNotConnected)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("GET %s: %w", url, err)
	}

	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("GET %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, &StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	total := resp.ContentLength
	buf := make([]byte, timeouts.DownloadBlockSize)

	var read int64
	for {
		n, err := io.ReadFull(resp.Body, buf)
		if n > 0 {
			read += int64(n)
			if ferr := fn(buf[:n], read, total); ferr != nil {
				return read, ferr
			}
		}

		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			break
		}

		if err != nil {
			return read, fmt.Errorf("GET %s: read body: %w", url, err)
		}
	}

	c.log.Debug("Download complete",
		slog.String("url", url),
		slog.String("size", humanize.Bytes(uint64(read))),
	)

	return read, nil
}

// DownloadFile saves url to path, creating or truncating it. %VAR%
// references in path are expanded. A partial file is removed on failure.
func (c *Client) DownloadFile(ctx context.Context, url, path string) (int64, error) {
	path = envpath.Expand(path)

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("could not create %s: %w", path, err)
	}

	n, err := c.Get(ctx, url, func(block []byte, _, _ int64) error {
		_, werr := f.Write(block)
		return werr
	})

	if cerr := f.Close(); err == nil {
		err = cerr
	}

	if err != nil {
		if rerr := os.Remove(path); rerr != nil {
			err = errors.Join(err, rerr)
		}

		return 0, err
	}

	c.log.Debug("Saved download", slog.String("path", path))

	return n, nil
}

// DownloadToMemory returns the whole body of url.
func (c *Client) DownloadToMemory(ctx context.Context, url string) ([]byte, error) {
	var buf bytes.Buffer

	_, err := c.Get(ctx, url, func(block []byte, read, total int64) error {
		if read == int64(len(block)) && total > 0 {
			buf.Grow(int(total))
		}

		buf.Write(block)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
