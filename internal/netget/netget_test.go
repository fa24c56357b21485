package netget_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Norgate-AV/winutilz/internal/logger"
	"github.com/Norgate-AV/winutilz/internal/netget"
)

func online(context.Context) bool  { return true }
func offline(context.Context) bool { return false }

func newClient(opts netget.Options) *netget.Client {
	if opts.Connectivity == nil {
		opts.Connectivity = online
	}

	if opts.RetryMax == 0 {
		opts.RetryMax = -1
	}

	return netget.NewClient(logger.NewNoOpLogger(), opts)
}

func payload(n int) []byte {
	return bytes.Repeat([]byte("0123456789abcdef"), n/16+1)[:n]
}

func TestGet_StreamsBlocks(t *testing.T) {
	t.Parallel()

	body := payload(10000)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", strconv.Itoa(len(body)))
		_, _ = w.Write(body)
	}))
	defer srv.Close()

	var sizes []int
	var totals []int64
	var got []byte

	n, err := newClient(netget.Options{}).Get(context.Background(), srv.URL, func(block []byte, read, total int64) error {
		sizes = append(sizes, len(block))
		totals = append(totals, total)
		got = append(got, block...)
		assert.Equal(t, int64(len(got)), read)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, int64(len(body)), n)
	assert.Equal(t, body, got)
	assert.Equal(t, []int{4096, 4096, 1808}, sizes)
	for _, total := range totals {
		assert.Equal(t, int64(len(body)), total)
	}
}

func TestGet_UnknownLength(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		flusher := w.(http.Flusher)
		_, _ = w.Write([]byte("chunk"))
		flusher.Flush()
		_, _ = w.Write([]byte("ed"))
	}))
	defer srv.Close()

	var total int64
	n, err := newClient(netget.Options{}).Get(context.Background(), srv.URL, func(_ []byte, _, size int64) error {
		total = size
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)
	assert.Equal(t, int64(-1), total)
}

func TestGet_SendsUserAgent(t *testing.T) {
	t.Parallel()

	var agent atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		agent.Store(r.Header.Get("User-Agent"))
	}))
	defer srv.Close()

	_, err := newClient(netget.Options{UserAgent: "WinUtilz/test"}).Get(context.Background(), srv.URL, func([]byte, int64, int64) error { return nil })
	require.NoError(t, err)
	assert.Equal(t, "WinUtilz/test", agent.Load())
}

func TestGet_NotConnected(t *testing.T) {
	t.Parallel()

	var called atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called.Store(true)
	}))
	defer srv.Close()

	_, err := newClient(netget.Options{Connectivity: offline}).Get(context.Background(), srv.URL, nil)
	assert.ErrorIs(t, err, netget.ErrNotConnected)
	assert.False(t, called.Load())
}

func TestGet_StatusError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, err := newClient(netget.Options{}).Get(context.Background(), srv.URL, nil)

	var statusErr *netget.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	assert.Contains(t, err.Error(), "404")
}

func TestGet_RetriesServerErrors(t *testing.T) {
	t.Parallel()

	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}

		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	client := newClient(netget.Options{
		RetryMax:     3,
		RetryWaitMin: time.Millisecond,
		RetryWaitMax: 2 * time.Millisecond,
	})

	data, err := client.DownloadToMemory(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "ok", string(data))
	assert.Equal(t, int32(3), attempts.Load())
}

func TestGet_CallbackAborts(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(payload(9000))
	}))
	defer srv.Close()

	stop := errors.New("stop")
	blocks := 0

	n, err := newClient(netget.Options{}).Get(context.Background(), srv.URL, func([]byte, int64, int64) error {
		blocks++
		return stop
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, blocks)
	assert.Equal(t, int64(4096), n)
}

func TestDownloadFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("WINUTILZ_DL_DIR", dir)

	body := payload(5000)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(body)
	}))
	defer srv.Close()

	n, err := newClient(netget.Options{}).DownloadFile(context.Background(), srv.URL, "%WINUTILZ_DL_DIR%/file.bin")
	require.NoError(t, err)
	assert.Equal(t, int64(len(body)), n)

	data, err := os.ReadFile(filepath.Join(dir, "file.bin"))
	require.NoError(t, err)
	assert.Equal(t, body, data)
}

func TestDownloadFile_RemovesPartialFile(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "file.bin")

	_, err := newClient(netget.Options{}).DownloadFile(context.Background(), srv.URL, path)
	require.Error(t, err)
	assert.NoFileExists(t, path)
}

func TestDownloadToMemory_Cancelled(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("late"))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newClient(netget.Options{}).DownloadToMemory(ctx, srv.URL)
	assert.ErrorIs(t, err, context.Canceled)
}
