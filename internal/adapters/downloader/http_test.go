package downloader

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pdfharvest/internal/core/domain"
)

func TestHTTPDownloader_Download(t *testing.T) {
	payload := bytes.Repeat([]byte("%PDF-1.4 "), 10000)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok.pdf":
			w.Header().Set("Content-Type", "application/pdf")
			w.Write(payload)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer server.Close()

	d := NewHTTPDownloader(5 * time.Second)

	t.Run("returns full payload", func(t *testing.T) {
		data, err := d.Download(context.Background(), server.URL+"/ok.pdf")
		require.NoError(t, err)
		assert.Equal(t, payload, data)
	})

	t.Run("server error", func(t *testing.T) {
		data, err := d.Download(context.Background(), server.URL+"/broken.pdf")
		assert.ErrorIs(t, err, domain.ErrUnexpectedStatus)
		assert.Nil(t, data)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := d.Download(ctx, server.URL+"/ok.pdf")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

// serveRaw answers a single connection with the given raw HTTP response.
func serveRaw(t *testing.T, response string) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })

	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		if _, err := http.ReadRequest(bufio.NewReader(conn)); err != nil {
			return
		}
		io.WriteString(conn, response)
	}()
	return "http://" + ln.Addr().String() + "/anexo.pdf"
}

func TestHTTPDownloader_OversizedContentLength(t *testing.T) {
	fileURL := serveRaw(t, "HTTP/1.1 200 OK\r\nContent-Length: 1099511627776\r\n\r\n%PDF")

	data, err := NewHTTPDownloader(5*time.Second).Download(context.Background(), fileURL)
	assert.Error(t, err)
	assert.Nil(t, data)
}

func TestHTTPDownloader_TruncatedBody(t *testing.T) {
	fileURL := serveRaw(t, "HTTP/1.1 200 OK\r\nContent-Length: 100\r\n\r\n%PDF-1.4")

	_, err := NewHTTPDownloader(5*time.Second).Download(context.Background(), fileURL)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}
