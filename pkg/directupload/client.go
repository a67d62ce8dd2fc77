// Package directupload sends files straight from the caller to the
// media host using an unsigned upload preset, bypassing the API proxy.
// It reports transfer progress through a callback so UIs can render a
// percentage bar.
package directupload

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

type Progress struct {
	Loaded     int64
	Total      int64
	Percentage int
}

type Result struct {
	PublicID  string    `json:"public_id"`
	URL       string    `json:"url"`
	SecureURL string    `json:"secure_url"`
	Format    string    `json:"format"`
	Bytes     int       `json:"bytes"`
	CreatedAt time.Time `json:"created_at"`
}

type hostError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

type Options struct {
	// Folder overrides the preset's default folder when non-empty.
	Folder     string
	FileName   string
	OnProgress func(Progress)
}

type Client struct {
	httpClient *http.Client
	uploadURL  string
	preset     string
}

// New builds a client for one cloud. uploadURL is the host's upload
// endpoint for the target cloud name; preset is the unsigned preset
// that authorizes browser-style uploads.
func New(httpClient *http.Client, uploadURL, preset string) (*Client, error) {
	if strings.TrimSpace(uploadURL) == "" {
		return nil, fmt.Errorf("upload url is required")
	}
	if strings.TrimSpace(preset) == "" {
		return nil, fmt.Errorf("upload preset is required")
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		httpClient: httpClient,
		uploadURL:  strings.TrimSpace(uploadURL),
		preset:     strings.TrimSpace(preset),
	}, nil
}

// Upload sends one file and reports progress as the request body is
// consumed. Progress percentages never decrease and end at 100 on
// success. A failed attempt is surfaced as an error; the client never
// retries on its own.
func (c *Client) Upload(ctx context.Context, file io.Reader, opts Options) (Result, error) {
	if file == nil {
		return Result{}, fmt.Errorf("no file provided")
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fileName := strings.TrimSpace(opts.FileName)
	if fileName == "" {
		fileName = "upload"
	}
	fw, err := mw.CreateFormFile("file", fileName)
	if err != nil {
		return Result{}, fmt.Errorf("build multipart body: %w", err)
	}
	if _, err := io.Copy(fw, file); err != nil {
		return Result{}, fmt.Errorf("read file: %w", err)
	}
	if err := mw.WriteField("upload_preset", c.preset); err != nil {
		return Result{}, fmt.Errorf("build multipart body: %w", err)
	}
	if opts.Folder != "" {
		if err := mw.WriteField("folder", opts.Folder); err != nil {
			return Result{}, fmt.Errorf("build multipart body: %w", err)
		}
	}
	if err := mw.Close(); err != nil {
		return Result{}, fmt.Errorf("finish multipart body: %w", err)
	}

	body := &progressReader{
		reader:     bytes.NewReader(buf.Bytes()),
		total:      int64(buf.Len()),
		onProgress: opts.OnProgress,
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.uploadURL, body)
	if err != nil {
		return Result{}, fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.ContentLength = body.total

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("upload request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var hostErr hostError
		if decodeErr := json.NewDecoder(resp.Body).Decode(&hostErr); decodeErr == nil && hostErr.Error.Message != "" {
			return Result{}, fmt.Errorf("upload rejected (%s): %s", resp.Status, hostErr.Error.Message)
		}
		return Result{}, fmt.Errorf("upload rejected with status %s", resp.Status)
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return Result{}, fmt.Errorf("decode upload response: %w", err)
	}

	body.finish()
	return result, nil
}

// progressReader reports cumulative bytes consumed by the transport.
type progressReader struct {
	reader     *bytes.Reader
	total      int64
	loaded     int64
	lastPct    int
	onProgress func(Progress)
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.reader.Read(b)
	if n > 0 {
		p.loaded += int64(n)
		p.report()
	}
	return n, err
}

func (p *progressReader) report() {
	if p.onProgress == nil || p.total <= 0 {
		return
	}
	pct := int(math.Round(float64(p.loaded) / float64(p.total) * 100))
	if pct < p.lastPct {
		pct = p.lastPct
	}
	p.lastPct = pct
	p.onProgress(Progress{Loaded: p.loaded, Total: p.total, Percentage: pct})
}

// finish emits the terminal 100% event in case the transport consumed
// the body without a final read callback.
func (p *progressReader) finish() {
	if p.onProgress == nil || p.lastPct >= 100 {
		return
	}
	p.lastPct = 100
	p.onProgress(Progress{Loaded: p.total, Total: p.total, Percentage: 100})
}
