package fetch

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// Options configures a Client. The zero value gets sensible defaults.
type Options struct {
	// Timeout bounds each individual request. Default 60s; bureau
	// servers routinely take 30s for a 5 MB PDF.
	Timeout time.Duration

	// Delay is the pause between consecutive downloads. Default 1s.
	Delay time.Duration

	// Retries is the number of attempts per URL. Default 3.
	Retries int

	// UserAgent overrides the request User-Agent header.
	UserAgent string

	// InsecureSkipVerify disables TLS certificate verification. Several
	// provincial bureau sites serve expired certificates.
	InsecureSkipVerify bool

	// Overwrite re-downloads files that already exist on disk.
	Overwrite bool
}

func (o Options) withDefaults() Options {
	if o.Timeout == 0 {
		o.Timeout = 60 * time.Second
	}
	if o.Delay == 0 {
		o.Delay = time.Second
	}
	if o.Retries == 0 {
		o.Retries = 3
	}
	if o.UserAgent == "" {
		o.UserAgent = "censustab/1.0"
	}
	return o
}

// Client downloads files sequentially with retries and a polite delay.
type Client struct {
	opts Options
	http *http.Client
}

// NewClient builds a download client.
func NewClient(opts Options) *Client {
	opts = opts.withDefaults()

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if opts.InsecureSkipVerify {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	return &Client{
		opts: opts,
		http: &http.Client{
			Timeout:   opts.Timeout,
			Transport: transport,
		},
	}
}

// Download fetches one URL with bounded retries, backing off between
// attempts.
func (c *Client) Download(ctx context.Context, url string) ([]byte, error) {
	var lastErr error
	for attempt := 1; attempt <= c.opts.Retries; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.opts.Delay * time.Duration(attempt-1)):
			}
		}

		data, err := c.get(ctx, url)
		if err == nil {
			return data, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			break
		}
	}
	return nil, fmt.Errorf("download %s: %w", url, lastErr)
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// DownloadFile fetches a URL to dest, creating parent directories.
// Existing files are kept unless Overwrite is set, so interrupted batch
// runs resume where they left off.
func (c *Client) DownloadFile(ctx context.Context, url, dest string) error {
	if !c.opts.Overwrite {
		if _, err := os.Stat(dest); err == nil {
			return nil
		}
	}

	data, err := c.Download(ctx, url)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("create dir: %w", err)
	}
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", dest, err)
	}
	return nil
}

// DownloadAll fetches each URL into destDir, pausing between downloads.
// Individual failures do not stop the batch; they are reported in the
// returned map keyed by URL. The first return value lists the paths of
// the files now present on disk.
func (c *Client) DownloadAll(ctx context.Context, urls []string, destDir string) ([]string, map[string]error) {
	var done []string
	failed := make(map[string]error)

	for i, url := range urls {
		if i > 0 {
			select {
			case <-ctx.Done():
				failed[url] = ctx.Err()
				continue
			case <-time.After(c.opts.Delay):
			}
		}

		dest := filepath.Join(destDir, path.Base(url))
		if err := c.DownloadFile(ctx, url, dest); err != nil {
			failed[url] = err
			continue
		}
		done = append(done, dest)
	}
	return done, failed
}

// ExpandPattern substitutes {code} and {table} placeholders, zero-padded
// codes included: a pattern of "{code:3}{table}.pdf" with code 54 and
// table "09" yields "05409.pdf".
func ExpandPattern(pattern, code, table string) string {
	out := pattern
	for width := 2; width <= 6; width++ {
		placeholder := fmt.Sprintf("{code:%d}", width)
		if strings.Contains(out, placeholder) {
			out = strings.ReplaceAll(out, placeholder, pad(code, width))
		}
	}
	out = strings.ReplaceAll(out, "{code}", code)
	return strings.ReplaceAll(out, "{table}", table)
}

func pad(s string, width int) string {
	for len(s) < width {
		s = "0" + s
	}
	return s
}
