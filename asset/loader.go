// Package asset fetches images and audio in the background. Results are
// collected by the frame loop so GPU and audio setup stay on the host thread.
package asset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

var ErrEmptyRef = errors.New("empty asset reference")

const (
	fetchTimeout = 20 * time.Second
	maxAssetSize = 32 << 20
)

// Result is one finished fetch. Key is the caller's slot name.
type Result struct {
	Key  string
	Ref  string
	Data []byte
	Err  error
}

// Loader runs fetches concurrently and hands results back through Poll.
type Loader struct {
	client  *http.Client
	logger  *log.Logger
	results chan Result
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

func NewLoader(logger *log.Logger) *Loader {
	ctx, cancel := context.WithCancel(context.Background())
	return &Loader{
		client:  &http.Client{Timeout: fetchTimeout},
		logger:  logger,
		results: make(chan Result, 16),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Request starts fetching ref for key.
func (l *Loader) Request(key, ref string) {
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		data, err := Fetch(l.ctx, l.client, ref)
		if err != nil {
			l.logger.Warn("Asset unavailable, keeping fallback", "asset", key, "ref", ref, "error", err)
		} else {
			l.logger.Debug("Asset fetched", "asset", key, "bytes", len(data))
		}
		select {
		case l.results <- Result{Key: key, Ref: ref, Data: data, Err: err}:
		case <-l.ctx.Done():
		}
	}()
}

// Poll drains finished fetches without blocking.
func (l *Loader) Poll() []Result {
	var out []Result
	for {
		select {
		case r := <-l.results:
			out = append(out, r)
		default:
			return out
		}
	}
}

// Close cancels in-flight fetches and waits for them.
func (l *Loader) Close() {
	l.cancel()
	l.wg.Wait()
}

// Fetch loads ref from an http(s) URL or a local path.
func Fetch(ctx context.Context, client *http.Client, ref string) ([]byte, error) {
	if ref == "" {
		return nil, ErrEmptyRef
	}
	if !IsRemote(ref) {
		data, err := os.ReadFile(ref)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", ref, err)
		}
		return data, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
	if err != nil {
		return nil, fmt.Errorf("build request %s: %w", ref, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", ref, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get %s: unexpected status %s", ref, resp.Status)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxAssetSize))
	if err != nil {
		return nil, fmt.Errorf("read body %s: %w", ref, err)
	}
	return data, nil
}

func IsRemote(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}

// Ext returns the lower-case file extension of ref, ignoring any query string.
func Ext(ref string) string {
	if i := strings.IndexAny(ref, "?#"); i >= 0 {
		ref = ref[:i]
	}
	return strings.ToLower(path.Ext(ref))
}
