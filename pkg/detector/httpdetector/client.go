// Package httpdetector provides a detector.Client implementation backed by a
// remote detection service exposing POST /detect.
package httpdetector

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-faster/jx"

	"scanguard/pkg/detector"
	"scanguard/pkg/serrors"
)

// maxResponseBytes bounds how much of a detection response is read.
const maxResponseBytes = 1 << 20

// Client talks to the detection service REST API and fulfills the
// detector.Client interface. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client // httpClient performs HTTP requests to the detection service
	endpoint   string       // endpoint is the absolute URL of the detect operation
	token      string       // token is sent in the X-API-Key header when set
}

func encodeRequest(URL, source string) []byte {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	e.ObjStart()
	e.FieldStart("url")
	e.Str(URL)
	if source != "" {
		e.FieldStart("source")
		e.Str(source)
	}
	e.ObjEnd()

	return append([]byte(nil), e.Bytes()...)
}

// DecodeResult parses a detection response body. The score must be within
// [0, 1]; flags default to an empty list.
func DecodeResult(b []byte) (detector.Result, error) {
	res := detector.Result{Flags: []string{}}
	scoreSeen := false

	err := jx.DecodeBytes(b).Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "score":
			v, err := d.Float64()
			if err != nil {
				return fmt.Errorf("score: %w", err)
			}
			res.Score = v
			scoreSeen = true
		case "flags":
			if d.Next() == jx.Null {
				return d.Null() //nolint: wrapcheck
			}

			return d.Arr(func(d *jx.Decoder) error { //nolint: wrapcheck
				v, err := d.Str()
				if err != nil {
					return fmt.Errorf("flag: %w", err)
				}
				res.Flags = append(res.Flags, v)

				return nil
			})
		default:
			return d.Skip() //nolint: wrapcheck
		}

		return nil
	})
	if err != nil {
		return detector.Result{}, fmt.Errorf("could not decode response: %w", err)
	}
	if !scoreSeen {
		return detector.Result{}, fmt.Errorf("response has no score")
	}
	if res.Score < 0 || res.Score > 1 {
		return detector.Result{}, fmt.Errorf("score %v out of range", res.Score)
	}

	return res, nil
}

// Detect submits URL to the detection service and returns its verdict.
func (c *Client) Detect(ctx context.Context, URL string, source string) (detector.Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(encodeRequest(URL, source)))
	if err != nil {
		return detector.Result{}, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("X-API-Key", c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return detector.Result{}, fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return detector.Result{}, fmt.Errorf("could not read response body: %w", err)
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return detector.Result{}, serrors.With(serrors.ErrRateLimited, "rate limited: %s", strings.TrimSpace(string(b)))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return detector.Result{}, fmt.Errorf("detect failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	return DecodeResult(b)
}

// Ensure Client conforms to the detector.Client interface at compile time.
var _ detector.Client = (*Client)(nil)

// New constructs a Client that posts to baseURL + "/detect" using the provided
// http.Client and API token.
func New(httpClient *http.Client, baseURL, token string) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("could not parse detector url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("detector url must be http or https, got %q", baseURL)
	}

	return &Client{
		httpClient: httpClient,
		endpoint:   u.JoinPath("detect").String(),
		token:      token,
	}, nil
}
