package spotify

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"
)

const (
	defaultRetryAttempts = 3
	defaultRetryBackoff  = 500 * time.Millisecond
)

// retryPolicy bounds how many times a request is attempted and how long to
// wait between attempts. The wait doubles per attempt unless the response
// carries a Retry-After header, which takes precedence.
type retryPolicy struct {
	attempts int
	backoff  time.Duration
}

// retryPolicyFromEnv reads SPOTIFY_MAX_RETRIES and SPOTIFY_RETRY_BACKOFF_MS,
// keeping the defaults when either is unset or malformed.
func retryPolicyFromEnv() retryPolicy {
	p := retryPolicy{attempts: defaultRetryAttempts, backoff: defaultRetryBackoff}
	if n, err := strconv.Atoi(os.Getenv("SPOTIFY_MAX_RETRIES")); err == nil && n > 0 {
		p.attempts = n
	}
	if ms, err := strconv.Atoi(os.Getenv("SPOTIFY_RETRY_BACKOFF_MS")); err == nil && ms > 0 {
		p.backoff = time.Duration(ms) * time.Millisecond
	}
	return p
}

// do sends the request, retrying transport errors, 429s and 5xx responses.
// Every adapter request is a bodyless GET, so an attempt can resend the
// request as-is.
func (c *Client) do(req *http.Request) (*http.Response, error) {
	p := c.retry
	if p.attempts <= 0 {
		p.attempts = defaultRetryAttempts
	}
	if p.backoff <= 0 {
		p.backoff = defaultRetryBackoff
	}

	ctx := req.Context()
	var lastErr error
	for attempt := 1; attempt <= p.attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("spotify adapter: request canceled: %w", err)
		}

		resp, err := c.httpClient.Do(req)
		hint, retry := retryableFailure(resp, err)
		if !retry {
			return resp, err
		}

		if err != nil {
			lastErr = err
			c.log.Warn().Err(err).Int("attempt", attempt).Int("max", p.attempts).Msg("retrying after error")
		} else {
			lastErr = fmt.Errorf("status %d", resp.StatusCode)
			c.log.Warn().Int("status", resp.StatusCode).Int("attempt", attempt).Int("max", p.attempts).Msg("retrying after status")
			_ = resp.Body.Close()
		}

		if attempt == p.attempts {
			break
		}

		delay := p.backoff << (attempt - 1)
		if hint > 0 {
			delay = hint
		}
		if err := waitRetry(ctx, delay); err != nil {
			return nil, err
		}
	}

	return nil, fmt.Errorf("spotify adapter: request failed after %d attempts: %w", p.attempts, lastErr)
}

// retryableFailure reports whether an attempt should be retried, along with
// any server-requested delay.
func retryableFailure(resp *http.Response, err error) (time.Duration, bool) {
	if err != nil {
		return 0, true
	}
	if resp == nil {
		return 0, false
	}
	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError {
		return retryAfterDelay(resp.Header.Get("Retry-After")), true
	}
	return 0, false
}

// retryAfterDelay parses a Retry-After value, which Spotify sends as either
// delay seconds or an HTTP date.
func retryAfterDelay(header string) time.Duration {
	if header == "" {
		return 0
	}
	if seconds, err := strconv.Atoi(header); err == nil && seconds > 0 {
		return time.Duration(seconds) * time.Second
	}
	if when, err := http.ParseTime(header); err == nil {
		if d := time.Until(when); d > 0 {
			return d
		}
	}
	return 0
}

func waitRetry(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return nil
	}
	t := time.NewTimer(delay)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return fmt.Errorf("spotify adapter: request canceled: %w", ctx.Err())
	case <-t.C:
		return nil
	}
}
