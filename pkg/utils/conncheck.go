package utils

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Melanie472/f1laps/log"
)

// WaitForHTTPResponse polls url until any HTTP response arrives.
// The status code is not checked, only reachability.
func WaitForHTTPResponse(ctx context.Context, url string, timeout time.Duration) error {
	logger := log.GetFromContext(ctx)
	timeoutReached := time.Now().Add(timeout)
	start := time.Now()
	logger.Debug("wait for http request",
		log.String("url", url),
		log.String("timeout", timeout.String()))
	cli := &http.Client{Timeout: timeout}
	for time.Now().Before(timeoutReached) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
		if err != nil {
			return err
		}
		resp, err := cli.Do(req)
		if err == nil {
			resp.Body.Close()
			logger.Debug("http request successful",
				log.String("url", url),
				log.Int("status", resp.StatusCode),
				log.String("duration", time.Since(start).String()))
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(500 * time.Millisecond):
		}
	}
	return fmt.Errorf("%s could not be reached after %v", url, timeout)
}
