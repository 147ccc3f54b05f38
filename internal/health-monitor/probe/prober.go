package probe

import (
	"VCS_Registry_Health/internal/health-monitor/model"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

//go:generate mockgen -source=prober.go -destination=../mocks/probe/mock_prober.go -package=mockprobe

const userAgent = "registry-health-monitor/1.0"

type Prober interface {
	Probe(ctx context.Context, url string) Result
}

// Result is the classified outcome of a single probe. The caller stamps the time of the check.
// StatusCode is nil when Status is model.ProbeStatusError.
type Result struct {
	Status       string
	StatusCode   *int
	ResponseTime float64 // seconds
	Message      string
}

type httpProber struct {
	client *http.Client
}

// Probe never returns an error, transport failures are reported as model.ProbeStatusError.
func (p *httpProber) Probe(ctx context.Context, url string) Result {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Result{
			Status:  model.ProbeStatusError,
			Message: fmt.Sprintf("Request error: %v", err),
		}
	}
	req.Header.Set("User-Agent", userAgent)

	start := time.Now()
	resp, err := p.client.Do(req)
	elapsed := time.Since(start).Seconds()
	if err != nil {
		return Result{
			Status:       model.ProbeStatusError,
			ResponseTime: elapsed,
			Message:      fmt.Sprintf("Request error: %v", err),
		}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	statusCode := resp.StatusCode
	res := Result{
		StatusCode:   &statusCode,
		ResponseTime: elapsed,
	}
	if statusCode >= 200 && statusCode < 300 {
		res.Status = model.ProbeStatusSuccess
		res.Message = "Health check successful"
	} else {
		res.Status = model.ProbeStatusFailure
		res.Message = fmt.Sprintf("Health check failed with status code %d", statusCode)
	}
	return res
}

func NewHTTPProber(timeout time.Duration) Prober {
	return &httpProber{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}
