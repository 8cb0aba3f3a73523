package service

import (
	"fmt"
	"io"
	"net/http"
)

// UpstreamStatusError — ответ провайдера со статусом, отличным от 200.
type UpstreamStatusError struct {
	StatusCode int
}

func (e *UpstreamStatusError) Error() string {
	return fmt.Sprintf("upstream responded with status %d", e.StatusCode)
}

// okOnlyTransport пропускает дальше только ответы 200 OK, всё остальное
// превращает в *UpstreamStatusError.
type okOnlyTransport struct {
	next http.RoundTripper
}

func (t okOnlyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.next.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		_ = resp.Body.Close()
		return nil, &UpstreamStatusError{StatusCode: resp.StatusCode}
	}
	return resp, nil
}
