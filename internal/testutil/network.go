// Package testutil 여러 패키지의 테스트가 함께 쓰는 보조 함수입니다.
package testutil

import (
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// FreePort 테스트 서버가 바인딩할 수 있는 임의의 포트를 반환합니다.
func FreePort(t *testing.T) int {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err, "사용 가능한 포트를 찾지 못했습니다")
	defer l.Close()

	return l.Addr().(*net.TCPAddr).Port
}

// WaitForHealthy port에서 GET /health가 200을 반환할 때까지 대기합니다.
func WaitForHealthy(port int, timeout time.Duration) error {
	client := &http.Client{Timeout: 200 * time.Millisecond}
	url := fmt.Sprintf("http://127.0.0.1:%d/health", port)

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				client.CloseIdleConnections()
				return nil
			}
		}
		time.Sleep(10 * time.Millisecond)
	}
	client.CloseIdleConnections()
	return fmt.Errorf("%v 안에 %d 포트의 서버가 준비되지 않았습니다", timeout, port)
}
