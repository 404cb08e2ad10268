package health

import (
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
)

// Info identifies a running payments service instance. Version, GitCommit
// and BuildTime come from the deploy environment; the rest is resolved at
// startup.
type Info struct {
	ServiceName string    `json:"service_name"`
	Version     string    `json:"version"`
	GitCommit   string    `json:"git_commit"`
	BuildTime   string    `json:"build_time"`
	GoVersion   string    `json:"go_version"`
	Hostname    string    `json:"hostname"`
	ServerTime  time.Time `json:"server_time"`
}

// newInfo resolves build identification for serviceName, falling back to
// development defaults when the deploy pipeline set nothing.
func newInfo(serviceName string) Info {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	return Info{
		ServiceName: serviceName,
		Version:     envOr("VERSION", "development"),
		GitCommit:   envOr("GIT_COMMIT", "unknown"),
		BuildTime:   envOr("BUILD_TIME", "unknown"),
		GoVersion:   runtime.Version(),
		Hostname:    hostname,
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// NewPingHandler returns the /ping handler. Build identification is resolved
// once; only the server time varies per request.
func NewPingHandler(serviceName string) echo.HandlerFunc {
	info := newInfo(serviceName)

	return func(c echo.Context) error {
		info.ServerTime = time.Now()
		return c.JSON(http.StatusOK, info)
	}
}

// RegisterHealthEndpoints wires /ping plus the liveness and readiness
// endpoints the deployment probes hit
func RegisterHealthEndpoints(e *echo.Echo, serviceName string) {
	e.GET("/ping", NewPingHandler(serviceName))

	ok := func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	}
	e.GET("/health", ok)
	e.GET("/healthz", ok)
	e.GET("/ready", ok)
}
