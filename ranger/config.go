package ranger

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kfly8/muxbuilder"
)

const (
	corsOriginEnvVar  = "CORS_ORIGIN"
	environmentEnvVar = "ENVIRONMENT"
	forceHTTPSEnvVar  = "FORCE_HTTPS"
	maintModeEnvVar   = "MAINTENANCE_MODE"
	rateBurstEnvVar   = "RATE_LIMIT_BURST"
	rateLimitEnvVar   = "RATE_LIMIT"
	sentryDsnEnvVar   = "SENTRY_DSN"

	// Web server defaults
	DefaultHost               = "localhost"
	hostEnvVar                = "HOST"
	DefaultPort               = "3000"
	portEnvVar                = "PORT"
	serverReadTimeoutEnvVar   = "SERVER_READ_TIMEOUT"
	DefaultServerReadTimeout  = 5 * time.Second
	serverIdleTimeoutEnvVar   = "SERVER_IDLE_TIMEOUT"
	DefaultServerIdleTimeout  = 120 * time.Second
	serverWriteTimeoutEnvVar  = "SERVER_WRITE_TIMEOUT"
	DefaultServerWriteTimeout = 5 * time.Second

	shutdownTimeout = 5 * time.Second
)

// LoadEnv sets environment variables from files, without overriding those already set.
// With no files, LoadEnv reads .env in the working directory if one exists.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		err := godotenv.Load()
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: %s", muxbuilder.ErrBadConfig, err)
		}
		return nil
	}

	if err := godotenv.Load(files...); err != nil {
		return fmt.Errorf("%w: %s", muxbuilder.ErrBadConfig, err)
	}

	return nil
}

// defaultAddr joins HOST and PORT.
func defaultAddr() string {
	host := muxbuilder.EnvVarOrString(hostEnvVar, DefaultHost)
	port := strings.TrimPrefix(muxbuilder.EnvVarOrString(portEnvVar, DefaultPort), ":")
	return net.JoinHostPort(host, port)
}
