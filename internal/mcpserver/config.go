package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Worker count for scan processing (0 = number of CPUs).
	Workers int

	// XML parse limits.
	XMLMaxDepth int
	XMLMaxAttrs int

	// Scan tool defaults.
	ScanTop          int
	ScanMaxFiles     int
	ScanIncludePaths bool
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from XSTRUCT_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		Workers:          envInt("XSTRUCT_WORKERS", 0, true),
		XMLMaxDepth:      envInt("XSTRUCT_XML_MAX_DEPTH", 256, false),
		XMLMaxAttrs:      envInt("XSTRUCT_XML_MAX_ATTRS", 256, false),
		ScanTop:          envInt("XSTRUCT_SCAN_TOP", 10, false),
		ScanMaxFiles:     envInt("XSTRUCT_SCAN_MAX_FILES", 100000, false),
		ScanIncludePaths: envBool("XSTRUCT_SCAN_INCLUDE_PATHS", false),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}

func envInt(key string, fallback int, allowZero bool) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 || (n == 0 && !allowZero) {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}
