package config

// this holds the resolved configuration values from CLI
//
//nolint:lll // readablity
var (
	APIURL            string // base URL of the OpenF1 API
	Year              int    // season to load
	SessionName       string // session type to load (e.g. Race)
	HTTPTimeout       string // timeout for a single API request
	WaitForServices   string // duration to wait for the API to be reachable
	LogLevel          string // sets the log level (zap log level values)
	LogFormat         string // text vs json
	LogFilter         string // zapfilter rules, empty means no filtering
	EnableTelemetry   bool   // enable telemetry
	TelemetryEndpoint string // endpoint for telemetry ("stdout" writes to stdout)
	ServerAddr        string // listen addr for the web dashboard
	CacheExpiration   string // duration after which fetched data is reloaded (0 = never)
)

const (
	DefaultAPIURL      = "https://api.openf1.org/v1"
	DefaultYear        = 2023
	DefaultSessionName = "Race"
)
