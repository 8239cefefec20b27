package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses configuration flags from args (without the program name).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-root monorepo root directory
//	-apps-dir applications directory relative to root
//	-prefix generic environment variable prefix
//	-mappings custom key mappings JSON file
//	-remote-endpoint remote configuration service URL
//	-remote-label remote configuration label
//	-d database DSN for snapshot history
//	-c/-config json file path with configs
//	-log-level zerolog level
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-watch watch .env files for changes
//	-no-fallback disable the fallback system
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var rootDir, appsDir, envPrefix, mappingsFile string
	var remoteEndpoint, remoteLabel string
	var databaseDSN string
	var jsonConfigPath string
	var logLevel string
	var tokenSignKey, tokenIssuer string
	var requestTimeout time.Duration
	var watchFiles, noFallback bool

	fs := flag.NewFlagSet("config-resolver", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&rootDir, "root", "", "Monorepo root directory")
	fs.StringVar(&appsDir, "apps-dir", "", "Applications directory relative to root")
	fs.StringVar(&envPrefix, "prefix", "", "Generic environment variable prefix")
	fs.StringVar(&mappingsFile, "mappings", "", "Custom key mappings JSON file")
	fs.StringVar(&remoteEndpoint, "remote-endpoint", "", "Remote configuration service URL")
	fs.StringVar(&remoteLabel, "remote-label", "", "Remote configuration label")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.BoolVar(&watchFiles, "watch", false, "Watch .env files for changes")
	fs.BoolVar(&noFallback, "no-fallback", false, "Disable the fallback system")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Resolver: Resolver{
			RootDir:         rootDir,
			AppsDir:         appsDir,
			EnvPrefix:       envPrefix,
			MappingsFile:    mappingsFile,
			DisableFallback: noFallback,
			LogLevel:        logLevel,
		},
		Cache: Cache{
			WatchFiles: watchFiles,
		},
		Remote: Remote{
			Endpoint: remoteEndpoint,
			Label:    remoteLabel,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Auth: Auth{
			TokenSignKey: tokenSignKey,
			TokenIssuer:  tokenIssuer,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
