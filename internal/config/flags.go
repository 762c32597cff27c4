package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// String returns the address in "host:port" form. An unset address renders
// as the empty string so that mergo treats it as an empty field.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses a "[host]:port" value into the receiver.
func (a *NetAddress) Set(value string) error {
	host, portString, err := net.SplitHostPort(value)
	if err != nil {
		return errors.New("need address in a form [host]:[port]")
	}

	port, err := strconv.Atoi(portString)
	if err != nil {
		return errors.New("port must be a number")
	}

	a.Host = host
	a.Port = port
	return nil
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-f user data file path
//	-c/-config json file path with configs
//	-password-min-length minimum accepted password length
//	-hash-rounds PBKDF2 iteration count
//	-token-ttl session token lifetime (e.g., "1h", "30m"; 0 = never expire)
//	-request-timeout request timeout (e.g., "30s", "1m")
//
// Unset flags leave their fields zero so later configuration layers can
// fill them in.
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var dataFilePath string
	var jsonConfigPath string
	var passwordMinLength int
	var hashRounds int
	var tokenTTL time.Duration
	var requestTimeout time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&dataFilePath, "f", "", "User data file path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.IntVar(&passwordMinLength, "password-min-length", 0, "Minimum password length")
	flag.IntVar(&hashRounds, "hash-rounds", 0, "PBKDF2 iteration count")
	flag.DurationVar(&tokenTTL, "token-ttl", 0, "Session token TTL (e.g., 1h, 30m; 0 = never)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			PasswordMinLength: passwordMinLength,
			HashRounds:        hashRounds,
			TokenTTL:          tokenTTL,
		},
		Storage: Storage{
			Files: Files{
				DataFile: dataFilePath,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
}
