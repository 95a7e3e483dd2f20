package config

import (
	"errors"
	"flag"
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

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server listen address in format [host]:[port]
//	-d database DSN (postgres DSN on the relay, sqlite path on the agent)
//	-relay relay base URL used by the agent
//	-c/-config json file path with configs
//	-device-id externally provisioned device identifier
//	-keystore sealed signing key path
//	-skew-window signature timestamp freshness window (e.g., "5m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-flush-interval queue drain interval (e.g., "15m")
//	-mail-from guardian mail sender address
//	-smtp-address SMTP submission endpoint host:port
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var relayAddress string
	var jsonConfigPath string
	var deviceID string
	var keystorePath string
	var skewWindow time.Duration
	var requestTimeout time.Duration
	var flushInterval time.Duration
	var mailFrom string
	var smtpAddress string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&relayAddress, "relay", "", "Relay base URL")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&deviceID, "device-id", "", "Provisioned device identifier")
	flag.StringVar(&keystorePath, "keystore", "", "Sealed signing key path")
	flag.DurationVar(&skewWindow, "skew-window", 0, "Signature timestamp freshness window (e.g., 5m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&flushInterval, "flush-interval", 0, "Queue drain interval (e.g., 15m)")
	flag.StringVar(&mailFrom, "mail-from", "", "Guardian mail sender address")
	flag.StringVar(&smtpAddress, "smtp-address", "", "SMTP submission endpoint host:port")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			SkewWindow:   skewWindow,
			DeviceID:     deviceID,
			KeystorePath: keystorePath,
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
		Mail: Mail{
			SMTPAddress: smtpAddress,
			From:        mailFrom,
		},
		Adapter: Adapter{
			HTTPAddress: relayAddress,
		},
		Workers: Workers{
			FlushInterval: flushInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
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
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
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

	if host != "" && host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
