// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"os"
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

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-driver database driver (postgres or sqlite3)
//	-d database DSN
//	-max-open-conns database pool size
//	-c/-config JSON or YAML config file path
//	-env-file dotenv file path
//	-bcrypt-cost bcrypt work factor
//	-log-level minimum log level
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-shutdown-timeout graceful shutdown timeout
//	-adapter-address API address used by the device simulator
//	-adapter-timeout outbound request timeout
//	-username/-password device account credentials
//	-sensor-name/-sensor-type simulated sensor
//	-readings number of readings to push
//	-interval pause between readings
func parseFlags(args []string) (*StructuredConfig, error) {
	return parseFlagsTo(args, os.Stderr)
}

func parseFlagsTo(args []string, output io.Writer) (*StructuredConfig, error) {
	var serverAddress NetAddress
	cfg := &StructuredConfig{}

	fs := flag.NewFlagSet("sensor-hub", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&cfg.Storage.DB.Driver, "driver", "", "Database driver (postgres, sqlite3)")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.IntVar(&cfg.Storage.DB.MaxOpenConns, "max-open-conns", 0, "Maximum open database connections")
	fs.StringVar(&cfg.ConfigFilePath, "c", "", "JSON or YAML config file path")
	fs.StringVar(&cfg.ConfigFilePath, "config", "", "JSON or YAML config file path (alias)")
	fs.StringVar(&cfg.EnvFilePath, "env-file", "", "Dotenv file path")
	fs.IntVar(&cfg.App.BcryptCost, "bcrypt-cost", 0, "Bcrypt cost")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&cfg.Server.ShutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout")
	fs.StringVar(&cfg.Adapter.HTTPAddress, "adapter-address", "", "sensor-hub API address")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "adapter-timeout", 0, "Outbound request timeout")
	fs.StringVar(&cfg.Device.Username, "username", "", "Device account username")
	fs.StringVar(&cfg.Device.Password, "password", "", "Device account password")
	fs.StringVar(&cfg.Device.SensorName, "sensor-name", "", "Simulated sensor name")
	fs.StringVar(&cfg.Device.SensorType, "sensor-type", "", "Simulated sensor type")
	fs.IntVar(&cfg.Device.Readings, "readings", 0, "Number of readings to push")
	fs.DurationVar(&cfg.Device.Interval, "interval", time.Duration(0), "Pause between readings")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.Server.HTTPAddress = serverAddress.String()

	return cfg, nil
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
// An empty host means all interfaces. It validates the port range, checks IP
// correctness unless host is "localhost", and returns an error if the format
// or values are invalid.
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
