package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-form-relay/models"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-c/-config json file path with configs
//	-chat-id destination chat id
//	-bot-api-url bot API base URL
//	-parse-mode HTML or MarkdownV2
//	-bot-timeout outbound request timeout (e.g., "10s")
//	-request-timeout inbound request timeout (e.g., "30s")
//	-upload-dir temporary upload directory
//	-max-file-size upload ceiling in bytes
//	-file-field multipart field name of the image
//	-log-level zerolog level
//
// The bot token is deliberately not accepted as a flag so it never shows up
// in process listings.
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var jsonConfigPath string
	var chatID string
	var botAPIURL string
	var parseMode string
	var botTimeout time.Duration
	var requestTimeout time.Duration
	var uploadDir string
	var maxFileSize int64
	var fileField string
	var logLevel string

	fs := flag.NewFlagSet("form-relay", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&chatID, "chat-id", "", "Destination chat id")
	fs.StringVar(&botAPIURL, "bot-api-url", "", "Bot API base URL")
	fs.StringVar(&parseMode, "parse-mode", "", "Message parse mode (HTML, MarkdownV2)")
	fs.DurationVar(&botTimeout, "bot-timeout", 0, "Bot API request timeout (e.g., 10s)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&uploadDir, "upload-dir", "", "Temporary upload directory")
	fs.Int64Var(&maxFileSize, "max-file-size", 0, "Maximum upload size in bytes")
	fs.StringVar(&fileField, "file-field", "", "Multipart field name of the image")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			FileField: fileField,
			LogLevel:  logLevel,
		},
		Bot: Bot{
			ChatID:         chatID,
			APIURL:         botAPIURL,
			ParseMode:      models.ParseMode(parseMode),
			RequestTimeout: botTimeout,
		},
		Storage: Storage{
			Files: Files{
				UploadDir:   uploadDir,
				MaxFileSize: maxFileSize,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
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
// An empty host means all interfaces. Otherwise the host must be "localhost"
// or a valid IP address.
func (a *NetAddress) Set(s string) error {
	host, portStr, found := strings.Cut(s, ":")
	if !found || strings.Contains(portStr, ":") {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
