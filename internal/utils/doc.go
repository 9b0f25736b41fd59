// Package utils provides general-purpose helpers shared by the transport,
// adapter and storage layers: JSON response writing, the resty based HTTP
// client and unique identifier generation.
package utils
