package httpclient

import (
	"net/http"

	"travel-service/config"

	circuit "github.com/rubyist/circuitbreaker"
)

const (
	TypeConsecutive = "consecutive"
	TypeRate        = "rate"
	TypeThreshold   = "threshold"
)

// InitCircuitBreaker builds the breaker selected by cbType. Unknown types fall
// back to a consecutive-failure breaker.
func InitCircuitBreaker(cfg *config.HttpClientConfig, cbType string) *circuit.Breaker {
	switch cbType {
	case TypeRate:
		return circuit.NewRateBreaker(cfg.ErrorRate, cfg.MinSamples)
	case TypeThreshold:
		return circuit.NewThresholdBreaker(cfg.Threshold)
	default:
		return circuit.NewConsecutiveBreaker(cfg.Threshold)
	}
}

func InitHttpClient(cfg *config.HttpClientConfig, cb *circuit.Breaker) *circuit.HTTPClient {
	client := &http.Client{Timeout: cfg.Timeout}
	return circuit.NewHTTPClientWithBreaker(cb, cfg.Timeout, client)
}
