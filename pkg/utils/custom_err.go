package utils

import "errors"

var (
	ErrInvalidInput             = errors.New("invalid input")
	ErrKnowledgeBaseUnavailable = errors.New("knowledge base unavailable")
	ErrRouteNotFound            = errors.New("route not found")
	ErrWeatherUnavailable       = errors.New("weather provider unavailable")
	ErrCompletionUnavailable    = errors.New("completion provider unavailable")
)
