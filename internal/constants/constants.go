package constants

import "time"

var APIPaths = struct {
	Profile  string
	Projects string
}{
	Profile:  "/profile",
	Projects: "/projects",
}

var APIConfig = struct {
	DefaultBaseURL  string
	DefaultTimeout  time.Duration // 0: no client-side timeout
	RequestIDHeader string
	UserAgent       string
}{
	DefaultBaseURL:  "http://localhost:8080",
	DefaultTimeout:  0,
	RequestIDHeader: "X-Request-ID",
	UserAgent:       "portfolio-client-go/1.0",
}

var IconConfig = struct {
	DefaultSize int
	ViewBox     string
	Namespace   string
}{
	DefaultSize: 16,
	ViewBox:     "0 0 24 24",
	Namespace:   "http://www.w3.org/2000/svg",
}

var PageConfig = struct {
	MaxConcurrency int
}{
	MaxConcurrency: 4,
}

// StringLimits caps text in the plain-text formatter, counted in runes.
var StringLimits = struct {
	Summary     int
	Description int
}{
	Summary:     120,
	Description: 400,
}
