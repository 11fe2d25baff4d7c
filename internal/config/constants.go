// internal/config/constants.go
package config

// Application information
const (
	AppName    = "DiarioRelacionamento"
	AppVersion = "1.0.0"
)

// Default settings
const (
	DefaultServerPort         = ":8080"
	DefaultLogLevel           = "info"
	DefaultDocumentName       = "data_2026"
	DefaultAdviceContextDays  = 10
	DefaultAdviceMinRecords   = 3
	DefaultAdvisorModel       = "llama3-70b-8192"
	DefaultAdvisorBaseURL     = "https://api.groq.com/openai/v1"
	DefaultAdvisorTimeoutSecs = 30
)
