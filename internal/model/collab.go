package model

type CompletionRequest struct {
	Prompt string
	Model  string

	Temperature      float64
	MaxTokens        int
	TopP             float64
	TopK             int
	FrequencyPenalty float64
	PresencePenalty  float64
	ContextLength    int
	RepeatPenalty    float64
}

type Completion struct {
	Text  string
	Model string
	Done  bool
}

type Speech struct {
	Audio  []byte
	Format string
}

type ServiceStatus = string

const (
	ServiceConnected   ServiceStatus = "connected"
	ServiceError       ServiceStatus = "error"
	ServiceUnavailable ServiceStatus = "unavailable"
)
