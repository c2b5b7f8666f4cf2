package api

// GenerateRequest is the JSON body for POST /api/generate.
type GenerateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	System string `json:"system"`
	Stream bool   `json:"stream"`
}

// NewGenerateRequest builds a non-streaming generate request.
func NewGenerateRequest(model, prompt, system string) GenerateRequest {
	return GenerateRequest{
		Model:  model,
		Prompt: prompt,
		System: system,
		Stream: false,
	}
}

// GenerateResponse is the part of the /api/generate reply the tool uses.
type GenerateResponse struct {
	Response string `json:"response"`
}

// ErrorResponse is the JSON error envelope returned by the daemon.
type ErrorResponse struct {
	Error string `json:"error"`
}
