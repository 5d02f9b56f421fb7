package openrouter

import "interviewedge/internal/llm"

// Register OpenRouter provider on package import
func init() {
	llm.RegisterProvider("openrouter", func() (llm.Provider, error) {
		config, err := NewConfig()
		if err != nil {
			return nil, err
		}
		return NewClient(config)
	})
}
