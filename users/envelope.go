package users

import "encoding/json"

// Envelope is the fixed success/error wrapper returned by every tool.
type Envelope struct {
	Success    bool   `json:"success"`
	Data       any    `json:"data,omitempty"`
	Message    string `json:"message,omitempty"`
	Pagination *Page  `json:"pagination,omitempty"`
	Error      string `json:"error,omitempty"`
}

func OK(data any, message string) Envelope {
	return Envelope{
		Success: true,
		Data:    data,
		Message: message,
	}
}

func OKList(items []User, page Page) Envelope {
	if items == nil {
		items = []User{}
	}

	return Envelope{
		Success:    true,
		Data:       items,
		Pagination: &page,
	}
}

func Fail(msg string) Envelope {
	return Envelope{
		Success: false,
		Error:   msg,
	}
}

// Render serializes the envelope with two-space indentation, the format
// the tool surface emits as text content.
func (e Envelope) Render() (string, error) {
	out, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return "", err
	}

	return string(out), nil
}
