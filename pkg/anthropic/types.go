package anthropic

// MessageRequest is the top-level request body for the Messages API.
type MessageRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	System    string    `json:"system,omitempty"`
	Messages  []Message `json:"messages"`
}

// Message is one conversation turn.
type Message struct {
	Role    string         `json:"role"` // "user" or "assistant"
	Content []ContentBlock `json:"content"`
}

// ContentBlock holds a text segment or an inlined image.
type ContentBlock struct {
	Type   string       `json:"type"` // "text" or "image"
	Text   string       `json:"text,omitempty"`
	Source *ImageSource `json:"source,omitempty"`
}

// ImageSource carries a base64-encoded image payload.
type ImageSource struct {
	Type      string `json:"type"` // always "base64"
	MediaType string `json:"media_type"`
	Data      string `json:"data"`
}

// MessageResponse is the top-level response body from the Messages API.
type MessageResponse struct {
	ID         string         `json:"id"`
	Role       string         `json:"role"`
	Content    []ContentBlock `json:"content"`
	StopReason string         `json:"stop_reason,omitempty"`
}

// FirstText returns the first text block of the response, or "".
func (r *MessageResponse) FirstText() string {
	text, _ := r.FirstTextBlock()
	return text
}

// FirstTextBlock returns the first text block of the response and whether
// one is present at all. The text itself may be empty.
func (r *MessageResponse) FirstTextBlock() (string, bool) {
	for _, block := range r.Content {
		if block.Type == "text" {
			return block.Text, true
		}
	}
	return "", false
}

// TextMessage builds a single-block text message for the given role.
func TextMessage(role, text string) Message {
	return Message{
		Role:    role,
		Content: []ContentBlock{{Type: "text", Text: text}},
	}
}

// ImageTextMessage builds a user message carrying an inlined image followed
// by a text instruction.
func ImageTextMessage(mediaType, base64Data, text string) Message {
	return Message{
		Role: "user",
		Content: []ContentBlock{
			{
				Type: "image",
				Source: &ImageSource{
					Type:      "base64",
					MediaType: mediaType,
					Data:      base64Data,
				},
			},
			{Type: "text", Text: text},
		},
	}
}
