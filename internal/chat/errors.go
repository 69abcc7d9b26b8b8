package chat

import "errors"

// Domain-specific errors for the chat package.
var (
	ErrEmptyMessage = errors.New("message is empty")
	ErrChatBusy     = errors.New("a chat request is already in progress")
	ErrEmptyAnswer  = errors.New("assistant response carried no text block")
)
