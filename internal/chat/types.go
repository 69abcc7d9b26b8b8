package chat

import "plant-care-assistant/internal/model"

// SendInput is the input for one chat submission.
type SendInput struct {
	Message string
}

// SendOutput is the result of a resolved chat turn.
type SendOutput struct {
	Question model.ChatTurn
	Answer   model.ChatTurn
}
