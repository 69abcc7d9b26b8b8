package diagnosis

import "errors"

// Domain-specific errors for the diagnosis package.
var (
	ErrNoImage          = errors.New("no image provided")
	ErrAnalysisInFlight = errors.New("an analysis is already in progress")
	ErrEmptyResponse    = errors.New("classifier response carried no text block")
)
