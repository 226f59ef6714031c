package ports

import (
	"context"

	"FactScanner/internal/domain"
)

// ChatMessage is one entry in a chat-style oracle request.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest carries everything a completion call needs besides the model,
// which the client owns.
type ChatRequest struct {
	Messages    []ChatMessage
	Temperature float64
	MaxTokens   int
}

// ChatClient is the single narrow interface to the reasoning oracle. The
// returned string is the assistant message content, possibly wrapped in
// markdown code fences.
type ChatClient interface {
	Complete(ctx context.Context, req ChatRequest) (string, error)
}

// ContentSource acquires transcript content for a video reference.
type ContentSource interface {
	Acquire(ctx context.Context, reference string) (domain.AcquiredContent, error)
}

// SegmentVerifier judges every segment, pacing oracle calls internally.
// onProgress reports (done, total) after each segment and may be nil.
type SegmentVerifier interface {
	VerifyAll(ctx context.Context, segments []domain.Segment, onProgress func(done, total int)) []domain.AnalyzedSegment
}

// Notifier publishes finished reports to an outbound channel. How a report
// is rendered for the channel is the implementation's concern.
type Notifier interface {
	PublishReport(ctx context.Context, report domain.Report) error
}

// ProgressFunc receives a copy of the full step list after every status
// transition. Implementations must not block the pipeline.
type ProgressFunc func(steps []domain.PipelineStep)
