package domain

// StepStatus enumerates pipeline step lifecycle states.
type StepStatus string

const (
	StepPending    StepStatus = "pending"
	StepProcessing StepStatus = "processing"
	StepCompleted  StepStatus = "completed"
	StepError      StepStatus = "error"
)

// PipelineStep is one named stage of a run. The orchestrator owns the step
// list; observers only ever see copies.
type PipelineStep struct {
	Name     string     `json:"name"`
	Status   StepStatus `json:"status"`
	Message  string     `json:"message,omitempty"`
	Progress int        `json:"progress,omitempty"`
}

// AcquiredContent is the transcript text plus metadata produced by the
// acquisition cascade. Immutable once returned; Strategy records which
// extraction path succeeded, for diagnostics only.
type AcquiredContent struct {
	RawText  string
	Title    string
	Duration string
	Strategy string
}

// Segment is one timestamped, independently checkable unit of transcript.
type Segment struct {
	ID        int    `json:"id"`
	Timestamp string `json:"timestamp"`
	Text      string `json:"text"`
}

// Source backs a judgment with a reference and a reliability estimate.
type Source struct {
	Title       string  `json:"title"`
	URL         string  `json:"url"`
	Reliability float64 `json:"reliability"`
}

// ClaimJudgment is the sanitized verdict for a single segment.
type ClaimJudgment struct {
	Verdict     Verdict  `json:"verdict"`
	Confidence  float64  `json:"confidence"`
	Explanation string   `json:"explanation"`
	Evidence    []string `json:"evidence"`
	Sources     []Source `json:"sources"`
}

// AnalyzedSegment pairs a segment with its judgment; the working unit
// handed to the aggregator.
type AnalyzedSegment struct {
	Segment  Segment       `json:"segment"`
	Judgment ClaimJudgment `json:"judgment"`
}

// RunStatus distinguishes a full run from a degraded completion so callers
// never have to infer health from field values.
type RunStatus string

const (
	RunCompleted RunStatus = "completed"
	RunDegraded  RunStatus = "degraded"
)

// Report is the single externally visible artifact of a run.
type Report struct {
	Platform        string            `json:"platform"`
	Title           string            `json:"title"`
	Duration        string            `json:"duration"`
	FullTranscript  string            `json:"full_transcript"`
	Segments        []AnalyzedSegment `json:"segments"`
	OverallAccuracy float64           `json:"overall_accuracy"`
	KeyFindings     []string          `json:"key_findings"`
	ProcessingTime  string            `json:"processing_time"`
	Steps           []PipelineStep    `json:"steps"`
	Status          RunStatus         `json:"status"`
}
