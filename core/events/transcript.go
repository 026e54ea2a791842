package events

const (
	// KindTranscriptSegment identifies finalized append-only transcript segments.
	KindTranscriptSegment Kind = "transcript.segment"
	// KindTranscriptInterimUpdated identifies mutable interim tail updates.
	KindTranscriptInterimUpdated Kind = "transcript.interim_updated"
	// KindTranscriptUpdated identifies mutable full transcript snapshots.
	KindTranscriptUpdated Kind = "transcript.updated"
)

// TranscriptSegment carries a finalized transcript segment.
type TranscriptSegment struct {
	Base
	Segment string
}

// NewTranscriptSegment creates a finalized transcript segment event.
func NewTranscriptSegment(segment string) TranscriptSegment {
	return TranscriptSegment{Base: NewBase(KindTranscriptSegment), Segment: segment}
}

// TranscriptInterimUpdated carries the mutable interim transcript tail.
type TranscriptInterimUpdated struct {
	Base
	Interim string
}

// NewTranscriptInterimUpdated creates an interim transcript update event.
func NewTranscriptInterimUpdated(interim string) TranscriptInterimUpdated {
	return TranscriptInterimUpdated{Base: NewBase(KindTranscriptInterimUpdated), Interim: interim}
}

// TranscriptUpdated carries the full transcript snapshot, accumulated
// finalized segments plus the latest interim text.
type TranscriptUpdated struct {
	Base
	Transcript string
}

// NewTranscriptUpdated creates a full transcript snapshot event.
func NewTranscriptUpdated(transcript string) TranscriptUpdated {
	return TranscriptUpdated{Base: NewBase(KindTranscriptUpdated), Transcript: transcript}
}
