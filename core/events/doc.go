// Package events defines the typed session event contract.
//
// Event kinds are grouped by receiver-facing namespaces:
//
//   - capture.*
//   - transcript.*
//   - question.*
//   - answer.*
//
// Semantics used across the package:
//
//   - Segment: append-only finalized text piece emitted in stream order.
//   - Updated: mutable point-in-time snapshot that can change over time.
//   - Interim: provisional text superseded by the next interim or by a
//     finalized segment.
//
// capture events
//
//   - CaptureStarted (capture.started): a voice capture attempt began.
//   - CaptureEnded (capture.ended): the recognition stream ended, whether
//     by quiet-period expiry, explicit stop, or error.
//   - CaptureError (capture.error): platform-level recognition failure;
//     the capture session is over.
//   - CaptureUnsupported (capture.unsupported): the platform cannot do
//     speech recognition at all; voice input stays disabled.
//
// transcript events
//
//   - TranscriptSegment (transcript.segment): finalized, append-only
//     transcript segment.
//   - TranscriptInterimUpdated (transcript.interim_updated): mutable
//     interim tail update.
//   - TranscriptUpdated (transcript.updated): mutable snapshot of the
//     full transcript, accumulated segments plus latest interim.
//
// question events
//
//   - QuestionSubmitted (question.submitted): a question entered the
//     request gate and was dispatched.
//   - QuestionBlocked (question.blocked): a submission attempt was
//     dropped because another question is in flight.
//   - QuestionFailed (question.failed): the request ended in a timeout,
//     network, or application error.
//
// answer events
//
//   - AnswerReceived (answer.received): a parsed rules answer arrived.
package events
