// Package generation provides the retry orchestrator and error taxonomy for
// turning a text prompt into a saved image via an external text-to-image
// service. It abstracts the details of the remote API behind the Generator
// interface, allowing the application to generate images without coupling to
// a specific external service, and decides for each failure whether to retry
// with exponential backoff or abort.
package generation
