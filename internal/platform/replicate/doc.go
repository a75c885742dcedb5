// Package replicate provides an implementation of the generation.Generator
// interface that uses the Replicate API to run a text-to-image model.
//
// This package is an infrastructure adapter in the hexagonal architecture,
// connecting the application's retry orchestrator to the external Replicate
// service. It translates SDK-level failures into the generation package's
// error taxonomy so classification stays decoupled from the SDK, and parses
// prediction output into the ordered list of result URLs the orchestrator
// expects.
package replicate
