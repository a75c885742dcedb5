// Package domain contains the core business entities and value objects of
// the image generation system: the validated Prompt and the GeneratedImage
// record. It is independent of any specific infrastructure or delivery
// mechanism.
package domain
