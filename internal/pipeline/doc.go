// Package pipeline orchestrates the two invocation flows.
//
//   - stitch.go: RunStitch — scan → timing list → geometry → manifest →
//     external ffmpeg encode (or dry-run command rendering). The temporary
//     manifest directory lives exactly as long as the invocation.
//   - bounce.go: RunBounce — scan → segment resolution → mirror plan →
//     copy (or dry-run plan table), plus the adjacency preview.
//
// Both flows are single-threaded and run to completion; the only blocking
// step is the awaited ffmpeg process.
package pipeline
