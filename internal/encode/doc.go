// Package encode composes and executes the external ffmpeg invocation.
//
// Split along these boundaries:
//   - spec.go: Spec (pure data) and the codec-dependent quality defaults
//     (CRF 16 for libx264, 22 for libx265, lossless forcing CRF 0 and
//     yuv444p, ProRes fixed profile).
//   - builder.go: Build(Spec) → []string, the fixed argument skeleton
//     (concat input, -r, -vf, codec section, hvc1 tag, output).
//   - executor.go: Execute (stderr capture, optional tee, ExitError with
//     exit code and captured stderr) and Render (dry-run text form).
package encode
