package encode

import (
	"strings"

	"github.com/backmassage/stillreel/internal/config"
)

// Spec fully determines one external encoder invocation. Pure data: the
// builder turns it into an argument list, the executor runs it.
type Spec struct {
	FfmpegPath   string
	ManifestPath string
	OutputPath   string
	FPS          float64
	Codec        string
	CRF          float64
	Preset       string
	PixFmt       string
	FilterGraph  string   // -vf value from the geometry package.
	ExtraArgs    []string // Raw args appended just before the output path.
}

// Codec identities with special handling.
const (
	codecX265Prefix = "libx265"
	codecProRes     = "prores_ks"
)

// Per-codec CRF defaults. libx265 trades differently against file size, so
// its default is higher for comparable output.
const (
	defaultCRFx264     = 16
	defaultCRFx265     = 22
	losslessCRF        = 0
	defaultPixFmt      = "yuv420p"
	losslessPixFmt     = "yuv444p"
	proResProfile      = "3"
	proResPixFmt       = "yuv422p10le"
	hevcCompatVideoTag = "hvc1"
)

// NewSpec resolves the codec-dependent quality defaults from cfg into a
// concrete Spec. Lossless mode forces CRF 0 and defaults the pixel format
// to yuv444p; explicit --crf / --pix-fmt values always win.
func NewSpec(cfg *config.Config, manifestPath string) Spec {
	crf := cfg.CRF
	pixFmt := cfg.PixFmt

	if cfg.Lossless {
		if crf == config.CRFUnset {
			crf = losslessCRF
		}
		if pixFmt == "" {
			pixFmt = losslessPixFmt
		}
	}
	if crf == config.CRFUnset {
		if strings.HasPrefix(cfg.Codec, codecX265Prefix) {
			crf = defaultCRFx265
		} else {
			crf = defaultCRFx264
		}
	}
	if pixFmt == "" {
		pixFmt = defaultPixFmt
	}

	return Spec{
		FfmpegPath:   cfg.FfmpegPath,
		ManifestPath: manifestPath,
		OutputPath:   cfg.OutputPath,
		FPS:          cfg.FPS,
		Codec:        cfg.Codec,
		CRF:          crf,
		Preset:       cfg.Preset,
		PixFmt:       pixFmt,
		ExtraArgs:    cfg.ExtraArgs,
	}
}
