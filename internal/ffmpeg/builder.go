package ffmpeg

import (
	"errors"
	"fmt"
	"strconv"
)

// Preset selects an output codec profile.
type Preset string

const (
	PresetH264   Preset = "h264"
	PresetHEVC   Preset = "hevc"
	PresetProRes Preset = "prores"
)

// OutputExt returns the container extension for the preset, dot included.
func (p Preset) OutputExt() string {
	if p == PresetProRes {
		return ".mov"
	}
	return ".mp4"
}

// Request describes a single transcode invocation. Input is either a movie
// path or a printf-style sequence pattern; sequence inputs must set
// FrameRate and StartNumber.
type Request struct {
	Input       string
	Output      string
	Preset      Preset
	CRF         int
	IsSequence  bool
	FrameRate   int
	StartNumber int
	Overwrite   bool
}

// Args renders the complete ffmpeg argument list for the request.
func Args(req Request) ([]string, error) {
	if req.Input == "" {
		return nil, errors.New("input required")
	}
	if req.Output == "" {
		return nil, errors.New("output required")
	}

	args := []string{"-hide_banner", "-nostdin"}
	if req.Overwrite {
		args = append(args, "-y")
	} else {
		args = append(args, "-n")
	}

	if req.IsSequence {
		rate := req.FrameRate
		if rate <= 0 {
			rate = 25
		}
		args = append(args,
			"-framerate", strconv.Itoa(rate),
			"-start_number", strconv.Itoa(req.StartNumber),
		)
	}
	args = append(args, "-i", req.Input)

	codec, err := presetArgs(req.Preset, req.CRF)
	if err != nil {
		return nil, err
	}
	args = append(args, codec...)
	args = append(args, req.Output)
	return args, nil
}

func presetArgs(preset Preset, crf int) ([]string, error) {
	if crf <= 0 {
		crf = 18
	}
	switch preset {
	case PresetH264:
		return []string{
			"-c:v", "libx264",
			"-preset", "slow",
			"-crf", strconv.Itoa(crf),
			"-pix_fmt", "yuv420p",
			"-movflags", "+faststart",
			"-c:a", "aac",
			"-b:a", "320k",
		}, nil
	case PresetHEVC:
		return []string{
			"-c:v", "libx265",
			"-preset", "medium",
			"-crf", strconv.Itoa(crf),
			"-tag:v", "hvc1",
			"-pix_fmt", "yuv420p10le",
			"-movflags", "+faststart",
			"-c:a", "aac",
			"-b:a", "320k",
		}, nil
	case PresetProRes:
		return []string{
			"-c:v", "prores_ks",
			"-profile:v", "3",
			"-vendor", "apl0",
			"-pix_fmt", "yuv422p10le",
			"-c:a", "pcm_s16le",
		}, nil
	default:
		return nil, fmt.Errorf("unknown preset %q", preset)
	}
}

// SplitAudioArgs builds the argument list that splits a stereo source into
// two mono wav files.
func SplitAudioArgs(input, left, right string, overwrite bool) ([]string, error) {
	if input == "" {
		return nil, errors.New("input required")
	}
	if left == "" || right == "" {
		return nil, errors.New("left and right outputs required")
	}

	args := []string{"-hide_banner", "-nostdin"}
	if overwrite {
		args = append(args, "-y")
	} else {
		args = append(args, "-n")
	}
	args = append(args,
		"-i", input,
		"-filter_complex", "[0:a]channelsplit=channel_layout=stereo[left][right]",
		"-map", "[left]", "-c:a", "pcm_s16le", left,
		"-map", "[right]", "-c:a", "pcm_s16le", right,
	)
	return args, nil
}
