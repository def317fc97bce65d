package renderer

import (
	"fmt"
	"io"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	ffmpeg "github.com/u2takey/ffmpeg-go"

	"ripplegrid"
)

// Record renders the grid offscreen at a fixed frame rate for the
// configured duration and encodes the frames to the output file. Time
// steps deterministically, so a given option set always produces the
// same video. The pointer stays disengaged in record mode.
func (s *Surface) Record() error {
	o := s.opts
	total := int(*o.Duration * float64(*o.FPS))
	if total <= 0 {
		return fmt.Errorf("nothing to record: duration %v at %d fps", *o.Duration, *o.FPS)
	}
	dt := 1.0 / float64(*o.FPS)
	w, h := s.renderW, s.renderH

	inputArgs := ffmpeg.KwArgs{
		"f":         "rawvideo",
		"pix_fmt":   "rgba",
		"s":         fmt.Sprintf("%dx%d", w, h),
		"framerate": *o.FPS,
	}
	outputArgs := ffmpeg.KwArgs{
		"c:v":     "libx264",
		"pix_fmt": "yuv420p",
		// GL reads rows bottom-up.
		"vf": "vflip",
	}

	pipeReader, pipeWriter := io.Pipe()
	cmd := ffmpeg.Input("pipe:", inputArgs).
		Output(*o.OutputFile, outputArgs).
		OverWriteOutput().WithInput(pipeReader).ErrorToStdOut()
	if *o.FFMPEGPath != "" {
		cmd = cmd.SetFfmpegPath(*o.FFMPEGPath)
	}

	errc := make(chan error, 1)
	go func() {
		errc <- cmd.Run()
	}()

	ripplegrid.Logger().Info("recording grid",
		"frames", total, "fps", *o.FPS, "output", *o.OutputFile)

	pixels := make([]byte, w*h*4)
	for i := 0; i < total; i++ {
		s.loop.Tick(dt)
		s.flushUniforms()
		s.drawGrid()

		gl.BindFramebuffer(gl.READ_FRAMEBUFFER, s.fbo)
		gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
		gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)

		if _, err := pipeWriter.Write(pixels); err != nil {
			pipeWriter.Close()
			<-errc
			return fmt.Errorf("failed to feed frame %d to ffmpeg: %w", i, err)
		}
	}

	pipeWriter.Close()
	if err := <-errc; err != nil {
		return fmt.Errorf("ffmpeg encode failed: %w", err)
	}
	return nil
}
