// Package batch renders an animation of the scene to numbered WebP frames
// using a worker pool.
package batch

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/HugoSmits86/nativewebp"

	"solarsys/internal/camera"
	"solarsys/internal/postprocess"
	"solarsys/internal/raster"
	"solarsys/internal/scene"
)

// Config holds all shared settings for an export run.
type Config struct {
	OutputDir   string
	Width       int
	Height      int
	Supersample int
	Workers     int
	Frames      int
	FPS         float64
	Camera      camera.State
	YawSpeed    float64 // camera drift in degrees per second
	Scene       scene.Config
}

// Job is the frozen state of one frame. Jobs are independent, so workers can
// render them in any order.
type Job struct {
	Index   int
	Time    float64
	Bodies  []scene.CelestialBody
	Meteors []scene.Meteor
	Camera  camera.State
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Index   int
	Time    float64
	File    string
	Success bool
	Error   string
}

// Plan steps sc forward at the configured frame rate and snapshots every
// frame. The scene is advanced in place.
func Plan(sc *scene.Scene, cfg Config) []Job {
	if cfg.FPS <= 0 || cfg.Frames <= 0 {
		return nil
	}
	dt := 1 / cfg.FPS
	sceneCfg := cfg.Scene
	jobs := make([]Job, cfg.Frames)
	for i := range jobs {
		t := float64(i) * dt
		cam := cfg.Camera
		cam.Yaw += cfg.YawSpeed * t
		var meteors []scene.Meteor
		if sc.Meteors != nil {
			sc.Meteors.SetCount(sceneCfg.MeteorCount)
			meteors = sc.Meteors.Snapshot()
		}
		jobs[i] = Job{
			Index:   i,
			Time:    t,
			Bodies:  sc.CloneBodies(),
			Meteors: meteors,
			Camera:  cam.Normalize(),
		}
		sc.Update(dt, &sceneCfg)
	}
	return jobs
}

// FrameName is the file name of frame i inside the output directory.
func FrameName(i int) string {
	return fmt.Sprintf("frame_%05d.webp", i)
}

// Run renders all jobs using a worker pool. Cancelling ctx stops handing out
// work; frames not rendered are reported as failed.
func Run(ctx context.Context, cfg Config, assets *raster.Assets, jobs []Job) []Result {
	total := len(jobs)
	results := make([]Result, total)
	for i, j := range jobs {
		results[i] = Result{Index: j.Index, Time: j.Time, File: FrameName(j.Index), Error: "not rendered"}
	}
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		for i := range results {
			results[i].Error = err.Error()
		}
		return results
	}

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	var processed atomic.Int64
	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					rate := float64(p) / time.Since(start).Seconds()
					slog.Info("rendering", "done", p, "total", total, "fps", fmt.Sprintf("%.1f", rate))
				}
			}
		}
	}()

	// Worker pool
	jobChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobChan {
				results[idx] = renderJob(cfg, assets, jobs[idx])
				processed.Add(1)
			}
		}()
	}

	// Send work
send:
	for i := range jobs {
		if ctx.Err() != nil {
			break
		}
		select {
		case jobChan <- i:
		case <-ctx.Done():
			break send
		}
	}
	close(jobChan)

	wg.Wait()
	close(done)

	return results
}

// RenderFrame draws one job at the configured output size.
func RenderFrame(cfg Config, assets *raster.Assets, job Job) *image.NRGBA {
	sceneCfg := cfg.Scene
	img := raster.RenderScene(raster.Frame{
		Width:       cfg.Width,
		Height:      cfg.Height,
		Supersample: cfg.Supersample,
		Bodies:      job.Bodies,
		Meteors:     job.Meteors,
		Camera:      job.Camera,
		Config:      &sceneCfg,
	}, assets)

	// Post-processing: supersample downsample
	if cfg.Supersample > 1 {
		img = postprocess.Downsample(img, cfg.Width, cfg.Height)
	}
	return img
}

func renderJob(cfg Config, assets *raster.Assets, job Job) Result {
	res := Result{Index: job.Index, Time: job.Time, File: FrameName(job.Index)}
	img := RenderFrame(cfg, assets, job)

	f, err := os.Create(filepath.Join(cfg.OutputDir, res.File))
	if err != nil {
		res.Error = err.Error()
		return res
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		res.Error = fmt.Sprintf("WebP encode: %v", err)
		return res
	}

	res.Success = true
	return res
}
