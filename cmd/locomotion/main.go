package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/game"
	"github.com/oomph-ac/locomotion/input"
	"github.com/oomph-ac/locomotion/locomotion"
	"github.com/oomph-ac/locomotion/physics"
	"github.com/oomph-ac/locomotion/settings"
	"github.com/oomph-ac/locomotion/simulation"
	"github.com/oomph-ac/locomotion/worker"
	"github.com/sirupsen/logrus"
)

const groundLayer = "ground"

// The following program runs a single character on a flat ground plane. If a recording path is passed
// and the file exists, the recorded input is replayed. Otherwise a scripted scenario is played in real
// time and, if a path was passed, recorded to it.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: ./locomotion <settings_path> [recording_path]")
		return
	}

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		ForceColors:     false,
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	})

	if err := run(log, os.Args[1], os.Args[2:]); err != nil {
		log.Fatal(err)
	}
}

func run(log *logrus.Logger, settingsPath string, args []string) error {
	if _, err := os.Stat(settingsPath); os.IsNotExist(err) {
		if err := settings.SaveDefault(settingsPath); err != nil {
			return err
		}
		log.Infof("created default settings at %s", settingsPath)
	}
	s, err := settings.Load(settingsPath)
	if err != nil {
		return err
	}
	if err := s.Validate(); err != nil {
		return fmt.Errorf("invalid settings:\n%v", err)
	}
	lvl, err := logrus.ParseLevel(s.Debug.Level)
	if err != nil {
		return err
	}
	log.SetLevel(lvl)

	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: dsn}); err != nil {
			return err
		}
		defer sentry.Flush(time.Second * 5)
	}
	if os.Getenv("PPROF_ENABLED") != "" {
		// set configurations before calling `statsview.New()` method
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr("localhost:8080"))

		mgr := statsview.New()
		go mgr.Start()
	}

	layers := physics.NewLayers(groundLayer)
	ground, _ := layers.Layer(groundLayer)
	world := physics.NewWorld(layers, s.Simulation.Gravity)
	world.AddCollider(game.PlaneAABB(0, 1000, 1), ground)

	pool := worker.New(0)
	defer pool.Close()

	sim, err := simulation.New(simulation.Config{
		FixedTimestep:    s.Simulation.FixedTimestep,
		MaxStepsPerFrame: s.Simulation.MaxStepsPerFrame,
		FrameRate:        s.Simulation.FrameRate,
	}, world, pool, log)
	if err != nil {
		return err
	}

	opts, err := s.Opts(layers)
	if err != nil {
		return err
	}

	var recordingPath string
	if len(args) > 0 {
		recordingPath = args[0]
	}
	var replay *input.Recording
	if recordingPath != "" {
		if _, err := os.Stat(recordingPath); err == nil {
			if replay, err = input.LoadRecording(recordingPath); err != nil {
				return err
			}
			opts.Keys = replay.Header.Bindings
		}
	}

	frameTime := 1 / float32(s.Simulation.FrameRate)
	script := scenario(opts.Keys, frameTime)
	var feed input.Frames = script
	if replay != nil {
		feed = replay.Script()
	}

	c, err := sim.Spawn(simulation.Spawn{
		ID:          "player",
		Opts:        opts,
		Position:    mgl32.Vec3{0, opts.Height * 0.5, 0},
		Width:       s.Simulation.Width,
		Mass:        s.Simulation.Mass,
		Input:       feed,
		Orientation: &locomotion.YawOrientation{},
	})
	if err != nil {
		return err
	}
	for _, name := range s.Debug.Modes {
		mode, _ := locomotion.ParseDebugMode(name)
		c.Controller().Dbg.Toggle(mode, true)
	}

	if replay != nil {
		log.Infof("replaying %d frames from %s", len(replay.Frames), recordingPath)
		for _, f := range replay.Frames {
			if err := sim.Advance(f.DeltaTime); err != nil {
				return err
			}
		}
	} else {
		var rec *input.Recorder
		if recordingPath != "" {
			f, err := os.Create(recordingPath)
			if err != nil {
				return err
			}
			defer f.Close()

			rec, err = input.NewRecorder(f, input.RecordingHeader{
				Bindings:      opts.Keys,
				FixedTimestep: s.Simulation.FixedTimestep,
				CreatedAt:     time.Now().UnixNano(),
			})
			if err != nil {
				return err
			}
			c.Record(rec)
		}

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancel()
		ctx, cancelTimeout := context.WithTimeout(ctx, time.Duration(float32(script.Len())*frameTime*float32(time.Second)))
		defer cancelTimeout()

		err := sim.Run(ctx)
		if rec != nil {
			log.Infof("recorded %d frames to %s", rec.Frames(), recordingPath)
			err = errors.Join(err, rec.Close())
		}
		if err != nil {
			return err
		}
	}

	log.WithFields(logrus.Fields{
		"transitions": c.Transitions(),
		"jumps":       c.Jumps(),
		"faulted":     c.Faulted(),
	}).Infof("finished: %s", game.KeyValsString(c.Controller().Snapshot()))
	log.Info(sim.Stats())
	return nil
}

// scenario stands still, walks forward, slides, jumps out of the slide and walks again.
func scenario(keys input.Bindings, frameTime float32) *input.Script {
	second := int(1 / frameTime)

	var frames []input.Frame
	frames = append(frames, input.Repeat(input.Frame{DeltaTime: frameTime}, second/2)...)
	frames = append(frames, input.Repeat(input.Frame{DeltaTime: frameTime, Vertical: 1}, second)...)

	slide := input.Repeat(input.Frame{DeltaTime: frameTime, Vertical: 1}, second)
	slide[0].Down = []input.Key{keys.Slide}
	frames = append(frames, slide...)

	frames = append(frames, input.Repeat(input.Frame{DeltaTime: frameTime, Vertical: 1, Held: []input.Key{keys.Jump}}, second/4)...)

	walk := input.Repeat(input.Frame{DeltaTime: frameTime, Vertical: 1, Horizontal: -0.5}, second)
	walk[0].Down = []input.Key{keys.Move}
	frames = append(frames, walk...)
	frames = append(frames, input.Repeat(input.Frame{DeltaTime: frameTime}, second*2)...)
	return input.NewScript(frames...)
}
