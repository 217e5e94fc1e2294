package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"gloom-engine/config"
	"gloom-engine/core"
	"gloom-engine/input"
	"gloom-engine/math"
	"gloom-engine/opengl"
	"gloom-engine/renderer"
	"gloom-engine/scene"
	"gloom-engine/watchdog"
)

func main() {
	configPath := flag.String("config", "gloom.toml", "path to the TOML configuration file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("gloom failed", "err", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	level, _ := cfg.Level()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	// Meshes are parsed before the window opens so a bad file fails fast.
	terrain, heli, err := loadModels(cfg.Scene)
	if err != nil {
		return err
	}

	window, err := core.NewWindow(core.WindowConfig{
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Title:      cfg.Window.Title,
		GrabCursor: cfg.Window.GrabCursor,
	})
	if err != nil {
		return err
	}
	defer window.Destroy()

	// GLFW queries stay on the main thread.
	fbw, fbh := window.GetFramebufferSize()

	state := input.NewState()
	alive := watchdog.NewFlag()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	render := func(ctx context.Context) error {
		window.MakeContextCurrent()
		defer window.DetachContext()
		window.SetVSync(cfg.Window.VSync)

		gpu, err := opengl.NewRenderer()
		if err != nil {
			return err
		}
		defer gpu.Destroy()
		gpu.SetViewport(fbw, fbh)

		var pool opengl.GeometryPool
		defer pool.Destroy()
		graph, err := buildWorld(&pool, cfg.Scene, terrain, heli)
		if err != nil {
			return fmt.Errorf("build scene: %w", err)
		}

		anim, err := renderer.NewAnimator(graph)
		if err != nil {
			return err
		}
		anim.PhaseOffset = cfg.Scene.PhaseOffset
		anim.MainRotorSpeed = cfg.Scene.MainRotorSpeed
		anim.TailRotorSpeed = cfg.Scene.TailRotorSpeed

		cam := scene.NewCamera(cfg.Projection.FOV, 1, cfg.Projection.Near, cfg.Projection.Far)
		cam.UpdateAspectRatio(float32(fbw), float32(fbh))
		cam.Position = math.Vec3{0, cruiseAltitude, 120}

		slog.Info("scene ready", "nodes", graph.Len(), "helicopters", anim.Len())
		loop := &renderer.Loop{
			Graph:  graph,
			Camera: cam,
			Input:  state,
			Controls: renderer.Controls{
				MoveSpeed:        cfg.Controls.MoveSpeed,
				TurnSpeed:        cfg.Controls.TurnSpeed,
				MouseSensitivity: cfg.Controls.MouseSensitivity,
			},
			Animator:  anim,
			Surface:   gpu,
			Presenter: window,
			Clock:     renderer.SystemClock{},
		}
		return loop.Run(ctx)
	}

	sup := watchdog.Start(ctx, alive, window, render)

	reason := input.NewEventLoop(state, window, alive).Run()

	// Stop the render thread before the window and its context go away.
	cancel()
	<-sup.Done()
	if err := sup.Err(); err != nil {
		return fmt.Errorf("render thread: %w", err)
	}
	slog.Info("shut down", "reason", reason)
	return nil
}
