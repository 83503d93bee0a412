package app

import (
	"context"
	"fmt"

	"github.com/vk/fortcfg/internal/ctxlog"
	"github.com/vk/fortcfg/internal/profile"
	"github.com/vk/fortcfg/internal/render"
	"github.com/vk/fortcfg/internal/resolve"
	"github.com/vk/fortcfg/internal/rules"
	"github.com/vk/fortcfg/internal/toolchain"
)

// Run executes one configuration run and renders the resulting snapshot.
func (a *App) Run(ctx context.Context) error {
	snap, err := a.Resolve(ctx)
	if err != nil {
		return err
	}

	if err := render.Render(a.outW, render.Format(a.config.Output), snap); err != nil {
		return fmt.Errorf("failed to render snapshot: %w", err)
	}
	a.logger.Debug("App.Run method finished.")
	return nil
}

// Resolve runs the single-pass resolution pipeline: detect the toolchain
// identity once, seed and override the build profiles, apply the rule
// table, and freeze the result into an immutable snapshot.
func (a *App) Resolve(ctx context.Context) (*resolve.Snapshot, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Resolve started.", "build_type", a.config.BuildType)

	id := toolchain.Detect(ctx, a.config.OSName, a.config.FortranVendor, a.config.CVendor)

	profiles := profile.Defaults()
	if a.config.ProfilesPath != "" {
		overrides, err := profile.LoadOverrides(ctx, a.config.ProfilesPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load profile overrides: %w", err)
		}
		profiles.Apply(overrides)
	}

	builder := resolve.NewBuilder(id, profile.Name(a.config.BuildType), a.config.SourceDir, profiles)

	err := rules.Apply(ctx, builder, rules.Options{
		NAGColour: a.config.NAGColour,
		BuildDir:  a.config.BuildDir,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to apply compiler rules: %w", err)
	}

	snap := builder.Finalize()
	a.logger.Info("Configuration resolved.",
		"build_type", string(snap.BuildType),
		"fortran_flags", snap.FortranFlags,
		"c_flags", snap.CFlags,
	)
	return snap, nil
}
