// Package application wires the domain logic to storage: initializing the
// workspace, recording outcomes and principle changes, and inspecting state.
package application

import (
	"fmt"

	"github.com/reflector-agent/reflector/pkg/domain/schedule"
	"github.com/reflector-agent/reflector/pkg/domain/workspace"
	"github.com/reflector-agent/reflector/pkg/prompts"
	"github.com/reflector-agent/reflector/pkg/storage"
)

// InitService provisions the reflector workspace and derives the schedule
// payloads handed to the external scheduling host.
type InitService struct {
	ws      *storage.FilesystemWorkspace
	layout  workspace.Layout
	prompts prompts.Loader
}

func NewInitService(ws *storage.FilesystemWorkspace, loader prompts.Loader) *InitService {
	return &InitService{
		ws:      ws,
		layout:  workspace.DefaultLayout(),
		prompts: loader,
	}
}

// Initialize provisions the layout and assembles the report. It is
// idempotent: existing directories and files are left untouched and
// reported as such, so re-running never destroys user edits. Both time
// strings are validated before anything touches the filesystem; a bad time
// leaves no partial state. With DryRun set nothing is mutated but the
// report still shows what would have been created.
func (s *InitService) Initialize(cfg InitConfig) (*workspace.InitReport, error) {
	daily, err := schedule.ParseTimeSpec(cfg.DailyTime)
	if err != nil {
		return nil, fmt.Errorf("daily time: %w", err)
	}
	weekly, err := schedule.ParseTimeSpec(cfg.WeeklyTime)
	if err != nil {
		return nil, fmt.Errorf("weekly time: %w", err)
	}

	tz := ResolveTimezone(cfg.Timezone)
	builder := workspace.NewReportBuilder(s.ws.Root(), tz, cfg.DailyTime, cfg.WeeklyTime, cfg.DryRun)

	for _, dir := range s.layout.Dirs {
		exists, err := s.ws.Exists(dir)
		if err != nil {
			return nil, err
		}
		if exists {
			builder.Existed(dir)
			continue
		}
		builder.Created(dir)
		if !cfg.DryRun {
			if err := s.ws.EnsureDir(dir); err != nil {
				return nil, err
			}
		}
	}

	for _, file := range s.layout.Files {
		exists, err := s.ws.Exists(file.Path)
		if err != nil {
			return nil, err
		}
		if exists {
			builder.Existed(file.Path)
			continue
		}
		builder.Created(file.Path)
		if !cfg.DryRun {
			if err := s.ws.WriteFileIfAbsent(file.Path, file.Content); err != nil {
				return nil, err
			}
		}
	}

	if !cfg.SkipSchedule {
		set, err := s.schedules(daily, weekly, tz)
		if err != nil {
			return nil, err
		}
		builder.Schedule(set)
	}

	return builder.Build(), nil
}

// schedules derives both payloads. A missing prompt fails the whole call;
// there is no partial report.
func (s *InitService) schedules(daily, weekly schedule.TimeSpec, tz string) (*workspace.ScheduleSet, error) {
	dailyPrompt, err := s.prompts.Load(prompts.DailyPrompt)
	if err != nil {
		return nil, err
	}
	weeklyPrompt, err := s.prompts.Load(prompts.WeeklyPrompt)
	if err != nil {
		return nil, err
	}

	return &workspace.ScheduleSet{
		Daily: workspace.SchedulePayload{
			Cron:     schedule.Cron(daily, schedule.Daily),
			Timezone: tz,
			Prompt:   dailyPrompt,
		},
		Weekly: workspace.SchedulePayload{
			Cron:     schedule.Cron(weekly, schedule.Weekly),
			Timezone: tz,
			Prompt:   weeklyPrompt,
		},
	}, nil
}
