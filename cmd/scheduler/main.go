package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"Tripweave/config"
	"Tripweave/internal/schedule"
	"Tripweave/pkg/logger"
	"Tripweave/pkg/snowflake"
	"Tripweave/storage"
)

func main() {

	logger.Init()
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		logger.Logger.Info("Scheduler received shutdown signal",
			zap.String("signal", sig.String()),
		)
		cancel()
	}()

	if err := storage.Init(); err != nil {
		logger.Logger.Fatal("Failed to initialize storage for scheduler", zap.Error(err))
	}
	defer storage.Close()

	// scheduler 的 machine ID 与 server / worker 错开
	if err := snowflake.Init(config.Cfg.SnowflakeMachineID+2, config.Cfg.SnowflakeDataCenter); err != nil {
		logger.Logger.Fatal("Failed to initialize snowflake for scheduler", zap.Error(err))
	}

	logger.Logger.Info("Scheduler service starting",
		zap.String("service", config.Cfg.ServiceName+"-scheduler"),
		zap.String("environment", config.Cfg.Environment),
	)

	go runTripReminderLoop(ctx)
	go runProposalExpireLoop(ctx)

	<-ctx.Done()

	logger.Logger.Info("Scheduler service shutting down gracefully")
}

// runTripReminderLoop 每天 00:05 扫描明天开始的行程
// development 环境下为了方便调试改成每分钟执行一次
func runTripReminderLoop(ctx context.Context) {
	s := schedule.GetTripScheduler()

	if config.Cfg.Environment == "development" {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		logger.Logger.Info("Trip reminder scheduler running in development mode with 1m interval")

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				runCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
				if err := s.ScheduleTripReminders(runCtx); err != nil {
					logger.Logger.Error("Trip reminder run failed (development interval)", zap.Error(err))
				}
				cancel()
			}
		}
	}

	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), 0, 5, 0, 0, now.Location())
		if !next.After(now) {
			next = next.Add(24 * time.Hour)
		}

		delay := time.Until(next)
		logger.Logger.Info("Scheduled next trip reminder run",
			zap.Time("now", now),
			zap.Time("next_run", next),
			zap.Duration("delay", delay),
		)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
			runCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
			if err := s.ScheduleTripReminders(runCtx); err != nil {
				logger.Logger.Error("Trip reminder run failed", zap.Error(err))
			}
			cancel()
		}
	}
}

// runProposalExpireLoop 周期性把已过期仍 pending 的投标收口为 expired
// 延迟队列只负责 24 小时内的过期，这里是兜底
func runProposalExpireLoop(ctx context.Context) {
	s := schedule.GetProposalScheduler()

	interval := 1 * time.Hour
	if config.Cfg.Environment == "development" {
		interval = 1 * time.Minute
		logger.Logger.Info("Proposal expire loop running in development mode with 1m interval")
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			runCtx, cancel := context.WithTimeout(ctx, 2*time.Minute)
			if err := s.ExpirePendingProposals(runCtx); err != nil {
				logger.Logger.Error("Proposal expire run failed", zap.Error(err))
			}
			cancel()
		}
	}
}
