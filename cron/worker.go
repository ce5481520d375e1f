package cron

import (
	"context"
	"log"
	"time"

	"bookbarn/config"
	"bookbarn/services/booking"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeModerationDigest = "moderation:digest"

// InitModerationWorker runs the async worker in background. Once a day it
// sweeps reported bookings and logs a digest for the moderation team.
func InitModerationWorker(bookingSvc booking.BookingService, logger *zap.Logger) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 2,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeModerationDigest, handleModerationDigest(bookingSvc, logger))

	scheduler := asynq.NewScheduler(redisOpts, &asynq.SchedulerOpts{})
	if _, err := scheduler.Register("@every 24h", asynq.NewTask(TypeModerationDigest, nil)); err != nil {
		log.Printf("[ModerationWorker] failed to register digest schedule: %v", err)
	}

	go func() {
		if err := scheduler.Run(); err != nil {
			log.Printf("[ModerationWorker] scheduler stopped: %v", err)
		}
	}()

	go func() {
		log.Println("[ModerationWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ModerationWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ModerationWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleModerationDigest(bookingSvc booking.BookingService, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		reported, err := bookingSvc.GetReportedBookings()
		if err != nil {
			return err
		}

		unpaid := 0
		for _, b := range reported {
			if !b.Paid {
				unpaid++
			}
		}

		logger.Info("Moderation digest",
			zap.Int("reported", len(reported)),
			zap.Int("reportedUnpaid", unpaid),
		)
		return nil
	}
}
