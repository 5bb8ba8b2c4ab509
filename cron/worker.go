package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"wirehaul/config"
	"wirehaul/models"
	"wirehaul/services/mail"
	"wirehaul/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// InitMailWorker runs the async mail worker in background. Lifecycle emails
// are enqueued on the request path and delivered here so a slow mail
// provider never blocks a trip operation.
func InitMailWorker(sender *mail.APIMailer) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisMailQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendBookingMail, handleBookingMail(sender))
	mux.HandleFunc(tasks.TypeSendAcceptedMail, handleDecisionMail(sender, tasks.TypeSendAcceptedMail))
	mux.HandleFunc(tasks.TypeSendRejectedMail, handleDecisionMail(sender, tasks.TypeSendRejectedMail))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[MailWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[MailWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[MailWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleBookingMail(sender *mail.APIMailer) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.BookingMailPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[MailWorker] Invalid booking mail payload: %v", err)
			return err
		}
		return sender.SendBookingNotification(ctx, p)
	}
}

func handleDecisionMail(sender *mail.APIMailer, taskType string) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.TripDecisionMailPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[MailWorker] Invalid decision mail payload: %v", err)
			return err
		}
		if taskType == tasks.TypeSendAcceptedMail {
			return sender.SendTripAcceptedMail(ctx, p)
		}
		return sender.SendTripRejectedMail(ctx, p)
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisMailQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[MailWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
