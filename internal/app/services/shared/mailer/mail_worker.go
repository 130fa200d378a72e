package mailer

import (
	"context"

	"compliance-service/internal/app/contracts"
	"compliance-service/internal/pkg/constvars"
	"compliance-service/internal/pkg/dto/requests"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// MailWorker drains the mail queue and hands each payload to the SMTP
// service, paced by a token bucket so the upstream relay is not flooded.
type MailWorker struct {
	channel     *amqp091.Channel
	smtpService contracts.SMTPService
	limiter     *rate.Limiter
	logger      *zap.Logger
	queue       string
	cancel      context.CancelFunc
	done        chan struct{}
}

func NewMailWorker(
	rabbitMQConnection *amqp091.Connection,
	smtpService contracts.SMTPService,
	logger *zap.Logger,
	queue string,
	ratePerSecond int,
) (*MailWorker, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	return &MailWorker{
		channel:     channel,
		smtpService: smtpService,
		limiter:     rate.NewLimiter(rate.Limit(ratePerSecond), ratePerSecond),
		logger:      logger,
		queue:       queue,
		done:        make(chan struct{}),
	}, nil
}

// Start consumes in the background until Stop is called.
func (w *MailWorker) Start() error {
	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel

	deliveries, err := w.channel.Consume(w.queue, "", false, false, false, false, nil)
	if err != nil {
		cancel()
		return err
	}

	go func() {
		defer close(w.done)
		for {
			select {
			case <-ctx.Done():
				return
			case delivery, ok := <-deliveries:
				if !ok {
					return
				}
				w.handle(ctx, delivery)
			}
		}
	}()

	return nil
}

// Stop cancels the consume loop and waits for the in-flight delivery.
func (w *MailWorker) Stop() {
	if w.cancel != nil {
		w.cancel()
		<-w.done
	}
	w.channel.Close()
}

func (w *MailWorker) handle(ctx context.Context, delivery amqp091.Delivery) {
	if err := w.limiter.Wait(ctx); err != nil {
		delivery.Nack(false, true)
		return
	}

	var payload requests.EmailPayload
	if err := json.Unmarshal(delivery.Body, &payload); err != nil {
		w.logger.Error("dropping malformed mail payload",
			zap.String(constvars.LoggingQueueNameKey, w.queue),
			zap.Error(err),
		)
		delivery.Nack(false, false)
		return
	}

	err := w.smtpService.SendHTMLEmail(payload.ReceiverEmail, payload.Subject, payload.HTMLBody)
	if err != nil {
		w.logger.Error("failed to deliver email",
			zap.String(constvars.LoggingQueueNameKey, w.queue),
			zap.String(constvars.LoggingReceiverEmailKey, payload.ReceiverEmail),
			zap.Error(err),
		)
		delivery.Nack(false, false)
		return
	}

	w.logger.Info("email delivered",
		zap.String(constvars.LoggingReceiverEmailKey, payload.ReceiverEmail),
	)
	delivery.Ack(false)
}
