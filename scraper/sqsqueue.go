package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/codegolf-live/backend/logger"
)

// SqsQueue is the Queue for deployments where the scrape trigger and the
// source-fetch consumer run in separate processes.
type SqsQueue struct {
	client   *sqs.Client
	queueUrl string
}

func NewSqsQueue(client *sqs.Client, queueUrl string) *SqsQueue {
	return &SqsQueue{client: client, queueUrl: queueUrl}
}

type createdEventMsg struct {
	SubmissionID int `json:"submission_id"`
}

// Publish implements Queue
func (q *SqsQueue) Publish(ctx context.Context, submissionID int) error {
	body, err := json.Marshal(createdEventMsg{SubmissionID: submissionID})
	if err != nil {
		return err
	}
	_, err = q.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(q.queueUrl),
		MessageBody: aws.String(string(body)),
	})
	if err != nil {
		return fmt.Errorf("failed to publish created event for submission %d: %w", submissionID, err)
	}
	return nil
}

// Consume implements Queue
func (q *SqsQueue) Consume(ctx context.Context, handle func(ctx context.Context, submissionID int) error) error {
	log := logger.FromContext(ctx)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		output, err := q.client.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
			QueueUrl:            aws.String(q.queueUrl),
			MaxNumberOfMessages: 10,
			WaitTimeSeconds:     5,
		})
		if err != nil {
			log.Warn("failed to receive created events", "error", err)
			time.Sleep(1 * time.Second)
			continue
		}

		for _, message := range output.Messages {
			_, err = q.client.DeleteMessage(ctx, &sqs.DeleteMessageInput{
				QueueUrl:      aws.String(q.queueUrl),
				ReceiptHandle: message.ReceiptHandle,
			})
			if err != nil {
				log.Warn("failed to delete created event", "error", err)
			}

			var msg createdEventMsg
			if err := json.Unmarshal([]byte(*message.Body), &msg); err != nil {
				log.Warn("failed to unmarshal created event", "error", err)
				continue
			}

			if err := handle(ctx, msg.SubmissionID); err != nil {
				log.Warn("failed to handle submission created event",
					"submission_id", msg.SubmissionID, "error", err)
			}
		}
	}
}
