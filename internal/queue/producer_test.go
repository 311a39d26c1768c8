package queue_test

import (
	"context"
	"fmt"
	"os"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/redis/go-redis/v9"

	"basegraph.app/surveys/internal/queue"
)

var _ = Describe("Producer", func() {
	Describe("noop", func() {
		It("accepts and drops events", func() {
			p := queue.NewNoopProducer()
			Expect(p.Publish(context.Background(), queue.Event{Type: queue.EventRunIssued, RunID: 1})).To(Succeed())
			Expect(p.Close()).To(Succeed())
		})
	})

	// Runs against a real server when TEST_REDIS_URL is set.
	Describe("redis", Ordered, func() {
		var (
			ctx    context.Context
			client *redis.Client
			stream string
		)

		BeforeAll(func() {
			url := os.Getenv("TEST_REDIS_URL")
			if url == "" {
				Skip("TEST_REDIS_URL not set")
			}
			opts, err := redis.ParseURL(url)
			Expect(err).NotTo(HaveOccurred())
			client = redis.NewClient(opts)
			ctx = context.Background()
			Expect(client.Ping(ctx).Err()).To(Succeed())
		})

		BeforeEach(func() {
			stream = fmt.Sprintf("survey_events_test_%d", time.Now().UnixNano())
			DeferCleanup(func() {
				client.Del(ctx, stream)
			})
		})

		It("appends events to the stream", func() {
			p := queue.NewRedisProducer(client, stream, nil)
			instanceID := int64(41)
			traceID := "abc123"

			Expect(p.Publish(ctx, queue.Event{
				Type:       queue.EventInstanceReissued,
				RunID:      20,
				InstanceID: &instanceID,
				Actor:      "alice",
				OccurredAt: time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC),
				TraceID:    &traceID,
			})).To(Succeed())

			msgs, err := client.XRange(ctx, stream, "-", "+").Result()
			Expect(err).NotTo(HaveOccurred())
			Expect(msgs).To(HaveLen(1))
			Expect(msgs[0].Values).To(HaveKeyWithValue("event_type", "survey_instance.reissued"))
			Expect(msgs[0].Values).To(HaveKeyWithValue("run_id", "20"))
			Expect(msgs[0].Values).To(HaveKeyWithValue("instance_id", "41"))
			Expect(msgs[0].Values).To(HaveKeyWithValue("trace_id", "abc123"))
			Expect(msgs[0].Values).To(HaveKeyWithValue("occurred_at", "2026-10-01T12:00:00Z"))
		})

		It("omits optional fields", func() {
			p := queue.NewRedisProducer(client, stream, nil)
			Expect(p.Publish(ctx, queue.Event{Type: queue.EventRunClosed, RunID: 20, Actor: "bob"})).To(Succeed())

			msgs, err := client.XRange(ctx, stream, "-", "+").Result()
			Expect(err).NotTo(HaveOccurred())
			Expect(msgs[0].Values).NotTo(HaveKey("instance_id"))
			Expect(msgs[0].Values).NotTo(HaveKey("trace_id"))
		})
	})
})
