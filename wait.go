package algolia

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/britto/algolia-go/pkg/transport"
)

// DefaultPollInterval is the fixed delay between task status polls.
const DefaultPollInterval = time.Second

// Task status values reported by the service.
const (
	taskStatusPublished = "published"
)

// GetTask fetches the status of an asynchronous task. Status checks go to
// the write endpoint: the primary is the authority on durability.
func (i *Index) GetTask(ctx context.Context, taskID string) (map[string]any, error) {
	if taskID == "" {
		return nil, ErrEmptyTaskID
	}
	return i.write(ctx, transport.Request{
		Method: http.MethodGet,
		Path:   i.route("task", taskID),
	})
}

// WaitTask blocks until the task is published, polling at
// DefaultPollInterval.
func (i *Index) WaitTask(ctx context.Context, taskID string) error {
	return i.WaitTaskWithInterval(ctx, taskID, DefaultPollInterval)
}

// WaitTaskWithInterval blocks until the task is published, polling at the
// given fixed interval. The loop is deliberately unbounded in wall-clock
// time: a task that stays unpublished keeps the caller blocked until the
// context is cancelled or a poll fails. Each poll is individually bounded by
// the dispatcher's own retry exhaustion.
func (i *Index) WaitTaskWithInterval(ctx context.Context, taskID string, interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	for {
		body, err := i.GetTask(ctx, taskID)
		if err != nil {
			return err
		}
		if status, _ := body["status"].(string); status == taskStatusPublished {
			return nil
		}
		// Anything else, notPublished included, means keep polling.
		if err := sleep(ctx, interval); err != nil {
			return err
		}
	}
}

// Wait adapts a write call's result into a durability barrier. Errors pass
// through unchanged; success bodies carrying both indexName and taskID block
// until the task is published; any other success is returned as-is. This
// lets callers pipe any operation through Wait uniformly:
//
//	res, err := client.Wait(ctx, index.SaveObject(ctx, obj))
func (c *Client) Wait(ctx context.Context, res map[string]any, err error) (map[string]any, error) {
	if err != nil {
		return res, err
	}
	index, ok := res["indexName"].(string)
	if !ok || index == "" {
		return res, nil
	}
	taskID, ok := taskIDString(res["taskID"])
	if !ok {
		return res, nil
	}
	if err := c.Index(index).WaitTask(ctx, taskID); err != nil {
		return res, err
	}
	return res, nil
}

// TaskHandle identifies one pending task for WaitTasks.
type TaskHandle struct {
	Index  string
	TaskID string
}

// WaitTasks blocks until every given task is published, polling them
// concurrently. The first failure cancels the remaining waits.
func (c *Client) WaitTasks(ctx context.Context, handles ...TaskHandle) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, h := range handles {
		h := h
		g.Go(func() error {
			return c.Index(h.Index).WaitTask(ctx, h.TaskID)
		})
	}
	return g.Wait()
}

// taskIDString normalizes the taskID attribute of a decoded body. JSON
// numbers decode as float64; the service's task identifiers are integral.
func taskIDString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, t != ""
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case int:
		return strconv.Itoa(t), true
	default:
		return "", false
	}
}

// sleep waits for d or until ctx is done, whichever comes first.
func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
