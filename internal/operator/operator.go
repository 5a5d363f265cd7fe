package operator

import (
	"context"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"

	"github.com/weverton790458597/DashBoard/internal/operator/actions"
	"github.com/weverton790458597/DashBoard/internal/storage"
)

// Operator is the worker that processes items from the queue.
type Operator struct {
	storage *storage.Storage
	queue   chan ActionItem
	logger  *logrus.Logger
}

func NewOperator(s *storage.Storage, queue chan ActionItem, logger *logrus.Logger) *Operator {
	return &Operator{
		storage: s,
		queue:   queue,
		logger:  logger,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		o.processItem(item)
	}
}

func (o *Operator) processItem(item ActionItem) {
	// Callers that gave up while queued get nothing applied.
	if err := item.ctx.Err(); err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}
	// Once started the action runs to completion.
	ctx := context.WithoutCancel(item.ctx)

	writer, err := o.storage.Write(ctx)
	if err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	err = item.action.Perform(ctx, writer)
	if err != nil {
		_ = writer.Rollback()
		o.logger.WithError(err).WithField("action", item.action.Name()).Debug("Operator.processItem.rollback")
		item.response <- ActionItemResponse{err: err}
		return
	}

	if err = writer.Commit(); err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	if o.logger.IsLevelEnabled(logrus.DebugLevel) {
		o.logger.WithField("action", item.action.Name()).Debugf("Operator.processItem.committed\n%s", spew.Sdump(item.action))
	}
	item.response <- ActionItemResponse{}
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
