package port

import (
	"context"

	"github.com/quarterdeckhq/quarterdeck/internal/domain/entity"
)

// ActionBroadcaster announces fired actions to monitor subscribers.
type ActionBroadcaster interface {
	BroadcastAction(ctx context.Context, event *entity.ActionEvent)
}
