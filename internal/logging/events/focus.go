package events

import (
	"fmt"

	"github.com/glaze-ui/glaze/internal/logging"
)

// FocusTracer records keyboard-focus activity.
type FocusTracer struct{}

var Focus = FocusTracer{}

func (FocusTracer) Gained(id string) {
	logging.Trace("focus.gained", map[string]interface{}{"id": id})
}

func (FocusTracer) Lost(id string) {
	logging.Trace("focus.lost", map[string]interface{}{"id": id})
}

// OperationTracer records tree-wide operation runs.
type OperationTracer struct{}

var Operation = OperationTracer{}

func (OperationTracer) Run(op interface{}) {
	logging.Trace("operation.run", map[string]interface{}{"op": fmt.Sprintf("%T", op)})
}

func (OperationTracer) Found(id string) {
	logging.Trace("operation.found", map[string]interface{}{"id": id})
}

// WidgetTracer records widget activations.
type WidgetTracer struct{}

var Widget = WidgetTracer{}

func (WidgetTracer) Activated(kind string, msg interface{}) {
	logging.Trace("widget.activated", map[string]interface{}{"kind": kind, "msg": fmt.Sprintf("%T", msg)})
}
