package usecase

import "webdesk/internal/domain"

// Translate maps an event from logical canvas space into host-display
// space. Pointer coordinates scale linearly; key events pass through
// unchanged (symbol mapping is the injector's concern).
func Translate(ev domain.InputEvent, canvasW, canvasH, displayW, displayH int) (domain.PhysicalEvent, error) {
	out := domain.PhysicalEvent{
		Kind:   ev.Kind,
		Button: ev.Button,
		Amount: ev.Amount,
		Key:    ev.Key,
	}
	switch ev.Kind {
	case domain.PointerMove, domain.PointerClick, domain.PointerScroll, domain.PointerDrag:
		if canvasW <= 0 || canvasH <= 0 || displayW <= 0 || displayH <= 0 {
			return domain.PhysicalEvent{}, domain.ErrUnsupportedAction
		}
		out.X = ev.X * displayW / canvasW
		out.Y = ev.Y * displayH / canvasH
	case domain.KeyDown, domain.KeyUp, domain.KeyType:
		// pass-through
	default:
		return domain.PhysicalEvent{}, domain.ErrUnsupportedAction
	}
	return out, nil
}
