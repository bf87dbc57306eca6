package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"draftingco/internal/usecase/interfaces"
)

var (
	// Silent rejections: surfacing these would help an attacker calibrate.
	ErrSubmissionBotSuspected = errors.New("submission rejected: honeypot tripped")
	ErrSubmissionTooFast      = errors.New("submission rejected: form filled too fast")

	// User-visible rejections.
	ErrSubmissionRateLimited = errors.New("maximum submissions reached, try later")
	ErrConfirmationRequired  = errors.New("repeat submission requires confirmation")
)

const (
	throttleKeyPrefix = "submission_throttle:"
	throttleWindow    = time.Hour
	maxPerWindow      = 10
	minDwellTime      = 3 * time.Second
)

// throttleState is the per-client submission window persisted in the
// key-value store.

type throttleState struct {
	WindowStartMillis int64 `json:"window_start_millis"`
	CountInWindow     int   `json:"count_in_window"`
}

// GateRequest is everything the gate needs about one submit attempt.
//
// FormMountedAtMillis is when the hosting form was rendered; HoneypotValue
// is the hidden field no human fills in. RepeatConfirmed marks that the
// user explicitly confirmed a repeat submission within the same window.

type GateRequest struct {
	ClientKey           string
	FormMountedAtMillis int64
	HoneypotValue       string
	RepeatConfirmed     bool
}

// SubmissionGate is the anti-abuse check in front of the submit action.
//
// Checks run in order and short-circuit: honeypot, minimum dwell time,
// rate window, repeat confirmation. The gate itself never talks to the
// network; the caller performs the actual submission only on success and
// consumes a throttle slot only after the backend accepted it.

type SubmissionGate struct {
	kv  interfaces.IKeyValueStore
	now func() time.Time
}

func NewSubmissionGate(kv interfaces.IKeyValueStore) *SubmissionGate {
	return &SubmissionGate{kv: kv, now: time.Now}
}

func (g *SubmissionGate) Check(ctx context.Context, req GateRequest) error {
	if req.HoneypotValue != "" {
		log.Printf("[gate][check] honeypot tripped client=%s", req.ClientKey)
		return ErrSubmissionBotSuspected
	}

	now := g.now()
	mounted := time.UnixMilli(req.FormMountedAtMillis)
	if req.FormMountedAtMillis <= 0 || now.Sub(mounted) < minDwellTime {
		log.Printf("[gate][check] dwell too short client=%s", req.ClientKey)
		return ErrSubmissionTooFast
	}

	// Read-modify-write on the window stays inside this call; nothing
	// blocks between the read and the write.
	state := g.loadState(ctx, req.ClientKey)
	if now.Sub(time.UnixMilli(state.WindowStartMillis)) > throttleWindow {
		state = throttleState{WindowStartMillis: now.UnixMilli(), CountInWindow: 0}
		g.storeState(ctx, req.ClientKey, state)
	}

	if state.CountInWindow >= maxPerWindow {
		log.Printf("[gate][check] rate limited client=%s count=%d", req.ClientKey, state.CountInWindow)
		return ErrSubmissionRateLimited
	}
	if state.CountInWindow > 0 && !req.RepeatConfirmed {
		return ErrConfirmationRequired
	}
	return nil
}

// ConsumeSlot records a successful submission against the client's window.
// Callers invoke it only after the backend persisted the submission, so a
// failed submission never costs a slot.
func (g *SubmissionGate) ConsumeSlot(ctx context.Context, clientKey string) error {
	now := g.now()
	state := g.loadState(ctx, clientKey)
	if now.Sub(time.UnixMilli(state.WindowStartMillis)) > throttleWindow {
		state = throttleState{WindowStartMillis: now.UnixMilli()}
	}
	state.CountInWindow++
	return g.storeState(ctx, clientKey, state)
}

func (g *SubmissionGate) loadState(ctx context.Context, clientKey string) throttleState {
	raw, err := g.kv.Get(ctx, throttleKeyPrefix+clientKey)
	if err != nil {
		if !errors.Is(err, interfaces.ErrKeyNotFound) {
			log.Printf("[gate][state] load failed client=%s err=%v", clientKey, err)
		}
		return throttleState{}
	}

	var state throttleState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		log.Printf("[gate][state] corrupt state discarded client=%s err=%v", clientKey, err)
		_ = g.kv.Delete(ctx, throttleKeyPrefix+clientKey)
		return throttleState{}
	}
	return state
}

func (g *SubmissionGate) storeState(ctx context.Context, clientKey string, state throttleState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	if err := g.kv.Set(ctx, throttleKeyPrefix+clientKey, string(raw), throttleWindow); err != nil {
		log.Printf("[gate][state] store failed client=%s err=%v", clientKey, err)
		return err
	}
	return nil
}
