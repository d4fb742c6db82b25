package client

import (
	"context"
	"strings"
)

// PendingReview is the approver's queue of pending requests.
type PendingReview struct {
	viewState
	api        *Client
	processing processingSet

	requests []ChangeRequest
	panels   map[string]bool
	drafts   map[string]string
}

func NewPendingReview(api *Client) *PendingReview {
	return &PendingReview{
		api:    api,
		panels: make(map[string]bool),
		drafts: make(map[string]string),
	}
}

func (v *PendingReview) Load(ctx context.Context) error {
	v.mu.Lock()
	v.loading = true
	v.err = ""
	v.mu.Unlock()

	list, err := v.api.QueryChangeRequests(ctx, Query{Status: StatusPending})

	v.mu.Lock()
	defer v.mu.Unlock()
	v.loading = false
	if err != nil {
		v.err = "Failed to fetch pending requests"
		return err
	}
	v.requests = list
	return nil
}

func (v *PendingReview) Requests() []ChangeRequest {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]ChangeRequest(nil), v.requests...)
}

// TogglePanel opens or closes the reason panel of id and reports the new state.
func (v *PendingReview) TogglePanel(id string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.panels[id] = !v.panels[id]
	if !v.panels[id] {
		delete(v.panels, id)
	}
	return v.panels[id]
}

func (v *PendingReview) PanelOpen(id string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.panels[id]
}

func (v *PendingReview) SetReason(id, reason string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.drafts[id] = reason
}

func (v *PendingReview) Reason(id string) string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.drafts[id]
}

func (v *PendingReview) Processing(id string) bool { return v.processing.has(id) }

// Approve sends the trimmed reason draft only when it is not blank.
func (v *PendingReview) Approve(ctx context.Context, id string) error {
	return v.update(ctx, id, StatusApproved, strings.TrimSpace(v.Reason(id)))
}

// Rollback requires a non-blank reason draft and sends nothing otherwise.
func (v *PendingReview) Rollback(ctx context.Context, id string) error {
	reason := strings.TrimSpace(v.Reason(id))
	if reason == "" {
		v.setError("Reason is required for rollbacks")
		return validationError("Reason is required for rollbacks")
	}
	return v.update(ctx, id, StatusRolledBack, reason)
}

func (v *PendingReview) update(ctx context.Context, id, status, reason string) error {
	if !v.processing.begin(id) {
		return ErrInProgress
	}
	defer v.processing.end(id)

	if err := v.api.UpdateStatus(ctx, id, status, reason); err != nil {
		v.setError("Failed to " + status + " request")
		return err
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.requests = removeRequest(v.requests, id)
	delete(v.panels, id)
	delete(v.drafts, id)
	v.err = ""
	return nil
}
