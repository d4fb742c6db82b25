package client

import "context"

// DeploymentQueue lists approved requests awaiting deployment.
type DeploymentQueue struct {
	viewState
	api        *Client
	processing processingSet
	requests   []ChangeRequest
}

func NewDeploymentQueue(api *Client) *DeploymentQueue {
	return &DeploymentQueue{api: api}
}

func (v *DeploymentQueue) Load(ctx context.Context) error {
	v.mu.Lock()
	v.loading = true
	v.err = ""
	v.mu.Unlock()

	list, err := v.api.QueryChangeRequests(ctx, Query{Status: StatusApproved})

	v.mu.Lock()
	defer v.mu.Unlock()
	v.loading = false
	if err != nil {
		v.err = "Failed to fetch approved requests"
		return err
	}
	v.requests = list
	return nil
}

func (v *DeploymentQueue) Requests() []ChangeRequest {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]ChangeRequest(nil), v.requests...)
}

func (v *DeploymentQueue) Processing(id string) bool { return v.processing.has(id) }

func (v *DeploymentQueue) MarkDeployed(ctx context.Context, id string) error {
	if !v.processing.begin(id) {
		return ErrInProgress
	}
	defer v.processing.end(id)

	if err := v.api.UpdateStatus(ctx, id, StatusDeployed, ""); err != nil {
		v.setError("Failed to mark as deployed")
		return err
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.requests = removeRequest(v.requests, id)
	v.err = ""
	return nil
}
