package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"support-portal-backend/internal/config"
	"support-portal-backend/internal/database/models"
	"support-portal-backend/internal/logger"
	"support-portal-backend/internal/repository"
)

// WorkflowNotifier bridges tenant-scoped tickets to the external,
// tenant-unaware workflow engine. The outbound call is bounded by the
// configured timeout; every failure is recorded on the workflow record and
// swallowed so ticket creation never depends on the engine being up.
type WorkflowNotifier struct {
	cfg          *config.Config
	workflowRepo repository.WorkflowRepositoryInterface
	httpClient   *http.Client
}

// Ensure WorkflowNotifier implements WorkflowNotifierInterface
var _ WorkflowNotifierInterface = (*WorkflowNotifier)(nil)

// workflowTriggerPayload is the body POSTed to the workflow engine
type workflowTriggerPayload struct {
	TicketID    string `json:"ticketId"`
	CustomerID  string `json:"customerId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	WorkflowID  string `json:"workflowId"`
}

// workflowTriggerResponse is the engine's acknowledgement
type workflowTriggerResponse struct {
	ExecutionID string `json:"executionId"`
}

// NewWorkflowNotifier creates a new workflow notifier
func NewWorkflowNotifier(cfg *config.Config, workflowRepo repository.WorkflowRepositoryInterface) *WorkflowNotifier {
	return &WorkflowNotifier{
		cfg:          cfg,
		workflowRepo: workflowRepo,
		httpClient:   &http.Client{Timeout: time.Duration(cfg.WorkflowTimeoutSec) * time.Second},
	}
}

// Notify POSTs the trigger payload to the configured engine endpoint. On a
// 2xx response carrying an execution id the workflow record moves to
// processing; on transport failure, timeout or non-2xx it moves to failed.
func (n *WorkflowNotifier) Notify(ctx context.Context, ticket *models.Ticket, workflow *models.Workflow) {
	log := logger.New().WithFields(map[string]interface{}{
		"ticket_id":   ticket.ID,
		"workflow_id": workflow.ID,
		"customer_id": ticket.CustomerID,
	})

	executionID, err := n.trigger(ctx, ticket, workflow)
	if err != nil {
		log.Warnf("workflow trigger failed: %v", err)
		if _, uerr := n.workflowRepo.UpdateStatus(workflow.ID, workflow.CustomerID, models.WorkflowStatusFailed, ""); uerr != nil {
			log.Errorf("failed to mark workflow failed: %v", uerr)
		}
		return
	}

	if executionID == "" {
		// Engine accepted the trigger but reported no execution id; the
		// record stays triggered until the callback arrives.
		log.Info("workflow triggered without execution id")
		return
	}

	if _, err := n.workflowRepo.UpdateStatus(workflow.ID, workflow.CustomerID, models.WorkflowStatusProcessing, executionID); err != nil {
		log.Errorf("failed to mark workflow processing: %v", err)
		return
	}
	log.WithField("execution_id", executionID).Info("workflow processing")
}

func (n *WorkflowNotifier) trigger(ctx context.Context, ticket *models.Ticket, workflow *models.Workflow) (string, error) {
	if n.cfg.WorkflowURL == "" {
		return "", fmt.Errorf("workflow engine URL is not configured")
	}

	payload := workflowTriggerPayload{
		TicketID:    ticket.ID.String(),
		CustomerID:  ticket.CustomerID,
		Title:       ticket.Title,
		Description: ticket.Description,
		WorkflowID:  workflow.ID.String(),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal trigger payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.cfg.WorkflowURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create trigger request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("workflow engine returned status=%d body=%s", resp.StatusCode, string(respBody))
	}

	var ack workflowTriggerResponse
	if err := json.NewDecoder(resp.Body).Decode(&ack); err != nil {
		// A 2xx with an unparseable body still counts as accepted.
		return "", nil
	}
	return ack.ExecutionID, nil
}
