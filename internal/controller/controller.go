// Package controller implements the list-and-create workflow every resource
// page repeats: refresh the list, stage one creation dialog, surface a
// success or error notice. Pages depend on the Resource capability interface
// rather than on concrete transport functions, so tests substitute fakes.
package controller

import (
	"context"
	"errors"
	"sync"
)

// Resource is the transport capability a controller needs for one entity.
type Resource[T any, P any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, payload P) (T, error)
}

// ServerDetail is implemented by transport errors that carry a
// server-supplied message.
type ServerDetail interface {
	ServerDetail() string
}

// ErrSubmitInFlight is returned when a creation is already being submitted.
var ErrSubmitInFlight = errors.New("controller: submission already in flight")

// Messages holds the user-facing notice strings for one resource page.
type Messages struct {
	FetchFailed  string
	CreateFailed string
	Created      string
}

// State is a snapshot of one page's render state.
type State[T any] struct {
	Items      []T
	Loading    bool
	Submitting bool
	Error      string
	Success    string
	DialogOpen bool
}

// Controller sequences the fetch and create requests for one resource page.
type Controller[T any, P any] struct {
	res  Resource[T, P]
	msgs Messages

	mu         sync.Mutex
	state      State[T]
	refreshGen uint64
}

// New constructs a controller over the given resource.
func New[T any, P any](res Resource[T, P], msgs Messages) *Controller[T, P] {
	return &Controller[T, P]{res: res, msgs: msgs}
}

// Snapshot returns a copy of the current page state.
func (c *Controller[T, P]) Snapshot() State[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	st := c.state
	st.Items = append([]T(nil), c.state.Items...)
	return st
}

// Refresh reloads the list. Each refresh takes a generation; a refresh that
// has been superseded by a newer one drops its result instead of overwriting
// newer state. On failure the previous items are kept and the fetch notice is
// set. Loading is cleared on both paths.
func (c *Controller[T, P]) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.refreshGen++
	gen := c.refreshGen
	c.state.Loading = true
	c.state.Error = ""
	c.mu.Unlock()

	items, err := c.res.List(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.refreshGen {
		// A newer refresh owns the state now.
		return err
	}
	c.state.Loading = false
	if err != nil {
		c.state.Error = c.msgs.FetchFailed
		return err
	}
	c.state.Items = items
	return nil
}

// SubmitCreate sends exactly one creation request. On success it sets the
// created notice, closes the dialog and refreshes the list before the submit
// affordance re-enables. On failure the dialog stays open and the notice is
// the server's detail message when it supplied one, the fallback otherwise.
// Only one submission may be in flight.
func (c *Controller[T, P]) SubmitCreate(ctx context.Context, payload P) error {
	c.mu.Lock()
	if c.state.Submitting {
		c.mu.Unlock()
		return ErrSubmitInFlight
	}
	c.state.Submitting = true
	c.state.Error = ""
	c.mu.Unlock()

	_, err := c.res.Create(ctx, payload)
	if err != nil {
		c.mu.Lock()
		c.state.Error = detailOrFallback(err, c.msgs.CreateFailed)
		c.state.Submitting = false
		c.mu.Unlock()
		return err
	}

	c.mu.Lock()
	c.state.Success = c.msgs.Created
	c.state.DialogOpen = false
	c.mu.Unlock()

	// The creation succeeded; a failed refresh surfaces through the fetch
	// notice rather than failing the submission.
	_ = c.Refresh(ctx)

	c.mu.Lock()
	c.state.Submitting = false
	c.mu.Unlock()
	return nil
}

// OpenDialog shows the creation dialog.
func (c *Controller[T, P]) OpenDialog() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.DialogOpen = true
}

// CloseDialog hides the creation dialog and clears any stale error.
func (c *Controller[T, P]) CloseDialog() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.DialogOpen = false
	c.state.Error = ""
}

// DismissNotice clears both the success and the error notice.
func (c *Controller[T, P]) DismissNotice() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Success = ""
	c.state.Error = ""
}

func detailOrFallback(err error, fallback string) string {
	var detailed ServerDetail
	if errors.As(err, &detailed) && detailed.ServerDetail() != "" {
		return detailed.ServerDetail()
	}
	return fallback
}
