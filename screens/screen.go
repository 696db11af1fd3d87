// Package screens keeps the state of the dashboard's list screens: the
// fetched collection, the page being viewed, the open row menu and the
// last fetch error.
package screens

import (
	"context"
	stdErrors "errors"
	"fmt"
	"log/slog"
	"sync"

	serverError "github.com/supakorn-kn/go-dashboard/errors"
	"github.com/supakorn-kn/go-dashboard/paginator"
	"github.com/supakorn-kn/go-dashboard/resources"
)

// View is one rendered page of a screen.
type View[T resources.Item] struct {
	paginator.Window
	Data       []T                  `json:"data"`
	Strip      []paginator.PageItem `json:"strip"`
	Loading    bool                 `json:"loading"`
	Error      string               `json:"error,omitempty"`
	ActiveMenu string               `json:"active_menu,omitempty"`
}

// Screen owns the collection of one list screen. The collection is only
// ever replaced wholesale by a fetch, or shrunk by Remove after a delete.
type Screen[T resources.Item] struct {
	name     string
	lister   resources.Lister[T]
	pageSize int

	mu         sync.Mutex
	collection []T
	loaded     bool
	stale      bool
	loading    bool
	errMessage string
	cursor     paginator.Cursor
	activeMenu string

	generation uint64
	cancel     context.CancelFunc
}

func New[T resources.Item](name string, lister resources.Lister[T], pageSize int) (*Screen[T], error) {

	if pageSize < 1 {
		return nil, serverError.PageSizeInvalidError.New()
	}

	return &Screen[T]{
		name:       name,
		lister:     lister,
		pageSize:   pageSize,
		collection: []T{},
		cursor:     paginator.NewCursor(),
	}, nil
}

func (s *Screen[T]) Name() string {
	return s.name
}

// Refresh fetches the collection again. Starting a refresh cancels the one
// in flight, and only the latest refresh may store its result.
func (s *Screen[T]) Refresh(ctx context.Context) error {

	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}

	fetchCtx, cancel := context.WithCancel(ctx)
	s.generation++
	generation := s.generation
	s.cancel = cancel
	s.loading = true
	s.mu.Unlock()

	collection, err := s.lister.List(fetchCtx)
	cancel()

	s.mu.Lock()
	defer s.mu.Unlock()

	if generation != s.generation {
		slog.Debug("discarding superseded fetch", "screen", s.name, "generation", generation)
		return nil
	}

	s.cancel = nil
	s.loading = false

	// A caller that gave up did not get an answer; the next view fetches again.
	if err != nil && ctx.Err() != nil {

		s.errMessage = displayMessage(s.name, err)
		s.stale = true
		slog.Debug("fetch collection interrupted", "screen", s.name, "error", err)
		return err
	}

	s.loaded = true

	if err != nil {

		s.errMessage = displayMessage(s.name, err)
		slog.Error("fetch collection failed", "screen", s.name, "error", err)
		return err
	}

	s.collection = collection
	s.errMessage = ""
	s.stale = false
	s.clampLocked()

	return nil
}

// EnsureLoaded fetches when the screen has never loaded or a child form
// asked for a refresh.
func (s *Screen[T]) EnsureLoaded(ctx context.Context) error {

	s.mu.Lock()
	needsFetch := !s.loaded || s.stale
	s.mu.Unlock()

	if !needsFetch {
		return nil
	}

	return s.Refresh(ctx)
}

// MarkStale records a refresh request coming back from a create or edit form.
func (s *Screen[T]) MarkStale() {

	s.mu.Lock()
	defer s.mu.Unlock()

	s.stale = true
}

func (s *Screen[T]) Page() View[T] {

	s.mu.Lock()
	defer s.mu.Unlock()

	window := paginator.ComputeWindow(len(s.collection), s.cursor.Page, s.pageSize)

	return View[T]{
		Window:     window,
		Data:       paginator.Slice(s.collection, window),
		Strip:      paginator.BuildPageStrip(window.CurrentPage, window.TotalPages),
		Loading:    s.loading,
		Error:      s.errMessage,
		ActiveMenu: s.activeMenu,
	}
}

func (s *Screen[T]) PageView() any {
	return s.Page()
}

func (s *Screen[T]) Len() int {

	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.collection)
}

func (s *Screen[T]) GoTo(page int) error {

	if page < 1 {
		return serverError.CurrentPageInvalidError.New()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cursor.GoTo(page)
	return nil
}

func (s *Screen[T]) Next() {

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cursor.Next(s.totalPagesLocked())
}

func (s *Screen[T]) Previous() {

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cursor.Previous()
}

// ToggleMenu opens the row menu of itemID, or closes it when already open.
func (s *Screen[T]) ToggleMenu(itemID string) {

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.activeMenu == itemID {
		s.activeMenu = ""
		return
	}

	s.activeMenu = itemID
}

func (s *Screen[T]) CloseMenu() {

	s.mu.Lock()
	defer s.mu.Unlock()

	s.activeMenu = ""
}

// Remove drops a deleted row without refetching and closes its menu.
func (s *Screen[T]) Remove(itemID string) bool {

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]T, 0, len(s.collection))
	for _, item := range s.collection {
		if item.GetID() != itemID {
			kept = append(kept, item)
		}
	}

	removed := len(kept) != len(s.collection)
	s.collection = kept

	if s.activeMenu == itemID {
		s.activeMenu = ""
	}

	s.clampLocked()

	return removed
}

func (s *Screen[T]) totalPagesLocked() int {
	return paginator.ComputeWindow(len(s.collection), 1, s.pageSize).TotalPages
}

func (s *Screen[T]) clampLocked() {
	s.cursor.Clamp(s.totalPagesLocked())
}

// displayMessage turns a fetch failure into the one line shown above the table.
func displayMessage(name string, err error) string {

	if stdErrors.Is(err, context.Canceled) || stdErrors.Is(err, context.DeadlineExceeded) {
		return fmt.Sprintf("Fetching %s was interrupted", name)
	}

	asserted, ok := serverError.TryAssertError(err)
	if !ok {
		return fmt.Sprintf("Failed to fetch %s data", name)
	}

	switch asserted.Code {
	case serverError.RemoteNotFoundErrorCode:
		return fmt.Sprintf("%s endpoint not found (404). Please check the API URL.", name)
	case serverError.RemoteUnreachableErrorCode:
		return "The server could not be reached. Please check the connection and API URL."
	default:
		return asserted.Message
	}
}
