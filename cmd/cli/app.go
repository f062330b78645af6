package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"property-listings/internal/catalog"
	"property-listings/internal/creation"
	"property-listings/internal/detail"
	"property-listings/internal/listing"
	"property-listings/internal/listing/repository"
	"property-listings/internal/view"
	"property-listings/pkg/log"
)

const (
	menuBrowse = "Browse all properties"
	menuSearch = "Search properties"
	menuAdd    = "Add a property"
	menuHealth = "Check service health"
	menuQuit   = "Quit"
)

var mainMenu = []string{menuBrowse, menuSearch, menuAdd, menuHealth, menuQuit}

type app struct {
	repo          repository.Repository
	l             log.Logger
	p             prompter
	out           io.Writer
	redirectDelay time.Duration
}

func newApp(repo repository.Repository, l log.Logger, p prompter, out io.Writer, redirectDelay time.Duration) *app {
	return &app{repo: repo, l: l, p: p, out: out, redirectDelay: redirectDelay}
}

// run shows the main menu until the user quits or interrupts.
func (a *app) run(ctx context.Context) error {
	for {
		choice, err := a.p.Select(ctx, "What would you like to do?", mainMenu)
		if err != nil {
			return quietAbort(err)
		}

		switch mainMenu[choice] {
		case menuBrowse:
			err = a.browse(ctx, "")
		case menuSearch:
			var q string
			q, err = a.p.Input(ctx, "Search by title, location, or description:", "")
			if err == nil {
				err = a.browse(ctx, q)
			}
		case menuAdd:
			err = a.create(ctx)
		case menuHealth:
			err = a.health(ctx)
		case menuQuit:
			return nil
		}
		if err != nil {
			return quietAbort(err)
		}
	}
}

// browse runs the catalog view starting with query.
func (a *app) browse(ctx context.Context, query string) error {
	ctrl := catalog.New(a.repo, a.l, catalog.Options{})
	defer ctrl.Close()

	_ = ctrl.Search(ctx, query)
	for {
		s := ctrl.State()
		fmt.Fprint(a.out, view.Catalog(s))

		var options []string
		for _, l := range s.Fetch.Data {
			options = append(options, view.Choice(l))
		}
		const (
			optSearch = "Search again"
			optClear  = "Show All Properties"
			optRetry  = "Retry"
			optBack   = "Back"
		)
		n := len(options)
		options = append(options, optSearch)
		if s.CanClearFilter() {
			options = append(options, optClear)
		}
		if s.CanRetry() {
			options = append(options, optRetry)
		}
		options = append(options, optBack)

		choice, err := a.p.Select(ctx, "Select a property:", options)
		if err != nil {
			return err
		}
		if choice < n {
			if err := a.show(ctx, s.Fetch.Data[choice].ID); err != nil {
				return err
			}
			continue
		}

		switch options[choice] {
		case optSearch:
			q, err := a.p.Input(ctx, "Search by title, location, or description:", s.Query)
			if err != nil {
				return err
			}
			_ = ctrl.Search(ctx, q)
		case optClear:
			_ = ctrl.ClearSearch(ctx)
		case optRetry:
			_ = ctrl.Retry(ctx)
		case optBack:
			return nil
		}
	}
}

// show runs the detail view of id. A missing listing returns to the caller
// after the redirect delay.
func (a *app) show(ctx context.Context, id string) error {
	redirected := make(chan struct{})
	ctrl := detail.New(a.repo, a.l, detail.Options{
		RedirectDelay: a.redirectDelay,
		OnRedirect:    func() { close(redirected) },
	})
	defer ctrl.Close()

	_ = ctrl.Load(ctx, id)
	for {
		s := ctrl.State()
		fmt.Fprint(a.out, view.Detail(s))

		if s.RedirectPending {
			select {
			case <-redirected:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		const (
			optSummary = "Generate AI Summary"
			optRetry   = "Retry"
			optBack    = "Back to Listings"
		)
		var options []string
		switch {
		case s.Listing.IsSuccess():
			options = append(options, optSummary)
		case s.Listing.IsFailure():
			options = append(options, optRetry)
		}
		options = append(options, optBack)

		choice, err := a.p.Select(ctx, "Next:", options)
		if err != nil {
			return err
		}
		switch options[choice] {
		case optSummary:
			_ = ctrl.RequestSummary(ctx)
		case optRetry:
			_ = ctrl.Retry(ctx)
		case optBack:
			return nil
		}
	}
}

// create runs the new listing form and opens the created listing.
func (a *app) create(ctx context.Context) error {
	ctrl := creation.New(a.repo, a.l, creation.Options{})
	defer ctrl.Close()

	for {
		draft := ctrl.State().Draft
		for _, f := range listing.Fields {
			current, _ := draft.Get(f)
			value, err := a.ask(ctx, f, current)
			if err != nil {
				return err
			}
			if err := ctrl.UpdateField(string(f), value); err != nil {
				return err
			}
		}

		id, err := ctrl.Submit(ctx)
		if err == nil {
			fmt.Fprint(a.out, view.Creation(ctrl.State()))
			return a.show(ctx, id)
		}
		if errors.Is(err, creation.ErrClosed) || ctx.Err() != nil {
			return err
		}

		fmt.Fprint(a.out, view.Creation(ctrl.State()))
		again, err := a.p.Confirm(ctx, "Edit and try again?", true)
		if err != nil {
			return err
		}
		if !again {
			ctrl.Reset()
			return nil
		}
	}
}

func (a *app) ask(ctx context.Context, f listing.Field, current string) (string, error) {
	label := view.FieldLabel(f) + ":"
	if f == listing.FieldDescription {
		return a.p.Multiline(ctx, label, current)
	}
	return a.p.Input(ctx, label, current)
}

func (a *app) health(ctx context.Context) error {
	h, err := a.repo.Health(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		fmt.Fprintf(a.out, "Service unavailable: %v\n", err)
		return nil
	}
	fmt.Fprintf(a.out, "Service is %s (%d listings)\n", h.Status, h.ListingsCount)
	return nil
}

// quietAbort treats a user interrupt as a normal exit.
func quietAbort(err error) error {
	if errors.Is(err, errAborted) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
