package creation_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"property-listings/internal/apitest"
	"property-listings/internal/creation"
	"property-listings/internal/listing"
	"property-listings/internal/listing/repository"
	"property-listings/internal/listing/repository/fake"
	"property-listings/internal/listing/repository/httpapi"
	"property-listings/internal/model"
	"property-listings/pkg/log"
)

var validDraft = map[string]string{
	"title":       "Test Property",
	"price":       "300000",
	"location":    "Test Location",
	"description": "This is a test property description with enough characters.",
}

func fill(t *testing.T, ctrl creation.Controller, fields map[string]string) {
	t.Helper()
	for name, value := range fields {
		if err := ctrl.UpdateField(name, value); err != nil {
			t.Fatalf("UpdateField(%s): %v", name, err)
		}
	}
}

func TestUpdateField(t *testing.T) {
	t.Run("Clears Only That Field", func(t *testing.T) {
		ctrl := creation.New(&fake.Repository{}, log.NewNopLogger(), creation.Options{})
		defer ctrl.Close()

		ctrl.Submit(context.Background())
		if got := len(ctrl.State().Errors); got != 4 {
			t.Fatalf("expected 4 errors, got %d", got)
		}

		if err := ctrl.UpdateField("title", "x"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		s := ctrl.State()
		if s.FieldError(listing.FieldTitle) != "" {
			t.Errorf("title error should be cleared")
		}
		if len(s.Errors) != 3 {
			t.Errorf("other errors must persist, got %v", s.Errors)
		}
		if s.Draft.Title != "x" {
			t.Errorf("draft not updated: %+v", s.Draft)
		}
	})

	t.Run("Keeps Raw Value", func(t *testing.T) {
		ctrl := creation.New(&fake.Repository{}, log.NewNopLogger(), creation.Options{})
		defer ctrl.Close()

		ctrl.UpdateField("location", "  Seattle  ")
		if got := ctrl.State().Draft.Location; got != "  Seattle  " {
			t.Errorf("expected untrimmed value, got %q", got)
		}
	})

	t.Run("Unknown Field", func(t *testing.T) {
		ctrl := creation.New(&fake.Repository{}, log.NewNopLogger(), creation.Options{})
		defer ctrl.Close()

		if err := ctrl.UpdateField("bedrooms", "3"); !errors.Is(err, listing.ErrUnknownField) {
			t.Errorf("expected ErrUnknownField, got %v", err)
		}
	})
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty Draft Never Calls Create", func(t *testing.T) {
		repo := &fake.Repository{}
		ctrl := creation.New(repo, log.NewNopLogger(), creation.Options{})
		defer ctrl.Close()

		id, err := ctrl.Submit(ctx)
		if !errors.Is(err, listing.ErrValidationFailed) || id != "" {
			t.Fatalf("expected validation failure, got %q %v", id, err)
		}
		var verr *listing.ValidationError
		if !errors.As(err, &verr) || len(verr.Errors) != 4 {
			t.Fatalf("expected four field errors, got %v", err)
		}

		want := listing.ErrorMap{
			listing.FieldTitle:       "Title is required",
			listing.FieldPrice:       "Price is required",
			listing.FieldLocation:    "Location is required",
			listing.FieldDescription: "Description is required",
		}
		if diff := cmp.Diff(want, ctrl.State().Errors); diff != "" {
			t.Errorf("errors mismatch (-want +got):\n%s", diff)
		}
		if n := len(repo.Calls("")); n != 0 {
			t.Errorf("expected no repository calls, got %d", n)
		}
		if !ctrl.State().Submit.IsIdle() {
			t.Errorf("submit state must stay idle")
		}
	})

	t.Run("Partially Invalid", func(t *testing.T) {
		repo := &fake.Repository{}
		ctrl := creation.New(repo, log.NewNopLogger(), creation.Options{})
		defer ctrl.Close()

		fill(t, ctrl, map[string]string{
			"title":       "123",
			"price":       "100000",
			"location":    "NY",
			"description": "Too short",
		})
		if _, err := ctrl.Submit(ctx); err == nil {
			t.Fatalf("expected error")
		}
		errs := ctrl.State().Errors
		for _, f := range []listing.Field{listing.FieldTitle, listing.FieldLocation, listing.FieldDescription} {
			if errs[f] == "" {
				t.Errorf("expected an error for %s", f)
			}
		}
		if errs[listing.FieldPrice] != "" {
			t.Errorf("price is valid, got %q", errs[listing.FieldPrice])
		}
		if n := len(repo.Calls("CreateListing")); n != 0 {
			t.Errorf("expected no create calls, got %d", n)
		}
	})

	t.Run("Round Trip", func(t *testing.T) {
		srv := apitest.New()
		defer srv.Close()

		client, err := httpapi.New(log.NewNopLogger(), httpapi.Config{BaseURL: srv.BaseURL(), Timeout: time.Second})
		if err != nil {
			t.Fatalf("httpapi.New: %v", err)
		}
		ctrl := creation.New(client, log.NewNopLogger(), creation.Options{})
		defer ctrl.Close()

		fill(t, ctrl, validDraft)
		id, err := ctrl.Submit(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var body map[string]any
		var found bool
		for _, r := range srv.Requests() {
			if r.Method == http.MethodPost && r.Path == "/api/listings" {
				found = true
				if err := json.Unmarshal(r.Body, &body); err != nil {
					t.Fatalf("decode request body: %v", err)
				}
			}
		}
		if !found {
			t.Fatalf("create request was not sent")
		}
		want := map[string]any{
			"title":       "Test Property",
			"price":       float64(300000),
			"location":    "Test Location",
			"description": "This is a test property description with enough characters.",
		}
		if diff := cmp.Diff(want, body); diff != "" {
			t.Errorf("request body mismatch (-want +got):\n%s", diff)
		}

		stored, ok := srv.Listing(id)
		if !ok {
			t.Fatalf("returned id %q does not exist on the server", id)
		}
		s := ctrl.State()
		if !s.Submit.IsSuccess() || s.Submit.Data.ID != stored.ID {
			t.Errorf("unexpected submit state: %+v", s.Submit)
		}
		if s.Draft != (listing.Draft{}) {
			t.Errorf("draft should be cleared, got %+v", s.Draft)
		}
	})

	t.Run("Submits Trimmed Values", func(t *testing.T) {
		repo := &fake.Repository{
			CreateFunc: func(ctx context.Context, opt repository.CreateListingOptions) (model.Listing, error) {
				return model.Listing{ID: "new"}, nil
			},
		}
		ctrl := creation.New(repo, log.NewNopLogger(), creation.Options{})
		defer ctrl.Close()

		fill(t, ctrl, map[string]string{
			"title":       "  Test Property ",
			"price":       " 250000.50 ",
			"location":    " Test Location",
			"description": "This is a test property description with enough characters.  ",
		})
		if _, err := ctrl.Submit(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		calls := repo.Calls("CreateListing")
		if len(calls) != 1 {
			t.Fatalf("expected one create call, got %d", len(calls))
		}
		want := repository.CreateListingOptions{
			Title:       "Test Property",
			Price:       250000.5,
			Location:    "Test Location",
			Description: "This is a test property description with enough characters.",
		}
		if diff := cmp.Diff(want, calls[0].Arg); diff != "" {
			t.Errorf("create options mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Server Rejection Keeps Draft", func(t *testing.T) {
		srv := apitest.New()
		defer srv.Close()
		srv.FailWithError("POST /listings", http.StatusBadRequest, "Price must be a positive number")

		client, err := httpapi.New(log.NewNopLogger(), httpapi.Config{BaseURL: srv.BaseURL(), Timeout: time.Second})
		if err != nil {
			t.Fatalf("httpapi.New: %v", err)
		}
		ctrl := creation.New(client, log.NewNopLogger(), creation.Options{})
		defer ctrl.Close()

		fill(t, ctrl, validDraft)
		_, err = ctrl.Submit(ctx)
		if repository.KindOf(err) != repository.KindValidationRejected {
			t.Fatalf("expected a rejected create, got %v", err)
		}

		s := ctrl.State()
		if !s.Submit.IsFailure() || s.Submit.Message() != "Price must be a positive number" {
			t.Errorf("unexpected submit state: %+v", s.Submit)
		}
		if s.Draft.Title != validDraft["title"] {
			t.Errorf("draft must be kept for correction, got %+v", s.Draft)
		}
	})

	t.Run("In Progress", func(t *testing.T) {
		started := make(chan struct{})
		release := make(chan struct{})
		repo := &fake.Repository{
			CreateFunc: func(ctx context.Context, opt repository.CreateListingOptions) (model.Listing, error) {
				close(started)
				<-release
				return model.Listing{ID: "new"}, nil
			},
		}
		ctrl := creation.New(repo, log.NewNopLogger(), creation.Options{})
		defer ctrl.Close()
		fill(t, ctrl, validDraft)

		done := make(chan error, 1)
		go func() {
			_, err := ctrl.Submit(ctx)
			done <- err
		}()
		<-started

		if !ctrl.State().Submitting() {
			t.Errorf("expected the form to be submitting")
		}
		if _, err := ctrl.Submit(ctx); !errors.Is(err, creation.ErrSubmitInProgress) {
			t.Errorf("expected ErrSubmitInProgress, got %v", err)
		}
		close(release)
		if err := <-done; err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestReset(t *testing.T) {
	ctx := context.Background()

	t.Run("Initial State", func(t *testing.T) {
		ctrl := creation.New(&fake.Repository{}, log.NewNopLogger(), creation.Options{})
		defer ctrl.Close()

		ctrl.UpdateField("title", "abc")
		ctrl.Submit(ctx)
		ctrl.Reset()

		s := ctrl.State()
		if s.Draft != (listing.Draft{}) || len(s.Errors) != 0 || !s.Submit.IsIdle() {
			t.Errorf("expected initial state, got %+v", s)
		}
	})

	t.Run("Drops In-Flight Submit", func(t *testing.T) {
		started := make(chan struct{})
		release := make(chan struct{})
		repo := &fake.Repository{
			CreateFunc: func(ctx context.Context, opt repository.CreateListingOptions) (model.Listing, error) {
				close(started)
				<-release
				return model.Listing{ID: "new"}, nil
			},
		}
		ctrl := creation.New(repo, log.NewNopLogger(), creation.Options{})
		defer ctrl.Close()
		fill(t, ctrl, validDraft)

		done := make(chan error, 1)
		go func() {
			_, err := ctrl.Submit(ctx)
			done <- err
		}()
		<-started
		ctrl.Reset()
		close(release)

		if err := <-done; !errors.Is(err, creation.ErrSuperseded) {
			t.Errorf("expected ErrSuperseded, got %v", err)
		}
		if !ctrl.State().Submit.IsIdle() {
			t.Errorf("reset state must not be overwritten")
		}
	})
}

func TestClose(t *testing.T) {
	started := make(chan struct{})
	repo := &fake.Repository{
		CreateFunc: func(ctx context.Context, opt repository.CreateListingOptions) (model.Listing, error) {
			close(started)
			<-ctx.Done()
			return model.Listing{}, ctx.Err()
		},
	}
	ctrl := creation.New(repo, log.NewNopLogger(), creation.Options{})
	fill(t, ctrl, validDraft)

	done := make(chan error, 1)
	go func() {
		_, err := ctrl.Submit(context.Background())
		done <- err
	}()
	<-started
	ctrl.Close()

	select {
	case err := <-done:
		if !errors.Is(err, creation.ErrClosed) {
			t.Errorf("expected ErrClosed, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Close did not cancel the submit")
	}
	if err := ctrl.UpdateField("title", "x"); !errors.Is(err, creation.ErrClosed) {
		t.Errorf("expected ErrClosed, got %v", err)
	}
}
