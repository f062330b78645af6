package repository_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"property-listings/internal/listing/repository"
)

func TestAPIError(t *testing.T) {
	t.Run("Kind Sentinels", func(t *testing.T) {
		cases := map[repository.Kind]error{
			repository.KindNetworkUnreachable: repository.ErrNetworkUnreachable,
			repository.KindNotFound:           repository.ErrNotFound,
			repository.KindValidationRejected: repository.ErrValidationRejected,
			repository.KindServerError:        repository.ErrServerError,
		}
		for kind, sentinel := range cases {
			err := fmt.Errorf("wrapped: %w", repository.NewAPIError(kind, 0, "boom", nil))
			if !errors.Is(err, sentinel) {
				t.Errorf("%s: expected errors.Is to match its sentinel", kind)
			}
			if repository.KindOf(err) != kind {
				t.Errorf("KindOf = %s, want %s", repository.KindOf(err), kind)
			}
		}
	})

	t.Run("Cause Preserved", func(t *testing.T) {
		err := repository.NewAPIError(repository.KindNetworkUnreachable, 0, "timeout", context.DeadlineExceeded)
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Errorf("expected cause to be reachable")
		}
		if err.Error() != "timeout" {
			t.Errorf("unexpected message: %s", err.Error())
		}
	})

	t.Run("Status Classification", func(t *testing.T) {
		cases := map[int]repository.Kind{
			400: repository.KindValidationRejected,
			404: repository.KindNotFound,
			422: repository.KindValidationRejected,
			500: repository.KindServerError,
			502: repository.KindServerError,
			302: repository.KindServerError,
		}
		for status, want := range cases {
			if got := repository.KindForStatus(status); got != want {
				t.Errorf("KindForStatus(%d) = %s, want %s", status, got, want)
			}
		}
		if repository.StatusMessage(503) != "HTTP error! status: 503" {
			t.Errorf("unexpected status message: %s", repository.StatusMessage(503))
		}
	})

	t.Run("Foreign Error", func(t *testing.T) {
		if repository.KindOf(errors.New("x")) != repository.KindServerError {
			t.Errorf("foreign errors default to server error")
		}
		if repository.IsNotFound(errors.New("Listing not found")) {
			t.Errorf("classification is by kind, not by message text")
		}
	})
}
