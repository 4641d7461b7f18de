package errors

import (
	stderrs "errors"
	"net/http"
	"testing"
)

func TestWrapAndRoot(t *testing.T) {
	cause := stderrs.New("boom")
	err := Wrapf(cause, ErrorCodeDB, "insert failed")

	if !stderrs.Is(err, cause) {
		t.Fatalf("wrapped cause lost")
	}
	if Root(err) != cause {
		t.Fatalf("root = %v, want cause", Root(err))
	}
	if err.Error() != "insert failed: boom" {
		t.Fatalf("message = %q", err.Error())
	}
}

func TestCodeOf(t *testing.T) {
	if CodeOf(NotFoundf("x")) != ErrorCodeNotFound {
		t.Fatalf("not found code lost")
	}
	if CodeOf(stderrs.New("plain")) != ErrorCodeUnknown {
		t.Fatalf("plain error should map to unknown")
	}
	// code survives wrapping in a plain fmt error chain
	wrapped := Wrap(Validationf("bad"), ErrorCodeDB, "outer")
	if CodeOf(wrapped) != ErrorCodeDB {
		t.Fatalf("outermost code should win, got %v", CodeOf(wrapped))
	}
}

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{Validationf("v"), http.StatusBadRequest},
		{JSONErrf("j"), http.StatusBadRequest},
		{InvalidArgf("i"), http.StatusUnprocessableEntity},
		{NotFoundf("n"), http.StatusNotFound},
		{Unavailablef("u"), http.StatusServiceUnavailable},
		{DBf("d"), http.StatusInternalServerError},
		{PanicErrf("p"), http.StatusInternalServerError},
		{Internalf("x"), http.StatusInternalServerError},
		{stderrs.New("plain"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := HTTPStatus(tc.err); got != tc.want {
			t.Fatalf("%v: status = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestWireFrom(t *testing.T) {
	w := WireFrom(WithField(Validationf("too long"), "sequence"))
	if w.Code != ErrorCodeValidation || w.Field != "sequence" || w.Message != "too long" {
		t.Fatalf("wire = %+v", w)
	}

	w = WireFrom(stderrs.New("plain"))
	if w.Code != ErrorCodeUnknown || w.Message != "plain" {
		t.Fatalf("wire = %+v", w)
	}

	if w := WireFrom(nil); w.Code != ErrorCodeUnknown || w.Message != "" {
		t.Fatalf("nil should yield zero wire, got %+v", w)
	}
}

func TestWithFieldCopies(t *testing.T) {
	base := Validationf("bad input")
	withF := WithField(base, "sequence")

	e, ok := As(base)
	if !ok || e.Field() != "" {
		t.Fatalf("base mutated: %+v", e)
	}
	e, ok = As(withF)
	if !ok || e.Field() != "sequence" {
		t.Fatalf("field not attached: %+v", e)
	}
}
