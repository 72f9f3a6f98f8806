package telemetry_test

import (
	"errors"
	"testing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/vat/internal/adapters/telemetry"
	"go.trai.ch/vat/internal/core/ports"
	"go.trai.ch/vat/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

// newBridgedTracer returns a tracer whose spans are forwarded to r.
func newBridgedTracer(t *testing.T, r *mocks.MockRenderer) *telemetry.OTelTracer {
	t.Helper()

	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewBridge(r)))
	t.Cleanup(func() {
		_ = tp.Shutdown(t.Context())
	})
	return telemetry.NewOTelTracerWithProvider(tp, "test")
}

func TestBridge_PackageSpan(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockRenderer(ctrl)
	tracer := newBridgedTracer(t, r)

	var spanID string
	r.EXPECT().OnFetchStart(gomock.Any(), "", "zlib", gomock.Any()).
		Do(func(id, _, _ string, _ any) { spanID = id })
	r.EXPECT().OnFetchComplete(gomock.Any(), gomock.Any(), "fetched", nil).
		Do(func(id string, _ any, _ string, _ error) {
			if id != spanID {
				t.Errorf("complete span id %q, want %q", id, spanID)
			}
		})

	_, span := tracer.Start(t.Context(), "zlib")
	span.SetAttribute(ports.AttrOutcome, "fetched")
	span.End()
}

func TestBridge_ChildSpanCarriesParent(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockRenderer(ctrl)
	tracer := newBridgedTracer(t, r)

	var parentID string
	gomock.InOrder(
		r.EXPECT().OnFetchStart(gomock.Any(), "", "zlib", gomock.Any()).
			Do(func(id, _, _ string, _ any) { parentID = id }),
		r.EXPECT().OnFetchStart(gomock.Any(), gomock.Any(), "release", gomock.Any()).
			Do(func(_, parent, _ string, _ any) {
				if parent != parentID {
					t.Errorf("parent %q, want %q", parent, parentID)
				}
			}),
		r.EXPECT().OnFetchComplete(gomock.Any(), gomock.Any(), "", gomock.Not(gomock.Nil())),
		r.EXPECT().OnFetchComplete(gomock.Any(), gomock.Any(), "failed", nil),
	)

	ctx, pkgSpan := tracer.Start(t.Context(), "zlib")
	_, chSpan := tracer.Start(ctx, "release")
	chSpan.RecordError(errors.New("no output in stdout"))
	chSpan.End()
	pkgSpan.SetAttribute(ports.AttrOutcome, "failed")
	pkgSpan.End()
}

func TestBridge_ErrorDescription(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockRenderer(ctrl)
	tracer := newBridgedTracer(t, r)

	r.EXPECT().OnFetchStart(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
	r.EXPECT().OnFetchComplete(gomock.Any(), gomock.Any(), "", gomock.Any()).
		Do(func(_ string, _ any, _ string, err error) {
			if err == nil || err.Error() != "output in stderr" {
				t.Errorf("unexpected error %v", err)
			}
		})

	_, span := tracer.Start(t.Context(), "commit")
	span.RecordError(errors.New("output in stderr"))
	span.End()
}

func TestBridge_NilRenderer(t *testing.T) {
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewBridge(nil)))
	defer func() { _ = tp.Shutdown(t.Context()) }()

	_, span := tp.Tracer("test").Start(t.Context(), "zlib")
	span.End()
}
