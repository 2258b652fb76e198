package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"webdesk/internal/adapters/storage/memory"
	"webdesk/internal/domain"
)

type recordingSink struct {
	got []domain.Notification
}

func (r *recordingSink) Notify(n domain.Notification) { r.got = append(r.got, n) }

func TestBeginUploadUnknownSession(t *testing.T) {
	store := memory.NewStore(10, 24*time.Hour)
	svc := NewTransferService(store, store, store, nil)

	_, err := svc.BeginUpload(context.Background(), "nope", "a.txt", []byte("x"))
	if !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("want ErrSessionNotFound, got %v", err)
	}
}

func TestBeginUploadNotifiesHost(t *testing.T) {
	store := memory.NewStore(10, 24*time.Hour)
	seedSession(t, store, "s")
	sink := &recordingSink{}
	svc := NewTransferService(store, store, store, sink)
	ctx := context.Background()

	tr, err := svc.BeginUpload(ctx, "s", "report.pdf", []byte("pdfbytes"))
	if err != nil {
		t.Fatal(err)
	}
	if tr.Status != domain.TransferPending || tr.Direction != domain.TransferUpload {
		t.Errorf("unexpected transfer: %+v", tr)
	}
	if tr.Size != len("pdfbytes") {
		t.Errorf("size = %d", tr.Size)
	}

	// notification in the session queue
	items, err := svc.DrainNotifications(ctx, "s")
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 1 || items[0].Type != domain.NotifyFileUpload || items[0].TransferID != tr.ID || items[0].Filename != "report.pdf" {
		t.Fatalf("queued notification wrong: %+v", items)
	}

	// and fanned out to the live sink
	if len(sink.got) != 1 || sink.got[0].TransferID != tr.ID {
		t.Fatalf("sink notification wrong: %+v", sink.got)
	}
}

func TestBeginDownloadSameStateMachineNoNotification(t *testing.T) {
	store := memory.NewStore(10, 24*time.Hour)
	seedSession(t, store, "s")
	sink := &recordingSink{}
	svc := NewTransferService(store, store, store, sink)
	ctx := context.Background()

	tr, err := svc.BeginDownload(ctx, "s", "out.bin", nil)
	if err != nil {
		t.Fatal(err)
	}
	if tr.Direction != domain.TransferDownload || tr.Status != domain.TransferPending {
		t.Errorf("unexpected transfer: %+v", tr)
	}
	if len(sink.got) != 0 {
		t.Errorf("downloads must not notify the host queue")
	}
	if err := svc.MarkFailed(ctx, tr.ID, "no host fetch"); err != nil {
		t.Fatal(err)
	}
	got, _, _ := svc.Get(ctx, tr.ID)
	if got.Status != domain.TransferFailed || got.Error != "no host fetch" {
		t.Errorf("got %+v", got)
	}
}

func TestTerminalTransitionsIdempotent(t *testing.T) {
	store := memory.NewStore(10, 24*time.Hour)
	seedSession(t, store, "s")
	svc := NewTransferService(store, store, store, nil)
	ctx := context.Background()

	tr, err := svc.BeginUpload(ctx, "s", "a.txt", []byte("x"))
	if err != nil {
		t.Fatal(err)
	}
	if err := svc.MarkDelivered(ctx, tr.ID); err != nil {
		t.Fatal(err)
	}
	if err := svc.MarkDelivered(ctx, tr.ID); !errors.Is(err, domain.ErrInvalidTransferState) {
		t.Errorf("second delivered: want ErrInvalidTransferState, got %v", err)
	}
	if err := svc.MarkFailed(ctx, tr.ID, "late"); !errors.Is(err, domain.ErrInvalidTransferState) {
		t.Errorf("failed after delivered: want ErrInvalidTransferState, got %v", err)
	}
}
