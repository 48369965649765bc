package prescription

import (
	"testing"

	"github.com/medichat/medichat/internal/platform/notify"
	"github.com/medichat/medichat/internal/store"
)

func newTestService() (*Service, *notify.Center) {
	center := notify.NewCenter()
	return NewService(store.New(Seed()...), center), center
}

func TestList_SearchAndStatus(t *testing.T) {
	svc, _ := newTestService()

	all := svc.List(Filters{})
	if len(all) != 2 || all[0].ID != "rx1" {
		t.Fatalf("expected seed order [rx1 rx2], got %v", all)
	}

	byName := svc.List(Filters{Search: "emily"})
	if len(byName) != 1 || byName[0].ID != "rx2" {
		t.Errorf("expected [rx2], got %v", byName)
	}

	sent := svc.List(Filters{Status: StatusSent})
	if len(sent) != 1 || sent[0].ID != "rx1" {
		t.Errorf("expected [rx1], got %v", sent)
	}
}

func TestAdd_RequiresPatientAndMedicines(t *testing.T) {
	svc, center := newTestService()

	if _, err := svc.Add(Prescription{Medicines: []Item{{ID: "m1"}}}); err == nil {
		t.Error("expected error for missing patient")
	}
	if _, err := svc.Add(Prescription{PatientID: "p3", PatientName: "Michael Williams"}); err == nil {
		t.Error("expected error for empty medicine list")
	}
	if len(svc.List(Filters{})) != 2 {
		t.Error("store must be unchanged after rejected adds")
	}
	events := center.Events()
	if len(events) != 2 {
		t.Fatalf("expected 2 validation notifications, got %d", len(events))
	}
	for _, ev := range events {
		if ev.Severity != notify.SeverityError {
			t.Errorf("expected error severity, got %s", ev.Severity)
		}
	}
}

func TestAdd_DefaultsToDraft(t *testing.T) {
	svc, _ := newTestService()
	added, err := svc.Add(Prescription{
		PatientID:   "p3",
		PatientName: "Michael Williams",
		Medicines:   []Item{{ID: "m4", Name: "Metformin", Dosage: "1000mg"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if added.Status != StatusDraft {
		t.Errorf("expected draft status, got %s", added.Status)
	}
	if added.ID == "" || added.Date == "" {
		t.Errorf("expected generated id and date, got %+v", added)
	}
	got := svc.List(Filters{})
	if len(got) != 3 || got[0].ID != added.ID {
		t.Error("expected new prescription at the front of the store")
	}
}

func TestSend_TransitionsAndNotifies(t *testing.T) {
	svc, center := newTestService()
	added, _ := svc.Add(Prescription{
		PatientID:   "p3",
		PatientName: "Michael Williams",
		Medicines:   []Item{{ID: "m4", Name: "Metformin"}},
	})

	sent, ok := svc.Send(added.ID)
	if !ok || sent.Status != StatusSent {
		t.Fatalf("expected sent status, got %+v ok=%v", sent, ok)
	}
	if center.Events()[0].Title != "Prescription Sent" {
		t.Errorf("expected send notification, got %v", center.Events()[0])
	}
}

func TestSend_MissIsNoOp(t *testing.T) {
	svc, center := newTestService()
	if _, ok := svc.Send("rx999"); ok {
		t.Error("expected miss to report no change")
	}
	if len(center.Events()) != 0 {
		t.Error("miss must not notify")
	}
}

func TestAppendNotes(t *testing.T) {
	svc, _ := newTestService()

	p, ok := svc.AppendNotes("rx1", "Dosage reduced at follow-up.")
	if !ok {
		t.Fatal("expected rx1 to exist")
	}
	want := "Patient allergic to penicillin. Follow up in 2 weeks. Dosage reduced at follow-up."
	if p.Notes != want {
		t.Errorf("expected %q, got %q", want, p.Notes)
	}

	// Blank dictation leaves the notes untouched.
	p, _ = svc.AppendNotes("rx1", "   ")
	if p.Notes != want {
		t.Errorf("blank append must be a no-op, got %q", p.Notes)
	}

	if _, ok := svc.AppendNotes("rx999", "text"); ok {
		t.Error("expected miss to report no change")
	}
}

func TestStats_CountsByStatus(t *testing.T) {
	svc, _ := newTestService()
	st := svc.Stats()
	if st.Total != 2 || st.Sent != 1 || st.Completed != 1 || st.Draft != 0 {
		t.Errorf("unexpected stats: %+v", st)
	}
}
