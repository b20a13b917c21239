package usecase

import (
	"checkrrhh-backend/internal/attendance"
	"checkrrhh-backend/internal/events"
	"checkrrhh-backend/internal/lock"
	"checkrrhh-backend/internal/model"
	"checkrrhh-backend/internal/repository"
	"checkrrhh-backend/internal/repository/memory"
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func at(hour, min int) time.Time {
	return time.Date(2026, 3, 2, hour, min, 0, 0, time.Local)
}

func newScanFixture(t *testing.T) (*memory.Store, *ScanUsecase, *recordingPublisher, *model.User) {
	t.Helper()
	s := memory.NewStore()
	company := seedCompany(t, s, "Acme")
	user := seedEmployee(t, s, &company.ID, "1001", "EMP-1001-ABC123")
	pub := &recordingPublisher{}
	uc := NewScanUsecase(s.Users(), s.Companies(), s.Attendance(), lock.NewMemoryLocker(), pub,
		attendance.Policy{Mode: attendance.SetMembership})
	return s, uc, pub, user
}

func TestRecordScanFullDay(t *testing.T) {
	s, uc, pub, user := newScanFixture(t)
	ctx := context.Background()

	steps := []struct {
		now  time.Time
		kind model.EventKind
	}{
		{at(7, 55), model.KindEntry},
		{at(12, 0), model.KindLunchOut},
		{at(13, 0), model.KindLunchIn},
		{at(17, 0), model.KindExit},
	}
	for _, step := range steps {
		event, err := uc.RecordScan(ctx, "EMP-1001-ABC123", step.now)
		if err != nil {
			t.Fatalf("scan at %s: %v", step.now.Format("15:04"), err)
		}
		if event.Kind != step.kind || event.Status != model.StatusNormal {
			t.Fatalf("expected %s/normal, got %s/%s", step.kind, event.Kind, event.Status)
		}
		if event.CompanyName != "Acme" || event.UserName != user.Name || event.Date != "2026-03-02" {
			t.Fatalf("unexpected denormalized fields %+v", event)
		}
	}

	if _, err := uc.RecordScan(ctx, "EMP-1001-ABC123", at(17, 30)); !errors.Is(err, ErrAlreadyClockedOut) {
		t.Fatalf("expected ErrAlreadyClockedOut, got %v", err)
	}

	today, _ := s.Attendance().GetByUserAndDate(user.ID, "2026-03-02")
	if len(today) != 4 {
		t.Fatalf("expected 4 events, got %d", len(today))
	}
	if n := pub.count(events.AttendanceRecorded); n != 4 {
		t.Fatalf("expected 4 published events, got %d", n)
	}
}

func TestRecordScanLateEntry(t *testing.T) {
	_, uc, _, _ := newScanFixture(t)
	event, err := uc.RecordScan(context.Background(), "EMP-1001-ABC123", at(8, 15))
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if event.Kind != model.KindEntry || event.Status != model.StatusLate {
		t.Fatalf("expected late entry, got %s/%s", event.Kind, event.Status)
	}
}

func TestRecordScanGrace(t *testing.T) {
	s, _, _, _ := newScanFixture(t)
	uc := NewScanUsecase(s.Users(), s.Companies(), s.Attendance(), lock.NewMemoryLocker(), nil,
		attendance.Policy{Grace: 10 * time.Minute, Mode: attendance.SetMembership})

	event, err := uc.RecordScan(context.Background(), "EMP-1001-ABC123", at(8, 10))
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if event.Status != model.StatusNormal {
		t.Fatalf("expected normal within grace, got %s", event.Status)
	}
}

func TestRecordScanUnknownToken(t *testing.T) {
	s, uc, _, _ := newScanFixture(t)
	for _, token := range []string{"EMP-9999-NOPE", "", "   "} {
		if _, err := uc.RecordScan(context.Background(), token, at(8, 0)); !errors.Is(err, ErrUnknownQRToken) {
			t.Fatalf("token %q: expected ErrUnknownQRToken, got %v", token, err)
		}
	}
	all, _ := s.Attendance().GetAll(0)
	if len(all) != 0 {
		t.Fatalf("expected nothing stored, got %d events", len(all))
	}
}

func TestRecordScanWithoutCompany(t *testing.T) {
	s, uc, _, _ := newScanFixture(t)
	seedEmployee(t, s, nil, "2002", "EMP-2002-FREE")

	event, err := uc.RecordScan(context.Background(), "EMP-2002-FREE", at(8, 0))
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if event.CompanyName != "No company" {
		t.Fatalf("expected fallback company name, got %q", event.CompanyName)
	}
}

func TestRecordScanConcurrentSameBadge(t *testing.T) {
	s, uc, _, user := newScanFixture(t)

	var wg sync.WaitGroup
	errs := make(chan error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.RecordScan(context.Background(), "EMP-1001-ABC123", at(7, 58))
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	failures := 0
	for err := range errs {
		if err == nil {
			continue
		}
		if !errors.Is(err, ErrAlreadyClockedOut) && !errors.Is(err, ErrConcurrentScan) {
			t.Fatalf("unexpected error %v", err)
		}
		failures++
	}

	today, _ := s.Attendance().GetByUserAndDate(user.ID, "2026-03-02")
	kinds := map[model.EventKind]int{}
	for _, e := range today {
		kinds[e.Kind]++
	}
	if kinds[model.KindEntry] != 1 {
		t.Fatalf("expected exactly one entry, got %d", kinds[model.KindEntry])
	}
	for kind, n := range kinds {
		if n > 1 {
			t.Fatalf("kind %s stored %d times", kind, n)
		}
	}
	if len(today)+failures != 10 {
		t.Fatalf("expected every scan to either store or fail, stored %d failed %d", len(today), failures)
	}
}

type busyLocker struct{}

func (busyLocker) Lock(context.Context, string) (func(), error) {
	return nil, lock.ErrNotAcquired
}

func TestRecordScanLockTimeout(t *testing.T) {
	s, _, _, _ := newScanFixture(t)
	uc := NewScanUsecase(s.Users(), s.Companies(), s.Attendance(), busyLocker{}, nil, attendance.Policy{})

	if _, err := uc.RecordScan(context.Background(), "EMP-1001-ABC123", at(8, 0)); !errors.Is(err, ErrConcurrentScan) {
		t.Fatalf("expected ErrConcurrentScan, got %v", err)
	}
}

// racingStore loses the unique index race on every insert.
type racingStore struct {
	repository.AttendanceRepository
}

func (racingStore) AppendForDay(uint, string, repository.DecideFunc) (*model.AttendanceEvent, error) {
	return nil, repository.ErrDuplicate
}

func TestRecordScanUniqueIndexConflict(t *testing.T) {
	s, _, _, _ := newScanFixture(t)
	uc := NewScanUsecase(s.Users(), s.Companies(), racingStore{s.Attendance()}, lock.NewMemoryLocker(), nil, attendance.Policy{})

	if _, err := uc.RecordScan(context.Background(), "EMP-1001-ABC123", at(8, 0)); !errors.Is(err, ErrConcurrentScan) {
		t.Fatalf("expected ErrConcurrentScan, got %v", err)
	}
}

func TestRecordScanDaysAreIndependent(t *testing.T) {
	_, uc, _, _ := newScanFixture(t)
	ctx := context.Background()
	for _, h := range []int{8, 12, 13, 17} {
		if _, err := uc.RecordScan(ctx, "EMP-1001-ABC123", at(h, 0)); err != nil {
			t.Fatalf("scan: %v", err)
		}
	}
	event, err := uc.RecordScan(ctx, "EMP-1001-ABC123", at(8, 0).AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("next day scan: %v", err)
	}
	if event.Kind != model.KindEntry || event.Date != "2026-03-03" {
		t.Fatalf("expected entry on the next day, got %s on %s", event.Kind, event.Date)
	}
}
