package booking

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	slotRepo "jiperaha/database/repository/slot"
	"jiperaha/models"

	"go.uber.org/zap"
)

const testKey = "jiperaha_resort_booking_data"

var fixedNow = time.Date(2026, time.March, 10, 9, 15, 0, 0, time.UTC)

// faultyRepo wraps a SlotRepository and fails on demand.
type faultyRepo struct {
	slotRepo.SlotRepository
	failGet    bool
	failSet    bool
	failRemove bool
	sets       int
}

func (r *faultyRepo) Get(ctx context.Context, key string) (string, bool, error) {
	if r.failGet {
		return "", false, errors.New("storage unavailable")
	}
	return r.SlotRepository.Get(ctx, key)
}

func (r *faultyRepo) Set(ctx context.Context, key, value string) error {
	r.sets++
	if r.failSet {
		return errors.New("quota exceeded")
	}
	return r.SlotRepository.Set(ctx, key, value)
}

func (r *faultyRepo) Remove(ctx context.Context, key string) error {
	if r.failRemove {
		return errors.New("storage unavailable")
	}
	return r.SlotRepository.Remove(ctx, key)
}

func newTestService(repo slotRepo.SlotRepository) *DefaultBookingService {
	svc := NewBookingService(repo, testKey, time.Second, zap.NewNop())
	svc.Clock = func() time.Time { return fixedNow }
	return svc
}

func anaForm() models.BookingForm {
	return models.BookingForm{
		Name:         "Ana",
		Email:        "ana@x.com",
		Date:         "2026-03-11",
		Package:      "Safari",
		Participants: "3",
		Requests:     "",
	}
}

func TestCreateThenGetAllRoundTrips(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(slotRepo.NewMemorySlotRepo())

	created, err := svc.Create(ctx, anaForm())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.Participants != 3 {
		t.Errorf("Expected participants 3, got %d", created.Participants)
	}
	if created.Requests != "None" {
		t.Errorf("Expected requests None, got %q", created.Requests)
	}
	if created.ID != fixedNow.UnixMilli() {
		t.Errorf("Expected id %d, got %d", fixedNow.UnixMilli(), created.ID)
	}
	if created.Timestamp != "3/10/2026, 9:15:00 AM" {
		t.Errorf("Unexpected timestamp %q", created.Timestamp)
	}

	all := svc.GetAll(ctx)
	if len(all) != 1 {
		t.Fatalf("Expected 1 booking, got %d", len(all))
	}
	if all[len(all)-1] != *created {
		t.Errorf("Stored booking %+v differs from created %+v", all[0], *created)
	}
}

func TestCreateKeepsRequestsAndTrimsInput(t *testing.T) {
	svc := newTestService(slotRepo.NewMemorySlotRepo())
	form := anaForm()
	form.Name = "  Ana  "
	form.Requests = "  Vegetarian meals "

	b, err := svc.Create(context.Background(), form)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if b.Name != "Ana" {
		t.Errorf("Expected trimmed name, got %q", b.Name)
	}
	if b.Requests != "Vegetarian meals" {
		t.Errorf("Expected trimmed requests, got %q", b.Requests)
	}
}

func TestCreateAssignsUniqueIDsWithinSameMillisecond(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(slotRepo.NewMemorySlotRepo())

	var prev int64
	for i := 0; i < 5; i++ {
		b, err := svc.Create(ctx, anaForm())
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if b.ID <= prev {
			t.Fatalf("Expected increasing ids, got %d after %d", b.ID, prev)
		}
		prev = b.ID
	}
	if got := len(svc.GetAll(ctx)); got != 5 {
		t.Errorf("Expected 5 bookings, got %d", got)
	}
}

func TestCreateBumpsPastStoredIDs(t *testing.T) {
	ctx := context.Background()
	repo := slotRepo.NewMemorySlotRepo()
	future := fixedNow.Add(time.Hour).UnixMilli()
	seed := `[{"id":` + itoa(future) + `,"name":"Old","email":"o@x.com","date":"2026-04-01","package":"Safari","participants":2,"requests":"None","timestamp":"x"}]`
	if err := repo.Set(ctx, testKey, seed); err != nil {
		t.Fatal(err)
	}

	svc := newTestService(repo)
	b, err := svc.Create(ctx, anaForm())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if b.ID != future+1 {
		t.Errorf("Expected id %d, got %d", future+1, b.ID)
	}
}

func TestCreateRejectsNonNumericParticipants(t *testing.T) {
	svc := newTestService(slotRepo.NewMemorySlotRepo())
	form := anaForm()
	form.Participants = "three"

	_, err := svc.Create(context.Background(), form)
	if !errors.Is(err, ErrInvalidParticipants) {
		t.Errorf("Expected ErrInvalidParticipants, got %v", err)
	}
}

func TestCreateWriteFailureIsReported(t *testing.T) {
	ctx := context.Background()
	repo := &faultyRepo{SlotRepository: slotRepo.NewMemorySlotRepo()}
	svc := newTestService(repo)

	if _, err := svc.Create(ctx, anaForm()); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	repo.failSet = true
	b, err := svc.Create(ctx, anaForm())
	if b != nil {
		t.Error("Expected no booking on write failure")
	}
	var storageErr *StorageError
	if !errors.As(err, &storageErr) {
		t.Fatalf("Expected StorageError, got %v", err)
	}
	if storageErr.Op != OpWrite {
		t.Errorf("Expected op write, got %s", storageErr.Op)
	}
	if got := len(svc.GetAll(ctx)); got != 1 {
		t.Errorf("Expected the earlier booking to survive, got %d bookings", got)
	}
}

func TestGetAllFailsOpen(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		seed *string
		fail bool
	}{
		{name: "absent key"},
		{name: "corrupt json", seed: strPtr("{not json")},
		{name: "wrong shape", seed: strPtr(`{"id":1}`)},
		{name: "json null", seed: strPtr("null")},
		{name: "read error", fail: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &faultyRepo{SlotRepository: slotRepo.NewMemorySlotRepo(), failGet: tt.fail}
			if tt.seed != nil {
				_ = repo.SlotRepository.Set(ctx, testKey, *tt.seed)
			}
			svc := newTestService(repo)

			all := svc.GetAll(ctx)
			if all == nil || len(all) != 0 {
				t.Errorf("Expected empty non-nil slice, got %#v", all)
			}
			if _, ok := svc.Latest(ctx); ok {
				t.Error("Latest should report nothing")
			}
		})
	}
}

func TestReadFailureDoesNotOverwriteStoredBookings(t *testing.T) {
	ctx := context.Background()
	repo := &faultyRepo{SlotRepository: slotRepo.NewMemorySlotRepo()}
	svc := newTestService(repo)

	var first *models.Booking
	for i := 0; i < 3; i++ {
		b, err := svc.Create(ctx, anaForm())
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if first == nil {
			first = b
		}
	}
	setsBefore := repo.sets

	repo.failGet = true
	b, err := svc.Create(ctx, anaForm())
	if b != nil {
		t.Error("Expected no booking when the slot cannot be read")
	}
	var storageErr *StorageError
	if !errors.As(err, &storageErr) {
		t.Fatalf("Expected StorageError, got %v", err)
	}
	if storageErr.Op != OpRead {
		t.Errorf("Expected op read, got %s", storageErr.Op)
	}

	ok, err := svc.DeleteByID(ctx, first.ID)
	if ok || !errors.As(err, &storageErr) {
		t.Errorf("Expected false with StorageError, got %v %v", ok, err)
	}
	if repo.sets != setsBefore {
		t.Errorf("Expected no writes after a failed read, got %d", repo.sets-setsBefore)
	}

	repo.failGet = false
	if got := len(svc.GetAll(ctx)); got != 3 {
		t.Errorf("Expected the 3 earlier bookings to survive, got %d", got)
	}
}

func TestGetAllReadsLegacyWidgetData(t *testing.T) {
	ctx := context.Background()
	repo := slotRepo.NewMemorySlotRepo()
	legacy := `[{"id":1760000000000,"name":"Ana","email":"ana@x.com","date":"2025-10-10","package":"Safari","participants":3,"requests":"None","timestamp":"10/9/2025, 11:53:20 AM"}]`
	_ = repo.Set(ctx, testKey, legacy)

	all := newTestService(repo).GetAll(ctx)
	if len(all) != 1 {
		t.Fatalf("Expected 1 booking, got %d", len(all))
	}
	if all[0].ID != 1760000000000 || all[0].Participants != 3 {
		t.Errorf("Unexpected booking %+v", all[0])
	}
}

func TestDeleteByID(t *testing.T) {
	ctx := context.Background()
	repo := &faultyRepo{SlotRepository: slotRepo.NewMemorySlotRepo()}
	svc := newTestService(repo)

	first, _ := svc.Create(ctx, anaForm())
	second, _ := svc.Create(ctx, anaForm())
	setsBefore := repo.sets

	ok, err := svc.DeleteByID(ctx, 42)
	if err != nil || ok {
		t.Errorf("Expected false for absent id, got %v %v", ok, err)
	}
	if repo.sets != setsBefore {
		t.Error("Deleting an absent id must not write")
	}
	if got := len(svc.GetAll(ctx)); got != 2 {
		t.Errorf("Expected 2 bookings, got %d", got)
	}

	ok, err = svc.DeleteByID(ctx, first.ID)
	if err != nil || !ok {
		t.Fatalf("Expected delete to succeed, got %v %v", ok, err)
	}
	all := svc.GetAll(ctx)
	if len(all) != 1 || all[0].ID != second.ID {
		t.Errorf("Expected only second booking to remain, got %+v", all)
	}
}

func TestDeleteByIDWriteFailure(t *testing.T) {
	ctx := context.Background()
	repo := &faultyRepo{SlotRepository: slotRepo.NewMemorySlotRepo()}
	svc := newTestService(repo)
	b, _ := svc.Create(ctx, anaForm())

	repo.failSet = true
	ok, err := svc.DeleteByID(ctx, b.ID)
	var storageErr *StorageError
	if ok || !errors.As(err, &storageErr) {
		t.Errorf("Expected false with StorageError, got %v %v", ok, err)
	}
}

func TestClearAll(t *testing.T) {
	ctx := context.Background()
	repo := &faultyRepo{SlotRepository: slotRepo.NewMemorySlotRepo()}
	svc := newTestService(repo)
	_, _ = svc.Create(ctx, anaForm())
	_, _ = svc.Create(ctx, anaForm())

	if err := svc.ClearAll(ctx); err != nil {
		t.Fatalf("ClearAll failed: %v", err)
	}
	if got := svc.GetAll(ctx); len(got) != 0 {
		t.Errorf("Expected empty collection, got %d", len(got))
	}
	// Clearing an already empty store is fine.
	if err := svc.ClearAll(ctx); err != nil {
		t.Errorf("Second ClearAll failed: %v", err)
	}

	repo.failRemove = true
	var storageErr *StorageError
	if err := svc.ClearAll(ctx); !errors.As(err, &storageErr) {
		t.Errorf("Expected StorageError, got %v", err)
	}
}

func TestLatestReturnsLastInserted(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(slotRepo.NewMemorySlotRepo())
	_, _ = svc.Create(ctx, anaForm())
	form := anaForm()
	form.Name = "Baraka"
	last, _ := svc.Create(ctx, form)

	got, ok := svc.Latest(ctx)
	if !ok || got.ID != last.ID || got.Name != "Baraka" {
		t.Errorf("Expected latest to be %+v, got %+v", last, got)
	}
}

func strPtr(s string) *string { return &s }

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}
