package planner

import (
	"context"
	"testing"

	"mileage-logbook/internal/models"
)

// fakeAddresses resolves address IDs shared by every test user.
type fakeAddresses struct {
	byID map[string]string
}

func (f *fakeAddresses) Get(ctx context.Context, userID, addressID string) (*models.Address, error) {
	text, ok := f.byID[addressID]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &models.Address{ID: addressID, UserID: userID, AddressText: text}, nil
}

// fakeMileage returns one canned result and records what it was asked for.
type fakeMileage struct {
	result    *models.MileageResult
	lastTexts []string
	calls     int
}

func (f *fakeMileage) Compute(ctx context.Context, addresses []string) (*models.MileageResult, error) {
	f.calls++
	f.lastTexts = addresses
	return f.result, nil
}

// fakeTrips records the payload passed to Create.
type fakeTrips struct {
	lastUser string
	lastReq  models.SaveTripRequest
	calls    int
}

func (f *fakeTrips) Create(ctx context.Context, userID string, req models.SaveTripRequest) (*models.Trip, error) {
	f.calls++
	f.lastUser = userID
	f.lastReq = req
	return &models.Trip{ID: "trip-1", UserID: userID, TripData: req.TripData}, nil
}

func newTestService() (*Service, *fakeAddresses, *fakeMileage, *fakeTrips) {
	fa := &fakeAddresses{byID: map[string]string{
		"addr-a": "A", "addr-b": "B", "addr-c": "C",
	}}
	fm := &fakeMileage{result: &models.MileageResult{
		Status:        "OK",
		TotalDistance: "12.30 miles",
		LegDistances:  []string{"6.15 miles", "6.15 miles"},
	}}
	ft := &fakeTrips{}
	return NewService(NewStore(), fa, fm, ft), fa, fm, ft
}

func seedDraft(t *testing.T, svc *Service, userID string, ids ...string) models.Draft {
	t.Helper()
	var draft models.Draft
	var err error
	for _, id := range ids {
		draft, err = svc.AddStop(context.Background(), userID, id)
		if err != nil {
			t.Fatalf("AddStop(%s) error: %v", id, err)
		}
	}
	return draft
}

func texts(d models.Draft) []string {
	out := make([]string, len(d.Stops))
	for i, s := range d.Stops {
		out[i] = s.AddressText
	}
	return out
}

func TestAddStopSnapshotsAndKeys(t *testing.T) {
	svc, _, _, _ := newTestService()
	draft := seedDraft(t, svc, "u1", "addr-a", "addr-a")

	if len(draft.Stops) != 2 {
		t.Fatalf("got %d stops; want 2", len(draft.Stops))
	}
	// Duplicate address text still gets distinct identities.
	if draft.Stops[0].Key == draft.Stops[1].Key {
		t.Error("duplicate stops share a key; keys must be unique per insertion")
	}
	if draft.Stops[0].AddressText != "A" {
		t.Errorf("snapshot text = %q; want A", draft.Stops[0].AddressText)
	}
}

func TestAddStopUnknownAddress(t *testing.T) {
	svc, _, _, _ := newTestService()
	if _, err := svc.AddStop(context.Background(), "u1", "addr-zzz"); err != models.ErrNotFound {
		t.Errorf("AddStop unknown err = %v; want ErrNotFound", err)
	}
}

func TestReorderSplices(t *testing.T) {
	svc, _, _, _ := newTestService()
	seedDraft(t, svc, "u1", "addr-a", "addr-b", "addr-c")

	draft, err := svc.Reorder(context.Background(), "u1", 0, 2)
	if err != nil {
		t.Fatalf("Reorder error: %v", err)
	}
	got := texts(draft)
	want := []string{"B", "C", "A"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("after (0,2) sequence = %v; want %v", got, want)
		}
	}

	// Move it back to the front.
	draft, err = svc.Reorder(context.Background(), "u1", 2, 0)
	if err != nil {
		t.Fatalf("Reorder error: %v", err)
	}
	if g := texts(draft); g[0] != "A" || g[1] != "B" || g[2] != "C" {
		t.Errorf("after (2,0) sequence = %v; want [A B C]", g)
	}
}

func TestReorderOutOfRange(t *testing.T) {
	svc, _, _, _ := newTestService()
	seedDraft(t, svc, "u1", "addr-a", "addr-b")

	if _, err := svc.Reorder(context.Background(), "u1", 0, 5); err == nil {
		t.Fatal("expected error for out-of-range index, got nil")
	}
}

func TestRemoveStopByKey(t *testing.T) {
	svc, _, _, _ := newTestService()
	draft := seedDraft(t, svc, "u1", "addr-a", "addr-b")

	draft, err := svc.RemoveStop(context.Background(), "u1", draft.Stops[0].Key)
	if err != nil {
		t.Fatalf("RemoveStop error: %v", err)
	}
	if len(draft.Stops) != 1 || draft.Stops[0].AddressText != "B" {
		t.Errorf("after remove = %v; want [B]", texts(draft))
	}

	if _, err := svc.RemoveStop(context.Background(), "u1", "no-such-key"); err != models.ErrNotFound {
		t.Errorf("RemoveStop missing key err = %v; want ErrNotFound", err)
	}
}

func TestCalculateRecordsTotals(t *testing.T) {
	svc, _, fm, _ := newTestService()
	seedDraft(t, svc, "u1", "addr-a", "addr-b", "addr-c")

	draft, err := svc.Calculate(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Calculate error: %v", err)
	}
	if !draft.Calculated {
		t.Error("draft not marked calculated")
	}
	if draft.TotalDistanceMiles != 12.3 {
		t.Errorf("TotalDistanceMiles = %v; want 12.3", draft.TotalDistanceMiles)
	}
	// 12.3 * 0.45 = 5.535 → 5.54
	if draft.ReimbursementAmount != 5.54 {
		t.Errorf("ReimbursementAmount = %v; want 5.54", draft.ReimbursementAmount)
	}
	if len(draft.LegDistances) != 2 {
		t.Errorf("LegDistances = %v; want 2 legs", draft.LegDistances)
	}
	if len(fm.lastTexts) != 3 || fm.lastTexts[0] != "A" {
		t.Errorf("mileage service saw %v; want the three address texts", fm.lastTexts)
	}
}

func TestCalculateNeedsTwoStops(t *testing.T) {
	svc, _, fm, _ := newTestService()
	seedDraft(t, svc, "u1", "addr-a")

	if _, err := svc.Calculate(context.Background(), "u1"); err != models.ErrSequenceTooShort {
		t.Errorf("Calculate err = %v; want ErrSequenceTooShort", err)
	}
	if fm.calls != 0 {
		t.Errorf("mileage service called %d times before validation; want 0", fm.calls)
	}
}

func TestMutationInvalidatesCalculation(t *testing.T) {
	svc, _, _, _ := newTestService()
	seedDraft(t, svc, "u1", "addr-a", "addr-b")

	if _, err := svc.Calculate(context.Background(), "u1"); err != nil {
		t.Fatalf("Calculate error: %v", err)
	}
	draft, err := svc.Reorder(context.Background(), "u1", 0, 1)
	if err != nil {
		t.Fatalf("Reorder error: %v", err)
	}
	if draft.Calculated {
		t.Error("calculation survived a reorder; totals no longer describe the sequence")
	}
}

func TestSaveBuildsPayloadAndClears(t *testing.T) {
	svc, _, _, ft := newTestService()
	seedDraft(t, svc, "u1", "addr-a", "addr-b")
	if _, err := svc.Calculate(context.Background(), "u1"); err != nil {
		t.Fatalf("Calculate error: %v", err)
	}

	saved, err := svc.Save(context.Background(), "u1", models.SaveDraftRequest{TripDate: "2024-01-01", TripTime: "09:30"})
	if err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if saved.ID != "trip-1" {
		t.Errorf("saved.ID = %s; want trip-1", saved.ID)
	}
	if ft.lastReq.TripDatetime != "2024-01-01T09:30:00" {
		t.Errorf("TripDatetime = %q; want 2024-01-01T09:30:00", ft.lastReq.TripDatetime)
	}
	if len(ft.lastReq.TripData) != 2 || ft.lastReq.TripData[0].AddressText != "A" {
		t.Errorf("TripData = %+v; want snapshots of [A B]", ft.lastReq.TripData)
	}
	if ft.lastReq.TotalDistanceMiles != 12.3 || ft.lastReq.ReimbursementAmount != 5.54 {
		t.Errorf("totals = %v / %v; want 12.3 / 5.54", ft.lastReq.TotalDistanceMiles, ft.lastReq.ReimbursementAmount)
	}

	// The draft is gone after a successful save.
	if d := svc.Get(context.Background(), "u1"); len(d.Stops) != 0 || d.Calculated {
		t.Errorf("draft after save = %+v; want empty", d)
	}
}

func TestSaveRequiresCalculation(t *testing.T) {
	svc, _, _, ft := newTestService()
	seedDraft(t, svc, "u1", "addr-a", "addr-b")

	if _, err := svc.Save(context.Background(), "u1", models.SaveDraftRequest{TripDate: "2024-01-01"}); err != models.ErrNothingCalculated {
		t.Errorf("Save uncalculated err = %v; want ErrNothingCalculated", err)
	}
	if ft.calls != 0 {
		t.Errorf("trip service called %d times; want 0", ft.calls)
	}
}

func TestDraftsAreIsolatedPerUser(t *testing.T) {
	svc, _, _, _ := newTestService()
	seedDraft(t, svc, "u1", "addr-a")

	if d := svc.Get(context.Background(), "u2"); len(d.Stops) != 0 {
		t.Errorf("u2 sees %d stops from u1's draft; want 0", len(d.Stops))
	}
}
