package doctors

import "testing"

func testDoctors() []*Doctor {
	return []*Doctor{
		{ID: "1", PublicID: "evelyn-reed", Name: "Dr. Evelyn Reed", Specialty: "Cardiology",
			Availability: map[string][]string{"2024-08-15": {"09:00 AM", "10:00 AM"}}},
		{ID: "2", PublicID: "marcus-chen", Name: "Dr. Marcus Chen", Specialty: "Dermatology"},
		{ID: "3", Name: "Dr. No Public", Specialty: "Cardiology"},
	}
}

func TestFindByPrimaryID(t *testing.T) {
	dir := NewStaticDirectory(testDoctors())

	doc, err := dir.FindByID("1")
	if err != nil {
		t.Fatalf("find by primary id: %v", err)
	}
	if doc.Name != "Dr. Evelyn Reed" {
		t.Errorf("unexpected doctor: %s", doc.Name)
	}
}

func TestFindByPublicID(t *testing.T) {
	dir := NewStaticDirectory(testDoctors())

	doc, err := dir.FindByID("marcus-chen")
	if err != nil {
		t.Fatalf("find by public id: %v", err)
	}
	if doc.ID != "2" {
		t.Errorf("expected doctor 2, got %s", doc.ID)
	}
}

func TestFindUnknown(t *testing.T) {
	dir := NewStaticDirectory(testDoctors())

	if _, err := dir.FindByID("999"); err != ErrDoctorNotFound {
		t.Fatalf("expected ErrDoctorNotFound, got %v", err)
	}
}

func TestNormalize(t *testing.T) {
	dir := NewStaticDirectory(testDoctors())

	if got := dir.Normalize("evelyn-reed"); got != "1" {
		t.Errorf("Normalize(public) = %s, want 1", got)
	}
	if got := dir.Normalize("1"); got != "1" {
		t.Errorf("Normalize(primary) = %s, want 1", got)
	}
	// Unknown identifiers pass through so downstream filters match nothing.
	if got := dir.Normalize("nobody"); got != "nobody" {
		t.Errorf("Normalize(unknown) = %s, want passthrough", got)
	}
}

func TestListOrderedByID(t *testing.T) {
	dir := NewStaticDirectory(testDoctors())

	list := dir.List()
	if len(list) != 3 {
		t.Fatalf("expected 3 doctors, got %d", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Fatalf("list not ordered by id: %s before %s", list[i-1].ID, list[i].ID)
		}
	}
}

func TestSpecialties(t *testing.T) {
	dir := NewStaticDirectory(testDoctors())

	got := dir.Specialties()
	want := []string{"Cardiology", "Dermatology"}
	if len(got) != len(want) {
		t.Fatalf("specialties = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("specialties = %v, want %v", got, want)
		}
	}
}

func TestSeededDirectoryLoads(t *testing.T) {
	dir, err := NewSeededDirectory()
	if err != nil {
		t.Fatalf("seed load: %v", err)
	}
	if len(dir.List()) == 0 {
		t.Fatal("seed dataset is empty")
	}

	doc, err := dir.FindByID("1")
	if err != nil {
		t.Fatalf("seed doctor 1 missing: %v", err)
	}
	if len(doc.SlotsOn("2024-08-15")) == 0 {
		t.Error("expected slots on 2024-08-15 for doctor 1")
	}
	if doc.SlotsOn("1999-01-01") != nil {
		t.Error("expected no slots on an unoffered date")
	}
}
