package integration

import (
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"

	"offices/pkg/model"
	"offices/test/integration/testutil"
)

func TestCreateAndGet(t *testing.T) {
	mongo, client := testutil.NewTestEnv().Setup(t)

	created := testutil.MustCreate(t, client, testutil.ValidOffice())

	if _, err := uuid.Parse(created.ID); err != nil {
		t.Fatalf("expected UUID id, got %q", created.ID)
	}
	if created.Version != 1 {
		t.Errorf("expected version 1, got %d", created.Version)
	}

	resp, err := client.Get(t.Context(), created.ID)
	if err != nil {
		t.Fatalf("get request failed: %v", err)
	}
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var fetched model.OfficeOutput
	if err := resp.DecodeData(&fetched); err != nil {
		t.Fatalf("failed to decode get response: %v", err)
	}
	if fetched.City != created.City || fetched.RegistryPhoneNumber != created.RegistryPhoneNumber {
		t.Errorf("fetched %+v does not match created %+v", fetched, created)
	}

	if stored := mongo.FindOffice(t, created.ID); stored == nil || stored.Status != model.OfficeStatusActive {
		t.Errorf("expected stored Active office, got %+v", stored)
	}
}

func TestCreate_SanitizesInput(t *testing.T) {
	_, client := testutil.NewTestEnv().Setup(t)

	in := testutil.NewOfficeBuilder().
		WithCity("  Minsk   City ").
		WithPhone("+375 (29) 123-45-67").
		WithStatus("inactive").
		Build()

	created := testutil.MustCreate(t, client, in)

	if created.City != "Minsk City" {
		t.Errorf("expected collapsed city, got %q", created.City)
	}
	if created.RegistryPhoneNumber != "+375291234567" {
		t.Errorf("expected E.164 phone, got %q", created.RegistryPhoneNumber)
	}
	if created.Status != model.OfficeStatusInactive {
		t.Errorf("expected Inactive, got %q", created.Status)
	}
}

func TestCreate_Rejections(t *testing.T) {
	mongo, client := testutil.NewTestEnv().Setup(t)

	testCases := []struct {
		name       string
		body       string
		wantStatus int
		wantText   string
	}{
		{name: "null body", body: `null`, wantStatus: http.StatusBadRequest, wantText: "required"},
		{name: "malformed json", body: `{"city":`, wantStatus: http.StatusBadRequest, wantText: "invalid request body"},
		{name: "missing fields", body: `{"status":"Active"}`, wantStatus: http.StatusUnprocessableEntity, wantText: "city"},
		{name: "bad phone", body: `{"status":"Active","city":"Minsk","street":"Lenina","house_number":"1","registry_phone_number":"12345"}`, wantStatus: http.StatusUnprocessableEntity, wantText: "registry_phone_number"},
		{name: "unknown status", body: `{"status":"Closed","city":"Minsk","street":"Lenina","house_number":"1","registry_phone_number":"+375291234567"}`, wantStatus: http.StatusUnprocessableEntity, wantText: "status"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := client.CreateRaw(t.Context(), []byte(tc.body))
			if err != nil {
				t.Fatalf("create request failed: %v", err)
			}
			testutil.AssertStatusCode(t, resp, tc.wantStatus)
			testutil.AssertContains(t, resp, tc.wantText)
		})
	}

	if count := mongo.CountDocuments(t); count != 0 {
		t.Errorf("expected no stored offices, got %d", count)
	}
}

func TestGet_Errors(t *testing.T) {
	_, client := testutil.NewTestEnv().Setup(t)

	testCases := []struct {
		name       string
		id         string
		wantStatus int
	}{
		{name: "unknown id", id: uuid.NewString(), wantStatus: http.StatusNotFound},
		{name: "not a uuid", id: "invalid-id", wantStatus: http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := client.Get(t.Context(), tc.id)
			if err != nil {
				t.Fatalf("get request failed: %v", err)
			}
			testutil.AssertStatusCode(t, resp, tc.wantStatus)
		})
	}
}

func TestGetAll(t *testing.T) {
	_, client := testutil.NewTestEnv().Setup(t)

	resp, err := client.GetAll(t.Context())
	if err != nil {
		t.Fatalf("list request failed: %v", err)
	}
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var empty []model.OfficeOutput
	if err := resp.DecodeData(&empty); err != nil {
		t.Fatalf("failed to decode list: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected empty list, got %d", len(empty))
	}

	testutil.MustCreate(t, client, testutil.NewOfficeBuilder().WithCity("Minsk").Build())
	testutil.MustCreate(t, client, testutil.NewOfficeBuilder().WithCity("Brest").Build())

	resp, err = client.GetAll(t.Context())
	if err != nil {
		t.Fatalf("list request failed: %v", err)
	}
	var offices []model.OfficeOutput
	if err := resp.DecodeData(&offices); err != nil {
		t.Fatalf("failed to decode list: %v", err)
	}
	if len(offices) != 2 {
		t.Errorf("expected 2 offices, got %d", len(offices))
	}
}

func TestUpdate_ReplacesAllFields(t *testing.T) {
	mongo, client := testutil.NewTestEnv().Setup(t)

	created := testutil.MustCreate(t, client, testutil.ValidOffice())

	update := testutil.ToUpdate(testutil.NewOfficeBuilder().
		WithCity("Grodno").
		WithStatus(model.OfficeStatusInactive).
		WithPhotoID("photo-1").
		Build())
	update.OfficeNumber = ""
	update.Location = nil

	resp, err := client.Update(t.Context(), created.ID, update)
	if err != nil {
		t.Fatalf("update request failed: %v", err)
	}
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	stored := mongo.FindOffice(t, created.ID)
	if stored == nil {
		t.Fatal("office disappeared after update")
	}
	if stored.City != "Grodno" || stored.Status != model.OfficeStatusInactive || stored.PhotoID != "photo-1" {
		t.Errorf("update not applied: %+v", stored)
	}
	if stored.OfficeNumber != "" || len(stored.Location) != 0 {
		t.Errorf("omitted fields should be cleared: %+v", stored)
	}
	if stored.Version != 2 {
		t.Errorf("expected version 2, got %d", stored.Version)
	}
}

func TestUpdate_Errors(t *testing.T) {
	_, client := testutil.NewTestEnv().Setup(t)

	created := testutil.MustCreate(t, client, testutil.ValidOffice())
	valid := testutil.ToUpdate(testutil.ValidOffice())
	invalid := valid
	invalid.City = ""

	testCases := []struct {
		name       string
		id         string
		body       any
		wantStatus int
	}{
		{name: "unknown id", id: uuid.NewString(), body: valid, wantStatus: http.StatusNotFound},
		{name: "not a uuid", id: "nope", body: valid, wantStatus: http.StatusBadRequest},
		{name: "validation failure", id: created.ID, body: invalid, wantStatus: http.StatusUnprocessableEntity},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := client.Update(t.Context(), tc.id, tc.body)
			if err != nil {
				t.Fatalf("update request failed: %v", err)
			}
			testutil.AssertStatusCode(t, resp, tc.wantStatus)
		})
	}
}

func TestChangeStatus_Toggles(t *testing.T) {
	mongo, client := testutil.NewTestEnv().Setup(t)

	created := testutil.MustCreate(t, client, testutil.ValidOffice())

	for i, want := range []model.OfficeStatus{model.OfficeStatusInactive, model.OfficeStatusActive} {
		resp, err := client.ChangeStatus(t.Context(), created.ID)
		if err != nil {
			t.Fatalf("status request failed: %v", err)
		}
		testutil.AssertStatusCode(t, resp, http.StatusNoContent)

		stored := mongo.FindOffice(t, created.ID)
		if stored.Status != want {
			t.Errorf("toggle %d: expected %s, got %s", i+1, want, stored.Status)
		}
		if stored.Version != int64(i+2) {
			t.Errorf("toggle %d: expected version %d, got %d", i+1, i+2, stored.Version)
		}
	}
}

func TestChangeStatus_UnknownOffice(t *testing.T) {
	_, client := testutil.NewTestEnv().Setup(t)

	resp, err := client.ChangeStatus(t.Context(), uuid.NewString())
	if err != nil {
		t.Fatalf("status request failed: %v", err)
	}
	testutil.AssertStatusCode(t, resp, http.StatusNotFound)
}

func TestIDLookupIsCaseInsensitive(t *testing.T) {
	_, client := testutil.NewTestEnv().Setup(t)

	created := testutil.MustCreate(t, client, testutil.ValidOffice())

	resp, err := client.Get(t.Context(), strings.ToUpper(created.ID))
	if err != nil {
		t.Fatalf("get request failed: %v", err)
	}
	testutil.AssertStatusCode(t, resp, http.StatusOK)
}
