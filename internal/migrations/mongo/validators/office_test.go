package validators

import (
	"reflect"
	"regexp"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	"offices/pkg/model"
)

func schema(t *testing.T) bson.M {
	t.Helper()
	s, ok := OfficeValidator["$jsonSchema"].(bson.M)
	if !ok {
		t.Fatal("OfficeValidator has no $jsonSchema")
	}
	return s
}

func TestOfficeValidator_PropertiesMatchDocument(t *testing.T) {
	fields := map[string]bool{}
	typ := reflect.TypeOf(model.Office{})
	for i := 0; i < typ.NumField(); i++ {
		name := strings.Split(typ.Field(i).Tag.Get("bson"), ",")[0]
		fields[name] = true
	}

	properties := schema(t)["properties"].(bson.M)
	for name := range properties {
		if !fields[name] {
			t.Errorf("schema property %q has no matching bson field on model.Office", name)
		}
	}
	for name := range fields {
		if _, ok := properties[name]; !ok {
			t.Errorf("bson field %q is missing from the schema", name)
		}
	}

	for _, required := range schema(t)["required"].([]string) {
		if !fields[required] {
			t.Errorf("required property %q is not a document field", required)
		}
	}
}

func TestOfficeValidator_PhonePattern(t *testing.T) {
	properties := schema(t)["properties"].(bson.M)
	pattern := properties["registry_phone_number"].(bson.M)["pattern"].(string)
	re := regexp.MustCompile(pattern)

	tests := []struct {
		phone string
		want  bool
	}{
		{"+375338926491", true},
		{"375338926491", false},
		{"+37533892649", false},
		{"+3753389264911", false},
	}
	for _, tt := range tests {
		if got := re.MatchString(tt.phone); got != tt.want {
			t.Errorf("pattern match %q = %v, want %v", tt.phone, got, tt.want)
		}
	}
}
