package extract

import "testing"

func TestValidatePayload(t *testing.T) {
	cases := []struct {
		name    string
		fields  map[string]string
		wantErr bool
	}{
		{"flat snake_case", map[string]string{"full_text": "hello", "invoice_number": "42"}, false},
		{"single field", map[string]string{"applicant_name": "John Smith"}, false},
		{"empty payload", map[string]string{}, true},
		{"uppercase key", map[string]string{"FullText": "x"}, true},
		{"dashed key", map[string]string{"full-text": "x"}, true},
		{"leading digit", map[string]string{"1st_field": "x"}, true},
		{"empty values allowed", map[string]string{"middle_name": ""}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidatePayload(tc.fields)
			if (err != nil) != tc.wantErr {
				t.Errorf("ValidatePayload(%v) error = %v, wantErr %v", tc.fields, err, tc.wantErr)
			}
		})
	}
}

func TestValidateJSONAgainstSchemaRejectsNonObject(t *testing.T) {
	schema := BuildExtractedFieldsSchema()
	for _, data := range []string{`"text"`, `[1,2]`, `42`, `null`} {
		if err := ValidateJSONAgainstSchema(schema, []byte(data)); err == nil {
			t.Errorf("payload %s should be rejected", data)
		}
	}
}
