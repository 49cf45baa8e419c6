package models

import "testing"

func TestDecodeListBareArray(t *testing.T) {
	body := []byte(`[{"id":1,"nombre":"Yoga"},{"id":2,"nombre":"Spinning"}]`)
	got := DecodeList[Activity](body)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Name != "Yoga" || got[1].ID != 2 {
		t.Errorf("decoded %+v", got)
	}
}

func TestDecodeListEnvelope(t *testing.T) {
	body := []byte(`{"count":1,"next":null,"results":[{"id":7,"nombre":"CrossFit"}]}`)
	got := DecodeList[Activity](body)
	if len(got) != 1 || got[0].ID != 7 {
		t.Fatalf("decoded %+v, want single id 7", got)
	}
}

func TestDecodeListUnknownShapes(t *testing.T) {
	cases := map[string]string{
		"empty body":     "",
		"empty object":   `{}`,
		"string payload": `"mantenimiento"`,
		"garbage":        `<html>502</html>`,
		"null":           `null`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			got := DecodeList[Activity]([]byte(body))
			if got == nil {
				t.Fatal("got nil, want empty slice")
			}
			if len(got) != 0 {
				t.Errorf("len = %d, want 0", len(got))
			}
		})
	}
}

func TestDecodeEntityEnvelope(t *testing.T) {
	body := []byte(`{"mensaje":"Perfil actualizado exitosamente.","data":{"id":3,"nombre":"Ana"}}`)
	entity, message, err := DecodeEntity[Profile](body)
	if err != nil {
		t.Fatalf("DecodeEntity: %v", err)
	}
	if entity.ID != 3 || entity.FirstName != "Ana" {
		t.Errorf("entity = %+v", entity)
	}
	if message != "Perfil actualizado exitosamente." {
		t.Errorf("message = %q", message)
	}
}

func TestDecodeEntityBare(t *testing.T) {
	entity, message, err := DecodeEntity[Profile]([]byte(`{"id":4,"nombre":"Luis"}`))
	if err != nil {
		t.Fatalf("DecodeEntity: %v", err)
	}
	if entity.ID != 4 || message != "" {
		t.Errorf("entity = %+v, message = %q", entity, message)
	}
}

func TestDecodeEntityMalformed(t *testing.T) {
	if _, _, err := DecodeEntity[Profile]([]byte(`[1,2]`)); err == nil {
		t.Error("want error for non-object payload")
	}
}
